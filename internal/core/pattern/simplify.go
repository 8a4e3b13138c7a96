package pattern

import (
	"strings"

	"github.com/baditaflorin/go_readability/internal/core/domain"
)

// complexWords maps wordy vocabulary to plain-English alternatives.
var complexWords = map[string]string{
	"accomplish":      "do",
	"accordingly":     "so",
	"accumulate":      "gather",
	"accurate":        "correct",
	"additional":      "more",
	"address":         "discuss",
	"adjacent":        "next to",
	"advantageous":    "helpful",
	"aggregate":       "total",
	"allocate":        "divide",
	"alternatively":   "or",
	"ameliorate":      "improve",
	"anticipate":      "expect",
	"apparent":        "clear",
	"appreciable":     "many",
	"approximately":   "about",
	"ascertain":       "find out",
	"assistance":      "help",
	"attain":          "reach",
	"attempt":         "try",
	"beneficial":      "helpful",
	"capability":      "ability",
	"cognizant":       "aware",
	"commence":        "begin",
	"communicate":     "talk",
	"component":       "part",
	"comprise":        "include",
	"concerning":      "about",
	"consequently":    "so",
	"consolidate":     "combine",
	"constitute":      "form",
	"construct":       "build",
	"currently":       "now",
	"deem":            "think",
	"demonstrate":     "show",
	"designate":       "choose",
	"determine":       "decide",
	"disseminate":     "spread",
	"endeavor":        "try",
	"enumerate":       "count",
	"equitable":       "fair",
	"equivalent":      "equal",
	"establish":       "set up",
	"evident":         "clear",
	"exclusively":     "only",
	"expedite":        "hurry",
	"expenditure":     "spending",
	"facilitate":      "help",
	"feasible":        "possible",
	"finalize":        "finish",
	"frequently":      "often",
	"fundamental":     "basic",
	"furthermore":     "also",
	"hence":           "so",
	"identical":       "same",
	"implement":       "carry out",
	"inception":       "start",
	"indicate":        "show",
	"individual":      "person",
	"initial":         "first",
	"initiate":        "start",
	"leverage":        "use",
	"magnitude":       "size",
	"methodology":     "method",
	"minimize":        "reduce",
	"modification":    "change",
	"monitor":         "check",
	"necessitate":     "require",
	"nevertheless":    "still",
	"notwithstanding": "despite",
	"numerous":        "many",
	"objective":       "goal",
	"obtain":          "get",
	"optimal":         "best",
	"optimum":         "best",
	"participate":     "take part",
	"perceive":        "see",
	"perform":         "do",
	"permit":          "let",
	"possess":         "have",
	"preclude":        "prevent",
	"previously":      "before",
	"prioritize":      "rank",
	"procure":         "get",
	"proficiency":     "skill",
	"promulgate":      "announce",
	"purchase":        "buy",
	"remainder":       "rest",
	"remuneration":    "pay",
	"render":          "make",
	"request":         "ask",
	"require":         "need",
	"requirement":     "need",
	"residence":       "home",
	"retain":          "keep",
	"subsequent":      "later",
	"substantial":     "large",
	"sufficient":      "enough",
	"terminate":       "end",
	"therefore":       "so",
	"transmit":        "send",
	"utilization":     "use",
	"utilize":         "use",
	"validate":        "confirm",
	"whereas":         "while",
}

// SimplificationFor returns the plain alternative of a word, if any.
func SimplificationFor(word string) (string, bool) {
	s, ok := complexWords[strings.ToLower(word)]
	return s, ok
}

// FindSimplifications returns one suggestion per distinct complex word, in
// order of first appearance.
func FindSimplifications(words []string) []domain.Simplification {
	result := make([]domain.Simplification, 0)
	seen := make(map[domain.Simplification]struct{})
	for _, w := range words {
		lower := strings.ToLower(w)
		suggestion, ok := SimplificationFor(lower)
		if !ok {
			continue
		}
		s := domain.Simplification{Word: lower, Suggestion: suggestion}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}
	return result
}
