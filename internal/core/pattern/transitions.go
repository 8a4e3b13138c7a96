package pattern

import "github.com/baditaflorin/go_readability/internal/ports"

// TransitionCategory names the rhetorical function of a transition.
type TransitionCategory string

const (
	TransitionAddition   TransitionCategory = "addition"
	TransitionContrast   TransitionCategory = "contrast"
	TransitionCause      TransitionCategory = "cause"
	TransitionSequence   TransitionCategory = "sequence"
	TransitionExample    TransitionCategory = "example"
	TransitionEmphasis   TransitionCategory = "emphasis"
	TransitionSummary    TransitionCategory = "summary"
	TransitionComparison TransitionCategory = "comparison"
	TransitionPlace      TransitionCategory = "place"
	TransitionConcession TransitionCategory = "concession"
)

// TransitionCategories lists categories in dictionary order.
var TransitionCategories = []TransitionCategory{
	TransitionAddition, TransitionContrast, TransitionCause, TransitionSequence,
	TransitionExample, TransitionEmphasis, TransitionSummary, TransitionComparison,
	TransitionPlace, TransitionConcession,
}

// transitionWords is the transition dictionary grouped by function.
var transitionWords = map[TransitionCategory][]string{
	TransitionAddition: {
		"additionally", "also", "furthermore", "moreover", "besides", "in addition",
		"as well as", "not only", "equally important", "what is more", "on top of that",
		"further", "again", "along with", "coupled with", "in the same fashion",
	},
	TransitionContrast: {
		"however", "but", "nevertheless", "nonetheless", "on the other hand", "in contrast",
		"conversely", "instead", "on the contrary", "whereas", "yet", "even so", "rather",
		"alternatively", "otherwise", "despite this", "by contrast", "unlike",
	},
	TransitionCause: {
		"therefore", "thus", "consequently", "as a result", "hence", "accordingly",
		"because", "since", "so that", "due to", "for this reason", "owing to",
		"as a consequence", "thereby", "that is why", "that's why", "in order to",
	},
	TransitionSequence: {
		"first", "second", "third", "firstly", "secondly", "thirdly", "finally", "next",
		"then", "afterward", "afterwards", "subsequently", "meanwhile", "previously",
		"eventually", "lastly", "to begin with", "in the meantime", "at the same time",
		"following this", "later", "initially", "first of all", "before that", "after that",
	},
	TransitionExample: {
		"for example", "for instance", "such as", "to illustrate", "namely", "specifically",
		"in particular", "including", "as an illustration", "to demonstrate",
		"as an example", "in this case",
	},
	TransitionEmphasis: {
		"indeed", "in fact", "certainly", "above all", "particularly", "especially",
		"clearly", "obviously", "undoubtedly", "of course", "importantly", "notably",
		"significantly", "surely", "to emphasize", "without a doubt", "most importantly",
	},
	TransitionSummary: {
		"in conclusion", "to summarize", "in summary", "overall", "in short", "to conclude",
		"in brief", "all in all", "ultimately", "in other words", "to sum up", "on the whole",
		"briefly", "in essence", "altogether", "as has been noted",
	},
	TransitionComparison: {
		"similarly", "likewise", "in the same way", "equally", "just as", "in comparison",
		"by comparison", "compared to", "in like manner", "correspondingly", "as with",
	},
	TransitionPlace: {
		"nearby", "beyond", "adjacent to", "in the background", "in the distance",
		"to the left", "to the right", "in front of", "opposite to", "here and there",
	},
	TransitionConcession: {
		"although", "even though", "admittedly", "granted", "despite", "though",
		"regardless", "even if", "while it is true", "in spite of", "albeit",
		"notwithstanding", "be that as it may",
	},
}

// TransitionDictionary returns every transition phrase in category order.
func TransitionDictionary() []string {
	all := make([]string, 0, 160)
	for _, c := range TransitionCategories {
		all = append(all, transitionWords[c]...)
	}
	return all
}

// TransitionScan is the outcome of scanning a text for transitions.
type TransitionScan struct {
	// Count is the total number of matches.
	Count int
	// Found lists each matched phrase once, in dictionary order.
	Found []string
}

// TransitionScanner counts transition phrases.
type TransitionScanner struct {
	matcher *PhraseMatcher
}

// NewTransitionScanner builds the transition automaton.
func NewTransitionScanner(normalizer ports.Normalizer) (*TransitionScanner, error) {
	m, err := NewPhraseMatcher(TransitionDictionary(), normalizer)
	if err != nil {
		return nil, err
	}
	return &TransitionScanner{matcher: m}, nil
}

// Scan counts every whole-word transition match in text.
func (s *TransitionScanner) Scan(text string) TransitionScan {
	scan := TransitionScan{Found: make([]string, 0)}
	for _, pc := range s.matcher.Count(text) {
		scan.Count += pc.Count
		scan.Found = append(scan.Found, pc.Phrase)
	}
	return scan
}

// HasTransition reports whether a sentence contains any transition phrase.
func (s *TransitionScanner) HasTransition(sentence string) bool {
	return s.matcher.Contains(sentence)
}
