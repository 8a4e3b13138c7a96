package lexical

import (
	"regexp"
	"strings"
)

// irregularParticiples are past participles that end neither in -ed nor -en.
const irregularParticiples = `thrown|known|shown|grown|drawn|blown|flown|sewn|sown|` +
	`done|made|built|caught|taught|bought|brought|sought|thought|sent|spent|` +
	`left|kept|held|told|sold|found|paid|said|led|lost|meant|won|heard|sung|begun|` +
	`hung|struck|stuck|spun|split|shut|set|put|hit|hurt|cut|cast|read|run|swept|fed|bound`

var (
	passiveEdPattern        = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+\w+ed\b`)
	passiveEnPattern        = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+\w+en\b`)
	passiveIrregularPattern = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+(` + irregularParticiples + `)\b`)
	passiveGetPattern       = regexp.MustCompile(`(?i)\b(get|gets|got|gotten)\s+\w+(ed|en)\b`)
	byAgentPattern          = regexp.MustCompile(`(?i)\bby\s+\w+`)
	passiveByPattern        = regexp.MustCompile(`(?i)\b(was|were|is|are|been)\s+\w+ed\s+by\b`)
)

// byIdioms suppress the "by" agent rule.
var byIdioms = []string{"by the way", "by now", "by far", "by and large", "by all means"}

// IsPassiveVoice reports whether a sentence looks like passive voice. It is a
// lexical heuristic: known false positives such as "was red" are kept.
func IsPassiveVoice(sentence string) bool {
	if passiveEdPattern.MatchString(sentence) ||
		passiveEnPattern.MatchString(sentence) ||
		passiveIrregularPattern.MatchString(sentence) {
		return true
	}
	if passiveGetPattern.MatchString(sentence) {
		return true
	}
	if byAgentPattern.MatchString(sentence) && passiveByPattern.MatchString(sentence) {
		lower := strings.ToLower(sentence)
		for _, idiom := range byIdioms {
			if strings.Contains(lower, idiom) {
				return false
			}
		}
		return true
	}
	return false
}
