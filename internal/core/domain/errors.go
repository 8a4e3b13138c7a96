package domain

import "errors"

var (
	ErrInsufficientContent = errors.New("insufficient content for analysis")
	ErrCancelled           = errors.New("analysis cancelled")
	ErrInvalidConfig       = errors.New("invalid analyzer configuration")
)

// Level labels used outside the Flesch breakpoints.
const (
	LevelNotAvailable = "N/A"
	LevelError        = "Error"
)

// FailedReport returns the report shape used whenever a full analysis cannot be
// produced: zero scores, empty sub-reports and the error message attached.
func FailedReport(level string, err error, audience Audience, thresholds Thresholds) Report {
	return Report{
		Score:                     0,
		Level:                     level,
		Error:                     err.Error(),
		Audience:                  audience,
		Thresholds:                thresholds,
		SimplificationSuggestions: []Simplification{},
		Heatmap:                   []HeatmapEntry{},
		Flow:                      []FlowPoint{},
		Sentiment:                 SentimentResult{Label: "Neutral", NegativeWords: []string{}},
		Inclusivity:               InclusivityResult{Score: 100, Issues: []InclusivityIssue{}},
		KeywordDensity:            KeywordDensityResult{Heatmap: []KeywordDensityEntry{}, Keywords: []string{}},
		PassiveVoice:              PassiveVoiceReport{Sentences: []string{}},
		TransitionalWords:         TransitionalReport{Found: []string{}, SentencesWithoutTransitions: []string{}},
		Sentences:                 SentenceReport{VeryLongSentences: []string{}, LongSentences: []string{}},
		Paragraphs:                ParagraphReport{LongParagraphs: []string{}},
		Recommendations:           []Recommendation{},
	}
}
