// Package sentiment scores text polarity against a fixed word lexicon.
package sentiment

import (
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/core/formula"
	"github.com/baditaflorin/go_readability/internal/core/pattern"
	"github.com/baditaflorin/go_readability/internal/ports"
)

const (
	// MinTextLength is the rune count below which text is reported neutral.
	MinTextLength = 50
	// MaxNegativeWords caps the negative word sample.
	MaxNegativeWords = 5
)

// Labels, from most positive to most negative.
const (
	LabelVeryPositive = "Very Positive"
	LabelPositive     = "Positive"
	LabelNeutral      = "Neutral"
	LabelNegative     = "Negative"
	LabelVeryNegative = "Very Negative"
)

// Scorer is safe for concurrent use.
type Scorer struct {
	segmenter ports.Segmenter
	toxic     *pattern.PhraseMatcher
}

// NewScorer builds the toxic-trigger automaton.
func NewScorer(segmenter ports.Segmenter, normalizer ports.Normalizer) (*Scorer, error) {
	toxic, err := pattern.NewPhraseMatcher(toxicTriggers, normalizer)
	if err != nil {
		return nil, err
	}
	return &Scorer{segmenter: segmenter, toxic: toxic}, nil
}

// Neutral is the zero result returned for short text.
func Neutral() domain.SentimentResult {
	return domain.SentimentResult{Label: LabelNeutral, NegativeWords: []string{}}
}

// Analyze sums lexicon weights over the text's words.
func (s *Scorer) Analyze(text string) domain.SentimentResult {
	if utf8.RuneCountInString(text) < MinTextLength {
		return Neutral()
	}

	result := Neutral()
	seen := make(map[string]struct{})
	for _, token := range s.segmenter.Words(strings.ToLower(text)) {
		if _, skip := stopwords[token]; skip {
			continue
		}
		weight, ok := lexicon[token]
		if !ok {
			continue
		}
		result.Score += weight
		result.WordCount++
		if weight < 0 {
			if _, dup := seen[token]; !dup && len(result.NegativeWords) < MaxNegativeWords {
				seen[token] = struct{}{}
				result.NegativeWords = append(result.NegativeWords, token)
			}
		}
	}

	if result.WordCount > 0 {
		result.Average = formula.Round1(float64(result.Score) / float64(result.WordCount))
	}
	result.Label = Label(result.Score)
	result.Toxicity = s.toxic.Contains(text)
	return result
}

// Label maps a raw score to a polarity label. Boundaries are exclusive, so 2
// and -2 are neutral.
func Label(score int) string {
	switch {
	case score > 10:
		return LabelVeryPositive
	case score > 2:
		return LabelPositive
	case score < -10:
		return LabelVeryNegative
	case score < -2:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
