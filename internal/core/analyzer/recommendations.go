package analyzer

import (
	"fmt"

	"github.com/baditaflorin/go_readability/internal/core/domain"
)

// Recommendations lists the checks that failed, in a fixed order. A check
// that passes produces no entry.
func Recommendations(m Metrics, t domain.Thresholds) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0)
	add := func(kind domain.RecommendationType, format string, args ...interface{}) {
		recs = append(recs, domain.Recommendation{Type: kind, Message: fmt.Sprintf(format, args...)})
	}

	if m.Flesch < t.FleschMin {
		add(domain.RecommendationError,
			"Flesch Reading Ease is %d, below the target of %d. Use shorter sentences and simpler words.",
			m.Flesch, t.FleschMin)
	}
	if m.FleschKincaid > 12 {
		add(domain.RecommendationWarning,
			"Flesch-Kincaid grade %.1f requires college-level reading. Aim for grade 12 or lower.",
			m.FleschKincaid)
	}
	if m.ColemanLiau > 14 {
		add(domain.RecommendationWarning,
			"Coleman-Liau index %.1f is high. Prefer shorter words.", m.ColemanLiau)
	}
	if m.Lix > 50 {
		add(domain.RecommendationWarning,
			"LIX score %d indicates difficult text. Reduce long words and sentence length.", m.Lix)
	}
	if m.Simplifications > 0 {
		add(domain.RecommendationWarning,
			"%d complex words have simpler alternatives.", m.Simplifications)
	}
	if m.PassivePercentage > float64(t.PassiveMax) {
		add(domain.RecommendationError,
			"%.1f%% of sentences use passive voice, above the limit of %d%%. Rewrite them in active voice.",
			m.PassivePercentage, t.PassiveMax)
	}
	if m.AverageSentenceLength > float64(t.SentenceLengthMax) {
		add(domain.RecommendationError,
			"Average sentence length is %.1f words, above the limit of %d. Split long sentences.",
			m.AverageSentenceLength, t.SentenceLengthMax)
	}
	if m.ConsecutiveSameStart > 3 {
		add(domain.RecommendationWarning,
			"%d consecutive sentences start with the same word. Vary sentence openings.",
			m.ConsecutiveSameStart)
	}
	if m.TransitionalPercentage < 20 {
		add(domain.RecommendationWarning,
			"Only %.1f%% of sentences contain transition words. Aim for at least 20%%.",
			m.TransitionalPercentage)
	}
	return recs
}
