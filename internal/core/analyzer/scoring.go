package analyzer

import (
	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/core/formula"
)

// Metrics are the whole-text figures the overall score and the
// recommendations are derived from.
type Metrics struct {
	Flesch        int
	FleschKincaid float64
	ColemanLiau   float64
	Lix           int

	AverageSentenceLength  float64
	PassivePercentage      float64
	LongSentencePercentage float64
	DifficultPercentage    float64
	TransitionalPercentage float64
	ConsecutiveSameStart   int
	Simplifications        int
}

// Score starts from the Flesch score and applies the style adjustments in a
// fixed order before clamping to [0, 100].
func Score(m Metrics) int {
	score := m.Flesch

	switch {
	case m.PassivePercentage > 25:
		score -= 10
	case m.PassivePercentage > 15:
		score -= 5
	}

	switch {
	case m.LongSentencePercentage > 25:
		score -= 10
	case m.LongSentencePercentage > 15:
		score -= 5
	}

	if m.DifficultPercentage > 15 {
		score -= 5
	}

	switch {
	case m.TransitionalPercentage >= 30:
		score += 5
	case m.TransitionalPercentage >= 20:
		score += 3
	}

	if m.ConsecutiveSameStart > 3 {
		score -= 5
	}

	return formula.Clamp(score, 0, 100)
}

// TransitionalStatus judges the share of sentences that carry a transition.
func TransitionalStatus(percentage float64) domain.Status {
	switch {
	case percentage >= 20:
		return domain.StatusGood
	case percentage >= 10:
		return domain.StatusWarning
	default:
		return domain.StatusPoor
	}
}
