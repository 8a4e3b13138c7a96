// Package audience maps audience profiles to thresholds and judges metrics
// against them.
package audience

import "github.com/baditaflorin/go_readability/internal/core/domain"

// Slack bands: a value inside threshold+slack is a warning instead of poor.
const (
	FleschSlack          = 10
	SentenceLengthSlack  = 5
	ParagraphLengthSlack = 50
	PassiveSlack         = 10
)

var profiles = map[domain.Audience]domain.Thresholds{
	domain.AudienceGeneral: {
		FleschMin:          60,
		SentenceLengthMax:  20,
		ParagraphLengthMax: 150,
		PassiveMax:         10,
		Description:        "General public, 8th-9th grade reading level",
	},
	domain.AudienceProfessional: {
		FleschMin:          50,
		SentenceLengthMax:  25,
		ParagraphLengthMax: 200,
		PassiveMax:         15,
		Description:        "Professionals and informed readers, 10th-12th grade reading level",
	},
	domain.AudienceAcademic: {
		FleschMin:          30,
		SentenceLengthMax:  30,
		ParagraphLengthMax: 250,
		PassiveMax:         20,
		Description:        "Academic and technical readers, college reading level",
	},
}

// Resolve returns the audience itself when known, otherwise general.
func Resolve(a domain.Audience) domain.Audience {
	if _, ok := profiles[a]; ok {
		return a
	}
	return domain.AudienceGeneral
}

// GetThresholds looks up a profile by name, falling back to general.
func GetThresholds(a domain.Audience) domain.Thresholds {
	return profiles[Resolve(a)]
}

// GetStatus judges value for metric under the audience's thresholds. Flesch is
// higher-is-better; every other metric is a maximum. Unknown metrics are good.
func GetStatus(value float64, metric domain.Metric, a domain.Audience) domain.Status {
	t := GetThresholds(a)

	switch metric {
	case domain.MetricFlesch:
		switch {
		case value >= float64(t.FleschMin):
			return domain.StatusGood
		case value >= float64(t.FleschMin-FleschSlack):
			return domain.StatusWarning
		default:
			return domain.StatusPoor
		}
	case domain.MetricSentenceLength:
		return atMost(value, t.SentenceLengthMax, SentenceLengthSlack)
	case domain.MetricParagraphLength:
		return atMost(value, t.ParagraphLengthMax, ParagraphLengthSlack)
	case domain.MetricPassive:
		return atMost(value, t.PassiveMax, PassiveSlack)
	}
	return domain.StatusGood
}

func atMost(value float64, max, slack int) domain.Status {
	switch {
	case value <= float64(max):
		return domain.StatusGood
	case value <= float64(max+slack):
		return domain.StatusWarning
	default:
		return domain.StatusPoor
	}
}
