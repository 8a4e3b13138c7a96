package domain

// Audience names a threshold profile.
type Audience string

const (
	AudienceGeneral      Audience = "general"
	AudienceProfessional Audience = "professional"
	AudienceAcademic     Audience = "academic"
)

// Audiences lists the known profiles in display order.
var Audiences = []Audience{AudienceGeneral, AudienceProfessional, AudienceAcademic}

// Thresholds calibrates what counts as acceptable complexity for an audience.
type Thresholds struct {
	FleschMin          int    `json:"fleschMin" yaml:"fleschMin"`
	SentenceLengthMax  int    `json:"sentenceLengthMax" yaml:"sentenceLengthMax"`
	ParagraphLengthMax int    `json:"paragraphLengthMax" yaml:"paragraphLengthMax"`
	PassiveMax         int    `json:"passiveMax" yaml:"passiveMax"`
	Description        string `json:"description" yaml:"description"`
}

// Status is the qualitative judgement of a metric.
type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusPoor    Status = "poor"
)

// Metric names a value that can be judged against audience thresholds.
type Metric string

const (
	MetricFlesch          Metric = "flesch"
	MetricSentenceLength  Metric = "sentenceLength"
	MetricParagraphLength Metric = "paragraphLength"
	MetricPassive         Metric = "passive"
)
