package domain

// Request is the input of a single analysis.
type Request struct {
	Text     string
	Audience Audience
	Keywords []string
}

// Report holds the outcome of a readability analysis. It is built fresh for every
// call and never mutated afterwards.
type Report struct {
	Score int    `json:"score" yaml:"score"`
	Level string `json:"level" yaml:"level"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	Audience   Audience   `json:"audience" yaml:"audience"`
	Thresholds Thresholds `json:"thresholds" yaml:"thresholds"`
	Language   string     `json:"language,omitempty" yaml:"language,omitempty"`

	FleschScore        int     `json:"fleschScore" yaml:"fleschScore"`
	FleschKincaidGrade float64 `json:"fleschKincaidGrade" yaml:"fleschKincaidGrade"`
	ColemanLiauIndex   float64 `json:"colemanLiauIndex" yaml:"colemanLiauIndex"`
	LixScore           int     `json:"lixScore" yaml:"lixScore"`

	WordCount                    int     `json:"wordCount" yaml:"wordCount"`
	SentenceCount                int     `json:"sentenceCount" yaml:"sentenceCount"`
	ParagraphCount               int     `json:"paragraphCount" yaml:"paragraphCount"`
	AverageWordsPerSentence      float64 `json:"averageWordsPerSentence" yaml:"averageWordsPerSentence"`
	AverageSentencesPerParagraph float64 `json:"averageSentencesPerParagraph" yaml:"averageSentencesPerParagraph"`
	ReadingTime                  int     `json:"readingTime" yaml:"readingTime"`

	DifficultWords            DifficultWords   `json:"difficultWords" yaml:"difficultWords"`
	SimplificationSuggestions []Simplification `json:"simplificationSuggestions" yaml:"simplificationSuggestions"`

	Heatmap        []HeatmapEntry       `json:"heatmap" yaml:"heatmap"`
	Flow           []FlowPoint          `json:"flow" yaml:"flow"`
	Sentiment      SentimentResult      `json:"sentiment" yaml:"sentiment"`
	Inclusivity    InclusivityResult    `json:"inclusivity" yaml:"inclusivity"`
	KeywordDensity KeywordDensityResult `json:"keywordDensity" yaml:"keywordDensity"`

	PassiveVoice      PassiveVoiceReport `json:"passiveVoice" yaml:"passiveVoice"`
	TransitionalWords TransitionalReport `json:"transitionalWords" yaml:"transitionalWords"`
	Sentences         SentenceReport     `json:"sentences" yaml:"sentences"`
	Paragraphs        ParagraphReport    `json:"paragraphs" yaml:"paragraphs"`

	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// DifficultWords counts words with three or more syllables.
type DifficultWords struct {
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Simplification pairs a complex word with a plain-English alternative.
type Simplification struct {
	Word       string `json:"word" yaml:"word"`
	Suggestion string `json:"suggestion" yaml:"suggestion"`
}

// HeatmapEntry is the readability of one paragraph.
type HeatmapEntry struct {
	ID      int    `json:"id" yaml:"id"`
	Score   int    `json:"score" yaml:"score"`
	Status  Status `json:"status" yaml:"status"`
	Snippet string `json:"snippet" yaml:"snippet"`
	Length  int    `json:"length" yaml:"length"`
}

// FlowPoint is the readability of a sliding window of sentences.
type FlowPoint struct {
	X       float64 `json:"x" yaml:"x"`
	Y       int     `json:"y" yaml:"y"`
	Snippet string  `json:"snippet" yaml:"snippet"`
	Errors  int     `json:"errors" yaml:"errors"`
	Time    int     `json:"time" yaml:"time"`
	Complex int     `json:"complex" yaml:"complex"`
}

// SentimentResult is the lexicon-based polarity of a text.
type SentimentResult struct {
	Score         int      `json:"score" yaml:"score"`
	Average       float64  `json:"average" yaml:"average"`
	Label         string   `json:"label" yaml:"label"`
	Toxicity      bool     `json:"toxicity" yaml:"toxicity"`
	WordCount     int      `json:"wordCount" yaml:"wordCount"`
	NegativeWords []string `json:"negativeWords" yaml:"negativeWords"`
}

// InclusivityIssue is one biased or outdated term found in the text.
type InclusivityIssue struct {
	Term       string `json:"term" yaml:"term"`
	Suggestion string `json:"suggestion" yaml:"suggestion"`
	Category   string `json:"category" yaml:"category"`
	Count      int    `json:"count" yaml:"count"`
}

// InclusivityResult scores a text by the number of distinct issues.
type InclusivityResult struct {
	Score  int                `json:"score" yaml:"score"`
	Issues []InclusivityIssue `json:"issues" yaml:"issues"`
}

// KeywordDensityEntry is the keyword density of one paragraph.
type KeywordDensityEntry struct {
	ID        int     `json:"id" yaml:"id"`
	Snippet   string  `json:"snippet" yaml:"snippet"`
	WordCount int     `json:"wordCount" yaml:"wordCount"`
	Matches   int     `json:"matches" yaml:"matches"`
	Density   float64 `json:"density" yaml:"density"`
}

// KeywordDensityResult holds per-paragraph densities and the keyword set used.
type KeywordDensityResult struct {
	Heatmap  []KeywordDensityEntry `json:"heatmap" yaml:"heatmap"`
	Keywords []string              `json:"keywords" yaml:"keywords"`
}

// PassiveVoiceReport summarises passive sentences.
type PassiveVoiceReport struct {
	Count      int      `json:"count" yaml:"count"`
	Percentage float64  `json:"percentage" yaml:"percentage"`
	Status     Status   `json:"status" yaml:"status"`
	Sentences  []string `json:"sentences" yaml:"sentences"`
}

// TransitionalReport summarises transition word coverage.
type TransitionalReport struct {
	Count                       int      `json:"count" yaml:"count"`
	Found                       []string `json:"found" yaml:"found"`
	SentencesWithTransitions    int      `json:"sentencesWithTransitions" yaml:"sentencesWithTransitions"`
	Percentage                  float64  `json:"percentage" yaml:"percentage"`
	Status                      Status   `json:"status" yaml:"status"`
	SentencesWithoutTransitions []string `json:"sentencesWithoutTransitions" yaml:"sentencesWithoutTransitions"`
}

// SentenceReport classifies sentences by length.
type SentenceReport struct {
	Total                int      `json:"total" yaml:"total"`
	AverageLength        float64  `json:"averageLength" yaml:"averageLength"`
	VeryLong             int      `json:"veryLong" yaml:"veryLong"`
	Long                 int      `json:"long" yaml:"long"`
	Short                int      `json:"short" yaml:"short"`
	LongPercentage       float64  `json:"longPercentage" yaml:"longPercentage"`
	ConsecutiveSameStart int      `json:"consecutiveSameStart" yaml:"consecutiveSameStart"`
	Status               Status   `json:"status" yaml:"status"`
	VeryLongSentences    []string `json:"veryLongSentences" yaml:"veryLongSentences"`
	LongSentences        []string `json:"longSentences" yaml:"longSentences"`
}

// ParagraphReport classifies paragraphs by length.
type ParagraphReport struct {
	Total          int      `json:"total" yaml:"total"`
	AverageLength  float64  `json:"averageLength" yaml:"averageLength"`
	Long           int      `json:"long" yaml:"long"`
	Short          int      `json:"short" yaml:"short"`
	Status         Status   `json:"status" yaml:"status"`
	LongParagraphs []string `json:"longParagraphs" yaml:"longParagraphs"`
}

// RecommendationType is the severity of a recommendation.
type RecommendationType string

const (
	RecommendationError   RecommendationType = "error"
	RecommendationWarning RecommendationType = "warning"
)

// Recommendation is one actionable finding.
type Recommendation struct {
	Type    RecommendationType `json:"type" yaml:"type"`
	Message string             `json:"message" yaml:"message"`
}

// Snippet returns at most n leading runes of s. The result is always a literal
// prefix of s so callers can search for it.
func Snippet(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
