package ports

// Segmenter splits raw text into the units every analysis stage consumes.
// Implementations must be deterministic and free of side effects.
type Segmenter interface {
	// Sentences returns trimmed sentences longer than one character.
	Sentences(text string) []string
	// Words returns word-like tokens only; punctuation and whitespace are dropped.
	Words(text string) []string
	// Paragraphs splits on blank lines and adjacent </p><p> boundaries.
	Paragraphs(text string) []string
}
