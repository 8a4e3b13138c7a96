package segmenter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_readability/internal/ports"
	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// paragraphBreak matches blank lines and adjacent closing/opening paragraph tags.
var paragraphBreak = regexp.MustCompile(`(?i)\n[ \t\r\f\v]*\n\s*|</p>\s*<p(?:\s[^>]*)?>`)

// UAX29Segmenter segments text following the Unicode text segmentation rules
// (UAX #29) for sentence and word boundaries.
type UAX29Segmenter struct{}

// NewUAX29Segmenter creates a new Unicode-rules segmenter.
func NewUAX29Segmenter() ports.Segmenter {
	return &UAX29Segmenter{}
}

// Sentences returns trimmed sentences with more than one character.
func (s *UAX29Segmenter) Sentences(text string) []string {
	result := make([]string, 0)
	if strings.TrimSpace(text) == "" {
		return result
	}

	tokens := sentences.FromString(text)
	for tokens.Next() {
		sentence := strings.TrimSpace(tokens.Value())
		if utf8.RuneCountInString(sentence) > 1 {
			result = append(result, sentence)
		}
	}
	return result
}

// Words returns the word-like tokens of text in order.
func (s *UAX29Segmenter) Words(text string) []string {
	result := make([]string, 0)
	if text == "" {
		return result
	}

	tokens := words.FromString(text)
	for tokens.Next() {
		token := tokens.Value()
		if IsWordLike(token) {
			result = append(result, token)
		}
	}
	return result
}

// Paragraphs splits text on blank lines or </p><p> boundaries and drops empty parts.
func (s *UAX29Segmenter) Paragraphs(text string) []string {
	result := make([]string, 0)
	for _, part := range paragraphBreak.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// IsWordLike reports whether a segment contains a letter or a digit.
func IsWordLike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
