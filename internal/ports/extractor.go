package ports

import "io"

// TextExtractor reduces a markup document to analysable plain text.
// Paragraphs in the result are separated by blank lines.
type TextExtractor interface {
	Extract(r io.Reader) (string, error)
}
