package normalizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_readability/internal/pool"
	"github.com/baditaflorin/go_readability/internal/ports"
)

// PhraseNormalizer prepares text for phrase matching: runes are lower-cased
// one for one and every run of whitespace collapses to a single space, so
// multi-word phrases match across line breaks. Typographic apostrophes become
// ASCII ones.
type PhraseNormalizer struct {
	buffers *pool.BytePool
}

// NewPhraseNormalizer creates a new phrase normalizer.
func NewPhraseNormalizer() ports.Normalizer {
	return &PhraseNormalizer{buffers: pool.NewBytePool(1024)}
}

// Normalize lower-cases text and collapses whitespace.
func (n *PhraseNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buf := n.buffers.Get()
	defer n.buffers.Put(buf)

	lastWasSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				*buf = append(*buf, ' ')
				lastWasSpace = true
			}
			continue
		}
		if r == '\u2019' {
			r = '\''
		}
		*buf = utf8.AppendRune(*buf, unicode.ToLower(r))
		lastWasSpace = false
	}
	return string(*buf)
}
