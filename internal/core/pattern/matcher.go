// Package pattern scans text for dictionary phrases and classifies sentence
// and paragraph lengths.
package pattern

import (
	"slices"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/baditaflorin/go_readability/internal/pool"
	"github.com/baditaflorin/go_readability/internal/ports"
	"github.com/samber/lo"
)

// PhraseCount is the number of whole-word occurrences of one phrase.
type PhraseCount struct {
	Phrase string
	Count  int
}

// PhraseMatcher finds whole-word, case-insensitive occurrences of a fixed
// phrase set in one pass using an Aho-Corasick automaton. It is immutable after
// construction and safe for concurrent use.
type PhraseMatcher struct {
	phrases    []string
	index      map[string]int
	machine    *goahocorasick.Machine
	normalizer ports.Normalizer
	buffers    *pool.RunePool
}

// NewPhraseMatcher normalizes and de-duplicates phrases, keeping their order.
func NewPhraseMatcher(phrases []string, normalizer ports.Normalizer) (*PhraseMatcher, error) {
	normalized := lo.Uniq(lo.FilterMap(phrases, func(p string, _ int) (string, bool) {
		n := strings.TrimSpace(normalizer.Normalize(p))
		return n, n != ""
	}))

	m := &PhraseMatcher{
		phrases:    normalized,
		index:      make(map[string]int, len(normalized)),
		normalizer: normalizer,
		buffers:    pool.NewRunePool(4096),
	}
	for i, p := range normalized {
		m.index[p] = i
	}
	if len(normalized) == 0 {
		return m, nil
	}

	// The trie is built from lexicographically ordered keys.
	patterns := lo.Map(normalized, func(p string, _ int) []rune { return []rune(p) })
	slices.SortFunc(patterns, func(a, b []rune) int { return slices.Compare(a, b) })
	m.machine = new(goahocorasick.Machine)
	if err := m.machine.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

// Count returns the phrases found in text with their occurrence counts, in
// dictionary order.
func (m *PhraseMatcher) Count(text string) []PhraseCount {
	counts := make([]int, len(m.phrases))
	m.scan(text, func(i int) bool {
		counts[i]++
		return true
	})

	result := make([]PhraseCount, 0)
	for i, c := range counts {
		if c > 0 {
			result = append(result, PhraseCount{Phrase: m.phrases[i], Count: c})
		}
	}
	return result
}

// Contains reports whether any phrase occurs in text as a whole word.
func (m *PhraseMatcher) Contains(text string) bool {
	found := false
	m.scan(text, func(int) bool {
		found = true
		return false
	})
	return found
}

// scan calls visit with the phrase index of every whole-word match until visit
// returns false.
func (m *PhraseMatcher) scan(text string, visit func(int) bool) {
	if m.machine == nil || text == "" {
		return
	}

	buf := m.buffers.Get(m.normalizer.Normalize(text))
	defer m.buffers.Put(buf)
	content := *buf
	if len(content) == 0 {
		return
	}

	for _, term := range m.machine.MultiPatternSearch(content, false) {
		start := term.Pos
		end := start + len(term.Word)
		if start < 0 || end > len(content) {
			continue
		}
		if start > 0 && isWordRune(content[start-1]) {
			continue
		}
		if end < len(content) && isWordRune(content[end]) {
			continue
		}
		i, ok := m.index[string(term.Word)]
		if !ok {
			continue
		}
		if !visit(i) {
			return
		}
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
