// Package keyword maps keyword density across paragraphs.
package keyword

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/core/formula"
	"github.com/baditaflorin/go_readability/internal/ports"
	"github.com/samber/lo"
)

const (
	// MinParagraphLength drops paragraphs of this many runes or fewer.
	MinParagraphLength = 50
	// AutoKeywords is how many keywords are extracted when none are given.
	AutoKeywords = 3
	// SnippetLength is the rune length of each paragraph snippet.
	SnippetLength = 100
)

var stopwords = lo.SliceToMap([]string{
	"about", "above", "after", "again", "against", "also", "been", "before", "being",
	"below", "between", "both", "could", "does", "doing", "down", "during", "each",
	"even", "every", "from", "further", "have", "having", "here", "into", "just",
	"many", "more", "most", "much", "must", "only", "other", "over", "same", "should",
	"some", "such", "than", "that", "their", "theirs", "them", "then", "there", "these",
	"they", "this", "those", "through", "under", "until", "very", "were", "what",
	"when", "where", "which", "while", "will", "with", "would", "your", "yours",
	"because", "can't", "don't", "it's", "still", "well", "like", "make", "made",
}, func(w string) (string, struct{}) { return w, struct{}{} })

// Mapper is safe for concurrent use.
type Mapper struct {
	segmenter ports.Segmenter
}

// NewMapper returns a Mapper that tokenizes with segmenter.
func NewMapper(segmenter ports.Segmenter) *Mapper {
	return &Mapper{segmenter: segmenter}
}

// Map computes per-paragraph density of the target keywords, extracting the
// most frequent words when no targets are given.
func (m *Mapper) Map(text string, targets []string) domain.KeywordDensityResult {
	result := domain.KeywordDensityResult{
		Heatmap:  []domain.KeywordDensityEntry{},
		Keywords: m.normalizeKeywords(targets),
	}
	if len(result.Keywords) == 0 {
		result.Keywords = m.Extract(text, AutoKeywords)
	}

	phrases := m.phraseTokens(result.Keywords)
	paragraphs := lo.Filter(m.segmenter.Paragraphs(text), func(p string, _ int) bool {
		return utf8.RuneCountInString(p) > MinParagraphLength
	})

	for i, p := range paragraphs {
		words := lo.Map(m.segmenter.Words(p), func(w string, _ int) string { return strings.ToLower(w) })
		matches := countMatches(words, phrases)
		entry := domain.KeywordDensityEntry{
			ID:        i,
			Snippet:   domain.Snippet(p, SnippetLength),
			WordCount: len(words),
			Matches:   matches,
		}
		if len(words) > 0 {
			entry.Density = formula.Round1(float64(matches) / float64(len(words)) * 100)
		}
		result.Heatmap = append(result.Heatmap, entry)
	}
	return result
}

// Extract returns the n most frequent content words of text. Ties keep the
// order of first appearance.
func (m *Mapper) Extract(text string, n int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, w := range m.segmenter.Words(text) {
		w = strings.ToLower(w)
		if utf8.RuneCountInString(w) <= 3 || isNumeric(w) {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > n {
		order = order[:n]
	}
	return order
}

func (m *Mapper) normalizeKeywords(targets []string) []string {
	return lo.Uniq(lo.FilterMap(targets, func(k string, _ int) (string, bool) {
		k = strings.Join(strings.Fields(strings.ToLower(k)), " ")
		return k, len(m.segmenter.Words(k)) > 0
	}))
}

// phraseTokens tokenizes keywords and orders them longest first.
func (m *Mapper) phraseTokens(keywords []string) [][]string {
	phrases := lo.Map(keywords, func(k string, _ int) []string { return m.segmenter.Words(k) })
	sort.SliceStable(phrases, func(i, j int) bool { return len(phrases[i]) > len(phrases[j]) })
	return phrases
}

// countMatches counts non-overlapping keyword occurrences, preferring the
// longest keyword at each position.
func countMatches(words []string, phrases [][]string) int {
	matches := 0
	for i := 0; i < len(words); {
		width := 0
		for _, p := range phrases {
			if hasPrefix(words[i:], p) {
				width = len(p)
				break
			}
		}
		if width == 0 {
			i++
			continue
		}
		matches++
		i += width
	}
	return matches
}

func hasPrefix(words, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(words) {
		return false
	}
	for i, w := range phrase {
		if words[i] != w {
			return false
		}
	}
	return true
}

func isNumeric(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return true
}
