// Package positional scores readability by position: per paragraph for the
// heatmap and over a sliding sentence window for the flow chart.
package positional

import (
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_readability/internal/core/audience"
	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/core/formula"
	"github.com/baditaflorin/go_readability/internal/core/lexical"
	"github.com/baditaflorin/go_readability/internal/ports"
)

const (
	// WindowSize is the number of sentences per flow point.
	WindowSize = 3
	// ComplexWordLimit is the per-window complex word count that adds an error.
	ComplexWordLimit = 5
	// WordsPerMinute is the assumed reading speed.
	WordsPerMinute = 200
	SnippetLength  = 100
)

// Analyzer is safe for concurrent use.
type Analyzer struct {
	segmenter ports.Segmenter
}

func NewAnalyzer(segmenter ports.Segmenter) *Analyzer {
	return &Analyzer{segmenter: segmenter}
}

// Heatmap scores each paragraph on its own.
func (a *Analyzer) Heatmap(paragraphs []string, aud domain.Audience) []domain.HeatmapEntry {
	entries := make([]domain.HeatmapEntry, 0, len(paragraphs))
	for i, p := range paragraphs {
		counts := formula.Measure(len(a.segmenter.Sentences(p)), a.segmenter.Words(p))
		score := formula.Flesch(counts)
		entries = append(entries, domain.HeatmapEntry{
			ID:      i,
			Score:   score,
			Status:  audience.GetStatus(float64(score), domain.MetricFlesch, aud),
			Snippet: domain.Snippet(p, SnippetLength),
			Length:  utf8.RuneCountInString(p),
		})
	}
	return entries
}

// Flow scores every window of WindowSize consecutive sentences. With fewer
// sentences than one window it returns a single point built from the whole
// text, scored with wholeFlesch.
func (a *Analyzer) Flow(sentences []string, wholeFlesch int) []domain.FlowPoint {
	n := len(sentences)
	if n < WindowSize {
		point := a.window(sentences)
		point.X = 0
		point.Y = wholeFlesch
		return []domain.FlowPoint{point}
	}

	last := n - WindowSize
	points := make([]domain.FlowPoint, 0, last+1)
	for i := 0; i <= last; i++ {
		point := a.window(sentences[i : i+WindowSize])
		if last > 0 {
			point.X = formula.Round1(float64(i) / float64(last) * 100)
		}
		points = append(points, point)
	}
	return points
}

func (a *Analyzer) window(sentences []string) domain.FlowPoint {
	text := strings.Join(sentences, " ")
	words := a.segmenter.Words(text)
	counts := formula.Measure(len(sentences), words)

	passive := 0
	for _, s := range sentences {
		if lexical.IsPassiveVoice(s) {
			passive++
		}
	}
	errors := passive
	if counts.Difficult > ComplexWordLimit {
		errors++
	}

	return domain.FlowPoint{
		Y:       formula.Flesch(counts),
		Snippet: domain.Snippet(text, SnippetLength),
		Errors:  errors,
		Time:    int(formula.Round(float64(len(words)) / WordsPerMinute * 60)),
		Complex: counts.Difficult,
	}
}
