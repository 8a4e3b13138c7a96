package pattern

import (
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_readability/internal/core/audience"
	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/core/formula"
	"github.com/baditaflorin/go_readability/internal/ports"
	"github.com/samber/lo"
)

// Length bucket limits, in words.
const (
	VeryLongSentenceWords = 25
	LongSentenceWords     = 20
	ShortSentenceWords    = 10
	LongParagraphWords    = 150
	ShortParagraphWords   = 50
	// SnippetLength is the rune length of display snippets.
	SnippetLength = 100
)

// ClassifySentences buckets sentences by their word-like token count and
// measures runs of sentences opening with the same word. Lists are capped at
// maxItems entries.
func ClassifySentences(sentences []string, seg ports.Segmenter, a domain.Audience, maxItems int) domain.SentenceReport {
	report := domain.SentenceReport{
		Total:             len(sentences),
		VeryLongSentences: make([]string, 0),
		LongSentences:     make([]string, 0),
	}

	totalWords := 0
	firstWords := make([]string, len(sentences))
	for i, sentence := range sentences {
		words := seg.Words(sentence)
		n := len(words)
		totalWords += n

		switch {
		case n > VeryLongSentenceWords:
			report.VeryLong++
			report.VeryLongSentences = appendCapped(report.VeryLongSentences, sentence, maxItems)
		case n > LongSentenceWords:
			report.Long++
			report.LongSentences = appendCapped(report.LongSentences, sentence, maxItems)
		case n < ShortSentenceWords:
			report.Short++
		}

		if n > 0 {
			first := strings.ToLower(words[0])
			if utf8.RuneCountInString(first) > 2 {
				firstWords[i] = first
			}
		}
	}

	if report.Total > 0 {
		report.AverageLength = formula.Round1(float64(totalWords) / float64(report.Total))
	}
	report.LongPercentage = formula.Percent(report.VeryLong+report.Long, report.Total)
	report.ConsecutiveSameStart = ConsecutiveSameStart(firstWords)
	report.Status = audience.GetStatus(report.AverageLength, domain.MetricSentenceLength, a)
	return report
}

// ConsecutiveSameStart sums the lengths of every run of two or more adjacent
// sentences that open with the same word. Empty entries break runs.
func ConsecutiveSameStart(firstWords []string) int {
	total := 0
	run := 0
	prev := ""
	flush := func() {
		if run >= 2 {
			total += run
		}
	}

	for _, w := range firstWords {
		if w != "" && w == prev {
			run++
			continue
		}
		flush()
		prev = w
		run = lo.Ternary(w == "", 0, 1)
	}
	flush()
	return total
}

// ClassifyParagraphs buckets paragraphs by word count.
func ClassifyParagraphs(paragraphs []string, seg ports.Segmenter, a domain.Audience, maxItems int) domain.ParagraphReport {
	report := domain.ParagraphReport{
		Total:          len(paragraphs),
		LongParagraphs: make([]string, 0),
	}

	totalWords := 0
	for _, p := range paragraphs {
		n := len(seg.Words(p))
		totalWords += n
		switch {
		case n > LongParagraphWords:
			report.Long++
			report.LongParagraphs = appendCapped(report.LongParagraphs, domain.Snippet(p, SnippetLength), maxItems)
		case n < ShortParagraphWords:
			report.Short++
		}
	}

	if report.Total > 0 {
		report.AverageLength = formula.Round1(float64(totalWords) / float64(report.Total))
	}
	report.Status = audience.GetStatus(report.AverageLength, domain.MetricParagraphLength, a)
	return report
}

func appendCapped(list []string, s string, maxItems int) []string {
	if len(list) >= maxItems {
		return list
	}
	return append(list, s)
}
