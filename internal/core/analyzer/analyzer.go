// Package analyzer composes the segmenter, formulas, scanners and scorers into
// a single readability report.
package analyzer

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	"github.com/baditaflorin/go_readability/internal/core/audience"
	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/core/formula"
	"github.com/baditaflorin/go_readability/internal/core/inclusivity"
	"github.com/baditaflorin/go_readability/internal/core/keyword"
	"github.com/baditaflorin/go_readability/internal/core/lexical"
	"github.com/baditaflorin/go_readability/internal/core/pattern"
	"github.com/baditaflorin/go_readability/internal/core/positional"
	"github.com/baditaflorin/go_readability/internal/core/sentiment"
	"github.com/baditaflorin/go_readability/internal/ports"
)

// WordsPerMinute is the reading speed behind the reading time estimate.
const WordsPerMinute = 200

// Analyzer runs the full pipeline. It holds only immutable state and is safe
// for concurrent use.
type Analyzer struct {
	config      Config
	logger      ports.Logger
	segmenter   ports.Segmenter
	transitions *pattern.TransitionScanner
	sentiment   *sentiment.Scorer
	inclusivity *inclusivity.Checker
	keywords    *keyword.Mapper
	positional  *positional.Analyzer
}

// NewAnalyzer validates config and builds the phrase automata once.
func NewAnalyzer(config Config, logger ports.Logger, segmenter ports.Segmenter, normalizer ports.Normalizer) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	transitions, err := pattern.NewTransitionScanner(normalizer)
	if err != nil {
		return nil, fmt.Errorf("build transition scanner: %w", err)
	}
	scorer, err := sentiment.NewScorer(segmenter, normalizer)
	if err != nil {
		return nil, fmt.Errorf("build sentiment scorer: %w", err)
	}
	checker, err := inclusivity.NewChecker(normalizer)
	if err != nil {
		return nil, fmt.Errorf("build inclusivity checker: %w", err)
	}

	return &Analyzer{
		config:      config,
		logger:      logger,
		segmenter:   segmenter,
		transitions: transitions,
		sentiment:   scorer,
		inclusivity: checker,
		keywords:    keyword.NewMapper(segmenter),
		positional:  positional.NewAnalyzer(segmenter),
	}, nil
}

// Analyze produces a full report, or an error-shaped report when the text is
// too short, the context is done, or a stage fails. It never panics.
func (a *Analyzer) Analyze(ctx context.Context, req domain.Request) (report domain.Report) {
	aud := audience.Resolve(req.Audience)
	thresholds := audience.GetThresholds(aud)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Readability analysis failed", "panic", r)
			report = domain.FailedReport(domain.LevelError, fmt.Errorf("analysis failed: %v", r), aud, thresholds)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Error("Analysis cancelled", "error", ctx.Err())
		return domain.FailedReport(domain.LevelNotAvailable, domain.ErrCancelled, aud, thresholds)
	default:
	}

	text := req.Text
	if utf8.RuneCountInString(strings.TrimSpace(text)) < a.config.MinContentLength {
		a.logger.Debug("Text below minimum content length", "length", utf8.RuneCountInString(text))
		return domain.FailedReport(domain.LevelNotAvailable, domain.ErrInsufficientContent, aud, thresholds)
	}

	sentences := a.segmenter.Sentences(text)
	words := a.segmenter.Words(text)
	counts := formula.Measure(len(sentences), words)
	scores, err := formula.Compute(counts)
	if err != nil {
		a.logger.Debug("No sentences or words found", "sentences", len(sentences), "words", len(words))
		return domain.FailedReport(domain.LevelNotAvailable, err, aud, thresholds)
	}
	paragraphs := a.segmenter.Paragraphs(text)

	a.logger.Debug("Segmented text",
		"sentences", counts.Sentences,
		"words", counts.Words,
		"paragraphs", len(paragraphs),
		"syllables", counts.Syllables,
	)

	simplifications := pattern.FindSimplifications(words)
	passive := a.passiveVoice(sentences, aud)
	transitional := a.transitional(text, sentences)
	sentenceReport := pattern.ClassifySentences(sentences, a.segmenter, aud, a.config.MaxDisplayItems)
	paragraphReport := pattern.ClassifyParagraphs(paragraphs, a.segmenter, aud, a.config.MaxDisplayItems)

	metrics := Metrics{
		Flesch:                 scores.Flesch,
		FleschKincaid:          scores.FleschKincaid,
		ColemanLiau:            scores.ColemanLiau,
		Lix:                    scores.Lix,
		AverageSentenceLength:  formula.Round1(float64(counts.Words) / float64(counts.Sentences)),
		PassivePercentage:      passive.Percentage,
		LongSentencePercentage: sentenceReport.LongPercentage,
		DifficultPercentage:    formula.Percent(counts.Difficult, counts.Words),
		TransitionalPercentage: transitional.Percentage,
		ConsecutiveSameStart:   sentenceReport.ConsecutiveSameStart,
		Simplifications:        len(simplifications),
	}
	score := Score(metrics)

	report = domain.Report{
		Score:      score,
		Level:      formula.Level(scores.Flesch),
		Audience:   aud,
		Thresholds: thresholds,
		Language:   a.language(text),

		FleschScore:        scores.Flesch,
		FleschKincaidGrade: scores.FleschKincaid,
		ColemanLiauIndex:   scores.ColemanLiau,
		LixScore:           scores.Lix,

		WordCount:               counts.Words,
		SentenceCount:           counts.Sentences,
		ParagraphCount:          len(paragraphs),
		AverageWordsPerSentence: metrics.AverageSentenceLength,
		ReadingTime:             int(math.Ceil(float64(counts.Words) / WordsPerMinute)),

		DifficultWords:            domain.DifficultWords{Count: counts.Difficult, Percentage: metrics.DifficultPercentage},
		SimplificationSuggestions: simplifications,

		Heatmap:        a.positional.Heatmap(paragraphs, aud),
		Flow:           a.positional.Flow(sentences, scores.Flesch),
		Sentiment:      a.sentiment.Analyze(text),
		Inclusivity:    a.inclusivity.Check(text),
		KeywordDensity: a.keywords.Map(text, req.Keywords),

		PassiveVoice:      passive,
		TransitionalWords: transitional,
		Sentences:         sentenceReport,
		Paragraphs:        paragraphReport,

		Recommendations: Recommendations(metrics, thresholds),
	}
	if len(paragraphs) > 0 {
		report.AverageSentencesPerParagraph = formula.Round1(float64(counts.Sentences) / float64(len(paragraphs)))
	}

	a.logger.Debug("Completed readability analysis",
		"score", report.Score,
		"flesch", report.FleschScore,
		"level", report.Level,
		"recommendations", len(report.Recommendations),
		"duration", time.Since(start),
	)
	return report
}

func (a *Analyzer) passiveVoice(sentences []string, aud domain.Audience) domain.PassiveVoiceReport {
	r := domain.PassiveVoiceReport{Sentences: make([]string, 0)}
	for _, s := range sentences {
		if !lexical.IsPassiveVoice(s) {
			continue
		}
		r.Count++
		if len(r.Sentences) < a.config.MaxDisplayItems {
			r.Sentences = append(r.Sentences, s)
		}
	}
	r.Percentage = formula.Percent(r.Count, len(sentences))
	r.Status = audience.GetStatus(r.Percentage, domain.MetricPassive, aud)
	return r
}

func (a *Analyzer) transitional(text string, sentences []string) domain.TransitionalReport {
	scan := a.transitions.Scan(text)
	r := domain.TransitionalReport{
		Count:                       scan.Count,
		Found:                       scan.Found,
		SentencesWithoutTransitions: make([]string, 0),
	}
	for _, s := range sentences {
		if a.transitions.HasTransition(s) {
			r.SentencesWithTransitions++
			continue
		}
		if len(r.SentencesWithoutTransitions) < a.config.MaxDisplayItems {
			r.SentencesWithoutTransitions = append(r.SentencesWithoutTransitions, s)
		}
	}
	r.Percentage = formula.Percent(r.SentencesWithTransitions, len(sentences))
	r.Status = TransitionalStatus(r.Percentage)
	return r
}

// language returns the ISO 639-1 code of the detected language. Detection is
// informational; scoring always uses English rules.
func (a *Analyzer) language(text string) string {
	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()
	if code != "" && code != "en" {
		a.logger.Warn("Text does not look like English", "language", code, "confidence", info.Confidence)
	}
	return code
}
