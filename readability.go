// readability.go
// Package readability scores English text for readability and content quality.
// A single call segments the text once and reports the Flesch Reading Ease,
// Flesch-Kincaid grade, Coleman-Liau index and LIX, together with passive
// voice, transition coverage, sentence and paragraph length, sentiment,
// inclusive language, keyword density and positional heatmaps. The overall
// score starts from Flesch Reading Ease:
//
//	score = clamp(flesch - penalties + bonuses, 0, 100)
//
// Analysis never fails with a Go error. Short text, cancellation and internal
// faults all produce a report with Score 0 and the Error field set.
package readability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/baditaflorin/go_readability/internal/adapters/logger"
	"github.com/baditaflorin/go_readability/internal/adapters/normalizer"
	"github.com/baditaflorin/go_readability/internal/adapters/segmenter"
	"github.com/baditaflorin/go_readability/internal/core/analyzer"
	"github.com/baditaflorin/go_readability/internal/core/audience"
	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/ports"
	"github.com/baditaflorin/go_readability/internal/warmup"
	"github.com/baditaflorin/l"
)

// MaxInputBytes bounds how much AnalyzeReader consumes.
const MaxInputBytes = 1 << 20

// ErrInputTooLarge is reported when a reader holds more than MaxInputBytes.
var ErrInputTooLarge = errors.New("input exceeds maximum size")

// Re-exported domain types.
type (
	Report             = domain.Report
	Request            = domain.Request
	Audience           = domain.Audience
	Thresholds         = domain.Thresholds
	Status             = domain.Status
	Recommendation     = domain.Recommendation
	RecommendationType = domain.RecommendationType
	WarmupConfig       = warmup.WarmupConfig
)

// Audience profiles.
const (
	AudienceGeneral      = domain.AudienceGeneral
	AudienceProfessional = domain.AudienceProfessional
	AudienceAcademic     = domain.AudienceAcademic
)

// Analyzer scores texts. It is safe for concurrent use.
type Analyzer struct {
	core       *analyzer.Analyzer
	logger     ports.Logger
	normalizer ports.Normalizer
	warmOnce   sync.Once
}

// Option defines a functional option for configuring an Analyzer.
type Option func(*config)

type config struct {
	Core         analyzer.Config
	Logger       ports.Logger
	Segmenter    ports.Segmenter
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithoutLogging discards all log output.
func WithoutLogging() Option {
	return func(cfg *config) {
		cfg.Logger = logger.NewNopLogger()
	}
}

// WithSegmenter replaces the Unicode segmenter.
func WithSegmenter(s ports.Segmenter) Option {
	return func(cfg *config) {
		cfg.Segmenter = s
	}
}

// WithMinContentLength sets the minimum trimmed rune count analysed.
func WithMinContentLength(n int) Option {
	return func(cfg *config) {
		cfg.Core.MinContentLength = n
	}
}

// WithMaxDisplayItems caps the offending sentence and paragraph lists.
func WithMaxDisplayItems(n int) Option {
	return func(cfg *config) {
		cfg.Core.MaxDisplayItems = n
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc warmup.WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates an Analyzer. Invalid option values are reported as errors.
func New(opts ...Option) (*Analyzer, error) {
	cfg := &config{
		Core:         analyzer.DefaultConfig(),
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		lg, err := logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = lg
	}
	if cfg.Segmenter == nil {
		cfg.Segmenter = segmenter.NewUAX29Segmenter()
	}
	norm := normalizer.NewPhraseNormalizer()

	core, err := analyzer.NewAnalyzer(cfg.Core, cfg.Logger, cfg.Segmenter, norm)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{core: core, logger: cfg.Logger, normalizer: norm}
	if cfg.WarmUp {
		a.WarmUp(context.Background(), cfg.WarmUpConfig)
	}
	return a, nil
}

// Analyze scores text for the audience, measuring keyword density for the
// given keywords or for the three most frequent content words when none are
// given. Unknown audiences fall back to general.
func (a *Analyzer) Analyze(ctx context.Context, text string, aud Audience, keywords ...string) Report {
	return a.core.Analyze(ctx, domain.Request{Text: text, Audience: aud, Keywords: keywords})
}

// AnalyzeRequest is Analyze for a prepared request.
func (a *Analyzer) AnalyzeRequest(ctx context.Context, req Request) Report {
	return a.core.Analyze(ctx, req)
}

// AnalyzeReader reads at most MaxInputBytes from r and analyses it.
func (a *Analyzer) AnalyzeReader(ctx context.Context, r io.Reader, aud Audience, keywords ...string) Report {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputBytes+1))
	if err != nil {
		a.logger.Error("Failed to read input", "error", err)
		return a.failed(aud, fmt.Errorf("read input: %w", err))
	}
	if len(data) > MaxInputBytes {
		a.logger.Warn("Input too large", "limit", MaxInputBytes)
		return a.failed(aud, ErrInputTooLarge)
	}
	return a.Analyze(ctx, string(data), aud, keywords...)
}

func (a *Analyzer) failed(aud Audience, err error) Report {
	resolved := audience.Resolve(aud)
	return domain.FailedReport(domain.LevelError, err, resolved, audience.GetThresholds(resolved))
}

// WarmUp runs the analyzer on generated text to fill pools and caches. Only
// the first call does any work; it returns the number of analyses performed.
func (a *Analyzer) WarmUp(ctx context.Context, wc warmup.WarmupConfig) int {
	analyses := -1
	a.warmOnce.Do(func() {
		mgr := warmup.NewManager(a.logger, wc)
		mgr.RegisterAnalyzer(a.core)
		mgr.RegisterNormalizer(a.normalizer)
		analyses = mgr.WarmUp(ctx)
	})
	if analyses < 0 {
		a.logger.Debug("System already warmed up, skipping")
		return 0
	}
	return analyses
}

// Close flushes the analyzer's logger.
func (a *Analyzer) Close() error {
	return a.logger.Close()
}

// GetThresholds returns the thresholds of an audience, falling back to general.
func GetThresholds(aud Audience) Thresholds {
	return audience.GetThresholds(aud)
}

// Audiences lists the known audience profiles.
func Audiences() []Audience {
	return append([]Audience(nil), domain.Audiences...)
}

// AnalyzeWithDefaults analyses text for the general audience with logging
// disabled.
func AnalyzeWithDefaults(text string) Report {
	a, err := New(WithoutLogging())
	if err != nil {
		return domain.FailedReport(domain.LevelError, err, domain.AudienceGeneral, audience.GetThresholds(domain.AudienceGeneral))
	}
	return a.Analyze(context.Background(), text, AudienceGeneral)
}
