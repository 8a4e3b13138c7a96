package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size in bytes
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     100,
		SampleTextSize: 4000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	analyzers   []ports.Analyzer
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterAnalyzer adds an analyzer to be warmed up
func (wm *Manager) RegisterAnalyzer(a ports.Analyzer) {
	wm.analyzers = append(wm.analyzers, a)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components and returns
// the number of analyses performed.
func (wm *Manager) WarmUp(ctx context.Context) int {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.analyzers)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	sample := GenerateSampleText(wm.config.SampleTextSize)

	wm.run(warmupCtx, func(int) {
		for _, normalizer := range wm.normalizers {
			_ = normalizer.Normalize(sample)
		}
	})

	var mu sync.Mutex
	analyses := 0
	audiences := domain.Audiences
	wm.run(warmupCtx, func(iteration int) {
		aud := audiences[iteration%len(audiences)]
		for _, a := range wm.analyzers {
			_ = a.Analyze(warmupCtx, domain.Request{Text: sample, Audience: aud})
			mu.Lock()
			analyses++
			mu.Unlock()
		}
	})

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
		"analyses", analyses,
	)
	return analyses
}

// run executes step Iterations times on each of Concurrency goroutines,
// passing the iteration number, and stops early when ctx is done.
func (wm *Manager) run(ctx context.Context, step func(iteration int)) {
	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				step(j)
			}
		}()
	}
	wg.Wait()
}

var sampleSentences = []string{
	"The quick brown fox jumps over the lazy dog.",
	"However, the report was written by a small team of analysts.",
	"For example, readers prefer short sentences and familiar words.",
	"Organizational considerations necessitate comprehensive documentation.",
	"We met by the way, and the meeting went surprisingly well.",
	"Finally, the results were published and celebrated by everyone.",
	"Mankind has always explored new places with curiosity.",
}

// GenerateSampleText builds English prose of roughly size bytes with a blank
// line every four sentences.
func GenerateSampleText(size int) string {
	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			if i%4 == 0 {
				sb.WriteString("\n\n")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(sampleSentences[i%len(sampleSentences)])
	}
	return sb.String()
}
