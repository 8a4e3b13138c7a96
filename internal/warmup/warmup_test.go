package warmup

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/baditaflorin/go_readability/internal/adapters/logger"
	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/stretchr/testify/require"
)

type countingAnalyzer struct {
	calls atomic.Int64
}

func (c *countingAnalyzer) Analyze(_ context.Context, req domain.Request) domain.Report {
	c.calls.Add(1)
	return domain.Report{Audience: req.Audience}
}

type recordingAnalyzer struct {
	mu        sync.Mutex
	audiences []domain.Audience
}

func (r *recordingAnalyzer) Analyze(_ context.Context, req domain.Request) domain.Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audiences = append(r.audiences, req.Audience)
	return domain.Report{Audience: req.Audience}
}

type countingNormalizer struct {
	calls atomic.Int64
}

func (c *countingNormalizer) Normalize(text string) string {
	c.calls.Add(1)
	return strings.ToLower(text)
}

func TestManager_WarmUp(t *testing.T) {
	a := &countingAnalyzer{}
	n := &countingNormalizer{}

	mgr := NewManager(logger.NewNopLogger(), WarmupConfig{Concurrency: 2, Iterations: 5, SampleTextSize: 500})
	mgr.RegisterAnalyzer(a)
	mgr.RegisterNormalizer(n)

	require.Equal(t, 10, mgr.WarmUp(context.Background()))
	require.Equal(t, int64(10), a.calls.Load())
	require.Equal(t, int64(10), n.calls.Load())
}

func TestManager_RotatesAudiences(t *testing.T) {
	a := &recordingAnalyzer{}
	mgr := NewManager(logger.NewNopLogger(), WarmupConfig{Concurrency: 1, Iterations: 4, SampleTextSize: 200})
	mgr.RegisterAnalyzer(a)

	require.Equal(t, 4, mgr.WarmUp(context.Background()))
	require.Equal(t, []domain.Audience{
		domain.AudienceGeneral,
		domain.AudienceProfessional,
		domain.AudienceAcademic,
		domain.AudienceGeneral,
	}, a.audiences)
}

func TestManager_StopsWhenCancelled(t *testing.T) {
	a := &countingAnalyzer{}
	mgr := NewManager(logger.NewNopLogger(), WarmupConfig{Concurrency: 4, Iterations: 1000, SampleTextSize: 100})
	mgr.RegisterAnalyzer(a)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Zero(t, mgr.WarmUp(ctx))
}

func TestGenerateSampleText(t *testing.T) {
	text := GenerateSampleText(1000)
	require.GreaterOrEqual(t, len(text), 1000)
	require.Contains(t, text, "\n\n")
	require.True(t, strings.HasSuffix(text, "."))
}
