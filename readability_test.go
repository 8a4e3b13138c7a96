// readability_test.go
package readability

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sample = "However, clear writing helps every reader. Short sentences are easy to scan. " +
	"For example, a busy reader can skim a page quickly.\n\n" +
	"The draft was reviewed by the editor. Finally, the team published it."

func TestAnalyzeWithDefaults(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantError bool
	}{
		{name: "Plain prose", text: sample},
		{name: "Empty text", text: "", wantError: true},
		{name: "Too short", text: "hi", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := AnalyzeWithDefaults(tc.text)
			if tc.wantError {
				require.Equal(t, 0, report.Score)
				require.NotEmpty(t, report.Error)
				return
			}
			require.Empty(t, report.Error)
			require.Greater(t, report.Score, 0)
			require.Equal(t, AudienceGeneral, report.Audience)
		})
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	_, err := New(WithoutLogging(), WithMaxDisplayItems(0))
	require.Error(t, err)

	_, err = New(WithoutLogging(), WithMinContentLength(-1))
	require.Error(t, err)
}

func TestAnalyzer_Options(t *testing.T) {
	a, err := New(WithoutLogging(), WithMinContentLength(10), WithMaxDisplayItems(1))
	require.NoError(t, err)

	report := a.Analyze(context.Background(), "The cat sat on the mat. It was a sunny day.", AudienceAcademic, "cat")
	require.Empty(t, report.Error)
	require.True(t, strings.HasPrefix(report.Level, "Very Easy"))
	require.Equal(t, AudienceAcademic, report.Audience)
	require.Equal(t, GetThresholds(AudienceAcademic), report.Thresholds)
	require.LessOrEqual(t, len(report.TransitionalWords.SentencesWithoutTransitions), 1)
}

func TestAnalyzer_AnalyzeReader(t *testing.T) {
	a, err := New(WithoutLogging())
	require.NoError(t, err)

	report := a.AnalyzeReader(context.Background(), strings.NewReader(sample), AudienceProfessional)
	require.Empty(t, report.Error)
	require.Equal(t, a.Analyze(context.Background(), sample, AudienceProfessional), report)

	huge := bytes.Repeat([]byte("word "), MaxInputBytes/5+1)
	report = a.AnalyzeReader(context.Background(), bytes.NewReader(huge), AudienceGeneral)
	require.Equal(t, ErrInputTooLarge.Error(), report.Error)
	require.Equal(t, 0, report.Score)
}

func TestAnalyzer_AnalyzeRequest(t *testing.T) {
	a, err := New(WithoutLogging())
	require.NoError(t, err)

	report := a.AnalyzeRequest(context.Background(), Request{Text: sample, Keywords: []string{"reader"}})
	require.Equal(t, []string{"reader"}, report.KeywordDensity.Keywords)
}

func TestAnalyzer_WarmUp(t *testing.T) {
	a, err := New(WithoutLogging(), WithWarmUpConfig(WarmupConfig{
		Concurrency:    2,
		Iterations:     2,
		SampleTextSize: 300,
		Duration:       time.Second,
	}))
	require.NoError(t, err)
	require.Zero(t, a.WarmUp(context.Background(), WarmupConfig{Concurrency: 1, Iterations: 1}))
	require.NoError(t, a.Close())
}

func TestAnalyzer_WarmUpRunsOnce(t *testing.T) {
	a, err := New(WithoutLogging())
	require.NoError(t, err)

	wc := WarmupConfig{Concurrency: 1, Iterations: 3, SampleTextSize: 300}
	var (
		wg    sync.WaitGroup
		total atomic.Int64
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			total.Add(int64(a.WarmUp(context.Background(), wc)))
		}()
	}
	wg.Wait()

	require.Equal(t, int64(3), total.Load())
}

func TestAudiences(t *testing.T) {
	require.Equal(t, []Audience{AudienceGeneral, AudienceProfessional, AudienceAcademic}, Audiences())
	require.Equal(t, GetThresholds(AudienceGeneral), GetThresholds("nobody"))
}
