package positional

import (
	"fmt"
	"testing"

	"github.com/baditaflorin/go_readability/internal/adapters/segmenter"
	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func sentences(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("The cat sat on mat number %d.", i))
	}
	return out
}

func TestFlow_WindowCount(t *testing.T) {
	a := NewAnalyzer(segmenter.NewUAX29Segmenter())
	for n := 0; n <= 8; n++ {
		points := a.Flow(sentences(n), 77)
		want := 1
		if n >= WindowSize {
			want = n - 2
		}
		require.Len(t, points, want, "n=%d", n)
	}
}

func TestFlow_Positions(t *testing.T) {
	a := NewAnalyzer(segmenter.NewUAX29Segmenter())
	points := a.Flow(sentences(7), 0)
	require.Len(t, points, 5)
	require.Equal(t, []float64{0, 25, 50, 75, 100}, []float64{points[0].X, points[1].X, points[2].X, points[3].X, points[4].X})
	for _, p := range points {
		require.GreaterOrEqual(t, p.Y, 0)
		require.LessOrEqual(t, p.Y, 100)
		require.Zero(t, p.Errors)
	}
}

func TestFlow_SyntheticPoint(t *testing.T) {
	a := NewAnalyzer(segmenter.NewUAX29Segmenter())
	points := a.Flow([]string{"The cake was eaten."}, 88)
	require.Len(t, points, 1)
	require.Equal(t, 0.0, points[0].X)
	require.Equal(t, 88, points[0].Y)
	require.Equal(t, 1, points[0].Errors)
	require.Equal(t, "The cake was eaten.", points[0].Snippet)
}

func TestFlow_ErrorsAndTime(t *testing.T) {
	a := NewAnalyzer(segmenter.NewUAX29Segmenter())
	window := []string{
		"The report was written by analysts.",
		"Unbelievably complicated organizational responsibilities accumulated.",
		"Extraordinary institutional communication deteriorated considerably.",
	}
	points := a.Flow(window, 0)
	require.Len(t, points, 1)
	require.Greater(t, points[0].Complex, ComplexWordLimit)
	// One passive sentence plus the complex word penalty.
	require.Equal(t, 2, points[0].Errors)
	require.Equal(t, 5, points[0].Time)
}

func TestHeatmap(t *testing.T) {
	a := NewAnalyzer(segmenter.NewUAX29Segmenter())
	paragraphs := []string{
		"The cat sat on the mat. It was a sunny day.",
		"Institutional considerations necessitate comprehensive organizational evaluation methodologies.",
	}
	entries := a.Heatmap(paragraphs, domain.AudienceGeneral)
	require.Len(t, entries, 2)

	require.Equal(t, 0, entries[0].ID)
	require.Equal(t, 100, entries[0].Score)
	require.Equal(t, domain.StatusGood, entries[0].Status)
	require.Equal(t, len(paragraphs[0]), entries[0].Length)

	require.Equal(t, 1, entries[1].ID)
	require.Equal(t, 0, entries[1].Score)
	require.Equal(t, domain.StatusPoor, entries[1].Status)
}
