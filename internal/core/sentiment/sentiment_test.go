package sentiment

import (
	"testing"

	"github.com/baditaflorin/go_readability/internal/adapters/normalizer"
	"github.com/baditaflorin/go_readability/internal/adapters/segmenter"
	"github.com/stretchr/testify/require"
)

func newScorer(t *testing.T) *Scorer {
	t.Helper()
	s, err := NewScorer(segmenter.NewUAX29Segmenter(), normalizer.NewPhraseNormalizer())
	require.NoError(t, err)
	return s
}

func TestScorer_ShortTextIsNeutral(t *testing.T) {
	result := newScorer(t).Analyze("Great!")
	require.Equal(t, Neutral(), result)
}

func TestScorer_Positive(t *testing.T) {
	result := newScorer(t).Analyze("The food was excellent and the staff were wonderful to us.")
	require.Equal(t, 7, result.Score)
	require.Equal(t, 2, result.WordCount)
	require.Equal(t, 3.5, result.Average)
	require.Equal(t, LabelPositive, result.Label)
	require.False(t, result.Toxicity)
	require.Empty(t, result.NegativeWords)
}

func TestScorer_NegativeWordsDedupedAndCapped(t *testing.T) {
	text := "Bad, bad service. Awful food, terrible music, horrible seats, ugly walls and boring staff."
	result := newScorer(t).Analyze(text)
	require.Equal(t, -21, result.Score)
	require.Equal(t, 7, result.WordCount)
	require.Equal(t, LabelVeryNegative, result.Label)
	require.Equal(t, []string{"bad", "awful", "terrible", "horrible", "ugly"}, result.NegativeWords)
}

func TestScorer_Toxicity(t *testing.T) {
	result := newScorer(t).Analyze("Honestly you are such an idiot, and nobody wants to read this.")
	require.True(t, result.Toxicity)
	require.Contains(t, result.NegativeWords, "idiot")
}

func TestLabel_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{11, LabelVeryPositive},
		{10, LabelPositive},
		{3, LabelPositive},
		{2, LabelNeutral},
		{0, LabelNeutral},
		{-2, LabelNeutral},
		{-3, LabelNegative},
		{-10, LabelNegative},
		{-11, LabelVeryNegative},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Label(tc.score), "score %d", tc.score)
	}
}
