package formula

import (
	"testing"

	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestMeasureAndCompute_SimpleText(t *testing.T) {
	req := require.New(t)
	words := []string{"The", "cat", "sat", "on", "the", "mat", "It", "was", "a", "sunny", "day"}

	c := Measure(2, words)
	req.Equal(Counts{Sentences: 2, Words: 11, Syllables: 12, Characters: 31, LongWords: 0, Difficult: 0}, c)

	s, err := Compute(c)
	req.NoError(err)
	req.Equal(100, s.Flesch)
	req.Equal(0.0, s.FleschKincaid)
	req.InDelta(-4.6, s.ColemanLiau, 1e-9)
	req.Equal(6, s.Lix)
	req.Equal("Very Easy (5th grade)", Level(s.Flesch))
}

func TestCompute_KnownCounts(t *testing.T) {
	req := require.New(t)

	s, err := Compute(Counts{Sentences: 1, Words: 20, Syllables: 30, Characters: 100, LongWords: 5})
	req.NoError(err)
	req.Equal(60, s.Flesch)
	req.InDelta(9.9, s.FleschKincaid, 1e-9)
	req.InDelta(12.1, s.ColemanLiau, 1e-9)
	req.Equal(45, s.Lix)
}

func TestCompute_ClampsFlesch(t *testing.T) {
	s, err := Compute(Counts{Sentences: 1, Words: 100, Syllables: 300, Characters: 700, LongWords: 60})
	require.NoError(t, err)
	require.Equal(t, 0, s.Flesch)
	require.Equal(t, "Very Difficult (Professional)", Level(s.Flesch))
}

func TestCompute_RejectsEmptyCounts(t *testing.T) {
	_, err := Compute(Counts{Sentences: 0, Words: 10})
	require.ErrorIs(t, err, domain.ErrInsufficientContent)

	_, err = Compute(Counts{Sentences: 3, Words: 0})
	require.ErrorIs(t, err, domain.ErrInsufficientContent)

	require.Equal(t, 0, Flesch(Counts{}))
}

func TestLevel_Breakpoints(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "Very Easy (5th grade)"},
		{90, "Very Easy (5th grade)"},
		{89, "Easy (6th grade)"},
		{80, "Easy (6th grade)"},
		{70, "Fairly Easy (7th grade)"},
		{60, "Standard (8th-9th grade)"},
		{50, "Fairly Difficult (10th-12th grade)"},
		{30, "Difficult (College)"},
		{29, "Very Difficult (Professional)"},
		{0, "Very Difficult (Professional)"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, Level(tc.score), "score %d", tc.score)
	}
}

func TestRounding(t *testing.T) {
	require.Equal(t, 3.0, Round(2.5))
	require.Equal(t, -2.0, Round(-2.5))
	require.InDelta(t, 1.3, Round1(1.25), 1e-9)
	require.Equal(t, 33.3, Percent(1, 3))
	require.Equal(t, 0.0, Percent(5, 0))
	require.Equal(t, 100, Clamp(140, 0, 100))
	require.Equal(t, 0, Clamp(-3, 0, 100))
}

func TestMeasure_DifficultWords(t *testing.T) {
	c := Measure(1, []string{"beautiful", "cat", "organization", "dog"})
	require.Equal(t, 2, c.Difficult)
	require.Equal(t, 4, c.Words)
}
