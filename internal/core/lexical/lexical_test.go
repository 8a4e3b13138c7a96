package lexical

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"the", 1},
		{"a", 1},
		{"sunny", 2},
		{"table", 2},
		{"apple", 2},
		{"make", 1},
		{"beautiful", 3},
		{"readability", 5},
		{"Hello!", 2},
		{"rhythm", 1},
		{"1234", 1},
		{"", 1},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			require.Equal(t, tc.expected, CountSyllables(tc.word))
		})
	}
}

func TestCountSyllables_AtLeastOne(t *testing.T) {
	for _, w := range []string{"bcd", "xyz", "shh", "----", "strengths"} {
		require.GreaterOrEqual(t, CountSyllables(w), 1, w)
	}
}

func TestIsDifficult(t *testing.T) {
	require.True(t, IsDifficult(CountSyllables("beautiful")))
	require.True(t, IsDifficult(CountSyllables("organization")))
	require.False(t, IsDifficult(CountSyllables("simple")))
	require.False(t, IsDifficult(CountSyllables("cat")))
	require.False(t, IsDifficult(DifficultSyllables-1))
	require.True(t, IsDifficult(DifficultSyllables))
}

func TestIsPassiveVoice(t *testing.T) {
	tests := []struct {
		sentence string
		expected bool
	}{
		{"The ball was thrown by John.", true},
		{"John threw the ball.", false},
		{"We met by the way.", false},
		{"The report was finished yesterday.", true},
		{"The letters were written in ink.", true},
		{"Mistakes have been made.", true},
		{"He got promoted last year.", true},
		{"The results are known.", true},
		{"The door is open.", true},
		{"The sky is blue.", false},
		{"She writes every day.", false},
		{"The car was red.", true},
		{"By now the team is ready.", false},
	}

	for _, tc := range tests {
		t.Run(tc.sentence, func(t *testing.T) {
			require.Equal(t, tc.expected, IsPassiveVoice(tc.sentence))
		})
	}
}
