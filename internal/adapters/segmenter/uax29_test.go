package segmenter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUAX29Segmenter_Sentences(t *testing.T) {
	seg := NewUAX29Segmenter()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Two simple sentences",
			input:    "The cat sat on the mat. It was a sunny day.",
			expected: []string{"The cat sat on the mat.", "It was a sunny day."},
		},
		{
			name:     "Decimal number does not split",
			input:    "The price rose by 3.5 percent. Buyers noticed.",
			expected: []string{"The price rose by 3.5 percent.", "Buyers noticed."},
		},
		{
			name:     "Question and exclamation",
			input:    "Is it ready? Yes! Ship it.",
			expected: []string{"Is it ready?", "Yes!", "Ship it."},
		},
		{
			name:     "Whitespace only",
			input:    "   \n\t ",
			expected: []string{},
		},
		{
			name:     "Empty",
			input:    "",
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, seg.Sentences(tc.input))
		})
	}
}

func TestUAX29Segmenter_Words(t *testing.T) {
	seg := NewUAX29Segmenter()

	require.Equal(t,
		[]string{"The", "cat", "sat", "on", "the", "mat", "It", "was", "a", "sunny", "day"},
		seg.Words("The cat sat on the mat. It was a sunny day."),
	)
	require.Equal(t, []string{"don't", "stop", "3.14"}, seg.Words("don't stop -- 3.14!"))
	require.Empty(t, seg.Words("... --- !!!"))
	require.Empty(t, seg.Words(""))
}

func TestUAX29Segmenter_Paragraphs(t *testing.T) {
	seg := NewUAX29Segmenter()

	require.Equal(t,
		[]string{"First paragraph.", "Second paragraph.", "Third."},
		seg.Paragraphs("First paragraph.\n\n  \nSecond paragraph.\n\nThird.\n"),
	)
	require.Equal(t,
		[]string{"<p>One.", "Two.", "Three.</p>"},
		seg.Paragraphs("<p>One.</p><p>Two.</p>\n<p class=\"x\">Three.</p>"),
	)
	require.Equal(t, []string{"Single line\nwrapped paragraph."}, seg.Paragraphs("Single line\nwrapped paragraph."))
	require.Empty(t, seg.Paragraphs("  \n\n  "))
}

func TestIsWordLike(t *testing.T) {
	require.True(t, IsWordLike("word"))
	require.True(t, IsWordLike("42"))
	require.True(t, IsWordLike("été"))
	require.False(t, IsWordLike(","))
	require.False(t, IsWordLike(" "))
}
