// Package lexical holds per-word and per-sentence classifiers.
package lexical

import "strings"

// CountSyllables estimates the number of syllables in an English word.
// Vowel runs (a, e, i, o, u, y) are nuclei; a single trailing silent "e" is
// dropped and a trailing "le" adds one back. The result is never below 1.
func CountSyllables(word string) int {
	letters := lettersOnly(strings.ToLower(word))
	if len(letters) <= 3 {
		return 1
	}

	endsWithLE := strings.HasSuffix(letters, "le")
	letters = strings.TrimSuffix(letters, "e")

	count := 0
	inVowelRun := false
	for i := 0; i < len(letters); i++ {
		if isVowel(letters[i]) {
			if !inVowelRun {
				count++
			}
			inVowelRun = true
		} else {
			inVowelRun = false
		}
	}

	if endsWithLE {
		count++
	}
	if count < 1 {
		return 1
	}
	return count
}

// DifficultSyllables is the syllable count from which a word is difficult.
const DifficultSyllables = 3

// IsDifficult reports whether a word of the given syllable count is difficult.
func IsDifficult(syllables int) bool {
	return syllables >= DifficultSyllables
}

func lettersOnly(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
