// Package formula computes classical readability formulas from text counts.
package formula

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/baditaflorin/go_readability/internal/core/lexical"
)

// LongWordLength is the rune length above which LIX counts a word as long.
const LongWordLength = 6

// Counts are the raw inputs of every formula.
type Counts struct {
	Sentences  int
	Words      int
	Syllables  int
	Characters int
	LongWords  int
	// Difficult counts words with three or more syllables.
	Difficult int
}

// Scores are the formula outputs.
type Scores struct {
	Flesch        int
	FleschKincaid float64
	ColemanLiau   float64
	Lix           int
}

// Measure walks the words once and gathers syllable, letter, long-word and
// difficult-word counts.
func Measure(sentenceCount int, words []string) Counts {
	c := Counts{Sentences: sentenceCount, Words: len(words)}
	for _, w := range words {
		syllables := lexical.CountSyllables(w)
		c.Syllables += syllables
		if lexical.IsDifficult(syllables) {
			c.Difficult++
		}
		if utf8.RuneCountInString(w) > LongWordLength {
			c.LongWords++
		}
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				c.Characters++
			}
		}
	}
	return c
}

// Compute returns all four formulas. Counts without sentences or words are
// rejected so no division by zero can happen.
func Compute(c Counts) (Scores, error) {
	if c.Sentences == 0 || c.Words == 0 {
		return Scores{}, domain.ErrInsufficientContent
	}

	wordsPerSentence := float64(c.Words) / float64(c.Sentences)
	syllablesPerWord := float64(c.Syllables) / float64(c.Words)

	return Scores{
		Flesch:        fleschReadingEase(wordsPerSentence, syllablesPerWord),
		FleschKincaid: fleschKincaidGrade(wordsPerSentence, syllablesPerWord),
		ColemanLiau:   colemanLiau(c),
		Lix:           lix(c, wordsPerSentence),
	}, nil
}

// Flesch is a shortcut for the Flesch Reading Ease of a counted text; it
// returns 0 when the counts are empty.
func Flesch(c Counts) int {
	s, err := Compute(c)
	if err != nil {
		return 0
	}
	return s.Flesch
}

func fleschReadingEase(wordsPerSentence, syllablesPerWord float64) int {
	raw := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	return Clamp(int(Round(raw)), 0, 100)
}

func fleschKincaidGrade(wordsPerSentence, syllablesPerWord float64) float64 {
	grade := Round1(0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59)
	return math.Max(0, grade)
}

func colemanLiau(c Counts) float64 {
	lettersPer100 := float64(c.Characters) / float64(c.Words) * 100
	sentencesPer100 := float64(c.Sentences) / float64(c.Words) * 100
	return Round1(0.0588*lettersPer100 - 0.296*sentencesPer100 - 15.8)
}

func lix(c Counts, wordsPerSentence float64) int {
	return int(Round(wordsPerSentence + float64(c.LongWords)/float64(c.Words)*100))
}
