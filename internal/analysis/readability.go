package analysis

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	silentEnding  = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingY      = regexp.MustCompile(`^y`)
	vowelGroup    = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// Readability returns a simplified Flesch reading ease in [0, 100]
func Readability(text string) float64 {
	sentences := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	words := strings.Fields(text)
	if sentences == 0 || len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += Syllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))
	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord

	return math.Min(100, math.Max(0, score))
}

// Syllables estimates the syllable count of a single word
func Syllables(word string) int {
	word = strings.ToLower(word)
	if utf8.RuneCountInString(word) <= 3 {
		return 1
	}

	word = silentEnding.ReplaceAllString(word, "")
	word = leadingY.ReplaceAllString(word, "")

	if n := len(vowelGroup.FindAllString(word, -1)); n > 0 {
		return n
	}
	return 1
}
