package ipauk

import "strings"

// vowelLetters are the Ukrainian vowel letters, each one a syllable nucleus.
const vowelLetters = "аеєиіїоуюя"

// CountVowels returns the number of Ukrainian vowel letters in s.
// s is expected to be lowercase.
func CountVowels(s string) int {
	return countRunesIn(s, vowelLetters)
}

// HasAccent reports whether s carries an acute or grave accent.
func HasAccent(s string) bool {
	return strings.Contains(s, Acute) || strings.Contains(s, Grave)
}

// CheckAccent returns an *AccentMissingError when text has no accent mark
// and more than one vowel letter. text must already be normalized.
func CheckAccent(text string) error {
	if HasAccent(text) {
		return nil
	}
	if n := CountVowels(text); n > 1 {
		return &AccentMissingError{Vowels: n}
	}
	return nil
}
