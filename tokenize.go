package ipauk

import (
	"regexp"
	"strings"
)

// reSeparator matches the runs of whitespace and hyphens between words.
//
// A hyphen before or after a word marks it as unstressed in dictionaries;
// that reading is not supported, the hyphen only separates words.
var reSeparator = regexp.MustCompile(`[\s\-]+`)

// Tokenize splits normalized text into phonological words. Leading or
// trailing separators produce empty tokens, so that joining the
// transcriptions keeps one space in their place.
func Tokenize(text string) []string {
	return reSeparator.Split(text, -1)
}

// wrapToken brackets a token with the word boundary sentinel.
func wrapToken(token string) string {
	return boundary + token + boundary
}

// joinTokens joins transcribed tokens with single spaces and drops the
// boundary sentinels.
func joinTokens(tokens []string) string {
	return strings.ReplaceAll(strings.Join(tokens, " "), boundary, "")
}
