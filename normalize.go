package ipauk

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// graveReplacer splits the precomposed Cyrillic letters with a grave
// accent. They only ever stand for a stressed е or и.
var graveReplacer = strings.NewReplacer(
	"ѐ", "е"+Grave,
	"Ѐ", "Е"+Grave,
	"ѝ", "и"+Grave,
	"Ѝ", "И"+Grave,
)

// composedReplacer also splits ѓ and ќ. It only runs on letters that NFC
// composed from a base letter and an accent, never on a ѓ or ќ typed as
// such.
var composedReplacer = strings.NewReplacer(
	"ѐ", "е"+Grave,
	"Ѐ", "Е"+Grave,
	"ѝ", "и"+Grave,
	"Ѝ", "И"+Grave,
	"ѓ", "г"+Acute,
	"Ѓ", "Г"+Acute,
	"ќ", "к"+Acute,
	"Ќ", "К"+Acute,
)

// DecomposeAccents splits the precomposed Cyrillic letters with a grave
// accent (ѐ, ѝ) into base letter + combining grave. Other characters are
// left alone.
func DecomposeAccents(s string) string {
	return graveReplacer.Replace(s)
}

// Normalize prepares raw text for transcription: the text is lowercased,
// letters written as base + combining diacritic (й, ї) are composed, every
// stress mark ends up as a separate rune after its letter, and runs of
// whitespace collapse to one space.
//
// Composition works one segment at a time. A segment that is already a
// single rune is kept, apart from ѐ and ѝ which are split. So a ѓ or ќ
// typed as one letter stays a letter, while г or к followed by an acute
// keeps its acute.
//
// Leading and trailing whitespace is collapsed, not trimmed.
// Normalize is idempotent.
func Normalize(text string) string {
	return collapseSpaces(composeSegments(strings.ToLower(text)))
}

// composeSegments applies NFC to every multi-rune segment of s and splits
// the accented letters the composition produced.
func composeSegments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for len(s) > 0 {
		n := norm.NFC.NextBoundaryInString(s, true)
		if n <= 0 {
			n = len(s)
		}
		seg := s[:n]
		s = s[n:]

		if utf8.RuneCountInString(seg) == 1 {
			b.WriteString(graveReplacer.Replace(seg))
			continue
		}
		b.WriteString(composedReplacer.Replace(norm.NFC.String(seg)))
	}

	return b.String()
}

// collapseSpaces replaces each run of Unicode whitespace with a single
// ASCII space.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}

	return b.String()
}
