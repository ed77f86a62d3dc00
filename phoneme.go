package ipauk

import "strings"

// grapheme is one Cyrillic sequence and the phones it stands for.
type grapheme struct {
	from, to string
}

// graphemeGroups map Cyrillic to IPA longest sequence first, so that a
// digraph such as дж is replaced before д and ж are seen on their own.
var graphemeGroups = [][]grapheme{
	{
		{"дзь", "d͡zʲ"},
		// Dental stops assimilate to the following hissing or hushing
		// consonant; the spelling does not show it.
		{"тьс", "t͡sʲː"},
	},
	{
		{"дж", "d͡ʒ"},
		{"дз", "d͡z"},
		{"дс", "d͡zs"},
		{"дш", "d͡ʒʃ"},
		{"дч", "d͡ʒt͡ʃ"},
		{"дц", "d͡zt͡s"},
		{"тс", "t͡s"},
		{"тш", "t͡ʃʃ"},
		{"тч", "t͡ʃː"},
		{"тц", "t͡sː"},
	},
	{
		{"а", "a"},
		{"б", "b"},
		{"в", "ʋ"},
		{"г", "ɦ"},
		{"ґ", "ɡ"},
		{"д", "d"},
		{"е", "ɛ"},
		{"є", "jɛ"},
		{"ж", "ʒ"},
		{"з", "z"},
		{"и", "ɪ"},
		{"і", "i"},
		{"ї", "ji"},
		{"й", "j"},
		{"к", "k"},
		{"л", "l"},
		{"м", "m"},
		{"н", "n"},
		{"о", "ɔ"},
		{"п", "p"},
		{"р", "r"},
		{"с", "s"},
		{"т", "t"},
		{"у", "u"},
		{"ф", "f"},
		{"х", "x"},
		{"ц", "t͡s"},
		{"ч", "t͡ʃ"},
		{"ш", "ʃ"},
		{"щ", "ʃt͡ʃ"},
		{"ь", "ʲ"},
		{"ю", "ju"},
		{"я", "ja"},
		{"’", "j"},
		{Acute, "ˈ"},
		{Grave, "ˌ"},
	},
}

// nucleusVowels are the vowel phones the grapheme tables can produce.
const nucleusVowels = "aɛiɪuɔ"

var (
	// stressAfterVowel finds a stress mark trailing the vowel it belongs to.
	stressAfterVowel = rx(`(`+class(nucleusVowels)+`)(`+class(stressMarks)+`)`, "${2}${1}")
	// markOnlyVowel puts the monosyllabic stress marker before the vowel.
	markOnlyVowel = rx(`(`+class(nucleusVowels)+`)`, monoStress+"${1}")
)

// mapPhonemes replaces the Cyrillic letters of a token with IPA phones and
// moves every stress mark in front of its vowel. With forceStress set, a
// token holding exactly one vowel gets the monosyllabic stress marker.
func mapPhonemes(token string, forceStress bool) string {
	// The ASCII apostrophe would be confused with a stress mark.
	token = strings.ReplaceAll(token, "'", apostropheMark)

	for _, group := range graphemeGroups {
		for _, g := range group {
			token = strings.ReplaceAll(token, g.from, g.to)
		}
	}

	token = stressAfterVowel.apply(token)

	if forceStress && countRunesIn(token, nucleusVowels) == 1 {
		token = markOnlyVowel.apply(token)
	}
	return token
}

// countRunesIn counts the runes of s that belong to set.
func countRunesIn(s, set string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}
