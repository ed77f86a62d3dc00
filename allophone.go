package ipauk

import "strings"

// vowelRewrites select the stress-dependent vowel allophones. A vowel is
// stressed when a stress mark or the monosyllabic marker stands right
// before it.
var vowelRewrites = []rewrite{
	// unstressed /a/ → [ɐ]
	rx(`(`+notClass(stressMarks+monoStress)+`)a`, "${1}ɐ"),
	// unstressed /u/ → [ʊ]
	rx(`(`+notClass(stressMarks+monoStress)+`)u`, "${1}ʊ"),
	// unstressed /ɔ/ → [o] before a stressed syllable with /u/ or /i/
	rx(`ɔ([bdzʒɡɦmnlrpftskxʲʃ͡]+)(`+class(stressMarks+monoStress)+`[uiʊ])`, "o${1}${2}"),
	// /ɛ/ → [e] unless a stress mark precedes it
	rx(`(`+notClass(stressMarks+monoStress)+`)ɛ`, "${1}e"),
}

// glideRewrites select the allophones of /ʋ/ and /j/. They do not look at
// stress marks.
var glideRewrites = []rewrite{
	// /ʋ/ → [u̯] in a syllable coda
	rx(`(`+class(vowels)+`)ʋ(`+class(consonantsNoW+boundary)+`)`, "${1}u̯${2}"),
	// /ʋ/ → [w] before /ɔ, u/ and voiced consonants
	rx(`ʋ(`+class(stressMarks)+`?[ɔuoʊbdzʒɡɦmnlr])`, "w${1}"),
	// /ʋ/ → [ʍ] before voiceless consonants
	rx(`ʋ([pftskxʃ])`, "ʍ${1}"),
	// /j/ → [i̯] in a syllable coda
	rx(`(`+class(vowels)+`)j(`+class(consonantsNoW+boundary)+`)`, "${1}i̯${2}"),
	// /j/ → [i̯] word-initially before a consonant
	rx(boundary+`j(`+class(consonantsNoW)+`)`, boundary+"i̯${1}"),
}

// darkL turns every /l/ not followed by the palatalization mark into [ɫ].
var darkL = rx(`l([^ʲ])`, "ɫ${1}")

// selectAllophones applies vowel reduction, drops the monosyllabic stress
// marker, then resolves the /ʋ/ and /j/ allophones and drops the
// apostrophe placeholder.
func selectAllophones(buf string) string {
	buf = applyAll(buf, vowelRewrites)
	buf = strings.ReplaceAll(buf, monoStress, "")
	buf = applyAll(buf, glideRewrites)
	return strings.ReplaceAll(buf, apostropheMark, "")
}

// velarizeL applies the dark-L allophone. It must run after the stress
// marks have reached their final place.
func velarizeL(buf string) string {
	return darkL.apply(buf)
}
