package ipauk

import "regexp"

// permissibleOnsets are the consonant clusters that may begin a syllable.
//
// The velar stop is spelled with IPA ɡ (U+0261), the same rune the phoneme
// stage emits. An ASCII g here would never match, and аґру́с would come out
// as ɐɡˈrus instead of ɐˈɡrus.
var permissibleOnsets = map[string]bool{
	"spr": true, "str": true, "skr": true, "spl": true, "skl": true,
	"sp": true, "st": true, "sk": true, "sf": true, "sx": true,
	"pr": true, "br": true, "tr": true, "dr": true, "kr": true,
	"ɡr": true, "ɦr": true, "fr": true, "xr": true,
	"pl": true, "bl": true, "kl": true, "ɡl": true, "ɦl": true,
	"fl": true, "xl": true,
}

// IsPermissibleOnset reports whether cluster may begin a syllable.
func IsPermissibleOnset(cluster string) bool {
	return permissibleOnsets[cluster]
}

var (
	nonVowel = notClass(boundary + vowels)

	// Put the stress mark before the last consonant of the cluster before
	// its vowel, with that consonant's palatalization and length marks.
	stressOverCoda = rx(`(`+nonVowel+`?[ʲː]*)(`+class(stressMarks)+`)`, "${2}${1}")
	// Then over the first half of an affricate.
	stressOverTieBar = rx(`(`+nonVowel+`͡)(`+class(stressMarks)+`)`, "${2}${1}")
	// Two consonants around the stress mark; the onset table decides.
	stressInCluster = regexp.MustCompile(`(.)(ʲ?)(` + class(consonants) + `)(ʲ?)(` + class(stressMarks) + `)(` + class(consonants) + `)`)
	// An affricate split by the mark moves as a whole: before it when a
	// glide follows, after it otherwise.
	affricateBeforeGlide = rx(`(`+nonVowel+`͡)(`+class(stressMarks)+`)(.ʲ?j)`, "${2}${1}${3}")
	affricateSplit       = rx(`(`+nonVowel+`͡)(`+class(stressMarks)+`)(.ʲ?)`, "${1}${3}${2}")
	// The first syllable takes the whole word-initial cluster.
	stressOverInitial = rx(boundary+`(`+nonVowel+`+)(`+class(stressMarks)+`)`, boundary+"${2}${1}")
	// And a word-initial non-syllabic [u̯] or [i̯].
	stressOverInitialGlide = rx(boundary+`([ui]̯)(`+class(stressMarks)+`)`, boundary+"${2}${1}")
	// Cluster moves can leave a length mark between two palatalization marks.
	lengthPalatalCleanup = rx(`ʲ?ːʲ`, "ʲː")
)

// placeOnset decides where the stress mark goes inside a cluster a·b·c
// where the mark sits between b and c.
func placeOnset(g []string) string {
	a, aj, b, bj, stress, c := g[1], g[2], g[3], g[4], g[5], g[6]

	switch {
	case permissibleOnsets[a+b+c]:
		return stress + a + aj + b + bj + c
	case permissibleOnsets[b+c], c == "j":
		return a + aj + stress + b + bj + c
	default:
		return a + aj + b + bj + stress + c
	}
}

// repositionStress moves each stress mark from before its vowel to the
// start of its syllable.
func repositionStress(buf string) string {
	buf = stressOverCoda.apply(buf)
	buf = stressOverTieBar.apply(buf)
	buf = replaceAllSubmatchFunc(stressInCluster, buf, placeOnset)
	buf = affricateBeforeGlide.apply(buf)
	buf = affricateSplit.apply(buf)
	buf = stressOverInitial.apply(buf)
	buf = stressOverInitialGlide.apply(buf)
	return lengthPalatalCleanup.apply(buf)
}
