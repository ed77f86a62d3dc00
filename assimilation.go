package ipauk

import "regexp"

// voicedObstruents trigger regressive voicing assimilation.
const voicedObstruents = "bdzʒɡɦ"

// voicing pairs each voiceless obstruent with its voiced counterpart.
// The patterns are disjoint, so their order does not change the result.
var voicing = []struct {
	voiceless, voiced string
}{
	{"p", "b"},
	{"f", "v"},
	{"t", "d"},
	{"tʲ", "dʲ"},
	{"s", "z"},
	{"sʲ", "zʲ"},
	{"ʃ", "ʒ"},
	{"k", "ɡ"},
	{"x", "ɦ"},
	{"t͡s", "d͡z"},
	{"t͡sʲ", "d͡zʲ"},
	{"t͡ʃ", "d͡ʒ"},
	{"ʃt͡ʃ", "ʒd͡ʒ"},
}

// assimilationRewrites is the palatalization and cluster assimilation
// cascade. Each rewrite runs exactly once, in this order.
var assimilationRewrites = buildAssimilationRewrites()

func buildAssimilationRewrites() []rewrite {
	pal := `(` + class(palatalizable) + `)`

	rules := []rewrite{
		// Palatalizable consonants before /i/ and /j/ become soft; the
		// /j/ itself is absorbed.
		rx(pal+`(ː?)(`+class(stressMarks+monoStress)+`?)i`, "${1}ʲ${2}${3}i"),
		rx(pal+`(ː?)j`, "${1}ʲ${2}"),
		// -тьс- followed by /j/ leaves a stray glide.
		literal("ʲːj", "ʲː"),
		// ст + ц' → [с'ц'], length dropped.
		rx(`st͡sʲ(ː?)`, "sʲt͡sʲ"),
	}

	// A voiceless obstruent before voiced obstruents becomes voiced.
	for _, v := range voicing {
		rules = append(rules, rx(regexp.QuoteMeta(v.voiceless)+`(`+class(voicedObstruents)+`+)`, v.voiced+"${1}"))
	}

	rules = append(rules,
		// Of two consonants where the second is soft, a dental first one
		// is soft too. Labials do not take part.
		rx(`([tdsznl])(.)ʲ`, "${1}ʲ${2}ʲ"),
		rx(`([tdsznl])t͡sʲ`, "${1}ʲt͡sʲ"),
		rx(`([tdsznl])d͡zʲ`, "${1}ʲd͡zʲ"),
		rx(`t͡s(.)ʲ`, "t͡sʲ${1}ʲ"),
		rx(`d͡z(.)ʲ`, "d͡zʲ${1}ʲ"),
		literal("d͡zt͡sʲ", "d͡zʲt͡sʲ"),
		literal("t͡sd͡zʲ", "t͡sʲd͡zʲ"),

		// Hushing consonants before a soft hissing one become hissing.
		literal("ʒt͡sʲ", "zʲt͡sʲ"),
		literal("t͡ʃt͡sʲ", "t͡sʲː"),
		literal("ʃt͡sʲ", "sʲt͡sʲ"),
		literal("ʃsʲ", "sʲː"),

		// Hissing consonants before hushing ones become hushing. Word-initial
		// зш and зч are handled by the orthographic rules.
		literal("zʒ", "ʒː"),
		literal("sʃ", "ʃː"),
		literal("zt͡ʃ", "ʒt͡ʃ"),
		literal("zd͡ʒ", "ʒd͡ʒ"),
		literal("t͡ʒ", "d͡ʒ"),
		literal("t͡z", "d͡z"),

		// CʲCʲCʲ → CCʲCʲ
		rx(`(`+notClass(nucleusVowels)+`+)ʲ(`+notClass(nucleusVowels)+`+)ʲ(`+notClass(nucleusVowels)+`+)ʲ`, "${1}${2}ʲ${3}ʲ"),
	)
	return rules
}

// assimilate applies palatalization and consonant assimilation.
func assimilate(buf string) string {
	return applyAll(buf, assimilationRewrites)
}
