package ipauk

import (
	"regexp"
	"strings"
)

// Phone classes shared by the rule tables. They are spliced into regexp
// bracket expressions, so every member must be a literal rune.
const (
	vowelsNoI     = "aɛɪuɔɐoʊe"
	vowels        = vowelsNoI + "i"
	consonantsNoW = "bdzʒɡɦmnlrpftskxʃj"
	consonants    = consonantsNoW + "ʋβ̞wʍ"
	palatalizable = "tdsznlrbpʋfɡmkɦxʃʒ"
	stressMarks   = "ˈˌ"
)

// Reserved markers that live only inside the phonetic buffer.
const (
	boundary       = "#" // word boundary sentinel
	apostropheMark = "%" // ASCII apostrophe, kept apart from the stress marks
	monoStress     = "⁀" // stress forced onto the only vowel of a word
)

// rewrite is a single regexp substitution. rep uses the ${n} expansion
// syntax of regexp.Regexp.ReplaceAllString.
type rewrite struct {
	re  *regexp.Regexp
	rep string
}

// rx builds a rewrite; the pattern must compile.
func rx(pattern, rep string) rewrite {
	return rewrite{re: regexp.MustCompile(pattern), rep: rep}
}

// literal builds a rewrite that replaces a fixed string.
func literal(from, to string) rewrite {
	return rewrite{re: regexp.MustCompile(regexp.QuoteMeta(from)), rep: strings.ReplaceAll(to, "$", "$$")}
}

func (r rewrite) apply(s string) string {
	return r.re.ReplaceAllString(s, r.rep)
}

// applyAll runs every rewrite once, in order, over the whole buffer.
func applyAll(s string, rules []rewrite) string {
	for _, r := range rules {
		s = r.apply(s)
	}
	return s
}

// geminates returns one rewrite per letter turning a doubled letter into
// the letter followed by the length mark.
func geminates(letters string) []rewrite {
	var out []rewrite
	for _, l := range letters {
		c := string(l)
		out = append(out, literal(c+c, c+"ː"))
	}
	return out
}

// class wraps a set of runes into a bracket expression.
func class(set string) string {
	return "[" + set + "]"
}

// notClass wraps a set of runes into a negated bracket expression.
func notClass(set string) string {
	return "[^" + set + "]"
}

// replaceAllSubmatchFunc is ReplaceAllStringFunc with access to the
// capture groups of each match.
func replaceAllSubmatchFunc(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for _, m := range matches {
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(fn(groups))
		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String()
}
