package ipauk

// orthographicRewrites are consonant-cluster simplifications that happen
// in standard pronunciation but are not written. They run on the Cyrillic
// token wrapped in boundary sentinels, in this order: the geminate rules
// rely on the digraph simplifications having fired.
var orthographicRewrites = buildOrthographicRewrites()

func buildOrthographicRewrites() []rewrite {
	rules := []rewrite{
		literal("нтськ", "ньськ"),
		literal("стськ", "ськ"),
		literal("нтст", "нст"),
		literal("стч", "шч"),
		literal("стд", "зд"),
		literal("стс", "сː"),
		literal("#зш", "#шː"),
		literal("зш", "жш"),
		literal("#зч", "#шч"),
		literal("зч", "жч"),
	}
	// Orthographic geminates of voiced stops and fricatives.
	rules = append(rules, geminates("бвгґд")...)
	// жж and зз outside дж/дз: джж and дзз spell a diphonemic дж/дз.
	rules = append(rules,
		rx(`([^д]+)жж`, "${1}жː"),
		rx(`([^д]+)зз`, "${1}зː"),
	)
	rules = append(rules, geminates("йклмнпрстфхцчшщ")...)
	rules = append(rules,
		literal("дждж", "джː"),
		literal("дздз", "дзː"),
	)
	return rules
}

// simplifyOrthography applies the cluster simplifications to a
// sentinel-wrapped token.
func simplifyOrthography(token string) string {
	return applyAll(token, orthographicRewrites)
}
