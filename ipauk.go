// Package ipauk transcribes Ukrainian Cyrillic text into narrow IPA.
//
// Stress is taken from the input: put a combining acute (Acute) after the
// stressed vowel, or a combining grave (Grave) for secondary stress.
// Monosyllabic words need no mark. Each space or hyphen separated word runs
// through a fixed sequence of rewrites: cluster simplification, grapheme
// to phone mapping, palatalization and assimilation, allophone selection
// and stress mark placement.
//
// Where дж or дз spell two separate sounds rather than one affricate,
// double the second letter: віджжи́лий, not віджи́лий; підззе́мний, not
// підзе́мний.
//
// All functions are pure and safe for concurrent use.
package ipauk

import (
	"fmt"
	"strings"
)

// Stress marks to append to the stressed vowel of the input.
const (
	Acute = "\u0301" // primary stress
	Grave = "\u0300" // secondary stress
)

// stage is one pass of the per-token pipeline. forceStress is set when a
// single-vowel token must get stressed allophones.
type stage struct {
	name Stage
	run  func(buf string, forceStress bool) string
}

var pipeline = []stage{
	{StageOrthography, func(buf string, _ bool) string { return simplifyOrthography(buf) }},
	{StagePhonemes, mapPhonemes},
	{StageAssimilation, func(buf string, _ bool) string { return assimilate(buf) }},
	{StageAllophones, func(buf string, _ bool) string { return selectAllophones(buf) }},
	{StageStress, func(buf string, _ bool) string { return repositionStress(buf) }},
	{StageFinal, func(buf string, _ bool) string { return velarizeL(buf) }},
}

// Transcribe returns the IPA transcription of a word or a sentence.
//
// With checkAccent set, text that has more than one vowel letter and no
// accent mark is rejected with an *AccentMissingError, and words with a
// single vowel are transcribed as stressed.
func Transcribe(text string, checkAccent bool) (string, error) {
	tokens, err := prepare(text, checkAccent)
	if err != nil {
		return "", err
	}

	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = runPipeline(wrapToken(tok), checkAccent, nil)
	}
	return finish(joinTokens(out))
}

// Trace runs Transcribe and reports the buffer of every token after each
// pipeline stage.
func Trace(text string, checkAccent bool) ([]TokenTrace, error) {
	tokens, err := prepare(text, checkAccent)
	if err != nil {
		return nil, err
	}

	traces := make([]TokenTrace, len(tokens))
	for i, tok := range tokens {
		tt := TokenTrace{Token: tok, Steps: make([]Step, 0, len(pipeline))}
		out := runPipeline(wrapToken(tok), checkAccent, func(s Stage, buf string) {
			tt.Steps = append(tt.Steps, Step{Stage: s, Output: buf})
		})
		if tt.IPA, err = finish(joinTokens([]string{out})); err != nil {
			return nil, err
		}
		traces[i] = tt
	}
	return traces, nil
}

// Examples returns a few accented words for demonstration.
func Examples() []string {
	return []string{
		"Сла" + Acute + "ва",
		"Украї" + Acute + "ні",
		"сме" + Acute + "рть",
		"ворога" + Acute + "м",
		"остзе" + Acute + "йці",
	}
}

// prepare normalizes and validates text and splits it into tokens.
func prepare(text string, checkAccent bool) ([]string, error) {
	text = Normalize(text)
	if checkAccent {
		if err := CheckAccent(text); err != nil {
			return nil, err
		}
	}
	return Tokenize(text), nil
}

// runPipeline passes a sentinel-wrapped token through every stage. record,
// when not nil, sees the buffer after each stage.
func runPipeline(buf string, forceStress bool, record func(Stage, string)) string {
	for _, st := range pipeline {
		buf = st.run(buf, forceStress)
		if record != nil {
			record(st.name, buf)
		}
	}
	return buf
}

// finish checks that no internal marker survived.
func finish(out string) (string, error) {
	if strings.ContainsAny(out, boundary+apostropheMark+monoStress) {
		return "", fmt.Errorf("%w: %q", ErrReservedMarker, out)
	}
	return out, nil
}
