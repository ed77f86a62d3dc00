package ipauk

// Stage names a pass of the per-token rewrite pipeline.
type Stage string

const (
	StageOrthography  Stage = "orthography"
	StagePhonemes     Stage = "phonemes"
	StageAssimilation Stage = "assimilation"
	StageAllophones   Stage = "allophones"
	StageStress       Stage = "stress"
	StageFinal        Stage = "final"
)

// Step holds the phonetic buffer as a stage left it.
type Step struct {
	// Stage is the pass that produced Output.
	Stage Stage
	// Output still carries the boundary sentinels and internal markers.
	Output string
}

// TokenTrace records how a single token went through the pipeline.
type TokenTrace struct {
	// Token is the normalized token, without sentinels.
	Token string
	// Steps lists the buffer after each stage, in pipeline order.
	Steps []Step
	// IPA is the transcription of the token with the sentinels removed.
	IPA string
}
