package ipauk

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Transcribe and Trace.
var (
	// ErrAccentMissing reports multi-syllable input without any stress mark
	// while the accent check is enabled.
	ErrAccentMissing = errors.New("text is missing an accent")
	// ErrReservedMarker reports that an internal marker leaked into the
	// output. It indicates a bug in the rule tables.
	ErrReservedMarker = errors.New("reserved marker in output")
)

// AccentMissingError is returned when the accent check is enabled and the
// text has more than one vowel letter but no acute or grave accent.
type AccentMissingError struct {
	// Vowels is the number of vowel letters found in the normalized text.
	Vowels int
}

func (e *AccentMissingError) Error() string {
	return fmt.Sprintf("the provided text is missing an accent (and has %d vowel letters); "+
		"disable the accent check to transcribe it anyway", e.Vowels)
}

func (e *AccentMissingError) Unwrap() error { return ErrAccentMissing }
