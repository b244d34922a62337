// Package notes maps frequencies onto the 12-tone equal-tempered scale.
// It is a pure downstream consumer of the pitch pipeline: frequency in,
// note name, octave, reference frequency and cents deviation out.
package notes

import (
	"errors"
	"fmt"
	"math"
)

// Equal temperament reference: A4 = 440 Hz at MIDI note 69.
const (
	ReferenceA4     = 440.0
	midiA4          = 69
	semitonesPerOct = 12
	centsPerSemi    = 100
)

// Musical validity range, C0 through B8
const (
	MinValidFrequency = 16.35   // C0
	MaxValidFrequency = 7902.13 // B8
)

// ErrOutOfRange reports a frequency outside the C0-B8 musical range
var ErrOutOfRange = errors.New("frequency outside musical range")

// Chromatic note names, C first so that midi%12 indexes directly
var noteNames = [semitonesPerOct]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Note is a frequency resolved to its nearest equal-tempered pitch
type Note struct {
	Name               string  `json:"name"`                // Pitch class, e.g. "A", "C#"
	Octave             int     `json:"octave"`              // Scientific octave number, C4 = middle C
	ReferenceFrequency float64 `json:"reference_frequency"` // Exact equal-tempered frequency of the named note
	Cents              int     `json:"cents"`               // Rounded deviation from the reference, in cents
}

// IsValid reports whether freq lies inside the C0-B8 musical range
func IsValid(freq float64) bool {
	return freq >= MinValidFrequency && freq <= MaxValidFrequency
}

// FromFrequency resolves a frequency to the nearest equal-tempered note.
// Frequencies outside C0-B8 return ErrOutOfRange.
func FromFrequency(freq float64) (*Note, error) {
	if !IsValid(freq) {
		return nil, fmt.Errorf("%w: %.2f Hz", ErrOutOfRange, freq)
	}

	midi := int(math.Round(float64(midiA4) + semitonesPerOct*math.Log2(freq/ReferenceA4)))

	reference := ReferenceA4 * math.Pow(2, float64(midi-midiA4)/semitonesPerOct)
	cents := int(math.Round(semitonesPerOct * centsPerSemi * math.Log2(freq/reference)))

	return &Note{
		Name:               noteNames[midi%semitonesPerOct],
		Octave:             midi/semitonesPerOct - 1,
		ReferenceFrequency: reference,
		Cents:              cents,
	}, nil
}

// String renders the note as e.g. "A4" or "C#3 +12c"
func (n *Note) String() string {
	if n.Cents == 0 {
		return fmt.Sprintf("%s%d", n.Name, n.Octave)
	}
	return fmt.Sprintf("%s%d %+dc", n.Name, n.Octave, n.Cents)
}
