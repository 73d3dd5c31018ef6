// Package tuning models tuning systems: interval arithmetic over MIDI
// note/channel pairs, note naming with sharp or flat spellings, and the
// display colors derived from those names.
package tuning

import (
	"fmt"

	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
)

// MidiNote is a synthesizer-addressable pitch: a MIDI channel and note
// number. For tunings with more steps than fit in the 0..127 note range, the
// channel carries the octave number instead of being a plain channel.
type MidiNote struct {
	Channel uint8
	Note    uint8
}

// Interval is a named musical interval used to build keyboard layouts.
type Interval int

const (
	MinorSecond Interval = iota
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	AugmentedFourth
	DiminishedFifth
	PerfectFifth

	numIntervals
)

var intervalNames = [numIntervals]string{
	"minor-second",
	"major-second",
	"minor-third",
	"major-third",
	"perfect-fourth",
	"augmented-fourth",
	"diminished-fifth",
	"perfect-fifth",
}

func (iv Interval) String() string {
	if iv < 0 || iv >= numIntervals {
		return "invalid"
	}
	return intervalNames[iv]
}

// ParseInterval maps an interval name ("major-second", ...) back to its
// value. These are the names used in plan files and on the command line.
func ParseInterval(name string) (Interval, error) {
	for i, n := range intervalNames {
		if n == name {
			return Interval(i), nil
		}
	}
	return 0, fmt.Errorf("unknown interval %q", name)
}

// IntervalNames lists the parseable interval names in enum order.
func IntervalNames() []string {
	return intervalNames[:]
}

// A Tuning provides as much information about a tuning system as is needed
// to produce a keyboard layout and MIDI mapping.
type Tuning interface {
	// Interval adjusts a note by an interval, upward when up is true. The
	// second result is false when the note would leave the representable
	// range, or the interval does not make sense for this tuning.
	Interval(note MidiNote, iv Interval, up bool) (MidiNote, bool)

	// Name returns a display name for the note, e.g. "C4". The sharp hint
	// selects which enharmonic spelling to prefer in tunings that
	// distinguish them.
	Name(note MidiNote, sharp bool) string

	// Color suggests a display color for the note, classified from its
	// rendered name under the same sharp hint.
	Color(note MidiNote, sharp bool) lumatone.RGB

	// Steps returns the step count for an interval. Tunings whose
	// intervals are not a fixed number of steps should override Interval
	// directly and need not give Steps a meaning.
	Steps(iv Interval) int

	// MiddleC is the tuning's fixed reference note.
	MiddleC() MidiNote
}
