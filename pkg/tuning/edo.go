package tuning

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
)

// Edo is an equal division of the octave. One struct covers every EDO
// variant; they differ only in their constant tables: the octave step count,
// whether the MIDI channel encodes the octave (and the note bias when it
// does), the per-interval step counts, and the sharp- and flat-biased name
// tables (each as long as the octave).
//
// Edo values are immutable and safe to share.
type Edo struct {
	name string
	// Number of steps in an octave.
	octave int
	// When biased is set, the channel number is the octave, and a C in any
	// octave has note number bias, with the rest of the octave above it.
	biased bool
	bias   int
	// Middle C for this variant.
	middleC MidiNote
	// Step counts indexed by Interval.
	intervals [numIntervals]int
	// Pitch names within one octave, by spelling bias.
	sharpNames []string
	flatNames  []string
}

// Name tables. The sharp and flat tables only differ where the tuning has
// genuinely enharmonic spellings; both always start at C.

var edo12SharpNames = []string{
	"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B",
}

var edo12FlatNames = []string{
	"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B",
}

var edo19SharpNames = []string{
	"C", "C♯", "D♭", "D", "D♯", "E♭", "E", "E♯",
	"F", "F♯", "G♭", "G", "G♯", "A♭", "A", "A♯", "B♭", "B", "B♯",
}

var edo19FlatNames = []string{
	"C", "C♯", "D♭", "D", "D♯", "E♭", "E", "F♭",
	"F", "F♯", "G♭", "G", "G♯", "A♭", "A", "A♯", "B♭", "B", "C♭",
}

// 31-EDO marks the single steps between the chromatic notes with the
// quarter-tone accidentals 𝄲 (raise) and 𝄳 (lower).

var edo31SharpNames = []string{
	"C", "C𝄲", "C♯", "D♭", "D𝄳",
	"D", "D𝄲", "D♯", "E♭", "E𝄳",
	"E", "E𝄲", "E♯",
	"F", "F𝄲", "F♯", "G♭", "G𝄳",
	"G", "G𝄲", "G♯", "A♭", "A𝄳",
	"A", "A𝄲", "A♯", "B♭", "B𝄳",
	"B", "B𝄲", "B♯",
}

var edo31FlatNames = []string{
	"C", "C𝄲", "C♯", "D♭", "D𝄳",
	"D", "D𝄲", "D♯", "E♭", "E𝄳",
	"E", "F♭", "F𝄳",
	"F", "F𝄲", "F♯", "G♭", "G𝄳",
	"G", "G𝄲", "G♯", "A♭", "A𝄳",
	"A", "A𝄲", "A♯", "B♭", "B𝄳",
	"B", "C♭", "C𝄳",
}

// EDO12 is standard twelve-tone equal temperament. Notes use the plain MIDI
// encoding: the channel is unrelated to pitch, middle C is note 60.
var EDO12 = &Edo{
	name:       "edo12",
	octave:     12,
	middleC:    MidiNote{Channel: 1, Note: 60},
	intervals:  [numIntervals]int{1, 2, 3, 4, 5, 6, 6, 7},
	sharpNames: edo12SharpNames,
	flatNames:  edo12FlatNames,
}

// EDO19 divides the octave into 19 steps. Too many steps fit usefully in a
// single 0..127 note range, so the channel number carries the octave, with
// C at note number 2 in each octave.
var EDO19 = &Edo{
	name:       "edo19",
	octave:     19,
	biased:     true,
	bias:       2,
	middleC:    MidiNote{Channel: 4, Note: 2},
	intervals:  [numIntervals]int{2, 3, 5, 6, 8, 9, 10, 11},
	sharpNames: edo19SharpNames,
	flatNames:  edo19FlatNames,
}

// EDO31 divides the octave into 31 steps, close to quarter-comma meantone.
// Channel-as-octave encoding, like EDO19.
var EDO31 = &Edo{
	name:       "edo31",
	octave:     31,
	biased:     true,
	bias:       2,
	middleC:    MidiNote{Channel: 4, Note: 2},
	intervals:  [numIntervals]int{3, 5, 8, 10, 13, 15, 16, 18},
	sharpNames: edo31SharpNames,
	flatNames:  edo31FlatNames,
}

// Tunings is the registry of built-in tuning systems by name.
var Tunings = map[string]Tuning{
	EDO12.name: EDO12,
	EDO19.name: EDO19,
	EDO31.name: EDO31,
}

// Names returns the registered tuning names, sorted.
func Names() []string {
	names := make([]string, 0, len(Tunings))
	for name := range Tunings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named tuning.
func Lookup(name string) (Tuning, error) {
	t, ok := Tunings[name]
	if !ok {
		return nil, fmt.Errorf("unknown tuning %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

func (e *Edo) String() string { return e.name }

// Octave returns the number of steps in one octave.
func (e *Edo) Octave() int { return e.octave }

// Steps returns the step count of iv in this division.
func (e *Edo) Steps(iv Interval) int {
	return e.intervals[iv]
}

// MiddleC returns the variant's reference note.
func (e *Edo) MiddleC() MidiNote {
	return e.middleC
}

// octaveShift is added (in octaves) to the flattened pitch coordinate during
// channel-biased arithmetic so intermediate values never go negative.
const octaveShift = 100

// Interval adjusts note by iv, upward when up is set.
func (e *Edo) Interval(note MidiNote, iv Interval, up bool) (MidiNote, bool) {
	steps := e.Steps(iv)
	if !up {
		steps = -steps
	}

	if e.biased {
		// Flatten channel/note into a single pitch coordinate, step it,
		// and split it back apart.
		flat := int(note.Channel)*e.octave + int(note.Note) - e.bias
		flat += octaveShift*e.octave + steps
		if flat < 0 {
			return MidiNote{}, false
		}
		oct := flat/e.octave - octaveShift
		if oct < 0 || oct > 128 {
			return MidiNote{}, false
		}
		return MidiNote{
			Channel: uint8(oct),
			Note:    uint8(flat%e.octave + e.bias),
		}, true
	}

	pitch := int(note.Note) + steps
	if pitch < 0 || pitch > 127 {
		return MidiNote{}, false
	}
	return MidiNote{Channel: note.Channel, Note: uint8(pitch)}, true
}

// Name renders a note name such as "C4" or "F♯3". The octave number comes
// from the channel in biased mode, and from the offset against middle C
// (assumed to sit in octave 4) otherwise.
func (e *Edo) Name(note MidiNote, sharp bool) string {
	names := e.sharpNames
	if !sharp {
		names = e.flatNames
	}

	if e.biased {
		idx := floorMod(int(note.Note)-e.bias, e.octave)
		return fmt.Sprintf("%s%d", names[idx], note.Channel)
	}

	pitch := int(note.Note) - int(e.middleC.Note) + e.octave*4
	oct := floorDiv(pitch, e.octave)
	return fmt.Sprintf("%s%d", names[pitch-oct*e.octave], oct)
}

// Key color classes, one per kind of accidental in the rendered name.
var (
	colorReference   = lumatone.RGB{R: 255, G: 128, B: 128}
	colorNatural     = lumatone.RGB{R: 255, G: 255, B: 255}
	colorSharp       = lumatone.RGB{R: 128, G: 128, B: 255}
	colorFlat        = lumatone.RGB{R: 128, G: 192, B: 255}
	colorDoubleSharp = lumatone.RGB{R: 96, G: 96, B: 192}
	colorDoubleFlat  = lumatone.RGB{R: 96, G: 160, B: 192}
	colorQuarterUp   = lumatone.RGB{R: 192, G: 128, B: 255}
	colorQuarterDown = lumatone.RGB{R: 255, G: 192, B: 128}
)

// Color classifies the rendered name of the note into a display color: the
// reference note, naturals, and each class of accidental get distinct
// colors. Downstream rendering relies on these being stable per pitch class.
func (e *Edo) Color(note MidiNote, sharp bool) lumatone.RGB {
	name := e.Name(note, sharp)
	switch {
	case name == e.Name(e.middleC, sharp):
		return colorReference
	case strings.Contains(name, "𝄪"):
		return colorDoubleSharp
	case strings.Contains(name, "𝄫"):
		return colorDoubleFlat
	case strings.Contains(name, "𝄲"):
		return colorQuarterUp
	case strings.Contains(name, "𝄳"):
		return colorQuarterDown
	case strings.Contains(name, "♯"):
		return colorSharp
	case strings.Contains(name, "♭"):
		return colorFlat
	default:
		return colorNatural
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
