// Package layout describes isomorphic keyboard layouts: the musical interval
// spanned by each grid direction, plus TOML plan files that bundle a tuning,
// a layout, and the fill starts to run.
package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tangybbq/dlb-lumatone/pkg/tuning"
)

// Layout gives the interval spanned by moving one key along each generator
// direction of the grid. The three intervals are not independent (up-right is
// the sum of up-left and right); callers are trusted to supply a coherent
// set, exactly as with the preset layouts.
type Layout struct {
	Right   tuning.Interval
	UpLeft  tuning.Interval
	UpRight tuning.Interval
}

// Presets are the built-in named layouts.
var Presets = map[string]Layout{
	// Wicki-Hayden: whole tones across, fourths and fifths on the
	// diagonals. Octaves run horizontally on the Lumatone's tilted grid.
	"wicki-hayden": {
		Right:   tuning.MajorSecond,
		UpLeft:  tuning.PerfectFourth,
		UpRight: tuning.PerfectFifth,
	},
	// Harmonic table: fifths across, stacked thirds on the diagonals.
	"harmonic-table": {
		Right:   tuning.PerfectFifth,
		UpLeft:  tuning.MinorThird,
		UpRight: tuning.MajorThird,
	},
}

// PresetNames returns the built-in layout names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named preset layout.
func Lookup(name string) (Layout, error) {
	l, ok := Presets[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q (have %s)",
			name, strings.Join(PresetNames(), ", "))
	}
	return l, nil
}
