package layout

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
	"github.com/tangybbq/dlb-lumatone/pkg/tuning"
)

// FillSpec is one fill pass: where to seed, and how far the fill may travel
// horizontally from the seed in each direction.
type FillSpec struct {
	Start lumatone.KeyPosition
	Left  int
	Right int
}

// Plan is a fully resolved fill plan: which tuning to use, which layout, and
// the fill passes to run in order.
type Plan struct {
	Tuning tuning.Tuning
	Layout Layout
	Fills  []FillSpec
}

// planFile mirrors the TOML shape of a plan on disk:
//
//	tuning = "edo12"
//	layout = "wicki-hayden"
//
//	[layouts.my-layout]        # optional extra named layouts
//	right = "major-second"
//	up-left = "perfect-fourth"
//	up-right = "perfect-fifth"
//
//	[[fill]]
//	group = 2
//	key = 39
//	left = 16
//	right = 16
type planFile struct {
	Tuning  string                `toml:"tuning"`
	Layout  string                `toml:"layout"`
	Layouts map[string]layoutFile `toml:"layouts"`
	Fill    []fillFile            `toml:"fill"`
}

type layoutFile struct {
	Right   string `toml:"right"`
	UpLeft  string `toml:"up-left"`
	UpRight string `toml:"up-right"`
}

type fillFile struct {
	Group int `toml:"group"`
	Key   int `toml:"key"`
	Left  int `toml:"left"`
	Right int `toml:"right"`
}

// LoadPlan reads and resolves a TOML plan file. Every name in the file
// (tuning, layout, intervals) is resolved at load time, so a plan that loads
// without error will not fail later in the fill.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf planFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	p, err := resolvePlan(&pf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func resolvePlan(pf *planFile) (*Plan, error) {
	if pf.Tuning == "" {
		return nil, fmt.Errorf("plan has no tuning")
	}
	tun, err := tuning.Lookup(pf.Tuning)
	if err != nil {
		return nil, err
	}

	if pf.Layout == "" {
		return nil, fmt.Errorf("plan has no layout")
	}
	lay, err := resolveLayout(pf)
	if err != nil {
		return nil, err
	}

	if len(pf.Fill) == 0 {
		return nil, fmt.Errorf("plan has no [[fill]] sections")
	}
	fills := make([]FillSpec, 0, len(pf.Fill))
	for i, f := range pf.Fill {
		if f.Group < 0 || f.Group >= lumatone.NumGroups || f.Key < 0 || f.Key >= lumatone.KeysPerGroup {
			return nil, fmt.Errorf("fill %d: no key at group %d, key %d", i, f.Group, f.Key)
		}
		if f.Left < 0 || f.Right < 0 {
			return nil, fmt.Errorf("fill %d: bounds must not be negative", i)
		}
		fills = append(fills, FillSpec{
			Start: lumatone.KeyPosition{Group: uint8(f.Group), Key: uint8(f.Key)},
			Left:  f.Left,
			Right: f.Right,
		})
	}

	return &Plan{Tuning: tun, Layout: lay, Fills: fills}, nil
}

// resolveLayout looks the plan's layout name up among the file's own
// [layouts] tables first, then the built-in presets.
func resolveLayout(pf *planFile) (Layout, error) {
	if lf, ok := pf.Layouts[pf.Layout]; ok {
		return parseLayout(pf.Layout, lf)
	}
	return Lookup(pf.Layout)
}

func parseLayout(name string, lf layoutFile) (Layout, error) {
	var l Layout
	var err error
	if l.Right, err = tuning.ParseInterval(lf.Right); err != nil {
		return Layout{}, fmt.Errorf("layout %q, right: %w", name, err)
	}
	if l.UpLeft, err = tuning.ParseInterval(lf.UpLeft); err != nil {
		return Layout{}, fmt.Errorf("layout %q, up-left: %w", name, err)
	}
	if l.UpRight, err = tuning.ParseInterval(lf.UpRight); err != nil {
		return Layout{}, fmt.Errorf("layout %q, up-right: %w", name, err)
	}
	return l, nil
}
