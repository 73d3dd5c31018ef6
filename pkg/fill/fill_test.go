package fill

import (
	"testing"

	"github.com/tangybbq/dlb-lumatone/pkg/layout"
	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
	"github.com/tangybbq/dlb-lumatone/pkg/tuning"
)

var wickiHayden = layout.Presets["wicki-hayden"]

// fillStart is the key near the middle of the keyboard used by the tests.
var fillStart = lumatone.KeyPosition{Group: 2, Key: 39}

func TestFillCoverage(t *testing.T) {
	kb := lumatone.NewKeyboard()
	n := Fill(kb, tuning.EDO12, wickiHayden, fillStart, 16, 16)

	if n == 0 {
		t.Fatal("fill wrote nothing")
	}
	if n != kb.Count() {
		t.Errorf("Fill reported %d keys, keyboard holds %d", n, kb.Count())
	}

	seed := kb.Get(fillStart)
	if seed == nil {
		t.Fatal("start key not assigned")
	}
	if seed.Channel != 1 || seed.Note != 60 || seed.Label != "C4" {
		t.Errorf("start key = %+v, want middle C", seed)
	}

	// A single front assigns pitches consistently: every adjacent pair of
	// assigned keys must differ by the layout interval of the direction
	// between them. Under Wicki-Hayden in 12-EDO that is +2 going right,
	// +5 up-left, and +7 up-right.
	mv := lumatone.NewMoveMap()
	diffs := map[lumatone.Dir]int{
		lumatone.Right:   2,
		lumatone.UpLeft:  5,
		lumatone.UpRight: 7,
	}
	checked := 0
	for _, p := range lumatone.AllPositions() {
		pi := kb.Get(p)
		if pi == nil {
			continue
		}
		for dir, want := range diffs {
			q, ok := mv.Move(p, dir)
			if !ok {
				continue
			}
			qi := kb.Get(q)
			if qi == nil {
				continue
			}
			if got := int(qi.Note) - int(pi.Note); got != want {
				t.Errorf("%v -> %v (%v): note step %d, want %d", p, q, dir, got, want)
			}
			checked++
		}
	}
	if checked == 0 {
		t.Error("no adjacent assigned pairs checked")
	}
}

func TestFillZeroBound(t *testing.T) {
	kb := lumatone.NewKeyboard()
	n := Fill(kb, tuning.EDO12, wickiHayden, fillStart, 0, 0)
	if n == 0 {
		t.Fatal("fill wrote nothing")
	}

	if kb.Get(fillStart) == nil {
		t.Fatal("start key not assigned")
	}

	// Horizontal neighbors are outside the zero bound.
	mv := lumatone.NewMoveMap()
	right, _ := mv.Move(fillStart, lumatone.Right)
	if kb.Get(right) != nil {
		t.Errorf("key right of the start was assigned despite right=0")
	}
	left, _ := mv.Move(fillStart, lumatone.Left)
	if kb.Get(left) != nil {
		t.Errorf("key left of the start was assigned despite left=0")
	}

	// Vertical neighbors are offset-neutral and still get filled.
	up, _ := mv.Move(fillStart, lumatone.UpLeft)
	upInfo := kb.Get(up)
	if upInfo == nil {
		t.Fatal("key up-left of the start not assigned")
	}
	if upInfo.Note != 65 || upInfo.Label != "F4" {
		t.Errorf("up-left of start = %+v, want F4 (note 65)", upInfo)
	}
}

func TestFillSpellingBias(t *testing.T) {
	kb := lumatone.NewKeyboard()
	Fill(kb, tuning.EDO12, wickiHayden, fillStart, 16, 16)

	mv := lumatone.NewMoveMap()

	// Below/left of the seed the fill runs in the decreasing direction and
	// spells with flats.
	left, _ := mv.Move(fillStart, lumatone.Left)
	if info := kb.Get(left); info == nil || info.Label != "B♭3" {
		t.Errorf("left of start = %+v, want B♭3", info)
	}

	// The bias is inherited down a branch, not recomputed: a cell reached
	// by up-left then left twice keeps the sharp spelling it started with.
	p := fillStart
	for _, d := range []lumatone.Dir{lumatone.UpLeft, lumatone.Left, lumatone.Left} {
		p, _ = mv.Move(p, d)
	}
	if info := kb.Get(p); info == nil || info.Label != "C♯4" {
		t.Errorf("up-left, left, left of start = %+v, want C♯4", info)
	}
}

func TestFillIdempotent(t *testing.T) {
	kb := lumatone.NewKeyboard()
	Fill(kb, tuning.EDO12, wickiHayden, fillStart, 16, 16)

	before := make(map[lumatone.KeyPosition]lumatone.KeyInfo)
	for _, p := range lumatone.AllPositions() {
		if info := kb.Get(p); info != nil {
			before[p] = *info
		}
	}

	// Re-running the identical fill writes nothing and, since every pitch
	// matches, lightens nothing either.
	if n := Fill(kb, tuning.EDO12, wickiHayden, fillStart, 16, 16); n != 0 {
		t.Errorf("second fill wrote %d keys, want 0", n)
	}
	for p, want := range before {
		if got := kb.Get(p); got == nil || *got != want {
			t.Errorf("key %v changed on re-fill: %+v, want %+v", p, got, want)
		}
	}
	if kb.Count() != len(before) {
		t.Errorf("Count() = %d after re-fill, want %d", kb.Count(), len(before))
	}
}

func TestFillSeamLightening(t *testing.T) {
	kb := lumatone.NewKeyboard()
	Fill(kb, tuning.EDO12, wickiHayden, fillStart, 16, 16)

	// Seed a second fill on a key the first pass assigned C♯4; its middle
	// C conflicts, so the existing key is lightened and nothing is
	// written.
	mv := lumatone.NewMoveMap()
	p := fillStart
	for _, d := range []lumatone.Dir{lumatone.UpLeft, lumatone.Left, lumatone.Left} {
		p, _ = mv.Move(p, d)
	}
	info := kb.Get(p)
	if info == nil || info.Note != 61 {
		t.Fatalf("expected C♯4 at %v, got %+v", p, info)
	}
	want := info.Color.Lighten()

	if n := Fill(kb, tuning.EDO12, wickiHayden, p, 0, 0); n != 0 {
		t.Errorf("conflicting fill wrote %d keys, want 0", n)
	}
	if got := kb.Get(p).Color; got != want {
		t.Errorf("seam color = %v, want lightened %v", got, want)
	}

	// There is deliberately no guard against repeated lightening; a third
	// collision lightens again.
	want = want.Lighten()
	Fill(kb, tuning.EDO12, wickiHayden, p, 0, 0)
	if got := kb.Get(p).Color; got != want {
		t.Errorf("seam color after second collision = %v, want %v", got, want)
	}
}

func TestFillBiasedTuning(t *testing.T) {
	kb := lumatone.NewKeyboard()
	n := Fill(kb, tuning.EDO31, layout.Presets["harmonic-table"], fillStart, 16, 16)
	if n == 0 {
		t.Fatal("fill wrote nothing")
	}
	seed := kb.Get(fillStart)
	if seed == nil || seed.Channel != 4 || seed.Note != 2 || seed.Label != "C4" {
		t.Errorf("start key = %+v, want C4 in channel-octave encoding", seed)
	}
}

func TestFillPlan(t *testing.T) {
	kb := lumatone.NewKeyboard()
	second := lumatone.KeyPosition{Group: 0, Key: 5}
	plan := &layout.Plan{
		Tuning: tuning.EDO12,
		Layout: wickiHayden,
		Fills: []layout.FillSpec{
			{Start: fillStart, Left: 1, Right: 1},
			{Start: second, Left: 1, Right: 1},
		},
	}
	n := FillPlan(kb, plan)
	if n != kb.Count() {
		t.Errorf("FillPlan reported %d keys, keyboard holds %d", n, kb.Count())
	}
	for _, p := range []lumatone.KeyPosition{fillStart, second} {
		if seed := kb.Get(p); seed == nil || seed.Label != "C4" {
			t.Errorf("start key %v = %+v, want C4", p, seed)
		}
	}
}
