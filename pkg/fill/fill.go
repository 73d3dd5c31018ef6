// Package fill implements the bounded flood fill that populates a keyboard
// surface from a start key, a tuning, and a layout.
//
// The fill advances two coordinate systems in lockstep: the grid position
// (through the adjacency tables) and the pitch (through the tuning's interval
// arithmetic). A branch ends silently as soon as either one runs out: the
// grid edge, the representable pitch range, the caller's horizontal bound, or
// a key that is already assigned.
package fill

import (
	"github.com/tangybbq/dlb-lumatone/pkg/layout"
	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
	"github.com/tangybbq/dlb-lumatone/pkg/tuning"
)

// phase is the diagonal orientation of the fill at a cell, described in
// terms of the tilt used: left means filling up goes to the up-left.
// Up and down moves flip the phase, left and right moves keep it.
type phase int

const (
	phaseLeft phase = iota
	phaseRight
)

func (p phase) complement() phase {
	if p == phaseLeft {
		return phaseRight
	}
	return phaseLeft
}

// cardinal is a direction of expansion as the fill sees it; the phase maps
// it onto a hex grid direction.
type cardinal int

const (
	cardLeft cardinal = iota
	cardRight
	cardUp
	cardDown
)

var cardinals = [4]cardinal{cardLeft, cardRight, cardUp, cardDown}

// xOffset is the horizontal bound adjustment for a step in this direction.
func (c cardinal) xOffset() int {
	switch c {
	case cardLeft:
		return -1
	case cardRight:
		return 1
	}
	return 0
}

// nextPhase returns the phase after a step in this direction.
func (c cardinal) nextPhase(p phase) phase {
	switch c {
	case cardLeft, cardRight:
		return p
	}
	return p.complement()
}

// increasing reports whether a step in this direction raises pitch, which
// selects the sharp spelling for names and colors.
func (c cardinal) increasing() bool {
	return c == cardUp || c == cardRight
}

// dir resolves a cardinal direction to the hex direction for phase p.
func (c cardinal) dir(p phase) lumatone.Dir {
	switch c {
	case cardLeft:
		return lumatone.Left
	case cardRight:
		return lumatone.Right
	case cardUp:
		if p == phaseLeft {
			return lumatone.UpLeft
		}
		return lumatone.UpRight
	default:
		if p == phaseLeft {
			return lumatone.DownLeft
		}
		return lumatone.DownRight
	}
}

// work is one queued cell: where to fill, what pitch it carries, and how the
// fill was oriented when it got there. x is only used for bound checking; it
// is not a grid coordinate.
type work struct {
	x          int
	pos        lumatone.KeyPosition
	note       tuning.MidiNote
	phase      phase
	increasing bool
}

// filler carries the state of one fill pass.
type filler struct {
	keyboard *lumatone.Keyboard
	tuning   tuning.Tuning
	layout   layout.Layout
	left     int
	right    int

	queue   []work
	moves   *lumatone.MoveMap
	written int
}

// Fill floods the keyboard outward from start, assigning the tuning's middle
// C to the start key and stepping pitch by the layout's intervals along each
// grid direction. The fill stops expanding a branch at the grid edge, at
// pitches the tuning cannot represent, at keys already assigned, and at
// horizontal offsets beyond left keys to the left or right keys to the right
// of the start. It returns the number of keys written.
//
// Keys already assigned are never overwritten. When a branch reaches a key
// whose assignment differs in channel or note, the existing color is
// lightened in place to make the seam between the two fronts visible. This
// happens once per colliding branch with no guard against repeats, so a
// heavily contested seam keeps getting lighter; that is intentional.
func Fill(kb *lumatone.Keyboard, tun tuning.Tuning, lay layout.Layout, start lumatone.KeyPosition, left, right int) int {
	f := &filler{
		keyboard: kb,
		tuning:   tun,
		layout:   lay,
		left:     left,
		right:    right,
		moves:    lumatone.NewMoveMap(),
	}
	f.queue = append(f.queue, work{
		x:          0,
		pos:        start,
		note:       tun.MiddleC(),
		phase:      phaseLeft,
		increasing: true,
	})
	f.run()
	return f.written
}

// FillPlan runs each of the plan's fill passes in order over the same
// surface and returns the total number of keys written. Overlapping passes
// merge through the occupied-key rule above.
func FillPlan(kb *lumatone.Keyboard, p *layout.Plan) int {
	total := 0
	for _, spec := range p.Fills {
		total += Fill(kb, p.Tuning, p.Layout, spec.Start, spec.Left, spec.Right)
	}
	return total
}

func (f *filler) run() {
	first := true

	for len(f.queue) > 0 {
		w := f.queue[0]
		f.queue = f.queue[1:]

		if cell := f.keyboard.Get(w.pos); cell != nil {
			// Already filled; this branch stops here. Mark the seam
			// when the two fronts disagree on the pitch.
			if cell.Channel != w.note.Channel || cell.Note != w.note.Note {
				cell.Color = cell.Color.Lighten()
			}
			continue
		}

		if w.x > f.right || w.x < -f.left {
			continue
		}

		f.keyboard.Set(w.pos, &lumatone.KeyInfo{
			Channel: w.note.Channel,
			Note:    w.note.Note,
			Color:   f.tuning.Color(w.note, w.increasing),
			Label:   f.tuning.Name(w.note, w.increasing),
		})
		f.written++

		for _, card := range cardinals {
			dir := card.dir(w.phase)

			pos, ok := f.moves.Move(w.pos, dir)
			if !ok {
				continue
			}
			note, ok := f.noteMove(w.note, dir)
			if !ok {
				continue
			}

			// The spelling bias is picked per direction only while
			// expanding the very first cell; after that each branch
			// keeps the bias it started with.
			increasing := w.increasing
			if first {
				increasing = card.increasing()
			}

			f.queue = append(f.queue, work{
				x:          w.x + card.xOffset(),
				pos:        pos,
				note:       note,
				phase:      card.nextPhase(w.phase),
				increasing: increasing,
			})
		}

		first = false
	}
}

// noteMove steps the pitch by the layout interval belonging to the hex
// direction.
func (f *filler) noteMove(note tuning.MidiNote, dir lumatone.Dir) (tuning.MidiNote, bool) {
	var iv tuning.Interval
	var up bool
	switch dir {
	case lumatone.Left:
		iv, up = f.layout.Right, false
	case lumatone.Right:
		iv, up = f.layout.Right, true
	case lumatone.UpLeft:
		iv, up = f.layout.UpLeft, true
	case lumatone.UpRight:
		iv, up = f.layout.UpRight, true
	case lumatone.DownLeft:
		iv, up = f.layout.UpRight, false
	case lumatone.DownRight:
		iv, up = f.layout.UpLeft, false
	}
	return f.tuning.Interval(note, iv, up)
}
