// Package ltn reads and writes Lumatone .ltn mapping files.
//
// The format is line oriented: numbered [BoardN] sections, one per key
// group, each followed by per-key entries for the note number (Key_i), the
// MIDI channel (Chan_i), and the key color as six hex digits (Col_i). Files
// written by the editor carry a number of global configuration settings as
// well; those are accepted and ignored here.
package ltn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
)

var (
	boardRe  = regexp.MustCompile(`^\[Board(\d+)\]$`)
	keyRe    = regexp.MustCompile(`^Key_(\d+)=(\d+)$`)
	chanRe   = regexp.MustCompile(`^Chan_(\d+)=(\d+)$`)
	colRe    = regexp.MustCompile(`^Col_(\d+)=([0-9a-fA-F]{6})$`)
	invertRe = regexp.MustCompile(`^CCInvert_(\d+)(=.*)?$`)

	// Global settings the editor writes that have no meaning for the
	// mapping itself.
	ignoreRe = regexp.MustCompile(`^(AfterTouchActive|LightOnKeyStrokes|InvertFootController|InvertSustain|ExprCtrlSensivity|VelocityIntrvlTbl|NoteOnOffVelocityCrvTbl|FaderConfig|afterTouchConfig|LumaTouchConfig)=(.*)$`)
)

// boardState accumulates one [BoardN] section until the next section starts.
type boardState struct {
	group int
	keys  [lumatone.KeysPerGroup]uint8
	chans [lumatone.KeysPerGroup]uint8
	cols  [lumatone.KeysPerGroup]lumatone.RGB
}

// Load parses an LTN mapping. Every key of every board section present in
// the file gets an assignment; labels are synthesized as "channel:note".
func Load(r io.Reader) (*lumatone.Keyboard, error) {
	kb := lumatone.NewKeyboard()
	var state *boardState

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		if m := boardRe.FindStringSubmatch(line); m != nil {
			state.flush(kb)
			group, _ := strconv.Atoi(m[1])
			if group >= lumatone.NumGroups {
				return nil, fmt.Errorf("line %d: board %d out of range", lineno, group)
			}
			state = &boardState{group: group}
			for i := range state.cols {
				state.cols[i] = lumatone.White()
			}
			continue
		}
		if state == nil {
			if line == "" || ignoreRe.MatchString(line) {
				continue
			}
			return nil, fmt.Errorf("line %d: %q before any [BoardN] section", lineno, line)
		}

		switch {
		case keyRe.MatchString(line):
			m := keyRe.FindStringSubmatch(line)
			if err := state.setField(m, &state.keys); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
		case chanRe.MatchString(line):
			m := chanRe.FindStringSubmatch(line)
			if err := state.setField(m, &state.chans); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
		case colRe.MatchString(line):
			m := colRe.FindStringSubmatch(line)
			index, _ := strconv.Atoi(m[1])
			if index >= lumatone.KeysPerGroup {
				return nil, fmt.Errorf("line %d: key %d out of range", lineno, index)
			}
			color, err := lumatone.ParseHex(m[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			state.cols[index] = color
		case invertRe.MatchString(line), ignoreRe.MatchString(line), line == "":
			// Accepted but not represented in the keyboard model.
		default:
			return nil, fmt.Errorf("line %d: unrecognized line %q", lineno, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	state.flush(kb)

	return kb, nil
}

// setField stores a parsed Key_/Chan_ value into the given per-key array.
func (s *boardState) setField(m []string, dst *[lumatone.KeysPerGroup]uint8) error {
	index, _ := strconv.Atoi(m[1])
	if index >= lumatone.KeysPerGroup {
		return fmt.Errorf("key %d out of range", index)
	}
	value, err := strconv.ParseUint(m[2], 10, 8)
	if err != nil {
		return fmt.Errorf("value %q out of range", m[2])
	}
	dst[index] = uint8(value)
	return nil
}

// flush writes the accumulated section into the keyboard. A nil receiver
// (before the first section) is a no-op.
func (s *boardState) flush(kb *lumatone.Keyboard) {
	if s == nil {
		return
	}
	for key := 0; key < lumatone.KeysPerGroup; key++ {
		channel := s.chans[key]
		note := s.keys[key]
		kb.Set(lumatone.KeyPosition{Group: uint8(s.group), Key: uint8(key)}, &lumatone.KeyInfo{
			Channel: channel,
			Note:    note,
			Color:   s.cols[key],
			Label:   fmt.Sprintf("%d:%d", channel, note),
		})
	}
}

// LoadFile loads an LTN mapping from a file.
func LoadFile(path string) (*lumatone.Keyboard, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	kb, err := Load(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kb, nil
}

// Save writes the keyboard as an LTN mapping, boards in order. Unassigned
// keys are written as channel 0, note 0, black.
func Save(w io.Writer, kb *lumatone.Keyboard) error {
	bw := bufio.NewWriter(w)
	for group := 0; group < lumatone.NumGroups; group++ {
		fmt.Fprintf(bw, "[Board%d]\n", group)
		for key := 0; key < lumatone.KeysPerGroup; key++ {
			info := kb.Get(lumatone.KeyPosition{Group: uint8(group), Key: uint8(key)})
			if info == nil {
				info = &lumatone.KeyInfo{}
			}
			fmt.Fprintf(bw, "Key_%d=%d\n", key, info.Note)
			fmt.Fprintf(bw, "Chan_%d=%d\n", key, info.Channel)
			fmt.Fprintf(bw, "Col_%d=%02x%02x%02x\n", key, info.Color.R, info.Color.G, info.Color.B)
		}
	}
	return bw.Flush()
}

// SaveFile writes the keyboard to path as an LTN mapping.
func SaveFile(path string, kb *lumatone.Keyboard) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(fd, kb); err != nil {
		fd.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return fd.Close()
}
