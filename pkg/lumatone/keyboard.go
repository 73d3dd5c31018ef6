// Package lumatone models the physical key grid of the Lumatone keyboard.
//
// The Lumatone is an isomorphic hex-grid music keyboard with 5 groups of 56
// keys each. The grid is rotated counterclockwise about 8.9 degrees, which
// makes a common 3+4 staggered pattern folded into pentagon-shaped panels.
// Hardware addresses a key by its (group, key) pair; everything else in this
// module (fills, renderers, the LTN format) works in terms of that pair.
package lumatone

const (
	// NumGroups is the number of key panels across the keyboard.
	NumGroups = 5
	// KeysPerGroup is the number of keys within one panel.
	KeysPerGroup = 56
)

// KeyPosition identifies one physical key by its group (0..4) and the key
// index within that group (0..55).
type KeyPosition struct {
	Group uint8
	Key   uint8
}

// Origin returns the top-left key of the keyboard.
func Origin() KeyPosition {
	return KeyPosition{Group: 0, Key: 0}
}

// Valid reports whether p addresses a real key.
func (p KeyPosition) Valid() bool {
	return p.Group < NumGroups && p.Key < KeysPerGroup
}

// AllPositions returns every valid key position, group-major.
func AllPositions() []KeyPosition {
	out := make([]KeyPosition, 0, NumGroups*KeysPerGroup)
	for g := uint8(0); g < NumGroups; g++ {
		for k := uint8(0); k < KeysPerGroup; k++ {
			out = append(out, KeyPosition{Group: g, Key: k})
		}
	}
	return out
}

// KeyInfo is the assignment attached to one key: the MIDI channel and note
// the key sends, the color the key lights up with, and a display label.
type KeyInfo struct {
	Channel uint8
	Note    uint8
	Color   RGB
	Label   string
}

// Keyboard is the full grid of key assignments. Slots start empty and are
// populated by a fill or by loading an LTN file. The zero value is not
// usable; call NewKeyboard.
//
// Keyboard is not safe for concurrent use.
type Keyboard struct {
	keys [NumGroups][KeysPerGroup]*KeyInfo
}

// NewKeyboard returns a keyboard with every slot empty.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Get returns the assignment for p, or nil when the slot is empty or p is
// out of range. The returned pointer aliases the keyboard's slot, so callers
// may adjust an existing assignment in place.
func (k *Keyboard) Get(p KeyPosition) *KeyInfo {
	if !p.Valid() {
		return nil
	}
	return k.keys[p.Group][p.Key]
}

// Set stores info as the assignment for p. A nil info clears the slot.
// Out-of-range positions are ignored.
func (k *Keyboard) Set(p KeyPosition, info *KeyInfo) {
	if !p.Valid() {
		return
	}
	k.keys[p.Group][p.Key] = info
}

// Count returns the number of assigned keys.
func (k *Keyboard) Count() int {
	n := 0
	for g := 0; g < NumGroups; g++ {
		for i := 0; i < KeysPerGroup; i++ {
			if k.keys[g][i] != nil {
				n++
			}
		}
	}
	return n
}

// RowSpan describes the horizontal extent of one visual row of the grid:
// the column of its first key and the number of keys in the row.
type RowSpan struct {
	Offset int
	Len    int
}

// RowSpans gives the offset and size of each of the 19 visual rows of the
// keyboard, from the top. The spans are a property of the physical grid and
// do not depend on any tuning or mapping.
var RowSpans = [19]RowSpan{
	{0, 2},
	{0, 5},
	{0, 8},
	{0, 11},
	{0, 14},
	{0, 17},
	{0, 20},
	{0, 23},
	{0, 26},
	{1, 28},
	{4, 26},
	{7, 23},
	{10, 20},
	{13, 17},
	{16, 14},
	{19, 11},
	{22, 8},
	{25, 5},
	{28, 2},
}
