package lumatone

// A single group of the keyboard is laid out like this (ignoring the tilt).
// The pipes mark keys that belong to the next group over.
//
//	00  01
//	  02  03  04  05  06
//	07  08  09  10  11  12| 00  01  ...
//	  13  14  15  16  17  18| 02  03 ...
//	19  20  21  22  23  24| 07  08
//	  25  26  27  28  29  30| 13  14 ...
//	31  32  33  34  35  36| 19  20 ...
//	  37  38  39  40  41  42| 25  26 ...
//	43  44  45  46  47  48| 31  32 ...
//	      49  50  51  52  53| 37  38 ...
//	                54  55| 43  44
//
// The pattern is irregular enough (a 3+4 stagger folded into a pentagon, with
// seams into the neighboring group) that no closed-form offset holds for every
// key. The neighbor relation is therefore kept as literal per-direction
// tables, and its correctness is pinned down by the exhaustive round-trip and
// injectivity tests rather than by construction.

// Dir is a direction of movement along the hex grid.
type Dir int

const (
	UpLeft Dir = iota
	UpRight
	Right
	DownRight
	DownLeft
	Left

	numDirs = 6
)

// Opposite returns the direction that undoes d.
func (d Dir) Opposite() Dir {
	switch d {
	case UpLeft:
		return DownRight
	case UpRight:
		return DownLeft
	case Right:
		return Left
	case DownRight:
		return UpLeft
	case DownLeft:
		return UpRight
	case Left:
		return Right
	}
	return d
}

func (d Dir) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case Right:
		return "right"
	case DownRight:
		return "down-right"
	case DownLeft:
		return "down-left"
	case Left:
		return "left"
	}
	return "invalid"
}

// Dirs lists all six directions.
var Dirs = [numDirs]Dir{UpLeft, UpRight, Right, DownRight, DownLeft, Left}

// keyMove is one entry of a per-direction table: the change in group and the
// destination key index within that group.
type keyMove struct {
	group int8
	key   uint8
}

// MoveMap holds the six per-direction adjacency tables. The tables are
// indexed by key only, not by group: every group has identical internal
// topology, and inter-group movement differs only by the ±1 group delta
// stored in the seam entries. Clamping at the first and last group is applied
// by Move after the table lookup, so the same table serves interior and edge
// groups alike.
type MoveMap struct {
	moves [numDirs][KeysPerGroup]*keyMove
}

func mv(group int8, key uint8) *keyMove {
	return &keyMove{group: group, key: key}
}

// NewMoveMap builds the adjacency tables.
func NewMoveMap() *MoveMap {
	m := &MoveMap{}

	// Movement to the right: the next key index, except at the short top
	// rows and along the group seam.
	right := &m.moves[Right]
	for i := 0; i < KeysPerGroup-1; i++ {
		right[i] = mv(0, uint8(i+1))
	}
	// Two of the keys have nothing to the right.
	right[1] = nil
	right[6] = nil
	// And several of the keys move to the next group.
	right[12] = mv(1, 0)
	right[18] = mv(1, 2)
	right[24] = mv(1, 7)
	right[30] = mv(1, 13)
	right[36] = mv(1, 19)
	right[42] = mv(1, 25)
	right[48] = mv(1, 31)
	right[53] = mv(1, 37)
	right[55] = mv(1, 43)

	// Movement to the left: the previous key index, with the mirror-image
	// exceptions.
	left := &m.moves[Left]
	for i := 1; i < KeysPerGroup; i++ {
		left[i] = mv(0, uint8(i-1))
	}
	// Keys with nothing to the left.
	left[49] = nil
	left[54] = nil
	// And the ones that move to the previous group.
	left[0] = mv(-1, 12)
	left[2] = mv(-1, 18)
	left[7] = mv(-1, 24)
	left[13] = mv(-1, 30)
	left[19] = mv(-1, 36)
	left[25] = mv(-1, 42)
	left[31] = mv(-1, 48)
	left[37] = mv(-1, 53)
	left[43] = mv(-1, 55)

	// Movement down and right.
	dr := [KeysPerGroup]uint8{
		/* 00 */ 2, 3,
		/* 02 */ 8, 9, 10, 11, 12,
		/* 07 */ 13, 14, 15, 16, 17, 18,
		/* 13 */ 20, 21, 22, 23, 24, 7,
		/* 19 */ 25, 26, 27, 28, 29, 30,
		/* 25 */ 32, 33, 34, 35, 36, 19,
		/* 31 */ 37, 38, 39, 40, 41, 42,
		/* 37 */ 44, 45, 46, 47, 48, 31,
		/* 43 */ 0, 49, 50, 51, 52, 53,
		/* 49 */ 0, 0, 54, 55, 43,
		/* 54 */ 0, 0,
	}
	for i, k := range dr {
		m.moves[DownRight][i] = mv(0, k)
	}
	for _, i := range []int{43, 49, 50, 54, 55} {
		m.moves[DownRight][i] = nil
	}
	for _, i := range []int{18, 30, 42, 53} {
		m.moves[DownRight][i].group = 1
	}

	// Movement up and left.
	ul := [KeysPerGroup]uint8{
		/* 00 */ 0, 0,
		/* 02 */ 0, 1, 0, 0, 0,
		/* 07 */ 18, 2, 3, 4, 5, 6,
		/* 13 */ 7, 8, 9, 10, 11, 12,
		/* 19 */ 30, 13, 14, 15, 16, 17,
		/* 25 */ 19, 20, 21, 22, 23, 24,
		/* 31 */ 42, 25, 26, 27, 28, 29,
		/* 37 */ 31, 32, 33, 34, 35, 36,
		/* 43 */ 53, 37, 38, 39, 40, 41,
		/* 49 */ 44, 45, 46, 47, 48,
		/* 54 */ 51, 52,
	}
	for i, k := range ul {
		m.moves[UpLeft][i] = mv(0, k)
	}
	for _, i := range []int{0, 1, 4, 5, 6} {
		m.moves[UpLeft][i] = nil
	}
	for _, i := range []int{7, 19, 31, 43} {
		m.moves[UpLeft][i].group = -1
	}

	// Movement down and left.
	dl := [KeysPerGroup]uint8{
		/* 00 */ 18, 2,
		/* 02 */ 7, 8, 9, 10, 11,
		/* 07 */ 30, 13, 14, 15, 16, 17,
		/* 13 */ 19, 20, 21, 22, 23, 24,
		/* 19 */ 42, 25, 26, 27, 28, 29,
		/* 25 */ 31, 32, 33, 34, 35, 36,
		/* 31 */ 53, 37, 38, 39, 40, 41,
		/* 37 */ 43, 44, 45, 46, 47, 48,
		/* 43 */ 0, 0, 49, 50, 51, 52,
		/* 49 */ 0, 0, 0, 54, 55,
		/* 54 */ 0, 0,
	}
	for i, k := range dl {
		m.moves[DownLeft][i] = mv(0, k)
	}
	for _, i := range []int{43, 44, 49, 50, 51, 54, 55} {
		m.moves[DownLeft][i] = nil
	}
	for _, i := range []int{0, 7, 19, 31} {
		m.moves[DownLeft][i].group = 1
	}

	// Movement up and right.
	ur := [KeysPerGroup]uint8{
		/* 00 */ 0, 0,
		/* 02 */ 1, 0, 0, 0, 0,
		/* 07 */ 2, 3, 4, 5, 6, 0,
		/* 13 */ 8, 9, 10, 11, 12, 0,
		/* 19 */ 13, 14, 15, 16, 17, 18,
		/* 25 */ 20, 21, 22, 23, 24, 7,
		/* 31 */ 25, 26, 27, 28, 29, 30,
		/* 37 */ 32, 33, 34, 35, 36, 19,
		/* 43 */ 37, 38, 39, 40, 41, 42,
		/* 49 */ 45, 46, 47, 48, 31,
		/* 54 */ 52, 53,
	}
	for i, k := range ur {
		m.moves[UpRight][i] = mv(0, k)
	}
	for _, i := range []int{0, 1, 3, 4, 5, 6, 12} {
		m.moves[UpRight][i] = nil
	}
	for _, i := range []int{18, 30, 42, 53} {
		m.moves[UpRight][i].group = -1
	}

	return m
}

// Move returns the key one step from p in direction d. The second result is
// false when there is no neighbor: p sits on the outer edge of the grid, or
// the step would cross below group 0 or past the last group.
func (m *MoveMap) Move(p KeyPosition, d Dir) (KeyPosition, bool) {
	if !p.Valid() {
		return KeyPosition{}, false
	}
	step := m.moves[d][p.Key]
	if step == nil {
		return KeyPosition{}, false
	}
	if (step.group < 0 && p.Group == 0) || (step.group > 0 && p.Group == NumGroups-1) {
		return KeyPosition{}, false
	}
	return KeyPosition{
		Group: uint8(int8(p.Group) + step.group),
		Key:   step.key,
	}, true
}
