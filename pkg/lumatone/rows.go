package lumatone

import "fmt"

// GridRows returns the key position of every cell of each visual row, top
// to bottom and left to right, by walking the adjacency tables along the
// RowSpans. Row i has RowSpans[i].Len positions, the first one sitting at
// column RowSpans[i].Offset.
//
// An error here means the movement tables and the row spans disagree.
func GridRows(mv *MoveMap) ([][]KeyPosition, error) {
	rows := make([][]KeyPosition, 0, len(RowSpans))

	rowStart := Origin()
	lastX0 := 0
	for y, span := range RowSpans {
		if y > 0 {
			// Move right before moving down, so the walk stays on
			// the keyboard as the lower rows shrink.
			for span.Offset > lastX0 {
				var ok bool
				rowStart, ok = mv.Move(rowStart, Right)
				if !ok {
					return nil, fmt.Errorf("row %d: no key right of row start", y)
				}
				lastX0++
			}

			dir := DownLeft
			if y%2 == 1 {
				dir = DownRight
			}
			var ok bool
			rowStart, ok = mv.Move(rowStart, dir)
			if !ok {
				return nil, fmt.Errorf("row %d: no key %v of row start", y, dir)
			}
		}

		row := make([]KeyPosition, 0, span.Len)
		key := rowStart
		for i := 0; i < span.Len; i++ {
			if i > 0 {
				var ok bool
				key, ok = mv.Move(key, Right)
				if !ok {
					return nil, fmt.Errorf("row %d: key %d missing", y, i)
				}
			}
			row = append(row, key)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
