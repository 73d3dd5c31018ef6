package lumatone

import "testing"

func TestGridRowsCoverEveryKeyOnce(t *testing.T) {
	rows, err := GridRows(NewMoveMap())
	if err != nil {
		t.Fatalf("GridRows: %v", err)
	}
	if len(rows) != len(RowSpans) {
		t.Fatalf("got %d rows, want %d", len(rows), len(RowSpans))
	}

	seen := make(map[KeyPosition]bool)
	for y, row := range rows {
		if len(row) != RowSpans[y].Len {
			t.Errorf("row %d has %d keys, want %d", y, len(row), RowSpans[y].Len)
		}
		for _, p := range row {
			if !p.Valid() {
				t.Errorf("row %d contains invalid position %v", y, p)
			}
			if seen[p] {
				t.Errorf("position %v appears twice", p)
			}
			seen[p] = true
		}
	}
	if len(seen) != NumGroups*KeysPerGroup {
		t.Errorf("rows cover %d keys, want %d", len(seen), NumGroups*KeysPerGroup)
	}
}

func TestGridRowsOrigin(t *testing.T) {
	rows, err := GridRows(NewMoveMap())
	if err != nil {
		t.Fatalf("GridRows: %v", err)
	}
	if rows[0][0] != Origin() {
		t.Errorf("first cell = %v, want the origin", rows[0][0])
	}
	if rows[0][1] != (KeyPosition{Group: 0, Key: 1}) {
		t.Errorf("second cell = %v, want {0,1}", rows[0][1])
	}
}
