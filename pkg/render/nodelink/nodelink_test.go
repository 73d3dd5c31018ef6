package nodelink

import (
	"strings"
	"testing"

	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
)

func TestToDOT(t *testing.T) {
	dot := ToDOT(lumatone.NewMoveMap())

	if !strings.HasPrefix(dot, "digraph adjacency {") || !strings.HasSuffix(dot, "}\n") {
		t.Error("output is not a complete digraph")
	}
	if got := strings.Count(dot, ";\n"); got < lumatone.NumGroups*lumatone.KeysPerGroup {
		t.Errorf("only %d statements, want at least one per key", got)
	}

	// A seam edge: the right edge of group 1 connects into group 2.
	if !strings.Contains(dot, "\"1.12\" -> \"2.0\" [color=black];") {
		t.Error("missing right-direction seam edge 1.12 -> 2.0")
	}
	// No edge may leave the keyboard past the last group.
	if strings.Contains(dot, "-> \"5.") {
		t.Error("edge escapes the last group")
	}
}
