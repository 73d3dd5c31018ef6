// Package nodelink renders the keyboard adjacency graph as a node-link
// diagram via Graphviz. The adjacency tables are the most bug-prone data in
// the system; this gives them a visual check to go along with the exhaustive
// round-trip tests.
package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
)

// generators are the three directions drawn as edges. The other three are
// their inverses and would only double every line.
var generators = []struct {
	dir   lumatone.Dir
	color string
}{
	{lumatone.Right, "black"},
	{lumatone.UpLeft, "blue"},
	{lumatone.UpRight, "red"},
}

// ToDOT converts the adjacency tables to Graphviz DOT format, one node per
// key ("group.key") and one colored edge per generator direction.
func ToDOT(mv *lumatone.MoveMap) string {
	var buf bytes.Buffer
	buf.WriteString("digraph adjacency {\n")
	buf.WriteString("  node [shape=hexagon, fontsize=10, margin=\"0.02,0.02\"];\n")
	buf.WriteString("  edge [arrowsize=0.4];\n")
	buf.WriteString("\n")

	for _, p := range lumatone.AllPositions() {
		fmt.Fprintf(&buf, "  %q;\n", nodeID(p))
	}

	buf.WriteString("\n")
	for _, gen := range generators {
		for _, p := range lumatone.AllPositions() {
			q, ok := mv.Move(p, gen.dir)
			if !ok {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [color=%s];\n", nodeID(p), nodeID(q), gen.color)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p lumatone.KeyPosition) string {
	return fmt.Sprintf("%d.%d", p.Group, p.Key)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
