package pattern

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// VisibilityDOT returns a Graphviz DOT representation of the
// direct-visibility graph of a fresh gridSize×gridSize grid.
//
// Two points are connected when the segment between them crosses no
// other grid point, which makes the move legal as the first stroke of a
// pattern. Nodes are pinned to their grid coordinates so the layout
// reproduces the grid; render with neato or RenderVisibilitySVG.
//
// Example:
//
//	dot := pattern.VisibilityDOT(3)
//	// render with 'neato -n2' or RenderVisibilitySVG
func VisibilityDOT(gridSize int) string {
	var buf bytes.Buffer
	buf.WriteString("graph visibility {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [color=\"#999999\"];\n\n")

	points := gridPoints(gridSize)
	for _, p := range points {
		// Pinned positions: DOT y grows upward, grid rows grow downward.
		fmt.Fprintf(&buf, "  %s [label=%q, pos=\"%d,%d!\"];\n",
			nodeID(p), p.String(), p.Col, gridSize-1-p.Row)
	}
	buf.WriteString("\n")

	for i, a := range points {
		for _, b := range points[i+1:] {
			if len(Between(a, b)) == 0 {
				fmt.Fprintf(&buf, "  %s -- %s;\n", nodeID(a), nodeID(b))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p Point) string {
	return fmt.Sprintf("p%d_%d", p.Row, p.Col)
}

// RenderVisibilitySVG renders the direct-visibility graph as an SVG
// image via Graphviz. The returned bytes are a complete SVG document.
//
// All errors are wrapped with context using %w, suitable for errors.Is
// and errors.Unwrap.
func RenderVisibilitySVG(ctx context.Context, gridSize int) ([]byte, error) {
	dot := VisibilityDOT(gridSize)

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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
