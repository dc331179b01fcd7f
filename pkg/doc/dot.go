package doc

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts a document's expression tree to Graphviz DOT format so the
// structure of a layout can be inspected visually. Leaf constructors are
// drawn as filled boxes, combinators as rounded nodes; edges point from a
// combinator to its operands in order.
func ToDOT(d *Document) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	next := 0
	writeDOTNode(&buf, d.Root, &next)

	buf.WriteString("}\n")
	return buf.String()
}

// writeDOTNode emits n and its subtree, returning n's node identifier.
func writeDOTNode(buf *bytes.Buffer, n Node, next *int) string {
	id := "n" + strconv.Itoa(*next)
	*next++

	fmt.Fprintf(buf, "  %s [label=%q%s];\n", id, dotLabel(n), dotAttrs(n))

	for _, c := range n.Children {
		child := writeDOTNode(buf, c, next)
		fmt.Fprintf(buf, "  %s -> %s;\n", id, child)
	}
	for i, row := range n.Cells {
		for j, c := range row {
			child := writeDOTNode(buf, c, next)
			fmt.Fprintf(buf, "  %s -> %s [label=\"%d,%d\", fontsize=10];\n", id, child, i, j)
		}
	}
	return id
}

func dotLabel(n Node) string {
	switch n.Op {
	case OpText:
		return fmt.Sprintf("text %q", n.Text)
	case OpFill:
		return fmt.Sprintf("fill %q %dx%d", n.Char, n.Height, n.Width)
	case OpSpace:
		return fmt.Sprintf("space %dx%d", n.Height, n.Width)
	case OpWiden:
		return fmt.Sprintf("widen %d %s", n.Width, n.HAlign)
	case OpHeighten:
		return fmt.Sprintf("heighten %d %s", n.Height, n.VAlign)
	default:
		label := n.Op
		if n.HAlign != "" {
			label += " " + n.HAlign
		}
		if n.VAlign != "" {
			label += " " + n.VAlign
		}
		return label
	}
}

func dotAttrs(n Node) string {
	if arity[n.Op] == 0 && n.Op != OpGrid {
		return ", fillcolor=lightgrey"
	}
	return ""
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
