// Package doc defines the serializable layout document: an expression tree
// over the box algebra that can be stored on disk, shipped over HTTP, and
// cached by content hash.
//
// A document is authored in JSON or TOML and evaluated with [Build], which
// produces a [box.Box]. The format is designed for round-trip fidelity:
// read → write → re-read produces an identical tree.
//
// # Example document (JSON)
//
//	{
//	  "name": "banner",
//	  "root": {
//	    "op": "framed",
//	    "children": [{"op": "text", "text": "hello"}]
//	  }
//	}
package doc

import (
	"strconv"
	"unicode/utf8"

	"github.com/matzehuels/boxkit/pkg/errors"
)

// Operation names recognized in documents.
const (
	OpText     = "text"
	OpFill     = "fill"
	OpSpace    = "space"
	OpEmpty    = "empty"
	OpBeside   = "beside"
	OpAbove    = "above"
	OpHConcat  = "hconcat"
	OpVConcat  = "vconcat"
	OpGrid     = "grid"
	OpWiden    = "widen"
	OpHeighten = "heighten"
	OpFramed   = "framed"
)

// arity describes how many children each operation consumes.
// -1 means any number (including zero).
var arity = map[string]int{
	OpText:     0,
	OpFill:     0,
	OpSpace:    0,
	OpEmpty:    0,
	OpBeside:   2,
	OpAbove:    2,
	OpHConcat:  -1,
	OpVConcat:  -1,
	OpGrid:     0, // uses Cells, not Children
	OpWiden:    1,
	OpHeighten: 1,
	OpFramed:   1,
}

// Document is a named layout expression.
type Document struct {
	Name string `json:"name,omitempty" toml:"name" bson:"name,omitempty"`
	Root Node   `json:"root" toml:"root" bson:"root"`
}

// Node is one expression in the layout tree. Which fields are meaningful
// depends on Op:
//
//   - text: Text (may contain newlines), HAlign for multi-line stacking
//   - fill: Char, Height, Width
//   - space: Height, Width
//   - empty: nothing
//   - beside: exactly two Children, VAlign
//   - above: exactly two Children, HAlign
//   - hconcat: any Children, VAlign
//   - vconcat: any Children, HAlign
//   - grid: Cells (rectangular), HAlign and VAlign
//   - widen: one child, Width, HAlign
//   - heighten: one child, Height, VAlign
//   - framed: one child
type Node struct {
	Op       string   `json:"op" toml:"op" bson:"op"`
	Text     string   `json:"text,omitempty" toml:"text,omitempty" bson:"text,omitempty"`
	Char     string   `json:"char,omitempty" toml:"char,omitempty" bson:"char,omitempty"`
	Height   int      `json:"height,omitempty" toml:"height,omitempty" bson:"height,omitempty"`
	Width    int      `json:"width,omitempty" toml:"width,omitempty" bson:"width,omitempty"`
	HAlign   string   `json:"halign,omitempty" toml:"halign,omitempty" bson:"halign,omitempty"`
	VAlign   string   `json:"valign,omitempty" toml:"valign,omitempty" bson:"valign,omitempty"`
	Children []Node   `json:"children,omitempty" toml:"children,omitempty" bson:"children,omitempty"`
	Cells    [][]Node `json:"cells,omitempty" toml:"cells,omitempty" bson:"cells,omitempty"`
}

// Validate checks the tree for unknown operations, wrong child counts, and
// malformed fill characters. Build runs the same checks; Validate exists so
// API handlers can reject a document before caching or storing it.
func (d *Document) Validate() error {
	return validateNode(d.Root, "root")
}

func validateNode(n Node, path string) error {
	want, ok := arity[n.Op]
	if !ok {
		return errors.New(errors.ErrCodeInvalidDocument, "%s: unknown op %q", path, n.Op)
	}
	if want >= 0 && len(n.Children) != want {
		return errors.New(errors.ErrCodeInvalidDocument,
			"%s: op %q wants %d children, has %d", path, n.Op, want, len(n.Children))
	}
	if n.Op == OpFill {
		if utf8.RuneCountInString(n.Char) != 1 {
			return errors.New(errors.ErrCodeInvalidDocument,
				"%s: fill char must be a single character, got %q", path, n.Char)
		}
	}
	if n.Op != OpGrid && len(n.Cells) > 0 {
		return errors.New(errors.ErrCodeInvalidDocument,
			"%s: op %q does not take cells", path, n.Op)
	}
	for i, c := range n.Children {
		if err := validateNode(c, childPath(path, i)); err != nil {
			return err
		}
	}
	for i, row := range n.Cells {
		for j, c := range row {
			if err := validateNode(c, cellPath(path, i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func childPath(path string, i int) string {
	return path + ".children[" + strconv.Itoa(i) + "]"
}

func cellPath(path string, i, j int) string {
	return path + ".cells[" + strconv.Itoa(i) + "][" + strconv.Itoa(j) + "]"
}
