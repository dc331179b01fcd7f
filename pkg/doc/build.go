package doc

import (
	stderrors "errors"

	"github.com/matzehuels/boxkit/pkg/box"
	"github.com/matzehuels/boxkit/pkg/errors"
)

// Build evaluates the document's expression tree into a box.
// Errors carry the path of the offending node (e.g. "root.children[1]")
// and a machine-readable code: INVALID_DOCUMENT for structural problems,
// INVALID_DIMENSION and IRREGULAR_GRID for algebra contract violations.
func Build(d *Document) (box.Box, error) {
	if err := d.Validate(); err != nil {
		return box.Box{}, err
	}
	return buildNode(d.Root, "root")
}

func buildNode(n Node, path string) (box.Box, error) {
	switch n.Op {
	case OpText:
		align, err := rowAlign(n.HAlign, path)
		if err != nil {
			return box.Box{}, err
		}
		return box.Text(n.Text, align), nil

	case OpFill:
		r := []rune(n.Char)[0]
		b, err := box.Fill(r, n.Height, n.Width)
		return b, algebraErr(err, path)

	case OpSpace:
		b, err := box.Space(n.Height, n.Width)
		return b, algebraErr(err, path)

	case OpEmpty:
		return box.Empty(), nil

	case OpBeside:
		a, b, align, err := buildPair(n, path, n.VAlign)
		if err != nil {
			return box.Box{}, err
		}
		return box.Beside(a, b, align), nil

	case OpAbove:
		align, err := rowAlign(n.HAlign, path)
		if err != nil {
			return box.Box{}, err
		}
		a, err := buildNode(n.Children[0], childPath(path, 0))
		if err != nil {
			return box.Box{}, err
		}
		b, err := buildNode(n.Children[1], childPath(path, 1))
		if err != nil {
			return box.Box{}, err
		}
		return box.Above(a, b, align), nil

	case OpHConcat:
		align, err := colAlign(n.VAlign, path)
		if err != nil {
			return box.Box{}, err
		}
		boxes, err := buildChildren(n, path)
		if err != nil {
			return box.Box{}, err
		}
		return box.HConcat(boxes, align), nil

	case OpVConcat:
		align, err := rowAlign(n.HAlign, path)
		if err != nil {
			return box.Box{}, err
		}
		boxes, err := buildChildren(n, path)
		if err != nil {
			return box.Box{}, err
		}
		return box.VConcat(boxes, align), nil

	case OpGrid:
		return buildGrid(n, path)

	case OpWiden:
		align, err := rowAlign(n.HAlign, path)
		if err != nil {
			return box.Box{}, err
		}
		child, err := buildNode(n.Children[0], childPath(path, 0))
		if err != nil {
			return box.Box{}, err
		}
		b, err := box.Widen(child, n.Width, align)
		return b, algebraErr(err, path)

	case OpHeighten:
		align, err := colAlign(n.VAlign, path)
		if err != nil {
			return box.Box{}, err
		}
		child, err := buildNode(n.Children[0], childPath(path, 0))
		if err != nil {
			return box.Box{}, err
		}
		b, err := box.Heighten(child, n.Height, align)
		return b, algebraErr(err, path)

	case OpFramed:
		child, err := buildNode(n.Children[0], childPath(path, 0))
		if err != nil {
			return box.Box{}, err
		}
		return box.Framed(child), nil
	}

	// Validate has already rejected unknown ops.
	return box.Box{}, errors.New(errors.ErrCodeInvalidDocument, "%s: unknown op %q", path, n.Op)
}

func buildPair(n Node, path, valign string) (a, b box.Box, align box.ColAlign, err error) {
	align, err = colAlign(valign, path)
	if err != nil {
		return
	}
	a, err = buildNode(n.Children[0], childPath(path, 0))
	if err != nil {
		return
	}
	b, err = buildNode(n.Children[1], childPath(path, 1))
	return
}

func buildChildren(n Node, path string) ([]box.Box, error) {
	boxes := make([]box.Box, len(n.Children))
	for i, c := range n.Children {
		b, err := buildNode(c, childPath(path, i))
		if err != nil {
			return nil, err
		}
		boxes[i] = b
	}
	return boxes, nil
}

func buildGrid(n Node, path string) (box.Box, error) {
	ra, err := rowAlign(n.HAlign, path)
	if err != nil {
		return box.Box{}, err
	}
	ca, err := colAlign(n.VAlign, path)
	if err != nil {
		return box.Box{}, err
	}

	cells := make([][]box.Box, len(n.Cells))
	for i, row := range n.Cells {
		cells[i] = make([]box.Box, len(row))
		for j, c := range row {
			b, err := buildNode(c, cellPath(path, i, j))
			if err != nil {
				return box.Box{}, err
			}
			cells[i][j] = b
		}
	}

	g, err := box.Grid(cells, ra, ca)
	return g, algebraErr(err, path)
}

func rowAlign(s, path string) (box.RowAlign, error) {
	a, err := box.ParseRowAlign(s)
	if err != nil {
		return a, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", path)
	}
	return a, nil
}

func colAlign(s, path string) (box.ColAlign, error) {
	a, err := box.ParseColAlign(s)
	if err != nil {
		return a, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", path)
	}
	return a, nil
}

// algebraErr maps the algebra's sentinel errors to coded errors with the
// node path attached. A nil error passes through unchanged.
func algebraErr(err error, path string) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, box.ErrInvalidDimension):
		return errors.Wrap(errors.ErrCodeInvalidDimension, err, "%s", path)
	case stderrors.Is(err, box.ErrIrregularGrid):
		return errors.Wrap(errors.ErrCodeIrregularGrid, err, "%s", path)
	default:
		return errors.Wrap(errors.ErrCodeInternal, err, "%s", path)
	}
}
