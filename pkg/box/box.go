package box

import "errors"

var (
	// ErrInvalidDimension is returned by [Fill] and [Space] when a height or
	// width argument is negative, and by [Widen] and [Heighten] when the
	// target size is smaller than the box's current size.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrIrregularGrid is returned by [Grid] when the rows of the cell
	// matrix do not all have the same length.
	ErrIrregularGrid = errors.New("irregular grid")
)

// Box is an immutable rectangle of characters. Every row has exactly Width
// runes and there are exactly Height rows. A Box may have zero width and
// positive height (a column of empty rows) or vice versa; the canonical
// empty box is 0×0.
//
// The zero value is the empty box and is ready to use. Row storage is
// shared between values where possible; it is never written after
// construction, so sharing is not observable.
type Box struct {
	height int
	width  int
	rows   [][]rune
}

// Empty returns the 0×0 box. It is the identity for [Beside] and [Above].
func Empty() Box { return Box{} }

// Singleton returns a 1×1 box holding the single rune r.
func Singleton(r rune) Box {
	return Box{height: 1, width: 1, rows: [][]rune{{r}}}
}

// Fill returns an h×w box in which every cell is the rune r.
// A zero height or width yields a degenerate zero-area box of the given
// dimensions. Negative dimensions return [ErrInvalidDimension].
func Fill(r rune, h, w int) (Box, error) {
	if h < 0 || w < 0 {
		return Box{}, ErrInvalidDimension
	}
	rows := make([][]rune, h)
	for i := range rows {
		rows[i] = runeRow(r, w)
	}
	return Box{height: h, width: w, rows: rows}, nil
}

// Space returns an h×w box of spaces. It is shorthand for Fill(' ', h, w)
// and fails with [ErrInvalidDimension] on negative dimensions.
func Space(h, w int) (Box, error) {
	return Fill(' ', h, w)
}

// Line returns a 1×len(s) box holding the runes of s.
// An empty string yields a 1×0 box, not the empty box.
func Line(s string) Box {
	row := []rune(s)
	return Box{height: 1, width: len(row), rows: [][]rune{row}}
}

// Text returns a box holding the lines of s, one row per line, stacked with
// the given alignment. An empty string yields the empty box.
func Text(s string, align RowAlign) Box {
	if s == "" {
		return Empty()
	}
	var boxes []Box
	start := 0
	for i, r := range s {
		if r == '\n' {
			boxes = append(boxes, Line(s[start:i]))
			start = i + 1
		}
	}
	boxes = append(boxes, Line(s[start:]))
	return VConcat(boxes, align)
}

// Height returns the number of rows.
func (b Box) Height() int { return b.height }

// Width returns the number of runes in each row.
func (b Box) Width() int { return b.width }

// Dimensions returns the height and width.
func (b Box) Dimensions() (h, w int) { return b.height, b.width }

// runeRow allocates a row of n copies of r.
func runeRow(r rune, n int) []rune {
	row := make([]rune, n)
	for i := range row {
		row[i] = r
	}
	return row
}
