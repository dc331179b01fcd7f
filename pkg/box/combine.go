package box

// Beside places a and b side by side. The shorter box is padded to the
// common height with blank rows of its own width, positioned by align.
// The result is max(a.Height, b.Height) tall and a.Width+b.Width wide.
// Empty() is the identity on both sides.
func Beside(a, b Box, align ColAlign) Box {
	h := max(a.height, b.height)
	w := a.width + b.width
	leadA, _ := pad(h, a.height, align.gravity())
	leadB, _ := pad(h, b.height, align.gravity())

	rows := make([][]rune, h)
	for i := range rows {
		row := make([]rune, 0, w)
		row = appendRow(row, a, i-leadA)
		row = appendRow(row, b, i-leadB)
		rows[i] = row
	}
	return Box{height: h, width: w, rows: rows}
}

// appendRow appends row i of b to dst, or b.Width spaces when i is outside
// the box (a padding row).
func appendRow(dst []rune, b Box, i int) []rune {
	if i < 0 || i >= b.height {
		for range b.width {
			dst = append(dst, ' ')
		}
		return dst
	}
	return append(dst, b.rows[i]...)
}

// Above stacks a on top of b. The narrower box is padded to the common
// width with blank columns positioned by align. The result is
// a.Height+b.Height tall and max(a.Width, b.Width) wide.
// Empty() is the identity on both sides.
func Above(a, b Box, align RowAlign) Box {
	w := max(a.width, b.width)
	h := a.height + b.height

	rows := make([][]rune, 0, h)
	rows = appendPadded(rows, a, w, align)
	rows = appendPadded(rows, b, w, align)
	return Box{height: h, width: w, rows: rows}
}

// appendPadded appends b's rows to dst, each padded to width w per align.
// Rows already at the target width are shared, not copied; they are never
// written after construction.
func appendPadded(dst [][]rune, b Box, w int, align RowAlign) [][]rune {
	if b.width == w {
		return append(dst, b.rows...)
	}
	lead, trail := pad(w, b.width, align.gravity())
	for _, src := range b.rows {
		row := make([]rune, 0, w)
		for range lead {
			row = append(row, ' ')
		}
		row = append(row, src...)
		for range trail {
			row = append(row, ' ')
		}
		dst = append(dst, row)
	}
	return dst
}

// HConcat joins boxes left to right with [Beside]. An empty or nil slice
// yields Empty().
func HConcat(boxes []Box, align ColAlign) Box {
	out := Empty()
	for _, b := range boxes {
		out = Beside(out, b, align)
	}
	return out
}

// VConcat stacks boxes top to bottom with [Above]. An empty or nil slice
// yields Empty().
func VConcat(boxes []Box, align RowAlign) Box {
	out := Empty()
	for _, b := range boxes {
		out = Above(out, b, align)
	}
	return out
}

// Widen pads b with blank columns to exactly width w, positioned by align.
// The height is unchanged. Returns [ErrInvalidDimension] if w is smaller
// than the current width.
func Widen(b Box, w int, align RowAlign) (Box, error) {
	if w < b.width {
		return Box{}, ErrInvalidDimension
	}
	if w == b.width {
		return b, nil
	}
	rows := appendPadded(make([][]rune, 0, b.height), b, w, align)
	return Box{height: b.height, width: w, rows: rows}, nil
}

// Heighten pads b with blank rows to exactly height h, positioned by align.
// The width is unchanged. Returns [ErrInvalidDimension] if h is smaller
// than the current height.
func Heighten(b Box, h int, align ColAlign) (Box, error) {
	if h < b.height {
		return Box{}, ErrInvalidDimension
	}
	if h == b.height {
		return b, nil
	}
	lead, _ := pad(h, b.height, align.gravity())
	rows := make([][]rune, h)
	for i := range rows {
		if i < lead || i >= lead+b.height {
			rows[i] = runeRow(' ', b.width)
		} else {
			rows[i] = b.rows[i-lead]
		}
	}
	return Box{height: h, width: b.width, rows: rows}, nil
}

// Frame glyphs. ASCII is the documented contract: examples and tests
// hardcode these characters.
const (
	frameCorner     = '+'
	frameHorizontal = '-'
	frameVertical   = '|'
)

// Framed wraps b in a one-cell border, growing it by two in each dimension.
// Corners are '+', horizontal edges '-', vertical edges '|'. It is built
// from the other combinators rather than being a primitive.
func Framed(b Box) Box {
	h, w := b.Dimensions()
	hbar, _ := Fill(frameHorizontal, 1, w)
	vbar, _ := Fill(frameVertical, h, 1)
	corner := Singleton(frameCorner)

	top := Beside(Beside(corner, hbar, ColTop), corner, ColTop)
	middle := Beside(Beside(vbar, b, ColTop), vbar, ColTop)
	return VConcat([]Box{top, middle, top}, RowLeft)
}
