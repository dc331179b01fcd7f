package box

// Grid arranges a rectangular matrix of boxes so that every column shares a
// single width and every row shares a single height. Rows of the matrix
// must all have the same length; ragged input returns [ErrIrregularGrid].
// An empty matrix yields Empty().
//
// Alignment is reconciled in two passes before any concatenation: column
// widths are the per-column maxima and row heights the per-row maxima, and
// each cell is padded to its exact slot with [Widen] and [Heighten]. A
// naive fold of [Beside] and [Above] would instead let one row's padding
// depend on fold order, misaligning columns whenever cell sizes differ
// across rows.
func Grid(cells [][]Box, rowAlign RowAlign, colAlign ColAlign) (Box, error) {
	if len(cells) == 0 {
		return Empty(), nil
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return Box{}, ErrIrregularGrid
		}
	}

	colWidth := make([]int, cols)
	rowHeight := make([]int, len(cells))
	for i, row := range cells {
		for j, cell := range row {
			colWidth[j] = max(colWidth[j], cell.width)
			rowHeight[i] = max(rowHeight[i], cell.height)
		}
	}

	rowBoxes := make([]Box, len(cells))
	for i, row := range cells {
		padded := make([]Box, cols)
		for j, cell := range row {
			c, err := Widen(cell, colWidth[j], rowAlign)
			if err != nil {
				return Box{}, err
			}
			c, err = Heighten(c, rowHeight[i], colAlign)
			if err != nil {
				return Box{}, err
			}
			padded[j] = c
		}
		// All cells now share rowHeight[i], so this concatenation pads nothing.
		rowBoxes[i] = HConcat(padded, colAlign)
	}
	// All row boxes share the same total width, so neither does this one.
	return VConcat(rowBoxes, rowAlign), nil
}
