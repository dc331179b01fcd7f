package figure

import (
	"strconv"

	"github.com/matzehuels/boxkit/pkg/box"
)

// Tree builds a complete binary tree of the given depth. Each node is a
// framed label; children hang centered under their parent, joined by '/'
// and '\' connector arms.
func Tree(depth int) (box.Box, error) {
	if err := checkDepth(depth); err != nil {
		return box.Box{}, err
	}
	return tree(depth, 1), nil
}

func tree(depth, label int) box.Box {
	node := box.Framed(box.Line(strconv.Itoa(label)))
	if depth == 0 {
		return node
	}
	left := tree(depth-1, 2*label)
	right := tree(depth-1, 2*label+1)

	gap := fill(' ', max(left.Height(), right.Height()), 1)
	children := box.Beside(box.Beside(left, gap, box.ColTop), right, box.ColTop)

	arms := box.Beside(box.Line("/"), box.Line("\\"), box.ColTop)
	return box.VConcat([]box.Box{node, arms, children}, box.RowCenter)
}

// Chart builds a bar chart from the values, one '#' column per value,
// bottom-aligned over a dashed baseline with the value printed under each
// bar. Negative values are treated as zero.
func Chart(values []int) box.Box {
	cells := make([]box.Box, 0, 2*len(values))
	labels := make([]box.Box, 0, 2*len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if i > 0 {
			cells = append(cells, fill(' ', 1, 1))
			labels = append(labels, fill(' ', 1, 1))
		}
		cells = append(cells, fill('#', v, 2))
		labels = append(labels, box.Line(strconv.Itoa(v)))
	}

	bars := box.HConcat(cells, box.ColBottom)
	baseline := fill('-', 1, bars.Width())
	row := box.HConcat(labels, box.ColTop)
	chart := box.Above(bars, baseline, box.RowLeft)
	return box.Above(chart, row, box.RowLeft)
}

// Table builds an n×n multiplication table using the grid layout, with
// right-aligned numeric cells. The depth parameter is the table size,
// clamped to [1, MaxDepth].
func Table(n int) (box.Box, error) {
	if err := checkDepth(n); err != nil {
		return box.Box{}, err
	}
	if n == 0 {
		n = 1
	}

	cells := make([][]box.Box, n)
	for i := range cells {
		cells[i] = make([]box.Box, n)
		for j := range cells[i] {
			cells[i][j] = box.Line(" " + strconv.Itoa((i+1)*(j+1)))
		}
	}
	g, err := box.Grid(cells, box.RowRight, box.ColCenter)
	if err != nil {
		return box.Box{}, err
	}
	return box.Framed(g), nil
}
