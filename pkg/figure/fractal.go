package figure

import "github.com/matzehuels/boxkit/pkg/box"

// Sierpinski builds a Sierpinski triangle of the given depth. Depth 0 is a
// single '*'; each level stacks the previous level centered above two
// copies of itself separated by one column. Width grows as 2^(depth+1)-1.
func Sierpinski(depth int) (box.Box, error) {
	if err := checkDepth(depth); err != nil {
		return box.Box{}, err
	}
	return sierpinski(depth), nil
}

func sierpinski(depth int) box.Box {
	if depth == 0 {
		return box.Singleton('*')
	}
	half := sierpinski(depth - 1)
	gap := fill(' ', half.Height(), 1)
	bottom := box.Beside(box.Beside(half, gap, box.ColTop), half, box.ColTop)
	return box.Above(half, bottom, box.RowCenter)
}

// Spiral builds a rectangular spiral by repeatedly attaching a wall to the
// current box, cycling right, top, left, bottom. Depth counts full turns
// (four walls each).
func Spiral(depth int) (box.Box, error) {
	if err := checkDepth(depth); err != nil {
		return box.Box{}, err
	}
	b := box.Singleton('@')
	for i := range 4 * depth {
		switch i % 4 {
		case 0: // wall on the right
			b = box.Beside(b, fill('|', b.Height(), 1), box.ColTop)
		case 1: // wall on top
			b = box.Above(fill('-', 1, b.Width()), b, box.RowLeft)
		case 2: // wall on the left
			b = box.Beside(fill('|', b.Height(), 1), b, box.ColTop)
		case 3: // wall on the bottom
			b = box.Above(b, fill('-', 1, b.Width()), box.RowLeft)
		}
	}
	return b, nil
}
