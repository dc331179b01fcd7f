// Package figure provides built-in demonstration figures for the box
// algebra. Figures are pure consumers of pkg/box: each one composes a
// deterministic picture from constructors and combinators, and the demo
// command and integration tests render them.
package figure

import (
	"slices"

	"github.com/matzehuels/boxkit/pkg/box"
	"github.com/matzehuels/boxkit/pkg/errors"
)

// MaxDepth caps recursive figures. Sizes grow exponentially with depth, so
// the cap keeps demo output within a terminal screen's order of magnitude.
const MaxDepth = 10

// Builder produces a figure at the given recursion depth.
type Builder func(depth int) (box.Box, error)

// builders maps figure names to their constructors.
var builders = map[string]Builder{
	"sierpinski": Sierpinski,
	"tree":       Tree,
	"chart":      func(int) (box.Box, error) { return Chart(demoValues), nil },
	"table":      Table,
	"spiral":     Spiral,
}

// demoValues is the fixed data set rendered by the "chart" figure.
var demoValues = []int{3, 7, 2, 5, 8, 4, 6}

// Names returns the available figure names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render builds the named figure at the given depth.
// Unknown names and out-of-range depths return an error.
func Render(name string, depth int) (box.Box, error) {
	builder, ok := builders[name]
	if !ok {
		return box.Box{}, errors.New(errors.ErrCodeInvalidFigure,
			"unknown figure: %q (available: %v)", name, Names())
	}
	return builder(depth)
}

// checkDepth validates a recursion depth against [MaxDepth].
func checkDepth(depth int) error {
	if depth < 0 {
		return errors.New(errors.ErrCodeInvalidFigure, "depth must be non-negative, got %d", depth)
	}
	if depth > MaxDepth {
		return errors.New(errors.ErrCodeInvalidFigure, "depth %d exceeds maximum %d", depth, MaxDepth)
	}
	return nil
}

// fill is box.Fill for dimensions known to be non-negative.
func fill(r rune, h, w int) box.Box {
	b, _ := box.Fill(r, h, w)
	return b
}
