package box

import "fmt"

// RowAlign controls padding along the width axis, used when stacking boxes
// of different widths with [Above], [VConcat], [Widen], and [Grid].
type RowAlign int

const (
	// RowCenter centers content horizontally; the extra unit of odd
	// padding goes on the right.
	RowCenter RowAlign = iota
	// RowLeft places content at the left edge.
	RowLeft
	// RowRight places content at the right edge.
	RowRight
)

// ColAlign controls padding along the height axis, used when placing boxes
// of different heights side by side with [Beside], [HConcat], [Heighten],
// and [Grid].
type ColAlign int

const (
	// ColCenter centers content vertically; the extra unit of odd padding
	// goes on the bottom.
	ColCenter ColAlign = iota
	// ColTop places content at the top edge.
	ColTop
	// ColBottom places content at the bottom edge.
	ColBottom
)

// String returns the flag spelling of the alignment.
func (a RowAlign) String() string {
	switch a {
	case RowLeft:
		return "left"
	case RowRight:
		return "right"
	default:
		return "center"
	}
}

// String returns the flag spelling of the alignment.
func (a ColAlign) String() string {
	switch a {
	case ColTop:
		return "top"
	case ColBottom:
		return "bottom"
	default:
		return "center"
	}
}

// ParseRowAlign converts a flag or document spelling ("left", "center",
// "right") to a RowAlign. The empty string means the default, RowCenter.
func ParseRowAlign(s string) (RowAlign, error) {
	switch s {
	case "", "center":
		return RowCenter, nil
	case "left":
		return RowLeft, nil
	case "right":
		return RowRight, nil
	}
	return RowCenter, fmt.Errorf("invalid row alignment: %q (must be 'left', 'center', or 'right')", s)
}

// ParseColAlign converts a flag or document spelling ("top", "center",
// "bottom") to a ColAlign. The empty string means the default, ColCenter.
func ParseColAlign(s string) (ColAlign, error) {
	switch s {
	case "", "center":
		return ColCenter, nil
	case "top":
		return ColTop, nil
	case "bottom":
		return ColBottom, nil
	}
	return ColCenter, fmt.Errorf("invalid column alignment: %q (must be 'top', 'center', or 'bottom')", s)
}

// gravity is the axis-independent padding policy shared by both alignment
// enums. Every place the algebra pads uses pad with one of these values,
// so the centering tie-break is applied uniformly.
type gravity int

const (
	gravityCenter gravity = iota // extra odd unit trails
	gravityLead                  // content first, all padding trails
	gravityTrail                 // all padding leads, content last
)

func (a RowAlign) gravity() gravity {
	switch a {
	case RowLeft:
		return gravityLead
	case RowRight:
		return gravityTrail
	default:
		return gravityCenter
	}
}

func (a ColAlign) gravity() gravity {
	switch a {
	case ColTop:
		return gravityLead
	case ColBottom:
		return gravityTrail
	default:
		return gravityCenter
	}
}

// pad computes how much filler to place before and after content of size
// current to reach target along one axis. target must be >= current.
// Centering uses floor division for the leading side, so the extra unit of
// odd padding always lands on the trailing side.
func pad(target, current int, g gravity) (lead, trail int) {
	diff := target - current
	switch g {
	case gravityLead:
		return 0, diff
	case gravityTrail:
		return diff, 0
	default:
		return diff / 2, diff - diff/2
	}
}
