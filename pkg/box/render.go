package box

import (
	"iter"
	"strings"
)

// Lines renders the box as exactly Height strings of exactly Width runes.
// The returned slice is freshly allocated on every call.
func (b Box) Lines() []string {
	lines := make([]string, b.height)
	for i, row := range b.rows {
		lines[i] = string(row)
	}
	return lines
}

// Rows returns a restartable iterator over the rendered lines, top to
// bottom. Each line is materialized only when the iterator reaches it.
func (b Box) Rows() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, row := range b.rows {
			if !yield(string(row)) {
				return
			}
		}
	}
}

// String renders the box as its lines joined with newlines. The empty box
// renders as the empty string.
func (b Box) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for i, row := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// Eq reports whether two boxes have identical dimensions and contents.
// Alignment history does not matter; only the rendered cells are compared.
func (b Box) Eq(other Box) bool {
	if b.height != other.height || b.width != other.width {
		return false
	}
	for i, row := range b.rows {
		for j, r := range row {
			if other.rows[i][j] != r {
				return false
			}
		}
	}
	return true
}
