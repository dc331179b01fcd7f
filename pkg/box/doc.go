// Package box implements a two-dimensional text-layout algebra.
//
// The central type is [Box], an immutable rectangle of characters. Boxes are
// created by constructor functions ([Singleton], [Fill], [Space], [Empty])
// and composed with pure combinators ([Beside], [Above], [HConcat],
// [VConcat], [Grid], [Widen], [Heighten], [Framed]). Every combinator
// returns a new Box and never mutates its operands, so values can be shared
// freely across goroutines without synchronization.
//
// # Alignment
//
// When two boxes of different sizes are combined, the smaller one is padded
// with spaces. [RowAlign] controls padding along the width axis (stacking
// boxes of different widths), [ColAlign] controls padding along the height
// axis (placing boxes of different heights side by side). Centering places
// the extra unit of odd padding on the trailing side (right or bottom).
//
// # Rendering
//
// A Box renders to exactly Height lines of exactly Width characters each,
// via [Box.Lines], [Box.Rows], or [Box.String].
//
// # Example
//
//	a := box.Singleton('a')
//	b, _ := box.Fill('b', 2, 3)
//	fmt.Println(box.Beside(a, b, box.ColTop).String())
//	// abbb
//	//  bbb
package box
