package superellipse

import (
	"fmt"
	"math"
)

// Insets describes per-edge offsets towards the inside of a rectangle.
// Negative values offset outwards.
type Insets struct {
	Left, Top     float64
	Right, Bottom float64
}

// SymmetricInsets returns insets that move the left and right edges by v.X and
// the top and bottom edges by v.Y.
func SymmetricInsets(v Point) Insets {
	return Insets{
		Left:   v.X,
		Top:    v.Y,
		Right:  v.X,
		Bottom: v.Y,
	}
}

func (in Insets) String() string {
	return fmt.Sprintf("Insets{L: %g, T: %g, R: %g, B: %g}", in.Left, in.Top, in.Right, in.Bottom)
}

// Corners returns, for each corner, the offsets of the two edges meeting at
// that corner: the vertical edge's offset as X and the horizontal edge's
// offset as Y.
func (in Insets) Corners() Corners[Point] {
	return Corners[Point]{
		TopLeft:     Point{X: in.Left, Y: in.Top},
		TopRight:    Point{X: in.Right, Y: in.Top},
		BottomLeft:  Point{X: in.Left, Y: in.Bottom},
		BottomRight: Point{X: in.Right, Y: in.Bottom},
	}
}

// Negate returns insets that undo in.
func (in Insets) Negate() Insets {
	return Insets{
		Left:   -in.Left,
		Top:    -in.Top,
		Right:  -in.Right,
		Bottom: -in.Bottom,
	}
}

func (in Insets) IsNaN() bool {
	return math.IsNaN(in.Left) ||
		math.IsNaN(in.Top) ||
		math.IsNaN(in.Right) ||
		math.IsNaN(in.Bottom)
}
