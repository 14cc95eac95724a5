package superellipse

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle described by its four edges.
//
// Right ≥ Left and Bottom ≥ Top is expected but not enforced. Inverted
// rectangles are accepted everywhere and produce correspondingly inverted
// geometry.
type Rect struct {
	Left, Top     float64
	Right, Bottom float64
}

var _ ClosedShape = Rect{}

// NewRectFromXYWH returns the rectangle with origin (x, y) and the given width
// and height.
func NewRectFromXYWH(x, y, width, height float64) Rect {
	return Rect{
		Left:   x,
		Top:    y,
		Right:  x + width,
		Bottom: y + height,
	}
}

// NewRectFromCenter returns the rectangle centered around center that extends
// by half.X horizontally and half.Y vertically in both directions.
func NewRectFromCenter(center, half Point) Rect {
	return Rect{
		Left:   center.X - half.X,
		Top:    center.Y - half.Y,
		Right:  center.X + half.X,
		Bottom: center.Y + half.Y,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{L: %g, T: %g, R: %g, B: %g}", r.Left, r.Top, r.Right, r.Bottom)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		Left:   min(r.Left, r.Right),
		Top:    min(r.Top, r.Bottom),
		Right:  max(r.Left, r.Right),
		Bottom: max(r.Top, r.Bottom),
	}
}

// Width returns the rectangle's width, defined as Right − Left. It may be negative.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the rectangle's height, defined as Bottom − Top. It may be negative.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the width and height as a point.
func (r Rect) Size() Point {
	return Point{X: r.Width(), Y: r.Height()}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.Left + r.Right),
		Y: 0.5 * (r.Top + r.Bottom),
	}
}

func (r Rect) TopLeft() Point     { return Point{X: r.Left, Y: r.Top} }
func (r Rect) TopRight() Point    { return Point{X: r.Right, Y: r.Top} }
func (r Rect) BottomLeft() Point  { return Point{X: r.Left, Y: r.Bottom} }
func (r Rect) BottomRight() Point { return Point{X: r.Right, Y: r.Bottom} }

// Contains reports whether pt lies within the rectangle. The left and top
// edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.Left &&
		pt.X < r.Right &&
		pt.Y >= r.Top &&
		pt.Y < r.Bottom
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		Left:   min(r.Left, pt.X),
		Top:    min(r.Top, pt.Y),
		Right:  max(r.Right, pt.X),
		Bottom: max(r.Bottom, pt.Y),
	}
}

// Inset moves each edge towards the inside of the rectangle by the
// corresponding amount. Negative amounts move the edge outwards.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}

func (r Rect) Translate(v Point) Rect {
	return Rect{
		Left:   r.Left + v.X,
		Top:    r.Top + v.Y,
		Right:  r.Right + v.X,
		Bottom: r.Bottom + v.Y,
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.Left, 0) ||
		math.IsInf(r.Right, 0) ||
		math.IsInf(r.Top, 0) ||
		math.IsInf(r.Bottom, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.Left) ||
		math.IsNaN(r.Right) ||
		math.IsNaN(r.Top) ||
		math.IsNaN(r.Bottom)
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

func (r Rect) BoundingBox() Rect {
	return r.Abs()
}

func (r Rect) Winding(pt Point) int {
	xmin := min(r.Left, r.Right)
	xmax := max(r.Left, r.Right)
	ymin := min(r.Top, r.Bottom)
	ymax := max(r.Top, r.Bottom)
	if pt.X >= xmin && pt.X < xmax && pt.Y >= ymin && pt.Y < ymax {
		if r.Right > r.Left != (r.Bottom > r.Top) {
			return -1
		} else {
			return 1
		}
	} else {
		return 0
	}
}

func (r Rect) Path() Path { return slices.Collect(r.PathElements()) }

// PathElements walks the rectangle clockwise (in a y-down space), starting at
// the top left corner.
func (r Rect) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(r.TopLeft())) &&
			yield(LineTo(r.TopRight())) &&
			yield(LineTo(r.BottomRight())) &&
			yield(LineTo(r.BottomLeft())) &&
			yield(ClosePath())
	}
}

// RoundedRect returns a rounded rectangle with this rectangle's extents and
// the given per-corner radii.
func (r Rect) RoundedRect(radii Corners[Point]) RoundedRect {
	return RoundedRect{
		Rect:  r,
		Radii: radii,
	}
}
