package superellipse

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// SuperellipseRect is a rounded rectangle whose corners are superellipse
// quarters, each with its own radii and exponent. With exponents around 4 this
// is the "squircle" commonly used for UI elements.
type SuperellipseRect struct {
	RoundedRect
	Exponents Corners[float64]
}

var _ ClosedShape = SuperellipseRect{}

// NewSuperellipseRect returns a superellipse rectangle whose four corners share
// the same radii and exponent.
func NewSuperellipseRect(rect Rect, radius Point, exponent float64) SuperellipseRect {
	return SuperellipseRect{
		RoundedRect: RoundedRect{
			Rect:  rect,
			Radii: AllCorners(radius),
		},
		Exponents: AllCorners(exponent),
	}
}

func (s SuperellipseRect) String() string {
	return fmt.Sprintf("SuperellipseRect{%v, %v, %v}", s.Rect, s.Radii, s.Exponents)
}

// Corners returns the superellipses that make up the corners. Each one is
// centered on its rectangle corner, offset towards the inside by the corner's
// radii.
func (s SuperellipseRect) Corners() Corners[Superellipse] {
	r := s.Rect
	return Corners[Superellipse]{
		TopLeft: Superellipse{
			Exponent: s.Exponents.TopLeft,
			Center:   Pt(r.Left+s.Radii.TopLeft.X, r.Top+s.Radii.TopLeft.Y),
			Radius:   s.Radii.TopLeft,
		},
		TopRight: Superellipse{
			Exponent: s.Exponents.TopRight,
			Center:   Pt(r.Right-s.Radii.TopRight.X, r.Top+s.Radii.TopRight.Y),
			Radius:   s.Radii.TopRight,
		},
		BottomLeft: Superellipse{
			Exponent: s.Exponents.BottomLeft,
			Center:   Pt(r.Left+s.Radii.BottomLeft.X, r.Bottom-s.Radii.BottomLeft.Y),
			Radius:   s.Radii.BottomLeft,
		},
		BottomRight: Superellipse{
			Exponent: s.Exponents.BottomRight,
			Center:   Pt(r.Right-s.Radii.BottomRight.X, r.Bottom-s.Radii.BottomRight.Y),
			Radius:   s.Radii.BottomRight,
		},
	}
}

// sector is the quarter of a corner's superellipse that is part of the
// outline.
type sector struct {
	corner Superellipse
	start  float64
}

// sectors returns the corners in outline order. The order is relied upon by
// consumers and must not change.
func (s SuperellipseRect) sectors() [4]sector {
	c := s.Corners()
	return [4]sector{
		{c.BottomRight, 0},
		{c.BottomLeft, 90},
		{c.TopLeft, 180},
		{c.TopRight, 270},
	}
}

func (s SuperellipseRect) compose(angles func(start float64) iter.Seq[float64]) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, sec := range s.sectors() {
			for pt := range sec.corner.Sample(angles(sec.start)) {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// Points returns the outline, sampling each corner once per degree across its
// 90° sector, both ends included: the bottom right corner from 0° to 90°, then
// bottom left, top left and top right. In a y-down space this walks the
// outline clockwise, starting at the lower end of the right edge.
//
// Adjacent sectors aren't deduplicated, the outline consists of 4×91 points.
// The last point is not repeated at the end; consumers close the outline
// themselves.
func (s SuperellipseRect) Points() iter.Seq[Point] {
	return s.compose(func(start float64) iter.Seq[float64] {
		return DegreeRange(int(start), int(start)+90)
	})
}

// PointsStep is like [SuperellipseRect.Points], but samples each sector every
// step degrees instead of once per degree.
func (s SuperellipseRect) PointsStep(step float64) iter.Seq[Point] {
	return s.compose(func(start float64) iter.Seq[float64] {
		return DegreeSteps(start, start+90, step)
	})
}

// Inset moves the edges of the rectangle inwards by in. Corner radii follow
// the exponent of their corner. Convex corners (exponent > 1) lose the inset
// from their radii. Rhombic and concave corners (exponent ≤ 1) are widest at
// the corner itself and gain the inset instead.
//
// Negative insets grow the shape, with the radii changing in the opposite
// direction.
func (s SuperellipseRect) Inset(in Insets) SuperellipseRect {
	d := in.Corners()
	return SuperellipseRect{
		RoundedRect: RoundedRect{
			Rect: s.Rect.Inset(in),
			Radii: Corners[Point]{
				TopLeft:     insetRadius(s.Radii.TopLeft, s.Exponents.TopLeft, d.TopLeft),
				TopRight:    insetRadius(s.Radii.TopRight, s.Exponents.TopRight, d.TopRight),
				BottomLeft:  insetRadius(s.Radii.BottomLeft, s.Exponents.BottomLeft, d.BottomLeft),
				BottomRight: insetRadius(s.Radii.BottomRight, s.Exponents.BottomRight, d.BottomRight),
			},
		},
		Exponents: s.Exponents,
	}
}

// InsetSymmetric insets the left and right edges by v.X and the top and bottom
// edges by v.Y. See [SuperellipseRect.Inset].
func (s SuperellipseRect) InsetSymmetric(v Point) SuperellipseRect {
	return s.Inset(SymmetricInsets(v))
}

func insetRadius(radius Point, exponent float64, inset Point) Point {
	if exponent > 1.0 {
		return radius.Sub(inset)
	} else {
		// This includes the rhombus, exponent == 1.
		return radius.Add(inset)
	}
}

// Area implements ClosedShape.
//
// The area is exact as long as the corners don't overlap. It differs slightly
// from the area of the sampled outline.
func (s SuperellipseRect) Area() float64 {
	// Each corner box of size rx×ry contains one quarter of the corner's
	// superellipse.
	corner := func(c Superellipse) float64 {
		return c.Area()/4 - math.Abs(c.Radius.X*c.Radius.Y)
	}
	c := s.Corners()
	return s.Rect.Area() +
		corner(c.TopLeft) +
		corner(c.TopRight) +
		corner(c.BottomLeft) +
		corner(c.BottomRight)
}

// Winding implements ClosedShape. It is computed on the sampled outline.
func (s SuperellipseRect) Winding(pt Point) int {
	return polygonWinding(s.Points(), pt)
}

// Contains implements ClosedShape.
func (s SuperellipseRect) Contains(pt Point) bool {
	return s.Winding(pt) != 0
}

// BoundingBox implements Shape. It is computed on the sampled outline.
func (s SuperellipseRect) BoundingBox() Rect {
	return pointsBoundingBox(s.Points())
}

// PathElements implements Shape.
func (s SuperellipseRect) PathElements() iter.Seq[PathElement] {
	return PathElements(s.Points())
}

// Path implements Shape.
func (s SuperellipseRect) Path() Path {
	return slices.Collect(s.PathElements())
}

func (s SuperellipseRect) IsInf() bool {
	return s.RoundedRect.IsInf()
}

func (s SuperellipseRect) IsNaN() bool {
	return s.RoundedRect.IsNaN() ||
		math.IsNaN(s.Exponents.TopLeft) ||
		math.IsNaN(s.Exponents.TopRight) ||
		math.IsNaN(s.Exponents.BottomLeft) ||
		math.IsNaN(s.Exponents.BottomRight)
}
