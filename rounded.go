package superellipse

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// RoundedRect is a rectangle with elliptical corners. Each corner has its own
// pair of radii.
type RoundedRect struct {
	Rect
	Radii Corners[Point]
}

var _ ClosedShape = RoundedRect{}

// NewRoundedRect returns a rounded rectangle whose corners are all quarter
// circles of the given radius.
func NewRoundedRect(rect Rect, radius float64) RoundedRect {
	return RoundedRect{
		Rect:  rect,
		Radii: AllCorners(Pt(radius, radius)),
	}
}

func (r RoundedRect) String() string {
	return fmt.Sprintf("RoundedRect{%v, %v}", r.Rect, r.Radii)
}

// WithExponents turns r into a superellipse rectangle whose corners use the
// given exponents. Exponents of 2 keep the corners elliptical.
func (r RoundedRect) WithExponents(exponents Corners[float64]) SuperellipseRect {
	return SuperellipseRect{
		RoundedRect: r,
		Exponents:   exponents,
	}
}

func (r RoundedRect) elliptical() SuperellipseRect {
	return r.WithExponents(AllCorners(2.0))
}

// Points returns the outline of the rounded rectangle, sampled the same way
// as [SuperellipseRect.Points].
func (r RoundedRect) Points() iter.Seq[Point] {
	return r.elliptical().Points()
}

// Inset shrinks the rectangle by in, shrinking the corner radii along with it.
func (r RoundedRect) Inset(in Insets) RoundedRect {
	return r.elliptical().Inset(in).RoundedRect
}

// Area implements ClosedShape.
func (r RoundedRect) Area() float64 {
	// A corner is a quarter-ellipse, i.e.
	// .............#
	// .       ######
	// .    #########
	// .  ###########
	// . ############
	// .#############
	// ##############
	// |-----rx-----|
	// For each corner, we need to subtract the box that bounds this
	// quarter-ellipse, and add back in the area of the quarter-ellipse.
	corner := func(radius Point) float64 {
		return (math.Pi/4 - 1) * math.Abs(radius.X*radius.Y)
	}

	return r.Rect.Area() +
		corner(r.Radii.TopLeft) +
		corner(r.Radii.TopRight) +
		corner(r.Radii.BottomRight) +
		corner(r.Radii.BottomLeft)
}

// Winding implements ClosedShape.
func (r RoundedRect) Winding(pt Point) int {
	return r.elliptical().Winding(pt)
}

// Contains implements ClosedShape.
func (r RoundedRect) Contains(pt Point) bool {
	return r.Winding(pt) != 0
}

// BoundingBox implements Shape.
func (r RoundedRect) BoundingBox() Rect {
	return r.elliptical().BoundingBox()
}

// PathElements implements Shape.
func (r RoundedRect) PathElements() iter.Seq[PathElement] {
	return PathElements(r.Points())
}

// Path implements Shape.
func (r RoundedRect) Path() Path {
	return slices.Collect(r.PathElements())
}

func (r RoundedRect) IsInf() bool {
	return r.Rect.IsInf() ||
		r.Radii.TopLeft.IsInf() ||
		r.Radii.TopRight.IsInf() ||
		r.Radii.BottomLeft.IsInf() ||
		r.Radii.BottomRight.IsInf()
}

func (r RoundedRect) IsNaN() bool {
	return r.Rect.IsNaN() ||
		r.Radii.TopLeft.IsNaN() ||
		r.Radii.TopRight.IsNaN() ||
		r.Radii.BottomLeft.IsNaN() ||
		r.Radii.BottomRight.IsNaN()
}
