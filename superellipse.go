package superellipse

import (
	"iter"
	"math"
	"slices"
)

// Superellipse is a single Lamé curve, |x/a|ⁿ + |y/b|ⁿ = 1, centered on Center
// with the radii a = Radius.X and b = Radius.Y and the exponent n = Exponent.
//
// The exponent selects the shape:
//
//	n → +∞      rectangle
//	n > 2       superellipse, flatter sides than an ellipse
//	n = 2       ellipse (a circle if both radii are equal)
//	1 < n < 2   convex curved rhombus
//	n = 1       rhombus
//	0 < n < 1   concave curved rhombus
//
// An exponent of zero is not special-cased and produces infinite or NaN
// coordinates.
type Superellipse struct {
	Exponent float64
	Center   Point
	Radius   Point
}

var _ ClosedShape = Superellipse{}

// NewSuperellipseFromRect returns the superellipse that is inscribed in rect,
// touching the midpoint of each edge.
func NewSuperellipseFromRect(exponent float64, rect Rect) Superellipse {
	return Superellipse{
		Exponent: exponent,
		Center:   rect.Center(),
		Radius:   rect.Size().Scale(0.5),
	}
}

// Eval returns the point on the superellipse described by center, radius and
// exponent at the angle theta, which is expressed in radians.
//
// The sign of the cosine and sine is applied after raising their magnitudes to
// 2/exponent, which keeps the result well-defined in all four quadrants and for
// all real exponents.
func Eval(theta float64, center, radius Point, exponent float64) Point {
	sin, cos := math.Sincos(theta)
	p := 2 / exponent
	return Point{
		X: center.X + math.Copysign(math.Pow(math.Abs(cos), p), cos)*radius.X,
		Y: center.Y + math.Copysign(math.Pow(math.Abs(sin), p), sin)*radius.Y,
	}
}

// Eval returns the point at the angle theta, which is expressed in radians.
// With θ = 0 the point is at the right of the center. Angles increase
// clockwise in a y-down coordinate system.
func (s Superellipse) Eval(theta float64) Point {
	return Eval(theta, s.Center, s.Radius, s.Exponent)
}

// Sample evaluates the superellipse at each of the angles, which are expressed
// in degrees. The returned sequence is lazy and can be iterated more than
// once, provided degrees can be.
func (s Superellipse) Sample(degrees iter.Seq[float64]) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for deg := range degrees {
			if !yield(s.Eval(deg * math.Pi / 180)) {
				return
			}
		}
	}
}

// Points samples the whole curve once per degree, from 0° to 359°. The point at
// 360° is omitted, as it coincides with the first one.
func (s Superellipse) Points() iter.Seq[Point] {
	return s.Sample(DegreeRange(0, 359))
}

// BoundingBox implements Shape.
//
// The box is exact for positive exponents. Negative exponents produce curves
// that extend past their radii.
func (s Superellipse) BoundingBox() Rect {
	return NewRectFromCenter(s.Center, s.Radius.Abs())
}

// Area implements ClosedShape.
//
// The area is computed in closed form as 4ab·Γ(1+1/n)²/Γ(1+2/n). It is NaN
// for non-positive exponents.
func (s Superellipse) Area() float64 {
	n := s.Exponent
	if !(n > 0) {
		return math.NaN()
	}
	if math.IsInf(n, 1) {
		return 4 * math.Abs(s.Radius.X*s.Radius.Y)
	}
	g := math.Gamma(1 + 1/n)
	return 4 * math.Abs(s.Radius.X*s.Radius.Y) * g * g / math.Gamma(1+2/n)
}

// Winding implements ClosedShape.
func (s Superellipse) Winding(pt Point) int {
	d := pt.Sub(s.Center)
	n := s.Exponent
	v := math.Pow(math.Abs(d.X/s.Radius.X), n) + math.Pow(math.Abs(d.Y/s.Radius.Y), n)
	if v < 1 {
		return 1
	} else {
		return 0
	}
}

// Contains implements ClosedShape.
func (s Superellipse) Contains(pt Point) bool {
	return s.Winding(pt) != 0
}

// PathElements implements Shape.
func (s Superellipse) PathElements() iter.Seq[PathElement] {
	return PathElements(s.Points())
}

// Path implements Shape.
func (s Superellipse) Path() Path {
	return slices.Collect(s.PathElements())
}

// IsInf reports whether the center or the radius is infinite. An infinite
// exponent is valid and describes a rectangle.
func (s Superellipse) IsInf() bool {
	return s.Center.IsInf() || s.Radius.IsInf()
}

func (s Superellipse) IsNaN() bool {
	return math.IsNaN(s.Exponent) || s.Center.IsNaN() || s.Radius.IsNaN()
}
