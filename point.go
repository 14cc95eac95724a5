package superellipse

import (
	"fmt"
	"math"
)

// Point is a position in 2D space. It doubles as a pair of independent x and y
// magnitudes, which is how radii and inset amounts are expressed.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) { return pt.X, pt.Y }

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Add(o Point) Point { return Pt(pt.X+o.X, pt.Y+o.Y) }
func (pt Point) Sub(o Point) Point { return Pt(pt.X-o.X, pt.Y-o.Y) }

// Scale multiplies both components by f.
func (pt Point) Scale(f float64) Point { return Pt(pt.X*f, pt.Y*f) }

func (pt Point) Negate() Point { return Pt(-pt.X, -pt.Y) }

// Abs returns the point with both components made non-negative.
func (pt Point) Abs() Point { return Pt(math.Abs(pt.X), math.Abs(pt.Y)) }

// Distance returns the Euclidean distance to o.
func (pt Point) Distance(o Point) float64 {
	d := pt.Sub(o)
	return math.Hypot(d.X, d.Y)
}

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.A*pt.X + aff.B*pt.Y + aff.C,
		Y: aff.D*pt.X + aff.E*pt.Y + aff.F,
	}
}

func (pt Point) IsInf() bool { return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) }
func (pt Point) IsNaN() bool { return math.IsNaN(pt.X) || math.IsNaN(pt.Y) }
