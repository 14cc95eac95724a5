package superellipse

import (
	"iter"
	"math"
)

// Affine is a 2D affine transform, stored row by row:
//
//	x' = A·x + B·y + C
//	y' = D·x + E·y + F
//
// Transforms compose right to left: a.Mul(b) applies b first.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity is the identity transform.
var Identity = Affine{A: 1, E: 1}

// FlipY mirrors along the x-axis, converting between y-up and y-down spaces.
var FlipY = Affine{A: 1, E: -1}

// Scale scales x and y independently.
func Scale(x, y float64) Affine {
	return Affine{A: x, E: y}
}

// Translate moves by v.
func Translate(v Point) Affine {
	return Affine{A: 1, C: v.X, E: 1, F: v.Y}
}

// Rotate rotates by th radians. A positive angle rotates the positive x-axis
// towards the positive y-axis, which is clockwise in a y-down space.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// RotateAbout rotates by th radians around center.
func RotateAbout(th float64, center Point) Affine {
	return Translate(center).Mul(Rotate(th)).Mul(Translate(center.Negate()))
}

// MapRect maps src onto dst, scaling each axis independently.
func MapRect(src, dst Rect) Affine {
	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	return Affine{
		A: sx, C: dst.Left - src.Left*sx,
		E: sy, F: dst.Top - src.Top*sy,
	}
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		A: aff.A*o.A + aff.B*o.D,
		B: aff.A*o.B + aff.B*o.E,
		C: aff.A*o.C + aff.B*o.F + aff.C,
		D: aff.D*o.A + aff.E*o.D,
		E: aff.D*o.B + aff.E*o.E,
		F: aff.D*o.C + aff.E*o.F + aff.F,
	}
}

func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

func (aff Affine) ThenTranslate(v Point) Affine {
	aff.C += v.X
	aff.F += v.Y
	return aff
}

func (aff Affine) Determinant() float64 {
	return aff.A*aff.E - aff.B*aff.D
}

// Invert returns the inverse transform. Singular transforms produce NaN
// coefficients.
func (aff Affine) Invert() Affine {
	det := aff.Determinant()
	return Affine{
		A: aff.E / det,
		B: -aff.B / det,
		C: (aff.B*aff.F - aff.E*aff.C) / det,
		D: -aff.D / det,
		E: aff.A / det,
		F: (aff.D*aff.C - aff.A*aff.F) / det,
	}
}

func (aff Affine) coefficients() [6]float64 {
	return [6]float64{aff.A, aff.B, aff.C, aff.D, aff.E, aff.F}
}

func (aff Affine) IsInf() bool {
	for _, v := range aff.coefficients() {
		if math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, v := range aff.coefficients() {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Transform lazily applies aff to every value of seq. It works with points as
// well as path elements.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				return
			}
		}
	}
}
