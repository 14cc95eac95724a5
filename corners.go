package superellipse

import "fmt"

// Corners holds one value per corner of a rectangle. It is used for
// per-corner radii (Corners[Point]) as well as per-corner exponents
// (Corners[float64]).
type Corners[T any] struct {
	TopLeft     T
	TopRight    T
	BottomLeft  T
	BottomRight T
}

// AllCorners returns corners that all hold v.
func AllCorners[T any](v T) Corners[T] {
	return Corners[T]{
		TopLeft:     v,
		TopRight:    v,
		BottomLeft:  v,
		BottomRight: v,
	}
}

// MapCorners applies f to each corner of c.
func MapCorners[T, U any](c Corners[T], f func(T) U) Corners[U] {
	return Corners[U]{
		TopLeft:     f(c.TopLeft),
		TopRight:    f(c.TopRight),
		BottomLeft:  f(c.BottomLeft),
		BottomRight: f(c.BottomRight),
	}
}

// ZipCorners combines a and b corner by corner.
func ZipCorners[T, U, V any](a Corners[T], b Corners[U], f func(T, U) V) Corners[V] {
	return Corners[V]{
		TopLeft:     f(a.TopLeft, b.TopLeft),
		TopRight:    f(a.TopRight, b.TopRight),
		BottomLeft:  f(a.BottomLeft, b.BottomLeft),
		BottomRight: f(a.BottomRight, b.BottomRight),
	}
}

func (c Corners[T]) String() string {
	return fmt.Sprintf("{TL: %v, TR: %v, BL: %v, BR: %v}", c.TopLeft, c.TopRight, c.BottomLeft, c.BottomRight)
}
