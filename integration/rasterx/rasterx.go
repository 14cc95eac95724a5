// Package rasterx rasterizes superellipse outlines with
// golang.org/x/image/vector.
package rasterx

import (
	"image"
	"image/draw"
	"iter"

	"golang.org/x/image/vector"

	"honnef.co/go/superellipse"
)

// Builder implements [superellipse.PathBuilder] on top of a
// vector.Rasterizer. Coordinates are shifted by Offset before being passed on.
type Builder struct {
	Rasterizer *vector.Rasterizer
	Offset     superellipse.Point
}

var _ superellipse.PathBuilder = Builder{}

func (b Builder) MoveTo(pt superellipse.Point) {
	pt = pt.Add(b.Offset)
	b.Rasterizer.MoveTo(float32(pt.X), float32(pt.Y))
}

func (b Builder) LineTo(pt superellipse.Point) {
	pt = pt.Add(b.Offset)
	b.Rasterizer.LineTo(float32(pt.X), float32(pt.Y))
}

func (b Builder) ClosePath() { b.Rasterizer.ClosePath() }

// Fill composites src onto dst through the area enclosed by pts, using
// [draw.Over]. The outline is in dst's coordinate space. Fill panics if pts is
// empty.
func Fill(dst draw.Image, src image.Image, pts iter.Seq[superellipse.Point]) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	superellipse.BuildPath(Builder{
		Rasterizer: z,
		Offset:     superellipse.Pt(-float64(b.Min.X), -float64(b.Min.Y)),
	}, pts)
	z.Draw(dst, b, src, b.Min)
}

// Mask returns the coverage of the area enclosed by pts as an alpha mask of
// the given size, anchored at the origin. Mask panics if pts is empty.
func Mask(size image.Point, pts iter.Seq[superellipse.Point]) *image.Alpha {
	dst := image.NewAlpha(image.Rectangle{Max: size})
	z := vector.NewRasterizer(size.X, size.Y)
	superellipse.BuildPath(Builder{Rasterizer: z}, pts)
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
