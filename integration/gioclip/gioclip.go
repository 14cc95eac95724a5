// Package gioclip turns superellipse outlines into Gio clip paths and
// converts Gio's rectangles into superellipse shapes.
//
// A squircle-shaped button background:
//
//	s := gioclip.FromRRect(clip.UniformRRect(bounds, 12)).WithExponents(superellipse.AllCorners(4.0))
//	paint.FillShape(gtx.Ops, color, gioclip.Outline(gtx.Ops, s.Points()))
package gioclip

import (
	"image"
	"iter"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"

	"honnef.co/go/superellipse"
)

// Point converts pt to a Gio point. Gio works in float32, so precision is
// lost.
func Point(pt superellipse.Point) f32.Point {
	return f32.Pt(float32(pt.X), float32(pt.Y))
}

// FromPoint converts a Gio point.
func FromPoint(pt f32.Point) superellipse.Point {
	return superellipse.Pt(float64(pt.X), float64(pt.Y))
}

// Builder implements [superellipse.PathBuilder] on top of a clip.Path. The
// path must have been started with Begin.
type Builder struct {
	Path *clip.Path
}

var _ superellipse.PathBuilder = Builder{}

func (b Builder) MoveTo(pt superellipse.Point) { b.Path.MoveTo(Point(pt)) }
func (b Builder) LineTo(pt superellipse.Point) { b.Path.LineTo(Point(pt)) }
func (b Builder) ClosePath()                   { b.Path.Close() }

// Path records the outline pts in ops and returns its path specification. It
// panics if pts is empty.
func Path(ops *op.Ops, pts iter.Seq[superellipse.Point]) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	superellipse.BuildPath(Builder{&p}, pts)
	return p.End()
}

// Outline returns a clip operation for the area enclosed by pts.
func Outline(ops *op.Ops, pts iter.Seq[superellipse.Point]) clip.Op {
	return clip.Outline{Path: Path(ops, pts)}.Op()
}

// FromRectangle converts an integer rectangle.
func FromRectangle(r image.Rectangle) superellipse.Rect {
	return superellipse.Rect{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Right:  float64(r.Max.X),
		Bottom: float64(r.Max.Y),
	}
}

// FromRRect converts a Gio rounded rectangle. Gio's corners are circular, so
// both radii of each corner are the same.
func FromRRect(rr clip.RRect) superellipse.RoundedRect {
	radius := func(r int) superellipse.Point {
		return superellipse.Pt(float64(r), float64(r))
	}
	return FromRectangle(rr.Rect).RoundedRect(superellipse.Corners[superellipse.Point]{
		TopLeft:     radius(rr.NW),
		TopRight:    radius(rr.NE),
		BottomLeft:  radius(rr.SW),
		BottomRight: radius(rr.SE),
	})
}
