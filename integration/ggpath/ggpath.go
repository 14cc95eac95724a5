// Package ggpath records superellipse outlines in [gg] paths and contexts.
//
// Fill a squircle with gg:
//
//	dc := gg.NewContext(100, 100)
//	s := superellipse.NewSuperellipseRect(superellipse.Rect{Right: 100, Bottom: 100}, superellipse.Pt(20, 20), 4)
//	superellipse.BuildPath(ggpath.Context(dc), s.Points())
//	dc.SetHexColor("#3366ff")
//	dc.Fill()
package ggpath

import (
	"iter"

	"github.com/gogpu/gg"

	"honnef.co/go/superellipse"
)

// Point converts pt to a gg point.
func Point(pt superellipse.Point) gg.Point {
	return gg.Pt(pt.X, pt.Y)
}

// FromPoint converts a gg point.
func FromPoint(pt gg.Point) superellipse.Point {
	return superellipse.Pt(pt.X, pt.Y)
}

// Matrix converts aff to a gg matrix. Both use the same row-major layout.
func Matrix(aff superellipse.Affine) gg.Matrix {
	return gg.Matrix{
		A: aff.A, B: aff.B, C: aff.C,
		D: aff.D, E: aff.E, F: aff.F,
	}
}

// Builder implements [superellipse.PathBuilder] on top of a *gg.Path.
type Builder struct {
	Path *gg.Path
}

var _ superellipse.PathBuilder = Builder{}

func (b Builder) MoveTo(pt superellipse.Point) { b.Path.MoveTo(pt.X, pt.Y) }
func (b Builder) LineTo(pt superellipse.Point) { b.Path.LineTo(pt.X, pt.Y) }
func (b Builder) ClosePath()                   { b.Path.Close() }

// NewPath returns a new gg path containing the outline pts. It panics if pts
// is empty.
func NewPath(pts iter.Seq[superellipse.Point]) *gg.Path {
	p := gg.NewPath()
	superellipse.BuildPath(Builder{p}, pts)
	return p
}

// ContextBuilder implements [superellipse.PathBuilder] on top of a gg
// context's current path. Points are subject to the context's current
// transform.
type ContextBuilder struct {
	Context *gg.Context
}

var _ superellipse.PathBuilder = ContextBuilder{}

// Context returns a builder that appends to dc's current path.
func Context(dc *gg.Context) ContextBuilder {
	return ContextBuilder{dc}
}

func (b ContextBuilder) MoveTo(pt superellipse.Point) { b.Context.MoveTo(pt.X, pt.Y) }
func (b ContextBuilder) LineTo(pt superellipse.Point) { b.Context.LineTo(pt.X, pt.Y) }
func (b ContextBuilder) ClosePath()                   { b.Context.ClosePath() }

// Elements converts the elements of a gg path that only contains straight
// lines. It reports false if p contains curves.
func Elements(p *gg.Path) (superellipse.Path, bool) {
	out := make(superellipse.Path, 0, p.NumVerbs())
	ok := true
	p.Iterate(func(verb gg.PathVerb, coords []float64) {
		switch verb {
		case gg.MoveTo:
			out.MoveTo(superellipse.Pt(coords[0], coords[1]))
		case gg.LineTo:
			out.LineTo(superellipse.Pt(coords[0], coords[1]))
		case gg.Close:
			out.ClosePath()
		default:
			ok = false
		}
	})
	if !ok {
		return nil, false
	}
	return out, true
}
