package superellipse

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the subpath, drawing a line back to its start.
	ClosePathKind
)

// PathElement is a single drawing command of a [Path].
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsInf() bool { return el.P0.IsInf() }
func (el PathElement) IsNaN() bool { return el.P0.IsNaN() }

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// PathBuilder is implemented by anything that can record an outline made of
// straight lines. Adapters for graphics libraries implement it on top of
// their native path types.
type PathBuilder interface {
	MoveTo(pt Point)
	LineTo(pt Point)
	ClosePath()
}

const emptyPointsMsg = "superellipse: empty point sequence"

// BuildPath records the outline pts in b: it moves to the first point, draws
// lines to each following point in order, and closes the path. No smoothing
// is applied.
//
// BuildPath panics if pts is empty, as there is no point to start the path at.
func BuildPath(b PathBuilder, pts iter.Seq[Point]) {
	first := true
	for pt := range pts {
		if first {
			first = false
			b.MoveTo(pt)
		} else {
			b.LineTo(pt)
		}
	}
	if first {
		panic(emptyPointsMsg)
	}
	b.ClosePath()
}

// PathElements is the lazy counterpart of [BuildPath]. It panics during
// iteration if pts turns out to be empty.
func PathElements(pts iter.Seq[Point]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		first := true
		for pt := range pts {
			var el PathElement
			if first {
				first = false
				el = MoveTo(pt)
			} else {
				el = LineTo(pt)
			}
			if !yield(el) {
				return
			}
		}
		if first {
			panic(emptyPointsMsg)
		}
		yield(ClosePath())
	}
}

// Path is a sequence of path elements. Conceptually, it contains zero or more
// subpaths. Each subpath begins with a MoveTo, then has zero or more LineTo
// elements, and optionally ends with a ClosePath.
//
// The zero value is an empty path, and *Path implements [PathBuilder].
type Path []PathElement

var _ ClosedShape = Path{}
var _ PathBuilder = (*Path)(nil)

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// PathElements implements Shape.
func (p Path) PathElements() iter.Seq[PathElement] { return p.Elements() }

// Path implements Shape.
func (p Path) Path() Path { return p }

// Segments returns an iterator over the path's line segments, including the
// lines drawn by ClosePath elements.
func (p Path) Segments() iter.Seq[Line] { return Segments(p.Elements()) }

// Points returns the end points of the path's MoveTo and LineTo elements, in
// order. For a path made by [BuildPath], these are the original points.
func (p Path) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, el := range p {
			if pt, ok := el.EndPoint(); ok {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// SignedArea returns the signed area of the path. Subpaths that aren't closed
// contribute as if they were.
//
// The area is positive when the path runs clockwise in a y-down space, which
// is the case for all outlines produced by this package.
func (p Path) SignedArea() float64 {
	var sum float64
	for l := range p.closedSegments() {
		sum += l.SignedArea()
	}
	return sum
}

// Area implements ClosedShape. It is the same as [Path.SignedArea].
func (p Path) Area() float64 {
	return p.SignedArea()
}

// Winding implements ClosedShape.
func (p Path) Winding(pt Point) int {
	var sum int
	for l := range p.closedSegments() {
		sum += l.Winding(pt)
	}
	return sum
}

// Contains implements ClosedShape.
func (p Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// BoundingBox implements Shape.
func (p Path) BoundingBox() Rect {
	return pointsBoundingBox(p.Points())
}

// Transform returns a new path with an affine transformation applied to it.
func (p Path) Transform(aff Affine) Path {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

func (p Path) IsInf() bool {
	for i := range p {
		if p[i].IsInf() {
			return true
		}
	}
	return false
}

func (p Path) IsNaN() bool {
	for i := range p {
		if p[i].IsNaN() {
			return true
		}
	}
	return false
}

// SVG converts the path to SVG path data.
func (p Path) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// closedSegments is like Segments, but treats every subpath as closed.
func (p Path) closedSegments() iter.Seq[Line] {
	return segments(p.Elements(), true)
}

// Segments converts a sequence of path elements to the line segments they
// draw, including the lines drawn by ClosePath elements. It panics if the
// first element is a ClosePath.
func Segments(seq iter.Seq[PathElement]) iter.Seq[Line] {
	return segments(seq, false)
}

// segments yields the lines drawn by seq. If closeAll is set, subpaths that
// don't end in ClosePath are closed anyway.
func segments(seq iter.Seq[PathElement], closeAll bool) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		started := false
		var start, last Point
		// closeSubpath yields the line back to the start of the subpath,
		// unless the pen already is there.
		closeSubpath := func() bool {
			if last == start {
				return true
			}
			l := Line{last, start}
			last = start
			return yield(l)
		}
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				if started && closeAll && !closeSubpath() {
					return
				}
				start, last = el.P0, el.P0
			case LineToKind:
				if !started {
					start = el.P0
				}
				l := Line{last, el.P0}
				last = el.P0
				if started && !yield(l) {
					return
				}
			case ClosePathKind:
				if !started {
					panic("first path element mustn't be ClosePath")
				}
				if !closeSubpath() {
					return
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
			started = true
		}
		if started && closeAll {
			closeSubpath()
		}
	}
}

// polygonWinding returns the winding number of pt with respect to the closed
// polygon through pts.
func polygonWinding(pts iter.Seq[Point], pt Point) int {
	var sum int
	first := true
	var start, last Point
	for p := range pts {
		if first {
			first = false
			start = p
		} else {
			sum += Line{last, p}.Winding(pt)
		}
		last = p
	}
	if !first {
		sum += Line{last, start}.Winding(pt)
	}
	return sum
}

// pointsBoundingBox returns the smallest rectangle enclosing pts, or the zero
// Rect if pts is empty.
func pointsBoundingBox(pts iter.Seq[Point]) Rect {
	first := true
	var bbox Rect
	for pt := range pts {
		if first {
			first = false
			bbox = Rect{pt.X, pt.Y, pt.X, pt.Y}
		} else {
			bbox = bbox.UnionPoint(pt)
		}
	}
	return bbox
}
