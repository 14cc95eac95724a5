package superellipse

import (
	"io"
	"iter"
	"strconv"
	"strings"
)

// Shape is implemented by everything that can be drawn as an outline.
type Shape interface {
	BoundingBox() Rect
	// PathElements returns the outline as a lazy sequence of path elements.
	PathElements() iter.Seq[PathElement]
	// Path returns the outline as a slice of path elements.
	Path() Path
}

// ClosedShape is a shape that encloses an area.
type ClosedShape interface {
	Shape

	// Area returns the signed area. It is positive for shapes whose outline
	// runs clockwise in a y-down space, which includes everything this package
	// constructs from non-inverted rectangles and positive radii.
	Area() float64

	// Winding returns the winding number of pt. It has the same sign as the
	// area for points inside the shape, and is 0 for points outside of it.
	Winding(pt Point) int

	Contains(pt Point) bool
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// MaxPrecision is the number of decimal places coordinates are rounded
	// to. Trailing zeros are dropped. The zero value formats coordinates with
	// as many digits as necessary to represent them exactly.
	MaxPrecision int
}

// SVG returns the SVG path data for a sequence of path elements.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	WriteSVG(&sb, seq, opts)
	return sb.String()
}

// WriteSVG writes the SVG path data for a sequence of path elements to w.
// Elements are separated by single spaces.
//
// Coordinates are written as they are. Infinities and NaNs end up as "+Inf"
// and "NaN", which aren't valid path data; check the outline with IsInf and
// IsNaN first if it may contain them.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	sw := svgWriter{w: w, prec: opts.MaxPrecision}
	for el := range seq {
		if sw.n > 0 {
			sw.buf = append(sw.buf, ' ')
		}
		switch el.Kind {
		case MoveToKind:
			sw.command('M', el.P0)
		case LineToKind:
			sw.command('L', el.P0)
		case ClosePathKind:
			sw.buf = append(sw.buf, 'Z')
		default:
			panic("unreachable")
		}
		sw.n++
		if !sw.flush() {
			return sw.err
		}
	}
	return nil
}

type svgWriter struct {
	w    io.Writer
	prec int
	buf  []byte
	n    int
	err  error
}

func (sw *svgWriter) command(cmd byte, pt Point) {
	sw.buf = append(sw.buf, cmd)
	sw.buf = sw.appendFloat(sw.buf, pt.X)
	sw.buf = append(sw.buf, ',')
	sw.buf = sw.appendFloat(sw.buf, pt.Y)
}

func (sw *svgWriter) appendFloat(b []byte, v float64) []byte {
	if sw.prec <= 0 {
		return strconv.AppendFloat(b, v, 'f', -1, 64)
	}
	start := len(b)
	b = strconv.AppendFloat(b, v, 'f', sw.prec, 64)
	// Drop trailing zeros and the decimal point if nothing follows it.
	for b[len(b)-1] == '0' {
		b = b[:len(b)-1]
	}
	if b[len(b)-1] == '.' {
		b = b[:len(b)-1]
	}
	if string(b[start:]) == "-0" {
		b = append(b[:start], '0')
	}
	return b
}

func (sw *svgWriter) flush() bool {
	_, sw.err = sw.w.Write(sw.buf)
	sw.buf = sw.buf[:0]
	return sw.err == nil
}
