// Package render rasterizes superellipse outlines to images and writes them
// as SVG documents.
//
// Two rasterizers are available. [BackendGG] fills with github.com/gogpu/gg,
// using GPU acceleration where gg has been set up for it. [BackendVector] uses
// golang.org/x/image/vector and never touches the GPU.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"iter"
	"strings"

	"github.com/gogpu/gg"

	"honnef.co/go/superellipse"
	"honnef.co/go/superellipse/integration/ggpath"
	"honnef.co/go/superellipse/integration/rasterx"
)

var (
	ErrEmptyOutline     = errors.New("render: empty outline")
	ErrNonFiniteOutline = errors.New("render: outline has non-finite points")
	ErrInvalidSize      = errors.New("render: invalid image size")
)

type Backend int

const (
	BackendGG Backend = iota
	BackendVector
)

func (b Backend) String() string {
	switch b {
	case BackendGG:
		return "gg"
	case BackendVector:
		return "vector"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend parses the name of a backend, as returned by
// [Backend.String]. Names are case-insensitive.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "gg":
		return BackendGG, nil
	case "vector":
		return BackendVector, nil
	default:
		return 0, fmt.Errorf("render: unknown backend %q", s)
	}
}

func (b *Backend) UnmarshalText(text []byte) error {
	v, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Outline is implemented by all closed shapes of package superellipse that
// are made of sampled points, such as [superellipse.SuperellipseRect].
type Outline interface {
	Points() iter.Seq[superellipse.Point]
}

type Options struct {
	// Size of the image, in pixels.
	Width, Height int
	// Scale is applied to the outline's coordinates. A value of 0 is treated
	// as 1.
	Scale float64
	// The color to fill the outline with. Defaults to black.
	Fill color.Color
	// The color of the rest of the image. Defaults to transparent.
	Background color.Color
	Backend    Backend
}

func (opts Options) scale() float64 {
	if opts.Scale == 0 {
		return 1
	}
	return opts.Scale
}

func (opts Options) fill() color.Color {
	if opts.Fill == nil {
		return color.Black
	}
	return opts.Fill
}

func (opts Options) points(shape Outline) (iter.Seq[superellipse.Point], error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	pts := shape.Points()
	if s := opts.scale(); s != 1 {
		pts = superellipse.Transform(pts, superellipse.Scale(s, s))
	}
	empty := true
	for pt := range pts {
		empty = false
		if pt.IsNaN() || pt.IsInf() {
			return nil, fmt.Errorf("%w: %v", ErrNonFiniteOutline, pt)
		}
	}
	if empty {
		return nil, ErrEmptyOutline
	}
	return pts, nil
}

// Image fills shape and returns the resulting image. The image's bounds start
// at the origin. Outlines with infinite or NaN points are rejected with
// [ErrNonFiniteOutline].
func Image(ctx context.Context, shape Outline, opts Options) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pts, err := opts.points(shape)
	if err != nil {
		return nil, err
	}
	Logger().Debug("rendering outline",
		"backend", opts.Backend,
		"width", opts.Width,
		"height", opts.Height,
		"scale", opts.scale())

	switch opts.Backend {
	case BackendGG:
		return renderGG(pts, opts)
	case BackendVector:
		return renderVector(pts, opts), nil
	default:
		return nil, fmt.Errorf("render: unknown backend %v", opts.Backend)
	}
}

func renderGG(pts iter.Seq[superellipse.Point], opts Options) (image.Image, error) {
	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()
	if opts.Background != nil {
		dc.ClearWithColor(gg.FromColor(opts.Background))
	}
	superellipse.BuildPath(ggpath.Context(dc), pts)
	dc.SetColor(opts.fill())
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("render: couldn't fill outline: %w", err)
	}
	// Batching accelerators only queue the fill.
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("render: couldn't flush GPU: %w", err)
	}
	return dc.Image(), nil
}

func renderVector(pts iter.Seq[superellipse.Point], opts Options) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	rasterx.Fill(img, image.NewUniform(opts.fill()), pts)
	return img
}

// SVGOptions configures [WriteSVG].
type SVGOptions struct {
	Options
	// Precision of the coordinates, see [superellipse.SVGOptions].
	MaxPrecision int
}

// WriteSVG writes a standalone SVG document of the given size that fills
// shape. The backend is ignored. Like [Image], it rejects empty and
// non-finite outlines before writing anything.
func WriteSVG(w io.Writer, shape Outline, opts SVGOptions) error {
	pts, err := opts.points(shape)
	if err != nil {
		return err
	}
	Logger().Debug("writing SVG",
		"width", opts.Width,
		"height", opts.Height,
		"scale", opts.scale())

	ew := &errWriter{w: w}
	fmt.Fprintf(ew, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	if opts.Background != nil {
		fmt.Fprintf(ew, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", svgColor(opts.Background))
	}
	fmt.Fprintf(ew, `<path fill="%s" d="`, svgColor(opts.fill()))
	if ew.err == nil {
		ew.err = superellipse.WriteSVG(ew.w, superellipse.PathElements(pts), superellipse.SVGOptions{MaxPrecision: opts.MaxPrecision})
	}
	io.WriteString(ew, "\"/>\n</svg>\n")
	if ew.err != nil {
		return fmt.Errorf("render: couldn't write SVG: %w", ew.err)
	}
	return nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// svgColor formats c as a CSS color. Translucent colors use rgba().
func svgColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", n.R, n.G, n.B, float64(n.A)/0xff)
}
