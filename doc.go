// Package superellipse computes the outlines of superellipses and of
// rectangles whose corners are superellipses, the "squircles" used by modern
// UI toolkits for rounded corners.
//
// # Superellipses
//
// A [Superellipse], or [Lamé curve], is the set of points satisfying
//
//	|x/a|ⁿ + |y/b|ⁿ = 1
//
// Depending on the exponent n it describes a rhombus (n = 1), an ellipse
// (n = 2), a rectangle (n → ∞), or anything in between. Exponents between 0
// and 1 produce concave, star-like rhombi.
//
// The curve is evaluated in its parametric form (see [Eval]) and sampled at
// whole degrees (see [Superellipse.Sample] and [DegreeRange]). One sample per
// degree is plenty for on-screen use, as the curve is smooth everywhere;
// [DegreeSteps] allows finer or coarser sampling.
//
// # Squircles
//
// A [SuperellipseRect] is a [Rect] with independent radii ([RoundedRect]) and
// exponents for each of its four corners. Each corner is a quarter of its own
// superellipse, and [SuperellipseRect.Points] joins the four quarters into a
// single outline. [SuperellipseRect.Inset] derives a smaller (or, with
// negative insets, larger) shape of the same family, as needed for borders
// and padding.
//
// # Paths and rendering
//
// This package produces coordinates only. It doesn't rasterize, fill, or
// stroke anything. Outlines are sequences of points, to be turned into
// drawable paths by moving to the first point, drawing lines to all following
// points, and closing the path. [BuildPath] does exactly that for any
// [PathBuilder], and [Path] is a minimal in-memory implementation that can
// also be converted to SVG path data.
//
// Adapters for specific graphics libraries live in the subpackages of
// integration/, and package render rasterizes outlines to images.
//
// # Iterators
//
// Outlines are returned as iter.Seq[Point]. They're computed lazily and don't
// share any state, so the same sequence can be iterated repeatedly and from
// multiple goroutines at once. Use [slices.Collect] to turn them into slices.
//
// [Lamé curve]: https://en.wikipedia.org/wiki/Superellipse
package superellipse
