package superellipse

import (
	"math"
	"slices"
	"testing"
)

func TestSuperellipseRectCorners(t *testing.T) {
	s := NewSuperellipseRect(Rect{0, 0, 100, 100}, Pt(20, 20), 4)
	centers := MapCorners(s.Corners(), func(c Superellipse) Point { return c.Center })
	want := Corners[Point]{
		TopLeft:     Pt(20, 20),
		TopRight:    Pt(80, 20),
		BottomLeft:  Pt(20, 80),
		BottomRight: Pt(80, 80),
	}
	diff(t, want, centers)

	for _, c := range []Superellipse{s.Corners().TopLeft, s.Corners().BottomRight} {
		if c.Exponent != 4 || c.Radius != Pt(20, 20) {
			t.Errorf("got corner %v, want exponent 4 and radius (20, 20)", c)
		}
	}
}

func TestSuperellipseRectPoints(t *testing.T) {
	s := NewSuperellipseRect(Rect{0, 0, 100, 100}, Pt(20, 20), 2)
	pts := slices.Collect(s.Points())
	if len(pts) != 364 {
		t.Fatalf("got %d points, want 364", len(pts))
	}

	// Sectors are joined end to start without deduplication.
	diff(t, Pt(100, 80), pts[0], approx(1e-9))
	diff(t, Pt(80, 100), pts[90], approx(1e-9))
	diff(t, Pt(20, 100), pts[91], approx(1e-9))
	diff(t, Pt(0, 80), pts[181], approx(1e-9))
	diff(t, Pt(0, 20), pts[182], approx(1e-9))
	diff(t, Pt(20, 0), pts[272], approx(1e-9))
	diff(t, Pt(80, 0), pts[273], approx(1e-9))
	diff(t, Pt(100, 20), pts[363], approx(1e-9))

	// The outline stays within the rectangle.
	bbox := s.BoundingBox()
	diff(t, Rect{0, 0, 100, 100}, bbox, approx(1e-9))

	// Iterating again produces the same points.
	diff(t, pts, slices.Collect(s.Points()))
}

func TestSuperellipseRectArea(t *testing.T) {
	rect := Rect{0, 0, 100, 100}
	cases := []Corners[float64]{
		AllCorners(2.0),
		AllCorners(4.0),
		AllCorners(0.5),
		{TopLeft: 1, TopRight: 2, BottomLeft: 4, BottomRight: 0.5},
	}
	for _, exps := range cases {
		s := NewSuperellipseRect(rect, Pt(20, 20), 0).RoundedRect.WithExponents(exps)
		p := s.Path()
		if a := p.SignedArea(); !(a > 0) {
			t.Errorf("%v: got signed area %v, want positive area", exps, a)
		}
		if ea, pa := s.Area(), p.Area(); math.Abs(ea-pa) > 0.5 {
			t.Errorf("%v: got areas %v and %v, expected them to be approximately equal", exps, ea, pa)
		}
	}

	s := NewSuperellipseRect(rect, Pt(20, 20), 2)
	if a, want := s.Area(), s.RoundedRect.Area(); math.Abs(a-want) > 1e-9 {
		t.Errorf("got area %v, want %v like the elliptical rounded rectangle", a, want)
	}
	// Exponent 1 cuts off a triangle of 20×20/2 at every corner.
	s = NewSuperellipseRect(rect, Pt(20, 20), 1)
	if a, want := s.Area(), 10000.0-4*200; math.Abs(a-want) > 1e-9 {
		t.Errorf("got area %v, want %v", a, want)
	}
}

func TestSuperellipseRectWinding(t *testing.T) {
	s := NewSuperellipseRect(Rect{0, 0, 100, 100}, Pt(20, 20), 4)
	cases := []struct {
		pt   Point
		want int
	}{
		{Pt(50, 50), 1},
		{Pt(1, 50), 1},
		{Pt(50, 99), 1},
		{Pt(0.5, 0.5), 0},
		{Pt(99.5, 99.5), 0},
		{Pt(150, 50), 0},
		{Pt(-1, 50), 0},
	}
	for _, tc := range cases {
		if got := s.Winding(tc.pt); got != tc.want {
			t.Errorf("%v: got winding number %d, want %d", tc.pt, got, tc.want)
		}
		if got := s.Path().Winding(tc.pt); got != tc.want {
			t.Errorf("%v: got path winding number %d, want %d", tc.pt, got, tc.want)
		}
		if got := s.Contains(tc.pt); got != (tc.want != 0) {
			t.Errorf("%v: got Contains = %t", tc.pt, got)
		}
	}
}

func TestSuperellipseRectDegenerateCorner(t *testing.T) {
	s := NewSuperellipseRect(Rect{0, 0, 100, 100}, Pt(20, 20), 4)
	s.Radii.BottomRight = Pt(0, 0)
	pts := slices.Collect(s.Points())
	if len(pts) != 364 {
		t.Fatalf("got %d points, want 364", len(pts))
	}
	for i, pt := range pts[:91] {
		if pt != Pt(100, 100) {
			t.Errorf("point %d: got %v, want the sharp corner (100, 100)", i, pt)
		}
	}
}

func TestSuperellipseRectInset(t *testing.T) {
	rect := Rect{0, 0, 100, 100}
	cases := []struct {
		exponent float64
		want     Point
	}{
		{4, Pt(15, 15)},
		{2, Pt(15, 15)},
		{1.01, Pt(15, 15)},
		// Rhombic and concave corners grow.
		{1, Pt(25, 25)},
		{0.5, Pt(25, 25)},
	}
	for _, tc := range cases {
		s := NewSuperellipseRect(rect, Pt(20, 20), tc.exponent)
		got := s.Inset(SymmetricInsets(Pt(5, 5)))
		diff(t, Rect{5, 5, 95, 95}, got.Rect)
		diff(t, AllCorners(tc.want), got.Radii)
		diff(t, s.Exponents, got.Exponents)
		diff(t, got, s.InsetSymmetric(Pt(5, 5)))
	}
}

func TestSuperellipseRectInsetPerCorner(t *testing.T) {
	s := NewSuperellipseRect(Rect{0, 0, 100, 100}, Pt(20, 20), 0).RoundedRect.WithExponents(Corners[float64]{
		TopLeft:     4,
		TopRight:    0.5,
		BottomLeft:  2,
		BottomRight: 1,
	})
	got := s.Inset(Insets{Left: 1, Top: 2, Right: 3, Bottom: 4})
	diff(t, Rect{1, 2, 97, 96}, got.Rect)
	want := Corners[Point]{
		TopLeft:     Pt(19, 18),
		TopRight:    Pt(23, 22),
		BottomLeft:  Pt(19, 16),
		BottomRight: Pt(23, 24),
	}
	diff(t, want, got.Radii)
}

func TestSuperellipseRectInsetNegative(t *testing.T) {
	s := NewSuperellipseRect(Rect{10, 10, 90, 90}, Pt(20, 20), 4)
	got := s.Inset(SymmetricInsets(Pt(-5, -5)))
	diff(t, Rect{5, 5, 95, 95}, got.Rect)
	diff(t, AllCorners(Pt(25, 25)), got.Radii)

	// Insetting and then outsetting by the same amount is lossless.
	in := Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}
	diff(t, s, s.Inset(in).Inset(in.Negate()), approx(1e-12))
}

func TestSuperellipseRectPointsStep(t *testing.T) {
	s := NewSuperellipseRect(Rect{0, 0, 100, 100}, Pt(20, 20), 4)
	diff(t, slices.Collect(s.Points()), slices.Collect(s.PointsStep(1)))

	if n := len(slices.Collect(s.PointsStep(0.5))); n != 4*181 {
		t.Errorf("got %d points, want %d", n, 4*181)
	}
	if n := len(slices.Collect(s.PointsStep(45))); n != 12 {
		t.Errorf("got %d points, want 12", n)
	}
	if n := len(slices.Collect(s.PointsStep(0))); n != 0 {
		t.Errorf("got %d points for a step of 0, want 0", n)
	}
}

func TestSuperellipseRectInverted(t *testing.T) {
	s := NewSuperellipseRect(Rect{100, 100, 0, 0}, Pt(20, 20), 4)
	for pt := range s.Points() {
		if pt.IsNaN() {
			t.Fatalf("inverted rectangle produced NaN point")
		}
	}
	if s.IsNaN() || s.IsInf() {
		t.Errorf("inverted rectangle reported as NaN or infinite")
	}
}

func TestRoundedRect(t *testing.T) {
	r := NewRoundedRect(Rect{0, 0, 100, 100}, 20)
	if a, want := r.Area(), 10000-(4-math.Pi)*400; math.Abs(a-want) > 1e-9 {
		t.Errorf("got area %v, want %v", a, want)
	}
	if ea, pa := r.Area(), r.Path().SignedArea(); math.Abs(ea-pa) > 0.5 {
		t.Errorf("got areas %v and %v, expected them to be approximately equal", ea, pa)
	}
	diff(t, slices.Collect(r.elliptical().Points()), slices.Collect(r.Points()))

	got := r.Inset(SymmetricInsets(Pt(5, 10)))
	diff(t, Rect{5, 10, 95, 90}, got.Rect)
	diff(t, AllCorners(Pt(15, 10)), got.Radii)

	if !r.Contains(Pt(50, 50)) {
		t.Errorf("center not contained")
	}
	if r.Contains(Pt(1, 1)) {
		t.Errorf("point outside of the rounded corner unexpectedly contained")
	}
	if !r.Contains(Pt(1, 50)) {
		t.Errorf("point on the left edge not contained")
	}

	radii := Corners[Point]{TopLeft: Pt(1, 2), TopRight: Pt(3, 4), BottomLeft: Pt(5, 6), BottomRight: Pt(7, 8)}
	diff(t, RoundedRect{Rect{0, 0, 10, 10}, radii}, Rect{0, 0, 10, 10}.RoundedRect(radii))
}

func TestSuperellipseRectNaN(t *testing.T) {
	s := NewSuperellipseRect(Rect{0, 0, 100, 100}, Pt(20, 20), 4)
	s.Exponents.BottomLeft = math.NaN()
	if !s.IsNaN() {
		t.Errorf("NaN exponent not reported")
	}
	s = NewSuperellipseRect(Rect{0, 0, 100, 100}, Pt(math.Inf(1), 20), 4)
	if !s.IsInf() {
		t.Errorf("infinite radius not reported")
	}
}
