package superellipse

import (
	"math"
	"testing"
)

func TestRectAreaSign(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-8
	}

	r := Rect{0.0, 0.0, 10.0, 10.0}
	center := r.Center()
	if a := r.Area(); !approxEqual(a, 100) {
		t.Errorf("got area %v, want %v", a, 100.0)
	}
	if w := r.Winding(center); w != 1 {
		t.Errorf("got winding %v, want %v", w, 1)
	}

	p := r.Path()
	if ra, pa := r.Area(), p.SignedArea(); !approxEqual(ra, pa) {
		t.Errorf("expected r's and p's areas to be approximately equal, got %v and %v", ra, pa)
	}
	if rw, pw := r.Winding(center), p.Winding(center); rw != pw {
		t.Errorf("expected r's and p's winding numbers to be equal, got %v and %v", rw, pw)
	}

	rFlip := Rect{0.0, 10.0, 10.0, 0.0}
	if a := rFlip.Area(); !approxEqual(a, -100) {
		t.Errorf("got area %v, want %v", a, -100.0)
	}
	if w := rFlip.Winding(Pt(5, 5)); w != -1 {
		t.Errorf("got winding %v, want %v", w, -1)
	}

	pFlip := rFlip.Path()
	if ra, pa := rFlip.Area(), pFlip.SignedArea(); !approxEqual(ra, pa) {
		t.Errorf("expected r's and p's areas to be approximately equal, got %v and %v", ra, pa)
	}
	if rw, pw := rFlip.Winding(center), pFlip.Winding(center); rw != pw {
		t.Errorf("expected r's and p's winding numbers to be equal, got %v and %v", rw, pw)
	}
}

func TestRectConstructors(t *testing.T) {
	diff(t, Rect{10, 20, 110, 70}, NewRectFromXYWH(10, 20, 100, 50))
	diff(t, Rect{40, 45, 60, 55}, NewRectFromCenter(Pt(50, 50), Pt(10, 5)))

	r := Rect{10, 20, 110, 70}
	diff(t, Pt(100, 50), r.Size())
	diff(t, Pt(60, 45), r.Center())
	diff(t, Rect{0, 0, 10, 10}, Rect{10, 10, 0, 0}.Abs())
}

func TestRectInset(t *testing.T) {
	r := Rect{0, 0, 100, 50}
	diff(t, Rect{1, 2, 97, 46}, r.Inset(Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}))
	diff(t, Rect{-5, -5, 105, 55}, r.Inset(SymmetricInsets(Pt(-5, -5))))
	// Insetting by more than the size inverts the rectangle.
	if got := r.Inset(SymmetricInsets(Pt(60, 0))); !(got.Width() < 0) {
		t.Errorf("got width %v, want negative width", got.Width())
	}
	diff(t, Rect{5, -5, 105, 45}, r.Translate(Pt(5, -5)))
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	cases := []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(5, 5), true},
		{Pt(10, 5), false},
		{Pt(5, 10), false},
		{Pt(-1, 5), false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.pt); got != tc.want {
			t.Errorf("%v: got %t, want %t", tc.pt, got, tc.want)
		}
	}
}

func TestRoundedRectArea(t *testing.T) {
	const epsilon = 1e-9

	// Extremum: 0.0 radius corner -> rectangle
	rect := Rect{0.0, 0.0, 100.0, 100.0}
	roundedRect := RoundedRect{Rect: rect}
	if ra, rra := rect.Area(), roundedRect.Area(); math.Abs(ra-rra) > epsilon {
		t.Errorf("got areas %v and %v, expected them to be equal", ra, rra)
	}

	// Extremum: half-size radius corner -> circle
	circle := NewSuperellipseFromRect(2, rect)
	roundedRect = NewRoundedRect(rect, 50)
	if ca, rra := circle.Area(), roundedRect.Area(); math.Abs(ca-rra) > epsilon {
		t.Errorf("got areas %v and %v, expected them to be equal", ca, rra)
	}
}

func TestRoundedRectWinding(t *testing.T) {
	type point struct {
		point   Point
		winding int
	}
	tests := []struct {
		rect   RoundedRect
		points []point
	}{
		{
			RoundedRect{Rect{-5.0, -5.0, 10.0, 20.0}, Corners[Point]{
				TopLeft:     Pt(5, 5),
				TopRight:    Pt(5, 5),
				BottomLeft:  Pt(0, 0),
				BottomRight: Pt(5, 5),
			}},
			[]point{
				{Pt(0.0, 0.0), 1},
				{Pt(-4.0, 0.0), 1},  // near the left edge
				{Pt(0.0, 19.0), 1},  // near the bottom edge
				{Pt(9.9, 19.9), 0},  // bottom-right corner
				{Pt(-4.9, 19.9), 1}, // bottom-left corner (has a radius of 0)
				{Pt(-10.0, 0.0), 0},
			},
		},
		{
			NewRoundedRect(Rect{-10.0, -20.0, 10.0, 20.0}, 0.0), // rectangle
			[]point{
				{Pt(9.9, 19.9), 1}, // bottom-right corner
			},
		},
		{
			NewRoundedRect(Rect{-10.0, -10.0, 10.0, 10.0}, 10.0), // circle
			[]point{
				{Pt(0, 0), 1},
				{Pt(7, 7), 1},
				{Pt(8, 8), 0},
			},
		},
	}
	for _, tt := range tests {
		for _, p := range tt.points {
			if w := tt.rect.Winding(p.point); w != p.winding {
				t.Errorf("%v: got winding %d for %v, want %d", tt.rect, w, p.point, p.winding)
			}
		}
	}
}
