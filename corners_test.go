package superellipse

import "testing"

func TestAllCorners(t *testing.T) {
	diff(t, Corners[float64]{4, 4, 4, 4}, AllCorners(4.0))
	diff(t, Corners[Point]{Pt(1, 2), Pt(1, 2), Pt(1, 2), Pt(1, 2)}, AllCorners(Pt(1, 2)))
	diff(t, Corners[string]{"a", "a", "a", "a"}, AllCorners("a"))
}

func TestMapCorners(t *testing.T) {
	c := Corners[float64]{TopLeft: 1, TopRight: 2, BottomLeft: 3, BottomRight: 4}
	got := MapCorners(c, func(v float64) Point { return Pt(v, -v) })
	want := Corners[Point]{
		TopLeft:     Pt(1, -1),
		TopRight:    Pt(2, -2),
		BottomLeft:  Pt(3, -3),
		BottomRight: Pt(4, -4),
	}
	diff(t, want, got)

	sum := ZipCorners(c, got, func(a float64, b Point) float64 { return a + b.Y })
	diff(t, AllCorners(0.0), sum)
}

func TestCornersString(t *testing.T) {
	c := Corners[float64]{TopLeft: 1, TopRight: 2, BottomLeft: 3, BottomRight: 4}
	if s, want := c.String(), "{TL: 1, TR: 2, BL: 3, BR: 4}"; s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}
