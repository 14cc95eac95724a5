package superellipse

// Line represents a line segment of an outline.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// SignedArea returns the signed area between the line and the origin. Summed
// over the edges of a closed outline, this is the outline's signed area
// (the "shoelace formula").
func (l Line) SignedArea() float64 {
	return (l.P0.X*l.P1.Y - l.P1.X*l.P0.Y) * 0.5
}

func (l Line) BoundingBox() Rect {
	return Rect{
		Left:   min(l.P0.X, l.P1.X),
		Top:    min(l.P0.Y, l.P1.Y),
		Right:  max(l.P0.X, l.P1.X),
		Bottom: max(l.P0.Y, l.P1.Y),
	}
}

// Winding returns the line's contribution to the winding number of pt. A
// ray cast from pt towards negative x that crosses the line counts +1 for
// lines running up (towards negative y) and -1 for lines running down.
//
// The line includes its upper end point but not its lower one, so that
// consecutive lines of a polygon don't count a crossing at a shared vertex
// twice.
func (l Line) Winding(pt Point) int {
	top, bottom, dir := l.P0, l.P1, -1
	if bottom.Y < top.Y {
		top, bottom, dir = bottom, top, 1
	}
	if !(top.Y <= pt.Y && pt.Y < bottom.Y) {
		return 0
	}
	if pt.X < min(top.X, bottom.X) {
		return 0
	}
	if pt.X >= max(top.X, bottom.X) {
		return dir
	}
	d := bottom.Sub(top)
	v := pt.Sub(top)
	if d.Y*v.X-d.X*v.Y >= 0 {
		return dir
	}
	return 0
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
