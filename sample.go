package superellipse

import "iter"

// DegreeRange returns every whole degree from start to end, both inclusive.
// The range is empty if end < start.
func DegreeRange(start, end int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for d := start; d <= end; d++ {
			if !yield(float64(d)) {
				return
			}
		}
	}
}

// stepSlack absorbs rounding in DegreeSteps so that end is produced when
// (end-start) is a multiple of step.
const stepSlack = 1e-9

// DegreeSteps returns start, start+step, start+2·step, and so on, up to and
// including end. Each angle is computed from start directly, so errors don't
// accumulate. The range is empty if step isn't positive or end < start.
//
// DegreeSteps(a, b, 1) yields the same angles as DegreeRange(a, b) for whole
// a and b.
func DegreeSteps(start, end, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !(step > 0) {
			return
		}
		for i := 0; ; i++ {
			d := start + float64(i)*step
			if d > end+stepSlack {
				return
			}
			if d > end {
				d = end
			}
			if !yield(d) {
				return
			}
		}
	}
}
