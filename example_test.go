package superellipse_test

import (
	"fmt"
	"math"
	"slices"

	"honnef.co/go/superellipse"
)

func ExampleSuperellipseRect_PointsStep() {
	// A coarse squircle, sampled every 45° so that the output stays short.
	s := superellipse.NewSuperellipseRect(
		superellipse.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100},
		superellipse.Pt(20, 20),
		4,
	)
	els := superellipse.PathElements(s.PointsStep(45))
	fmt.Println(superellipse.SVG(els, superellipse.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M100,80 L96.818,96.818 L80,100 L20,100 L3.182,96.818 L0,80 L0,20 L3.182,3.182 L20,0 L80,0 L96.818,3.182 L100,20 Z
}

func ExampleSuperellipse_Sample() {
	circle := superellipse.Superellipse{
		Exponent: 2,
		Radius:   superellipse.Pt(10, 10),
	}
	pts := circle.Sample(slices.Values([]float64{0, 90, 180, 270}))
	fmt.Println(superellipse.SVG(superellipse.PathElements(pts), superellipse.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M10,0 L0,10 L-10,0 L0,-10 Z
}

func ExampleSuperellipseRect_Inset() {
	s := superellipse.NewSuperellipseRect(
		superellipse.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100},
		superellipse.Pt(20, 20),
		4,
	)
	border := s.InsetSymmetric(superellipse.Pt(5, 5))
	fmt.Println(border.Rect)
	fmt.Println(border.Radii.TopLeft)
	// Output:
	// Rect{L: 5, T: 5, R: 95, B: 95}
	// (15, 15)
}

func ExampleBuildPath() {
	var p superellipse.Path
	superellipse.BuildPath(&p, slices.Values([]superellipse.Point{
		superellipse.Pt(0, 0),
		superellipse.Pt(10, 0),
		superellipse.Pt(10, 10),
	}))
	for _, el := range p {
		fmt.Println(el)
	}
	// Output:
	// MoveTo((0, 0))
	// LineTo((10, 0))
	// LineTo((10, 10))
	// ClosePath()
}

func ExampleSuperellipse_Area() {
	s := superellipse.Superellipse{
		Exponent: 4,
		Radius:   superellipse.Pt(40, 30),
	}
	fmt.Printf("%.2f\n", s.Area())
	// The sampled outline is within a fraction of a per mille.
	rel := math.Abs(s.Path().SignedArea()-s.Area()) / s.Area()
	fmt.Printf("%.2f‰\n", rel*1000)
	// Output:
	// 4449.78
	// 0.04‰
}
