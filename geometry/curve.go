// Package geometry provides parametric boundary curves for mesh generation
package geometry

// Point is a position in the physical (x,z) plane
type Point struct {
	X, Z float64
}

// Curve is a parametric boundary curve over s in [0,1]
// Implementations must be total on [0,1]; behavior outside the interval
// is unspecified
type Curve interface {
	// Eval returns the physical coordinates of the curve at parameter s
	Eval(s float64) (x, z float64)
}

// CurveFunc adapts a plain function to the Curve interface
type CurveFunc func(s float64) (x, z float64)

func (f CurveFunc) Eval(s float64) (x, z float64) { return f(s) }

// UnitSquare returns the four edges of the unit square in standard
// orientation: bottom(s)=(s,0), top(s)=(s,1), left(s)=(0,s), right(s)=(1,s)
func UnitSquare() (bottom, top, left, right Curve) {
	bottom = Line{Point{0, 0}, Point{1, 0}}
	top = Line{Point{0, 1}, Point{1, 1}}
	left = Line{Point{0, 0}, Point{0, 1}}
	right = Line{Point{1, 0}, Point{1, 1}}
	return
}
