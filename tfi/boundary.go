package tfi

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/tfimesh/geometry"
)

var (
	// ErrResolution reports a mesh resolution below the 2x2 minimum
	ErrResolution = errors.New("mesh resolution must be at least 2 in each direction")

	// ErrCornerMismatch reports adjacent boundary curves that disagree at
	// a shared corner
	ErrCornerMismatch = errors.New("boundary curves disagree at a corner")
)

// Boundary holds the four parametric curves bounding the physical domain
// Bottom and Top are parameterized by xi in [0,1], Left and Right by
// eta in [0,1]. Adjacent curves must agree at the shared corners:
//
//	Bottom(0) = Left(0)    Bottom(1) = Right(0)
//	Top(0)    = Left(1)    Top(1)    = Right(1)
//
// Corner agreement is not enforced by default; see WithCornerCheck
type Boundary struct {
	Bottom, Top, Left, Right geometry.Curve
}

// UnitSquareBoundary returns the boundary whose TFI image is the identity
// mapping of the logical domain
func UnitSquareBoundary() Boundary {
	b, t, l, r := geometry.UnitSquare()
	return Boundary{Bottom: b, Top: t, Left: l, Right: r}
}

// Corners evaluates the four corner points from the Bottom and Top curves,
// in the order (xi,eta) = (0,0), (1,0), (0,1), (1,1)
func (b Boundary) Corners() [4]geometry.Point {
	var c [4]geometry.Point
	c[0].X, c[0].Z = b.Bottom.Eval(0)
	c[1].X, c[1].Z = b.Bottom.Eval(1)
	c[2].X, c[2].Z = b.Top.Eval(0)
	c[3].X, c[3].Z = b.Top.Eval(1)
	return c
}

// Validate checks corner agreement between adjacent curves to within tol
// (Euclidean distance). It returns an ErrCornerMismatch-wrapped error
// naming the first offending corner
func (b Boundary) Validate(tol float64) error {
	checks := []struct {
		name   string
		c1, c2 geometry.Curve
		s1, s2 float64
	}{
		{"bottom-left (xi=0, eta=0)", b.Bottom, b.Left, 0, 0},
		{"bottom-right (xi=1, eta=0)", b.Bottom, b.Right, 1, 0},
		{"top-left (xi=0, eta=1)", b.Top, b.Left, 0, 1},
		{"top-right (xi=1, eta=1)", b.Top, b.Right, 1, 1},
	}
	for _, ck := range checks {
		x1, z1 := ck.c1.Eval(ck.s1)
		x2, z2 := ck.c2.Eval(ck.s2)
		if d := math.Hypot(x1-x2, z1-z2); d > tol {
			return fmt.Errorf("%w: %s separated by %g (tol %g)",
				ErrCornerMismatch, ck.name, d, tol)
		}
	}
	return nil
}
