// Package tfi generates structured quadrilateral meshes over deformed
// quadrilateral domains using bilinear transfinite interpolation
// (Gordon-Hall blending). The four boundary curves are reproduced exactly
// along the mesh edges; interior nodes are blended from the boundary data
package tfi

import (
	"fmt"
	"runtime"

	"github.com/notargets/tfimesh/geometry"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Option adjusts mesh generation behavior
type Option func(*genConfig)

type genConfig struct {
	workers      int
	cornerTol    float64
	checkCorners bool
}

// WithWorkers evaluates mesh rows across n goroutines. The output is
// identical for any worker count; each node is written exactly once
// n < 1 selects GOMAXPROCS
func WithWorkers(n int) Option {
	return func(c *genConfig) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		c.workers = n
	}
}

// WithCornerCheck validates corner agreement of the boundary curves to
// within tol before generating, failing fast with ErrCornerMismatch.
// Without this option mismatched corners produce a mesh with a visible
// discontinuity at the affected corner
func WithCornerCheck(tol float64) Option {
	return func(c *genConfig) {
		c.checkCorners = true
		c.cornerTol = tol
	}
}

// GenerateMesh maps the uniform nx x nz logical lattice over [0,1]^2 into
// physical space via the bilinear Boolean-sum blend of the four boundary
// curves:
//
//	P(xi,eta) = (1-eta)*B(xi) + eta*T(xi) + (1-xi)*L(eta) + xi*R(eta)
//	          - [ xi*eta*T(1) + xi*(1-eta)*B(1)
//	            + eta*(1-xi)*T(0) + (1-xi)*(1-eta)*B(0) ]
//
// The result is deterministic and pure: identical inputs yield identical
// meshes. nx and nz must both be at least 2
func GenerateMesh(b Boundary, nx, nz int, opts ...Option) (*Mesh2D, error) {
	if nx < 2 || nz < 2 {
		return nil, fmt.Errorf("%w: got nx=%d, nz=%d", ErrResolution, nx, nz)
	}
	var cfg genConfig
	cfg.workers = 1
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.checkCorners {
		if err := b.Validate(cfg.cornerTol); err != nil {
			return nil, err
		}
	}

	// Boundary data is sampled once up front so the blend loop is pure
	// arithmetic. Slices are indexed as xb[i] = x of Bottom(xi_i), etc.
	xb, zb := sampleCurve(b.Bottom, nx)
	xt, zt := sampleCurve(b.Top, nx)
	xl, zl := sampleCurve(b.Left, nz)
	xr, zr := sampleCurve(b.Right, nz)

	// Corner values from the Bottom/Top endpoint evaluations
	xb0, zb0 := b.Bottom.Eval(0)
	xb1, zb1 := b.Bottom.Eval(1)
	xt0, zt0 := b.Top.Eval(0)
	xt1, zt1 := b.Top.Eval(1)

	m := &Mesh2D{
		Nx: nx,
		Nz: nz,
		X:  mat.NewDense(nx, nz, nil),
		Z:  mat.NewDense(nx, nz, nil),
	}

	fillRows := func(i0, i1 int) {
		for i := i0; i < i1; i++ {
			xi := float64(i) / float64(nx-1)
			for j := 0; j < nz; j++ {
				eta := float64(j) / float64(nz-1)
				x := (1-eta)*xb[i] + eta*xt[i] + (1-xi)*xl[j] + xi*xr[j] -
					(xi*eta*xt1 + xi*(1-eta)*xb1 +
						eta*(1-xi)*xt0 + (1-xi)*(1-eta)*xb0)
				z := (1-eta)*zb[i] + eta*zt[i] + (1-xi)*zl[j] + xi*zr[j] -
					(xi*eta*zt1 + xi*(1-eta)*zb1 +
						eta*(1-xi)*zt0 + (1-xi)*(1-eta)*zb0)
				m.X.Set(i, j, x)
				m.Z.Set(i, j, z)
			}
		}
	}

	if cfg.workers <= 1 {
		fillRows(0, nx)
		return m, nil
	}

	// Row blocks have no data dependency; workers write disjoint rows
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	rowsPer := (nx + cfg.workers - 1) / cfg.workers
	for i0 := 0; i0 < nx; i0 += rowsPer {
		i0, i1 := i0, i0+rowsPer
		if i1 > nx {
			i1 = nx
		}
		g.Go(func() error {
			fillRows(i0, i1)
			return nil
		})
	}
	// Workers return no errors; Wait is for completion only
	_ = g.Wait()
	return m, nil
}

// sampleCurve evaluates c at n uniform parameters over [0,1], endpoints
// included exactly
func sampleCurve(c geometry.Curve, n int) (xs, zs []float64) {
	xs = make([]float64, n)
	zs = make([]float64, n)
	for i := 0; i < n; i++ {
		s := float64(i) / float64(n-1)
		xs[i], zs[i] = c.Eval(s)
	}
	return
}
