package geometry

import "math"

// Line is a straight segment from P0 (s=0) to P1 (s=1)
type Line struct {
	P0, P1 Point
}

func (l Line) Eval(s float64) (x, z float64) {
	x = l.P0.X + s*(l.P1.X-l.P0.X)
	z = l.P0.Z + s*(l.P1.Z-l.P0.Z)
	return
}

// Arc is a circular arc swept from angle Theta0 (s=0) to Theta1 (s=1)
// Angles are in radians; a decreasing sweep (Theta1 < Theta0) is allowed
type Arc struct {
	Center         Point
	Radius         float64
	Theta0, Theta1 float64
}

func (a Arc) Eval(s float64) (x, z float64) {
	theta := a.Theta0 + s*(a.Theta1-a.Theta0)
	x = a.Center.X + a.Radius*math.Cos(theta)
	z = a.Center.Z + a.Radius*math.Sin(theta)
	return
}

// Polyline is a piecewise-linear curve through Pts, parameterized by
// arc length so that equal parameter steps cover equal physical distance
// Requires at least two points; duplicate consecutive points contribute
// zero length and are skipped during evaluation
type Polyline struct {
	Pts []Point

	// cumulative arc length per vertex, built lazily
	cum   []float64
	total float64
}

// NewPolyline builds a Polyline with its arc-length table precomputed
func NewPolyline(pts []Point) *Polyline {
	p := &Polyline{Pts: pts}
	p.buildTable()
	return p
}

func (p *Polyline) buildTable() {
	p.cum = make([]float64, len(p.Pts))
	for i := 1; i < len(p.Pts); i++ {
		dx := p.Pts[i].X - p.Pts[i-1].X
		dz := p.Pts[i].Z - p.Pts[i-1].Z
		p.cum[i] = p.cum[i-1] + math.Hypot(dx, dz)
	}
	if len(p.cum) > 0 {
		p.total = p.cum[len(p.cum)-1]
	}
}

func (p *Polyline) Eval(s float64) (x, z float64) {
	if p.cum == nil {
		p.buildTable()
	}
	if len(p.Pts) == 1 || p.total == 0 {
		return p.Pts[0].X, p.Pts[0].Z
	}
	target := s * p.total
	// locate the segment containing target by binary search
	lo, hi := 0, len(p.cum)-1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if p.cum[mid] < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	segLen := p.cum[hi] - p.cum[lo]
	if segLen == 0 {
		return p.Pts[hi].X, p.Pts[hi].Z
	}
	f := (target - p.cum[lo]) / segLen
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	x = p.Pts[lo].X + f*(p.Pts[hi].X-p.Pts[lo].X)
	z = p.Pts[lo].Z + f*(p.Pts[hi].Z-p.Pts[lo].Z)
	return
}
