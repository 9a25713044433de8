package tfi

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// QualityReport summarizes per-cell geometric quality of a structured mesh
// Areas are signed: positive for counterclockwise (right-handed) cells,
// negative for inverted (folded) cells
type QualityReport struct {
	MinArea, MaxArea float64
	TotalArea        float64
	MinAngleDeg      float64 // smallest interior corner angle over all cells
	InvertedCells    int     // cells with non-positive signed area
}

// Quality computes per-cell signed areas and corner angles for the
// (Nx-1) x (Nz-1) cells of m. TFI over strongly curved boundaries can fold
// the mesh; a negative minimum area or nonzero InvertedCells flags that
func Quality(m *Mesh2D) QualityReport {
	nCells := (m.Nx - 1) * (m.Nz - 1)
	areas := make([]float64, 0, nCells)
	minAngle := math.Pi

	for i := 0; i < m.Nx-1; i++ {
		for j := 0; j < m.Nz-1; j++ {
			// Cell vertices in counterclockwise order for a
			// right-handed boundary orientation
			x0, z0 := m.At(i, j)
			x1, z1 := m.At(i+1, j)
			x2, z2 := m.At(i+1, j+1)
			x3, z3 := m.At(i, j+1)

			// Shoelace over the quad
			a := 0.5 * ((x0*z1 - x1*z0) + (x1*z2 - x2*z1) +
				(x2*z3 - x3*z2) + (x3*z0 - x0*z3))
			areas = append(areas, a)

			for _, ang := range cornerAngles(x0, z0, x1, z1, x2, z2, x3, z3) {
				if ang < minAngle {
					minAngle = ang
				}
			}
		}
	}

	r := QualityReport{
		MinArea:     floats.Min(areas),
		MaxArea:     floats.Max(areas),
		TotalArea:   floats.Sum(areas),
		MinAngleDeg: minAngle * 180 / math.Pi,
	}
	for _, a := range areas {
		if a <= 0 {
			r.InvertedCells++
		}
	}
	return r
}

// String returns a one-line quality summary
func (r QualityReport) String() string {
	return fmt.Sprintf("cells: area [%.4g, %.4g] total %.4g, min angle %.2f deg, inverted %d",
		r.MinArea, r.MaxArea, r.TotalArea, r.MinAngleDeg, r.InvertedCells)
}

// cornerAngles returns the four interior angles of the quad
// (x0,z0)-(x1,z1)-(x2,z2)-(x3,z3)
func cornerAngles(x0, z0, x1, z1, x2, z2, x3, z3 float64) [4]float64 {
	xs := [4]float64{x0, x1, x2, x3}
	zs := [4]float64{z0, z1, z2, z3}
	var angles [4]float64
	for k := 0; k < 4; k++ {
		prev, next := (k+3)%4, (k+1)%4
		ux, uz := xs[prev]-xs[k], zs[prev]-zs[k]
		vx, vz := xs[next]-xs[k], zs[next]-zs[k]
		nu, nv := math.Hypot(ux, uz), math.Hypot(vx, vz)
		if nu == 0 || nv == 0 {
			angles[k] = 0
			continue
		}
		c := (ux*vx + uz*vz) / (nu * nv)
		if c > 1 {
			c = 1
		} else if c < -1 {
			c = -1
		}
		angles[k] = math.Acos(c)
	}
	return angles
}
