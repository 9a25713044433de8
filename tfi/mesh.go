package tfi

import (
	"fmt"
	"strings"

	"github.com/notargets/tfimesh/geometry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mesh2D holds the physical coordinates of a structured quadrilateral mesh
// X and Z are [Nx x Nz]: row i, column j is the image of logical node
// (xi_i, eta_j) with xi_i = i/(Nx-1), eta_j = j/(Nz-1)
// A Mesh2D is write-once; it is fully populated on construction and not
// mutated afterward
type Mesh2D struct {
	Nx, Nz int
	X, Z   *mat.Dense
}

// Dims returns the number of logical samples along xi and eta
func (m *Mesh2D) Dims() (nx, nz int) { return m.Nx, m.Nz }

// At returns the physical coordinates of logical node (i, j)
func (m *Mesh2D) At(i, j int) (x, z float64) {
	return m.X.At(i, j), m.Z.At(i, j)
}

// Corners returns the four corner nodes in the order
// (0,0), (Nx-1,0), (0,Nz-1), (Nx-1,Nz-1)
func (m *Mesh2D) Corners() [4]geometry.Point {
	var c [4]geometry.Point
	c[0].X, c[0].Z = m.At(0, 0)
	c[1].X, c[1].Z = m.At(m.Nx-1, 0)
	c[2].X, c[2].Z = m.At(0, m.Nz-1)
	c[3].X, c[3].Z = m.At(m.Nx-1, m.Nz-1)
	return c
}

// Bounds returns the axis-aligned bounding box of all mesh nodes
func (m *Mesh2D) Bounds() (min, max geometry.Point) {
	min.X = floats.Min(m.X.RawMatrix().Data)
	max.X = floats.Max(m.X.RawMatrix().Data)
	min.Z = floats.Min(m.Z.RawMatrix().Data)
	max.Z = floats.Max(m.Z.RawMatrix().Data)
	return
}

// String returns a summary of the mesh dimensions and extents
func (m *Mesh2D) String() string {
	var sb strings.Builder
	sb.WriteString("=== Mesh2D Summary ===\n")
	sb.WriteString(fmt.Sprintf("  Nodes: %d x %d (%d total)\n", m.Nx, m.Nz, m.Nx*m.Nz))
	sb.WriteString(fmt.Sprintf("  Cells: %d x %d\n", m.Nx-1, m.Nz-1))
	min, max := m.Bounds()
	sb.WriteString(fmt.Sprintf("  X range: [%.4f, %.4f]\n", min.X, max.X))
	sb.WriteString(fmt.Sprintf("  Z range: [%.4f, %.4f]\n", min.Z, max.Z))
	return sb.String()
}
