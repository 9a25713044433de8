// Package writers serializes generated meshes for external visualization
// and post-processing tools
package writers

import (
	"bufio"
	"fmt"
	"io"

	"github.com/notargets/tfimesh/tfi"
)

// WriteVTK writes m as a legacy ASCII VTK STRUCTURED_GRID dataset
// Points are emitted with the eta index varying fastest, matching the VTK
// convention of x-fastest ordering with dimensions (Nz, Nx, 1)
func WriteVTK(w io.Writer, m *tfi.Mesh2D, title string) error {
	if title == "" {
		title = "tfimesh structured grid"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# vtk DataFile Version 3.0\n%s\nASCII\n", title)
	fmt.Fprintf(bw, "DATASET STRUCTURED_GRID\n")
	fmt.Fprintf(bw, "DIMENSIONS %d %d 1\n", m.Nz, m.Nx)
	fmt.Fprintf(bw, "POINTS %d double\n", m.Nx*m.Nz)
	for i := 0; i < m.Nx; i++ {
		for j := 0; j < m.Nz; j++ {
			x, z := m.At(i, j)
			fmt.Fprintf(bw, "%.17g %.17g 0\n", x, z)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing VTK dataset: %w", err)
	}
	return nil
}
