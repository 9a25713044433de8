package writers

import (
	"bufio"
	"fmt"
	"io"

	"github.com/notargets/tfimesh/tfi"
)

// WriteDat writes m as whitespace-separated "x z" rows, one block per
// constant-xi grid line with blank lines between blocks. The layout is
// directly consumable by gnuplot's splot/plot with the grid style
func WriteDat(w io.Writer, m *tfi.Mesh2D) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Nx; i++ {
		for j := 0; j < m.Nz; j++ {
			x, z := m.At(i, j)
			fmt.Fprintf(bw, "%.17g %.17g\n", x, z)
		}
		if i != m.Nx-1 {
			fmt.Fprintln(bw)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing dat grid: %w", err)
	}
	return nil
}
