package writers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/notargets/tfimesh/tfi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityMesh(t *testing.T, nx, nz int) *tfi.Mesh2D {
	t.Helper()
	m, err := tfi.GenerateMesh(tfi.UnitSquareBoundary(), nx, nz)
	require.NoError(t, err)
	return m
}

func TestWriteVTKHeader(t *testing.T) {
	m := identityMesh(t, 3, 4)

	var buf bytes.Buffer
	require.NoError(t, WriteVTK(&buf, m, "test grid"))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "# vtk DataFile Version 3.0", lines[0])
	assert.Equal(t, "test grid", lines[1])
	assert.Equal(t, "ASCII", lines[2])
	assert.Equal(t, "DATASET STRUCTURED_GRID", lines[3])
	assert.Equal(t, "DIMENSIONS 4 3 1", lines[4])
	assert.Equal(t, "POINTS 12 double", lines[5])
}

func TestWriteVTKPointCount(t *testing.T) {
	m := identityMesh(t, 5, 7)

	var buf bytes.Buffer
	require.NoError(t, WriteVTK(&buf, m, ""))

	out := strings.TrimRight(buf.String(), "\n")
	lines := strings.Split(out, "\n")
	// 6 header lines followed by Nx*Nz point lines
	assert.Len(t, lines, 6+5*7)
	assert.Contains(t, buf.String(), "tfimesh structured grid")

	// First point is the (0,0) corner at the origin
	assert.Equal(t, "0 0 0", lines[6])
	// Last point is the (1,1) corner
	assert.Equal(t, "1 1 0", lines[len(lines)-1])
}

func TestWriteDatBlocks(t *testing.T) {
	m := identityMesh(t, 4, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteDat(&buf, m))

	// One block per constant-xi line, separated by blank lines
	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	require.Len(t, blocks, 4)
	for _, b := range blocks {
		assert.Len(t, strings.Split(b, "\n"), 3)
	}
	assert.Equal(t, "0 0", strings.Split(blocks[0], "\n")[0])
}
