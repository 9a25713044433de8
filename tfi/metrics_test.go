package tfi

import (
	"math"
	"testing"

	"github.com/notargets/tfimesh/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityIdentityMesh(t *testing.T) {
	// 3x3 identity mesh: four unit-quarter cells, all square
	m, err := GenerateMesh(UnitSquareBoundary(), 3, 3)
	require.NoError(t, err)

	q := Quality(m)
	assert.InDelta(t, 0.25, q.MinArea, 1e-14)
	assert.InDelta(t, 0.25, q.MaxArea, 1e-14)
	assert.InDelta(t, 1.0, q.TotalArea, 1e-14)
	assert.InDelta(t, 90.0, q.MinAngleDeg, 1e-10)
	assert.Equal(t, 0, q.InvertedCells)
}

func TestQualityCurvedMeshTotalArea(t *testing.T) {
	// Annular quarter ring between radii 1 and 2: total cell area
	// converges to pi*(4-1)/4 as resolution increases. The arcs sweep
	// from pi/2 to 0 so cells come out counterclockwise
	inner := geometry.Arc{Radius: 1, Theta0: math.Pi / 2, Theta1: 0}
	outer := geometry.Arc{Radius: 2, Theta0: math.Pi / 2, Theta1: 0}
	b := Boundary{
		Bottom: inner,
		Top:    outer,
		Left:   geometry.Line{P0: geometry.Point{X: 0, Z: 1}, P1: geometry.Point{X: 0, Z: 2}},
		Right:  geometry.Line{P0: geometry.Point{X: 1, Z: 0}, P1: geometry.Point{X: 2, Z: 0}},
	}
	require.NoError(t, b.Validate(1e-12))

	m, err := GenerateMesh(b, 60, 10)
	require.NoError(t, err)

	q := Quality(m)
	assert.Equal(t, 0, q.InvertedCells)
	assert.Greater(t, q.MinArea, 0.0)
	assert.InDelta(t, 3*math.Pi/4, q.TotalArea, 0.01)
}

func TestQualityDetectsFoldedMesh(t *testing.T) {
	// Crossing left/right sides fold the mapping; the report must flag
	// inverted cells
	b := Boundary{
		Bottom: geometry.Line{P0: geometry.Point{X: 0, Z: 0}, P1: geometry.Point{X: 1, Z: 0}},
		Top:    geometry.Line{P0: geometry.Point{X: 1, Z: 1}, P1: geometry.Point{X: 0, Z: 1}},
		Left:   geometry.Line{P0: geometry.Point{X: 0, Z: 0}, P1: geometry.Point{X: 1, Z: 1}},
		Right:  geometry.Line{P0: geometry.Point{X: 1, Z: 0}, P1: geometry.Point{X: 0, Z: 1}},
	}
	m, err := GenerateMesh(b, 8, 8)
	require.NoError(t, err)

	q := Quality(m)
	assert.Greater(t, q.InvertedCells, 0)
	assert.Less(t, q.MinArea, 0.0)
}
