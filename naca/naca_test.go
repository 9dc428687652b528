package naca

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection4DigitSymmetric(t *testing.T) {
	pts, err := Section("0012", 240)
	require.NoError(t, err)
	require.Equal(t, 241, len(pts))

	// Traversal runs TE -> upper -> LE -> lower -> TE
	assert.InDelta(t, 1., pts[0].X, 1.e-12)
	assert.InDelta(t, 0., pts[120].X, 1.e-12) // leading edge at the midpoint
	assert.InDelta(t, 1., pts[240].X, 1.e-12)

	// Zero camber: lower surface mirrors the upper exactly
	N := len(pts)
	for i := 0; i < N/2; i++ {
		assert.InDelta(t, pts[i].X, pts[N-1-i].X, 1.e-12)
		assert.InDelta(t, pts[i].Y, -pts[N-1-i].Y, 1.e-12)
	}

	// Thickness peaks near 12% of chord
	var tMax float64
	for i := 0; i < N/2; i++ {
		tMax = math.Max(tMax, 2.*pts[i].Y)
	}
	assert.InDelta(t, 0.12, tMax, 2.e-3)
}

func TestSection4DigitCambered(t *testing.T) {
	pts, err := Section("2412", 240)
	require.NoError(t, err)

	// Camber pushes the mean line up: upper surface magnitude exceeds lower
	var yUpMax, yLoMin float64
	for _, p := range pts {
		yUpMax = math.Max(yUpMax, p.Y)
		yLoMin = math.Min(yLoMin, p.Y)
	}
	assert.Greater(t, yUpMax, -yLoMin)
	assert.Greater(t, yUpMax, 0.06)
}

func TestSection5Digit(t *testing.T) {
	pts, err := Section("23012", 240)
	require.NoError(t, err)
	require.Equal(t, 241, len(pts))
	// The camber slope is nonzero at the open trailing edge, so the surface
	// points land slightly off x = 1
	assert.InDelta(t, 1., pts[0].X, 1.e-3)
	assert.InDelta(t, 1., pts[240].X, 1.e-3)

	// The 230 mean line is front loaded: max camber near 15% chord
	var yUpMax float64
	var xAtMax float64
	for _, p := range pts {
		if p.Y > yUpMax {
			yUpMax, xAtMax = p.Y, p.X
		}
	}
	assert.Less(t, xAtMax, 0.4)
}

func TestSectionBadCodes(t *testing.T) {
	_, err := Section("001", 100)
	require.Error(t, err)
	_, err = Section("00x2", 100)
	require.Error(t, err)
	_, err = Section("25012", 100)
	require.Error(t, err)
}
