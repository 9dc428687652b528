package panel

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolab/panelflow/geometry"
)

func TestBuildSquare(t *testing.T) {
	c := &geometry.Contour{Points: []geometry.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0},
	}}
	panels, err := Build(c)
	require.NoError(t, err)
	require.Equal(t, 4, len(panels))

	// Panel 0 runs along +x on the bottom edge: its outward normal is -y
	p0 := panels[0]
	assert.Equal(t, 0.5, p0.XC)
	assert.Equal(t, 0., p0.YC)
	assert.InDelta(t, 1., p0.Length, 1.e-14)
	assert.InDelta(t, 0., p0.Theta, 1.e-14)
	assert.InDelta(t, -0.5*math.Pi, p0.Beta, 1.e-14)

	// Panel 2 runs along -x on the top edge: its outward normal is +y
	p2 := panels[2]
	assert.InDelta(t, math.Pi, p2.Theta, 1.e-14)
	assert.InDelta(t, 0.5*math.Pi, p2.Beta, 1.e-14)

	assert.InDelta(t, 4., Perimeter(panels), 1.e-14)
}

func TestBuildDegeneratePanel(t *testing.T) {
	c := &geometry.Contour{Points: []geometry.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0},
	}}
	_, err := Build(c)
	require.Error(t, err)
	var degErr *DegeneratePanelError
	require.True(t, errors.As(err, &degErr))
	assert.Equal(t, 1, degErr.Index)
}
