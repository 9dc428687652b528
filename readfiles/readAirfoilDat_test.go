package readfiles

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolab/panelflow/geometry"
)

func TestParseAirfoilDat(t *testing.T) {
	input := `NACA 0012

 1.000000   0.001260
 0.500000   0.052940
 0.000000   0.000000
 0.500000   -0.052940
 1.000000   -0.001260
`
	name, pts, err := ParseAirfoilDat(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "NACA 0012", name)
	require.Equal(t, 5, len(pts))
	assert.Equal(t, geometry.Point{X: 1, Y: 0.00126}, pts[0])
	assert.Equal(t, geometry.Point{X: 0.5, Y: -0.05294}, pts[3])
}

func TestParseAirfoilDatSkipsJunk(t *testing.T) {
	input := `some header text
# 61 points
 1.0 0.0
 bad line here
 0.5 0.1
 0.0
 0.0 0.0
`
	name, pts, err := ParseAirfoilDat(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "some header text", name)
	assert.Equal(t, 3, len(pts))
}

func TestParseAirfoilDatEmpty(t *testing.T) {
	_, _, err := ParseAirfoilDat(strings.NewReader("only a name\n"))
	require.Error(t, err)
}

func TestAirfoilDatRoundTrip(t *testing.T) {
	pts := []geometry.Point{{X: 1, Y: 0}, {X: 0.5, Y: 0.06}, {X: 0, Y: 0}, {X: 0.5, Y: -0.06}, {X: 1, Y: 0}}
	file := filepath.Join(t.TempDir(), "test.dat")
	require.NoError(t, WriteAirfoilDat(file, "test section", pts))

	name, got, err := ReadAirfoilDat(file)
	require.NoError(t, err)
	assert.Equal(t, "test section", name)
	require.Equal(t, len(pts), len(got))
	for i := range pts {
		assert.InDelta(t, pts[i].X, got[i].X, 1.e-6)
		assert.InDelta(t, pts[i].Y, got[i].Y, 1.e-6)
	}
}
