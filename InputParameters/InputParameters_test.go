package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaseParameters(t *testing.T) {
	data := []byte(`
Title: "NACA 2412 sweep"
NumPanels: 120
Vinf: 1.5
Alphas: [-4, 0, 4, 8]
NACA: "2412"
GridXMin: -1
GridXMax: 2
GridYMin: -1
GridYMax: 1
GridRes: 80
`)
	cp := DefaultCaseParameters()
	require.NoError(t, cp.Parse(data))
	assert.Equal(t, "NACA 2412 sweep", cp.Title)
	assert.Equal(t, 120, cp.NumPanels)
	assert.Equal(t, 1.5, cp.VInf)
	assert.Equal(t, []float64{-4, 0, 4, 8}, cp.Alphas)
	assert.Equal(t, "2412", cp.NACA)
	assert.Equal(t, 80, cp.GridRes)
}

func TestParseKeepsDefaults(t *testing.T) {
	cp := DefaultCaseParameters()
	require.NoError(t, cp.Parse([]byte(`Title: "only a title"`)))
	assert.Equal(t, 160, cp.NumPanels)
	assert.Equal(t, 1., cp.VInf)
	assert.Equal(t, "0012", cp.NACA)
}
