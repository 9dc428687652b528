package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.DataP[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.DataP[N-1])

	v1.Scale(2).AddScalar(-1)
	assert.Equal(t, []float64{3, 3, 3}, v1.DataP)

	v2 := v1.Copy().Apply(func(f float64) float64 { return f * f })
	assert.Equal(t, []float64{9, 9, 9}, v2.DataP)
	assert.Equal(t, []float64{3, 3, 3}, v1.DataP, "Copy must not alias")

	assert.Equal(t, 81., v1.Dot(v2))

	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 0., req.AtVec(1))
		assert.Equal(t, 1., req.AtVec(2))
	}

	v3 := NewVector(4, []float64{4, -2, 7, 0})
	assert.Equal(t, -2., v3.Min())
	assert.Equal(t, 7., v3.Max())
}

func TestFiniteChecks(t *testing.T) {
	assert.False(t, IsNan([]float64{1, 2, 3}))
	assert.True(t, IsNan([]float64{1, math.NaN()}))
	assert.True(t, IsNan(NewVector(2, []float64{0, math.NaN()})))

	assert.True(t, AllFinite([]float64{1, 2}))
	assert.False(t, AllFinite([]float64{1, math.Inf(1)}))
	assert.False(t, AllFinite([]float64{math.NaN()}))
}

func TestPOW(t *testing.T) {
	assert.Equal(t, 8., POW(2, 3))
	assert.Equal(t, 1., POW(5, 0))
	assert.Equal(t, 0.25, POW(2, -2))
	assert.InDelta(t, math.Pow(1.5, 9), POW(1.5, 9), 1.e-12)
}
