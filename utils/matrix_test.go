package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	A := NewMatrix(2, 2, []float64{2, 0, 0, 4})
	nr, nc := A.Dims()
	require.Equal(t, 2, nr)
	require.Equal(t, 2, nc)
	require.Equal(t, 2., A.At(0, 0))

	B := A.Copy().Scale(0.5)
	assert.Equal(t, 1., B.At(0, 0))
	assert.Equal(t, 2., A.At(0, 0), "Copy must not alias the source")

	A.Set(0, 1, -1)
	assert.Equal(t, -1., A.Min())
	assert.Equal(t, 4., A.Max())

	row := A.Row(0)
	assert.Equal(t, []float64{2, -1}, row.DataP)
	col := A.Col(1)
	assert.Equal(t, []float64{-1, 4}, col.DataP)
}

func TestMatrixLUSolve(t *testing.T) {
	// 2x + y = 5; x + 3y = 10
	A := NewMatrix(2, 2, []float64{2, 1, 1, 3})
	b := NewVector(2, []float64{5, 10})
	x, err := A.LUSolve(b)
	require.NoError(t, err)
	assert.InDelta(t, 1., x.AtVec(0), 1.e-12)
	assert.InDelta(t, 3., x.AtVec(1), 1.e-12)

	// Identical rows: singular
	S := NewMatrix(2, 2, []float64{1, 2, 1, 2})
	_, err = S.LUSolve(b)
	require.Error(t, err)
}

func TestMatrixConditionNumber(t *testing.T) {
	I := NewMatrix(2, 2, []float64{1, 0, 0, 1})
	assert.InDelta(t, 1., I.ConditionNumber(), 1.e-12)

	S := NewMatrix(2, 2, []float64{1, 2, 1, 2})
	assert.Greater(t, S.ConditionNumber(), 1.e15)
}

func TestMatrixMulVec(t *testing.T) {
	A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	v := NewVector(2, []float64{1, 1})
	r := A.MulVec(v)
	assert.Equal(t, []float64{3, 7}, r.DataP)
}
