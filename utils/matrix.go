package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M     *mat.Dense
	DataP []float64
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		M:     m,
		DataP: m.RawMatrix().Data,
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) IsEmpty() bool { return m.M == nil }

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	for i, val := range m.DataP {
		m.DataP[i] = val * a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	for i, val := range m.DataP {
		m.DataP[i] = f(val)
	}
	return m
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return R
}

func (m Matrix) MulVec(v Vector) (R Vector) { // Does not change receiver
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

func (m Matrix) Row(i int) (R Vector) {
	var (
		_, nc = m.Dims()
	)
	R = NewVector(nc)
	for j := 0; j < nc; j++ {
		R.DataP[j] = m.At(i, j)
	}
	return
}

func (m Matrix) Col(j int) (R Vector) {
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	for i := 0; i < nr; i++ {
		R.DataP[i] = m.At(i, j)
	}
	return
}

func (m Matrix) Min() (min float64) {
	min = m.DataP[0]
	for _, val := range m.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	max = m.DataP[0]
	for _, val := range m.DataP {
		if val > max {
			max = val
		}
	}
	return
}

// LUSolve solves m * x = b by dense LU factorization.
// The error is non-nil when the factorization finds the matrix singular
// or gonum reports an unacceptable condition number.
func (m Matrix) LUSolve(b Vector) (X Vector, err error) {
	var (
		nr, _ = m.Dims()
		lu    mat.LU
	)
	lu.Factorize(m.M)
	X = NewVector(nr)
	if err = lu.SolveVecTo(X.V, false, b.V); err != nil {
		return
	}
	return
}

// ConditionNumber is the 2-norm condition, ratio of extreme singular values.
func (m Matrix) ConditionNumber() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDThin) {
		return 1e16
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 1e16
	}
	minVal := values[len(values)-1] // Singular values are in descending order
	maxVal := values[0]
	if minVal < 1e-16 {
		return 1e16
	}
	return maxVal / minVal
}

func (m Matrix) String() string {
	return fmt.Sprintf("%v\n", mat.Formatted(m.M, mat.Squeeze()))
}
