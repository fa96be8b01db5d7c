package utils

import (
	"gonum.org/v1/gonum/mat"
)

// NewSymTriDiagonal builds a symmetric tridiagonal matrix from the main diagonal d0
// and the first off diagonal d1, len(d1) must be len(d0)-1
func NewSymTriDiagonal(d0, d1 []float64) (Tri *mat.SymDense) {
	var (
		N = len(d0)
	)
	if len(d1) != N-1 {
		panic("off diagonal length must be one less than the diagonal")
	}
	Tri = mat.NewSymDense(N, nil)
	for i := 0; i < N; i++ {
		Tri.SetSym(i, i, d0[i])
	}
	for i := 0; i < N-1; i++ {
		Tri.SetSym(i, i+1, d1[i])
	}
	return
}
