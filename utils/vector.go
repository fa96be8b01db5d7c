package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum VecDense and keeps a direct handle on its backing data
type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(N int, dataO ...[]float64) Vector {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		data = dataO[0]
	} else {
		data = make([]float64, N)
	}
	if N == 0 {
		// gonum does not allow zero length vectors
		return Vector{DataP: []float64{}}
	}
	v := mat.NewVecDense(N, data)
	return Vector{
		V:     v,
		DataP: v.RawVector().Data,
	}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.DataP[i] }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return len(v.DataP) }

// Linspace fills the vector with Len() evenly spaced values on [begin, end], endpoints included
func (v Vector) Linspace(begin, end float64) Vector {
	if v.Len() == 1 {
		v.DataP[0] = begin
		return v
	}
	floats.Span(v.DataP, begin, end)
	return v
}

func (v Vector) Sum() float64 { return floats.Sum(v.DataP) }
func (v Vector) Min() float64 { return floats.Min(v.DataP) }
func (v Vector) Max() float64 { return floats.Max(v.DataP) }

// Subset returns a copy of elements [i1, i2)
func (v Vector) Subset(i1, i2 int) Vector {
	data := make([]float64, i2-i1)
	copy(data, v.DataP[i1:i2])
	return NewVector(len(data), data)
}

// Permute returns a new vector with element i taken from position perm[i]
func (v Vector) Permute(perm []int) Vector {
	data := make([]float64, len(perm))
	for i, p := range perm {
		data[i] = v.DataP[p]
	}
	return NewVector(len(data), data)
}

func (v Vector) Concat(w Vector) Vector {
	data := make([]float64, v.Len()+w.Len())
	copy(data, v.DataP)
	copy(data[v.Len():], w.DataP)
	return NewVector(len(data), data)
}
