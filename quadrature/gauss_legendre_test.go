package quadrature

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/gobie/types"
)

// Published 16 point Gauss-Legendre abscissae and weights, positive half
var (
	gl16X = []float64{
		0.0950125098376374, 0.2816035507792589, 0.4580167776572274, 0.6178762444026438,
		0.7554044083550030, 0.8656312023878318, 0.9445750230732326, 0.9894009349916499,
	}
	gl16W = []float64{
		0.1894506104550685, 0.1826034150449236, 0.1691565193950025, 0.1495959888165767,
		0.1246289712555339, 0.0951585116824928, 0.0622535239386479, 0.0271524594117541,
	}
)

func TestGaussLegendreCanonical(t *testing.T) {
	X, W, err := GaussLegendre(PanelOrder, -1, 1)
	require.NoError(t, err)
	require.Equal(t, 16, X.Len())
	require.Equal(t, 16, W.Len())
	for i := 0; i < 8; i++ {
		// Upper half of the sorted nodes, then the mirrored lower half
		assert.InDelta(t, gl16X[i], X.AtVec(8+i), 1.e-8)
		assert.InDelta(t, -gl16X[i], X.AtVec(7-i), 1.e-8)
		assert.InDelta(t, gl16W[i], W.AtVec(8+i), 1.e-8)
		assert.InDelta(t, gl16W[i], W.AtVec(7-i), 1.e-8)
	}
	assert.InDelta(t, 2., W.Sum(), 1.e-12)

	// Cross check against gonum's Legendre rule
	var (
		xRef = make([]float64, 16)
		wRef = make([]float64, 16)
	)
	quad.Legendre{}.FixedLocations(xRef, wRef, -1, 1)
	inds := make([]int, 16)
	floats.Argsort(xRef, inds)
	for i, j := range inds {
		assert.InDelta(t, wRef[j], W.AtVec(i), 1.e-10)
	}
	assert.True(t, floats.EqualApprox(xRef, X.DataP, 1.e-10))
}

func TestGaussLegendreIntervals(t *testing.T) {
	intervals := [][2]float64{
		{0, math.Pi},
		{-1, 1},
		{0, 2 * math.Pi / 8},
		{-3.5, 12.25},
		{1.e-3, 2.e-3},
	}
	for _, iv := range intervals {
		t1, t2 := iv[0], iv[1]
		X, W, err := GaussLegendre(PanelOrder, t1, t2)
		require.NoError(t, err)
		for i := 0; i < X.Len(); i++ {
			assert.GreaterOrEqual(t, X.AtVec(i), t1-1.e-9)
			assert.LessOrEqual(t, X.AtVec(i), t2+1.e-9)
			assert.Greater(t, W.AtVec(i), 0.)
			if i > 0 {
				assert.Greater(t, X.AtVec(i), X.AtVec(i-1))
			}
		}
		assert.InDelta(t, t2-t1, W.Sum(), 1.e-12*math.Max(1, t2-t1))
	}
	{ // Scaling law
		_, W, err := GaussLegendre(PanelOrder, 0, math.Pi)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi, W.Sum(), 1.e-12)
	}
}

func TestGaussLegendreExactness(t *testing.T) {
	gl, err := NewGaussLegendre(PanelOrder)
	require.NoError(t, err)
	// Exact for polynomials up to degree 2N-1
	for p := 0; p < 2*PanelOrder; p++ {
		pp := float64(p)
		sum, err := gl.Integrate(func(x float64) float64 { return math.Pow(x, pp) }, 0, 2)
		require.NoError(t, err)
		exact := math.Pow(2, pp+1) / (pp + 1)
		assert.InDelta(t, exact, sum, 1.e-11*exact, "degree %d", p)
	}
	sum, err := gl.Integrate(math.Sin, 0, math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, 2., sum, 1.e-13)
}

func TestGaussLegendreLowOrders(t *testing.T) {
	{
		X, W, err := GaussLegendre(1, 2, 4)
		require.NoError(t, err)
		assert.Equal(t, []float64{3}, X.DataP)
		assert.Equal(t, []float64{2}, W.DataP)
	}
	{
		X, W, err := GaussLegendre(2, -1, 1)
		require.NoError(t, err)
		assert.InDelta(t, -1/math.Sqrt(3), X.AtVec(0), 1.e-14)
		assert.InDelta(t, 1/math.Sqrt(3), X.AtVec(1), 1.e-14)
		assert.InDelta(t, 1., W.AtVec(0), 1.e-14)
		assert.InDelta(t, 1., W.AtVec(1), 1.e-14)
	}
}

func TestGaussLegendreErrors(t *testing.T) {
	_, err := NewGaussLegendre(0)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	var ce *types.ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "order", ce.Field)

	gl, err := NewGaussLegendre(PanelOrder)
	require.NoError(t, err)
	_, _, err = gl.Interval(1, 1)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	_, _, err = gl.Interval(2, 1)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestGaussLegendreRepeatable(t *testing.T) {
	X1, W1, err := GaussLegendre(PanelOrder, 0.25, 0.75)
	require.NoError(t, err)
	X2, W2, err := GaussLegendre(PanelOrder, 0.25, 0.75)
	require.NoError(t, err)
	assert.Equal(t, X1.DataP, X2.DataP)
	assert.Equal(t, W1.DataP, W2.DataP)

	// Cached rule rescaled per interval equals a fresh decomposition
	gl, err := NewGaussLegendre(PanelOrder)
	require.NoError(t, err)
	X3, W3, err := gl.Interval(0.25, 0.75)
	require.NoError(t, err)
	assert.Equal(t, X1.DataP, X3.DataP)
	assert.Equal(t, W1.DataP, W3.DataP)
}
