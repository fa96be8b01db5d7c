package potential

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gobie/types"
)

func TestEmptySources(t *testing.T) {
	var src Sources
	f, err := src.At(1 + 2i)
	require.NoError(t, err)
	assert.Equal(t, 0., f)

	F, err := src.Evaluate([]complex128{0, 1, -3i, 7 + 7i})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, F)

	F, err = src.Evaluate(nil)
	require.NoError(t, err)
	assert.Len(t, F, 0)
}

func TestSingleSource(t *testing.T) {
	src := Sources{0}
	f, err := src.At(1)
	require.NoError(t, err)
	assert.Equal(t, 1., f)

	// Re(1/(2i)) = 0, Re(1/(-2)) = -0.5, Re(1/(1+i)) = 0.5
	F, err := src.Evaluate([]complex128{2i, -2, 1 + 1i})
	require.NoError(t, err)
	assert.InDelta(t, 0., F[0], 1.e-15)
	assert.InDelta(t, -0.5, F[1], 1.e-15)
	assert.InDelta(t, 0.5, F[2], 1.e-15)
}

func TestSuperposition(t *testing.T) {
	src := NewSources([][2]float64{{3, 3}, {-2.5, -2.5}})
	assert.Equal(t, Sources{3 + 3i, -2.5 - 2.5i}, src)
	Z := []complex128{0, 1, 1i, -1.5 + 0.25i}
	F, err := src.Evaluate(Z)
	require.NoError(t, err)
	require.Len(t, F, len(Z))
	for j, z := range Z {
		var expected float64
		for _, s := range src {
			expected += real(1 / (z - s))
		}
		assert.InDelta(t, expected, F[j], 1.e-15)
		f, err := src.At(z)
		require.NoError(t, err)
		assert.Equal(t, F[j], f)
	}
	// Potential of a source at the origin is the real part of 1/z = cos(theta)/r
	f, err := Sources{0}.At(cmplx.Rect(2, 0.3))
	require.NoError(t, err)
	assert.InDelta(t, real(cmplx.Rect(0.5, -0.3)), f, 1.e-15)
}

func TestCoincidentSource(t *testing.T) {
	src := Sources{1 + 1i, 3 + 3i}
	_, err := src.At(3 + 3i)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrDomain))

	F, err := src.Evaluate([]complex128{0, 2, 3 + 3i, 4})
	assert.Nil(t, F)
	var de *types.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.Index)
	assert.Equal(t, 1, de.SourceIndex)
	assert.Equal(t, 3+3i, de.Point)
}
