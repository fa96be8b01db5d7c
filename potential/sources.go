package potential

import (
	"github.com/notargets/gobie/types"
)

// Sources are point charges in the complex plane, each contributing Re(1/(z-s))
type Sources []complex128

func NewSources(xy [][2]float64) (src Sources) {
	src = make(Sources, len(xy))
	for i, p := range xy {
		src[i] = complex(p[0], p[1])
	}
	return
}

// At evaluates the potential at a single point
func (src Sources) At(z complex128) (f float64, err error) {
	for i, s := range src {
		if z == s {
			err = &types.DomainError{Index: 0, Point: z, SourceIndex: i}
			return 0, err
		}
		f += real(1 / (z - s))
	}
	return
}

// Evaluate returns one potential value per point, or a DomainError naming the
// first point that coincides with a source
func (src Sources) Evaluate(Z []complex128) (F []float64, err error) {
	F = make([]float64, len(Z))
	for j, z := range Z {
		for i, s := range src {
			if z == s {
				err = &types.DomainError{Index: j, Point: z, SourceIndex: i}
				return nil, err
			}
			F[j] += real(1 / (z - s))
		}
	}
	return
}
