package quadrature

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gobie/types"
	"github.com/notargets/gobie/utils"
)

// PanelOrder is the number of Gauss-Legendre nodes used on every interface panel
const PanelOrder = 16

// Rule holds a Gauss-Legendre rule on the canonical interval [-1,1].
// The eigen decomposition is done once, Interval only rescales.
type Rule struct {
	Order int
	X, W  utils.Vector
}

// NewGaussLegendre computes nodes and weights with the Golub-Welsch construction:
// eigenvalues of the Legendre Jacobi matrix are the nodes, weights are 2*v0^2
// with v0 the first component of each normalized eigenvector.
func NewGaussLegendre(order int) (gl *Rule, err error) {
	var (
		d0, d1 []float64
		eig    mat.EigenSym
		VV     mat.Dense
	)
	if order < 1 {
		err = types.NewConfigurationError("order", order, "quadrature order must be at least 1")
		return
	}
	if order == 1 {
		gl = &Rule{
			Order: 1,
			X:     utils.NewVector(1, []float64{0}),
			W:     utils.NewVector(1, []float64{2}),
		}
		return
	}
	d0 = make([]float64, order)
	d1 = make([]float64, order-1)
	for k := 1; k < order; k++ {
		d1[k-1] = 0.5 / math.Sqrt(1.-utils.POW(2*float64(k), -2))
	}
	JJ := utils.NewSymTriDiagonal(d0, d1)

	if ok := eig.Factorize(JJ, true); !ok {
		err = &types.NumericalError{Component: "quadrature", Op: "EigenSym.Factorize"}
		return
	}
	x := eig.Values(nil)
	eig.VectorsTo(&VV)
	w := make([]float64, order)
	for j, v0 := range VV.RawRowView(0) {
		w[j] = 2. * v0 * v0
	}
	if utils.IsNan(x) || utils.IsNan(w) {
		err = &types.NumericalError{Component: "quadrature", Op: "EigenSym.Values"}
		return
	}
	for _, xi := range x {
		if math.Abs(xi) > 1.+utils.NODETOL {
			err = &types.NumericalError{Component: "quadrature", Op: "EigenSym.Values",
				Err: fmt.Errorf("node %v outside [-1,1]", xi)}
			return
		}
	}

	// Sort pairs by node, eigenvalue ordering is not part of the solver contract
	perm := make([]int, order)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return x[perm[i]] < x[perm[j]] })

	X := utils.NewVector(order, x)
	W := utils.NewVector(order, w)
	gl = &Rule{
		Order: order,
		X:     X.Permute(perm),
		W:     W.Permute(perm),
	}
	return
}

// Interval maps the canonical rule onto [t1,t2]
func (gl *Rule) Interval(t1, t2 float64) (X, W utils.Vector, err error) {
	if !(t1 < t2) {
		err = types.NewConfigurationError("interval", [2]float64{t1, t2}, "t1 must be less than t2")
		return
	}
	X = utils.NewVector(gl.Order)
	W = utils.NewVector(gl.Order)
	gl.IntervalTo(X.DataP, W.DataP, t1, t2)
	return
}

// IntervalTo writes the rule on [t1,t2] into x and w, which must have length Order.
// No validation is done, callers own the interval.
func (gl *Rule) IntervalTo(x, w []float64, t1, t2 float64) {
	var (
		half = 0.5 * (t2 - t1)
	)
	for i, xi := range gl.X.DataP {
		x[i] = 0.5 * (t1*(1.-xi) + t2*(1.+xi))
		w[i] = half * gl.W.DataP[i]
	}
}

// Integrate approximates the integral of f over [t1,t2]
func (gl *Rule) Integrate(f func(t float64) float64, t1, t2 float64) (sum float64, err error) {
	var (
		X, W utils.Vector
	)
	if X, W, err = gl.Interval(t1, t2); err != nil {
		return
	}
	for i, t := range X.DataP {
		sum += W.DataP[i] * f(t)
	}
	return
}

// GaussLegendre returns nodes and weights of the given order on [t1,t2] in one call
func GaussLegendre(order int, t1, t2 float64) (X, W utils.Vector, err error) {
	var (
		gl *Rule
	)
	if gl, err = NewGaussLegendre(order); err != nil {
		return
	}
	return gl.Interval(t1, t2)
}
