package geometry2D

import (
	"math"
	"math/cmplx"

	"github.com/notargets/gobie/quadrature"
	"github.com/notargets/gobie/types"
	"github.com/notargets/gobie/utils"
)

/*
Interface is the panel discretization of a closed curve.
Panel i owns nodes [i*Np, (i+1)*Np), nodes ascend within a panel and panels follow
the parametrization, so the global T array is ascending as well.
*/
type Interface struct {
	Shape   Shape
	NPanels int
	Np      int          // Nodes per panel
	TPanels utils.Vector // Panel boundary parameters, NPanels+1
	ZPanels []complex128 // Panel boundary points, NPanels+1
	T, W    utils.Vector // Global node parameters and quadrature weights
	Z       []complex128 // Node positions
	Zp, Zpp []complex128 // First and second derivative of the parametrization at the nodes
}

func NewInterface(shape Shape, nPanels int) (in *Interface, err error) {
	var (
		gl *quadrature.Rule
		Np = quadrature.PanelOrder
	)
	if nPanels < 1 {
		err = types.NewConfigurationError("NPanels", nPanels, "need at least one panel")
		return
	}
	if gl, err = quadrature.NewGaussLegendre(Np); err != nil {
		return
	}
	in = &Interface{
		Shape:   shape,
		NPanels: nPanels,
		Np:      Np,
		TPanels: utils.NewVector(nPanels+1).Linspace(0, 2*math.Pi),
		ZPanels: make([]complex128, nPanels+1),
		T:       utils.NewVector(nPanels * Np),
		W:       utils.NewVector(nPanels * Np),
		Z:       make([]complex128, nPanels*Np),
		Zp:      make([]complex128, nPanels*Np),
		Zpp:     make([]complex128, nPanels*Np),
	}
	for i, t := range in.TPanels.DataP {
		in.ZPanels[i] = shape.Z(t)
	}
	tp := in.TPanels.DataP
	for i := 0; i < nPanels; i++ {
		i1, i2 := in.Panel(i)
		gl.IntervalTo(in.T.DataP[i1:i2], in.W.DataP[i1:i2], tp[i], tp[i+1])
	}
	for j, t := range in.T.DataP {
		in.Z[j] = shape.Z(t)
		in.Zp[j] = shape.Zp(t)
		in.Zpp[j] = shape.Zpp(t)
	}
	return
}

func (in *Interface) Len() int { return in.T.Len() }

// Panel returns the slot range [i1, i2) of panel i in the global arrays
func (in *Interface) Panel(i int) (i1, i2 int) {
	return i * in.Np, (i + 1) * in.Np
}

// ArcLength integrates |z'(t)| over the whole curve with the panel quadrature
func (in *Interface) ArcLength() (L float64) {
	for j, w := range in.W.DataP {
		L += w * cmplx.Abs(in.Zp[j])
	}
	return
}

// Normals returns the outward unit normals -i z'/|z'| at the nodes
func (in *Interface) Normals() (N []complex128) {
	N = make([]complex128, in.Len())
	for j, zp := range in.Zp {
		N[j] = -1i * zp / complex(cmplx.Abs(zp), 0)
	}
	return
}
