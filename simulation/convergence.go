package simulation

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/notargets/gobie/InputParameters"
	"github.com/notargets/gobie/types"
)

// RHSMean is the quadrature of the interface RHS over the parameter, divided by 2Pi
func (sim *Simulation) RHSMean() (mean float64, err error) {
	if !sim.IsSetup() {
		return 0, fmt.Errorf("simulation is not set up, call Setup first")
	}
	for j, w := range sim.in.W.DataP {
		mean += w * sim.rhs[j]
	}
	return mean / (2 * math.Pi), nil
}

/*
ExactRHSMean is the mean of the source potential over a circle of the given radius.
Re(1/(z-s)) is harmonic in the disk for an outside source, so its mean is the value at
the center, Re(-1/s). An inside source only contributes negative powers of z, which
average to zero.
*/
func ExactRHSMean(radius float64, sources []complex128) (mean float64, err error) {
	for i, s := range sources {
		r := cmplx.Abs(s)
		switch {
		case r > radius:
			mean += real(-1 / s)
		case r == radius:
			err = types.NewConfigurationError(fmt.Sprintf("Sources[%d]", i), s, "source lies on the interface")
			return
		}
	}
	return
}

type ConvergenceStudy struct {
	Title     string
	Exact     float64
	NumPanels []int
	NumNodes  []int
	Mean      []float64
	Err       []float64
}

func (cs *ConvergenceStudy) Add(nPanels, nNodes int, mean float64) {
	cs.NumPanels = append(cs.NumPanels, nPanels)
	cs.NumNodes = append(cs.NumNodes, nNodes)
	cs.Mean = append(cs.Mean, mean)
	cs.Err = append(cs.Err, math.Abs(mean-cs.Exact))
}

// NewConvergenceStudy sets up and measures the interface RHS mean for each panel count
func NewConvergenceStudy(ip *InputParameters.SimulationParameters, panels []int) (cs *ConvergenceStudy, err error) {
	var (
		sim  *Simulation
		mean float64
	)
	cs = &ConvergenceStudy{Title: ip.Title}
	ipp := ip.Copy()
	if sim, err = NewSimulation(ipp); err != nil {
		return nil, err
	}
	if cs.Exact, err = ExactRHSMean(ipp.Radius, sim.Sources()); err != nil {
		return nil, err
	}
	for _, n := range panels {
		ipp.NPanels = n
		if sim, err = NewSimulation(ipp); err != nil {
			return nil, err
		}
		if err = sim.Setup(); err != nil {
			return nil, err
		}
		if mean, err = sim.RHSMean(); err != nil {
			return nil, err
		}
		cs.Add(n, sim.Interface().Len(), mean)
	}
	return
}
