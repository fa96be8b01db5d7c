package simulation

import (
	"fmt"
	"math/cmplx"

	"github.com/notargets/gobie/InputParameters"
	"github.com/notargets/gobie/domain"
	"github.com/notargets/gobie/geometry2D"
	"github.com/notargets/gobie/potential"
	"github.com/notargets/gobie/utils"
)

/*
Simulation owns the validated parameters and everything derived from them:
the interface discretization, the interior point cloud and the RHS on the interface.
Derived state is built once by Setup and is read only afterwards.
*/
type Simulation struct {
	ip      *InputParameters.SimulationParameters
	shape   geometry2D.Shape
	tier    domain.Tier
	sources potential.Sources
	in      *geometry2D.Interface
	dom     *domain.PointCloud
	rhs     []float64
}

func NewSimulation(ip *InputParameters.SimulationParameters) (sim *Simulation, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	sim = &Simulation{ip: ip.Copy()}
	if sim.shape, err = geometry2D.NewShape(ip.Shape, ip.Radius); err != nil {
		return nil, err
	}
	if sim.tier, err = domain.ParseTier(ip.FillLevel); err != nil {
		return nil, err
	}
	sim.sources = potential.NewSources(ip.Sources)
	return
}

// Setup builds the interface, fills the domain and evaluates the RHS on the interface
func (sim *Simulation) Setup() (err error) {
	var (
		in  *geometry2D.Interface
		dom *domain.PointCloud
		rhs []float64
	)
	if in, err = geometry2D.NewInterface(sim.shape, sim.ip.NPanels); err != nil {
		return
	}
	if dom, err = domain.Fill(sim.tier, sim.ip.Radius); err != nil {
		return
	}
	if rhs, err = sim.sources.Evaluate(in.Z); err != nil {
		return
	}
	sim.in, sim.dom, sim.rhs = in, dom, rhs
	return
}

func (sim *Simulation) IsSetup() bool { return sim.in != nil }

func (sim *Simulation) Parameters() *InputParameters.SimulationParameters { return sim.ip.Copy() }

func (sim *Simulation) Interface() *geometry2D.Interface { return sim.in }

func (sim *Simulation) Domain() *domain.PointCloud { return sim.dom }

func (sim *Simulation) Sources() potential.Sources {
	src := make(potential.Sources, len(sim.sources))
	copy(src, sim.sources)
	return src
}

// RHS is the source potential at the interface nodes computed by Setup
func (sim *Simulation) RHS() []float64 { return sim.rhs }

// DefaultRHS evaluates the source potential at the interface nodes
func (sim *Simulation) DefaultRHS() (F []float64, err error) {
	if !sim.IsSetup() {
		return nil, fmt.Errorf("simulation is not set up, call Setup first")
	}
	return sim.sources.Evaluate(sim.in.Z)
}

// DomainRHS evaluates the source potential at the interior points
func (sim *Simulation) DomainRHS() (F []float64, err error) {
	if !sim.IsSetup() {
		return nil, fmt.Errorf("simulation is not set up, call Setup first")
	}
	return sim.sources.Evaluate(sim.dom.Z)
}

func (sim *Simulation) RHSAt(Z []complex128) (F []float64, err error) {
	return sim.sources.Evaluate(Z)
}

func (sim *Simulation) Print() {
	sim.ip.Print()
	if !sim.IsSetup() {
		return
	}
	var (
		in  = sim.in
		dom = sim.dom
		rhs = utils.NewVector(len(sim.rhs), sim.rhs)
	)
	fmt.Printf("Interface: %d panels x %d nodes = %d nodes, weight sum = %12.10f, arc length = %12.8f\n",
		in.NPanels, in.Np, in.Len(), in.W.Sum(), in.ArcLength())
	fmt.Printf("Interface bounding box: %s\n", geometry2D.NewBoundingBox(in.Z))
	var rMax float64
	for _, z := range dom.Z {
		if r := cmplx.Abs(z); r > rMax {
			rMax = r
		}
	}
	fmt.Printf("Domain: fill level %s, %d radii x %d angles = %d points, max |z| = %8.5f\n",
		dom.Tier.Print(), dom.NR, dom.NT, dom.Len(), rMax)
	if rhs.Len() != 0 {
		fmt.Printf("RHS: %d values, min = %12.8f, max = %12.8f\n", rhs.Len(), rhs.Min(), rhs.Max())
	}
	fmt.Println(utils.GetMemUsage())
}
