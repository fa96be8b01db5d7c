package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gobie/types"
	"github.com/notargets/gobie/utils"
)

const (
	RSparse    = 0.4   // Radius where the sparse inner disc meets the dense ring
	NRSparse   = 5     // Radial samples on [0, RSparse]
	ROuter     = 0.999 // Outermost sample, kept off the interface
	MinDensity = 2
)

type Tier uint8

const (
	TIER_SuperLow Tier = iota
	TIER_Low
)

var (
	TierNames = map[string]Tier{
		"superlow": TIER_SuperLow,
		"low":      TIER_Low,
	}
	TierPrintNames = []string{"SuperLow", "Low"}
	// Radial count on the dense ring and angular count, per tier
	TierDensity = map[Tier][2]int{
		TIER_SuperLow: {10, 10},
		TIER_Low:      {20, 20},
	}
)

func (ti Tier) Print() (txt string) {
	if int(ti) < len(TierPrintNames) {
		txt = TierPrintNames[ti]
	} else {
		txt = fmt.Sprintf("Tier(%d)", ti)
	}
	return
}

func ParseTier(label string) (ti Tier, err error) {
	var (
		ok bool
	)
	if ti, ok = TierNames[strings.ToLower(label)]; !ok {
		err = types.NewConfigurationError("FillLevel", label, "unknown domain fill level")
	}
	return
}

/*
PointCloud holds the interior evaluation points on a polar grid.
Storage is angular major: point (it, ir) lives at Z[it*NR + ir].
*/
type PointCloud struct {
	Tier   Tier
	Radius float64
	NR, NT int
	R, T   utils.Vector // Unit radial samples and angles
	Z      []complex128
}

func Fill(tier Tier, radius float64) (pc *PointCloud, err error) {
	var (
		density [2]int
		ok      bool
	)
	if density, ok = TierDensity[tier]; !ok {
		err = types.NewConfigurationError("FillLevel", tier.Print(), "unknown domain fill level")
		return
	}
	if !(radius > 0) {
		err = types.NewConfigurationError("Radius", radius, "radius must be positive")
		return
	}
	var (
		nrDense, nt = density[0], density[1]
	)
	if nrDense < MinDensity || nt < 1 {
		err = types.NewConfigurationError("FillLevel", tier.Print(), "fill level density table is too coarse")
		return
	}
	// Sparse samples on [0, RSparse], then the dense ring without its duplicate first point
	r1 := utils.NewVector(NRSparse).Linspace(0, RSparse)
	r2 := utils.NewVector(nrDense).Linspace(RSparse, ROuter)
	R := r1.Concat(r2.Subset(1, nrDense))
	// Angles on [0, 2Pi) without the duplicate endpoint
	T := utils.NewVector(nt+1).Linspace(0, 2*math.Pi).Subset(0, nt)

	pc = &PointCloud{
		Tier:   tier,
		Radius: radius,
		NR:     R.Len(),
		NT:     nt,
		R:      R,
		T:      T,
		Z:      make([]complex128, R.Len()*nt),
	}
	for it, t := range T.DataP {
		sin, cos := math.Sincos(t)
		for ir, r := range R.DataP {
			rr := r * radius
			pc.Z[it*pc.NR+ir] = complex(rr*cos, rr*sin)
		}
	}
	return
}

func (pc *PointCloud) Len() int { return len(pc.Z) }

func (pc *PointCloud) At(it, ir int) complex128 { return pc.Z[it*pc.NR+ir] }
