package InputParameters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gobie/domain"
	"github.com/notargets/gobie/geometry2D"
	"github.com/notargets/gobie/types"
)

// Parameters obtained from the YAML input file
type SimulationParameters struct {
	Title        string       `yaml:"Title"`
	NPanels      int          `yaml:"NPanels"`
	DomainPoints int          `yaml:"DomainPoints"` // Carried for record compatibility, FillLevel sets the density
	Shape        string       `yaml:"Shape"`
	Radius       float64      `yaml:"Radius"`
	Sources      [][2]float64 `yaml:"Sources"` // Point sources as [x, y]
	FillLevel    string       `yaml:"FillLevel"`
}

// Default is the built in case: two panels on a circle of radius 2 with two sources
func Default() *SimulationParameters {
	return &SimulationParameters{
		Title:        "Default",
		NPanels:      2,
		DomainPoints: 1,
		Shape:        "circle",
		Radius:       2,
		Sources:      [][2]float64{{3, 3}, {-2.5, -2.5}},
		FillLevel:    "superlow",
	}
}

func (ip *SimulationParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

/*
ParseRecord reads the ordered input record:

	NPanels DomainPoints Shape Radius NSources Source_1 ... Source_NSources FillLevel

Sources are complex literals like 3+3i.
*/
func (ip *SimulationParameters) ParseRecord(fields []string) (err error) {
	var (
		nSrc int
	)
	if len(fields) < 6 {
		return types.NewConfigurationError("record", strings.Join(fields, " "),
			"need at least NPanels DomainPoints Shape Radius NSources FillLevel")
	}
	if ip.NPanels, err = strconv.Atoi(fields[0]); err != nil {
		return types.NewConfigurationError("NPanels", fields[0], "not an integer")
	}
	if ip.DomainPoints, err = strconv.Atoi(fields[1]); err != nil {
		return types.NewConfigurationError("DomainPoints", fields[1], "not an integer")
	}
	ip.Shape = fields[2]
	if ip.Radius, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return types.NewConfigurationError("Radius", fields[3], "not a number")
	}
	if nSrc, err = strconv.Atoi(fields[4]); err != nil || nSrc < 0 {
		return types.NewConfigurationError("NSources", fields[4], "not a non-negative integer")
	}
	if len(fields) != 6+nSrc {
		return types.NewConfigurationError("record", strings.Join(fields, " "),
			fmt.Sprintf("expected %d fields for %d sources, have %d", 6+nSrc, nSrc, len(fields)))
	}
	ip.Sources = make([][2]float64, nSrc)
	for i := 0; i < nSrc; i++ {
		var c complex128
		if c, err = strconv.ParseComplex(fields[5+i], 128); err != nil {
			return types.NewConfigurationError(fmt.Sprintf("Sources[%d]", i), fields[5+i], "not a complex number")
		}
		ip.Sources[i] = [2]float64{real(c), imag(c)}
	}
	ip.FillLevel = fields[5+nSrc]
	return nil
}

// Validate reports the first invalid parameter
func (ip *SimulationParameters) Validate() (err error) {
	if ip.NPanels < 1 {
		return types.NewConfigurationError("NPanels", ip.NPanels, "need at least one panel")
	}
	if !(ip.Radius > 0) {
		return types.NewConfigurationError("Radius", ip.Radius, "radius must be positive")
	}
	if _, err = geometry2D.NewShapeType(ip.Shape); err != nil {
		return
	}
	if _, err = domain.ParseTier(ip.FillLevel); err != nil {
		return
	}
	return
}

func (ip *SimulationParameters) Copy() (ipc *SimulationParameters) {
	ipc = new(SimulationParameters)
	*ipc = *ip
	ipc.Sources = make([][2]float64, len(ip.Sources))
	copy(ipc.Sources, ip.Sources)
	return
}

func (ip *SimulationParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= Number of Panels\n", ip.NPanels)
	fmt.Printf("[%s]\t\t= Shape\n", ip.Shape)
	fmt.Printf("%8.5f\t\t= Radius\n", ip.Radius)
	fmt.Printf("[%s]\t\t= Fill Level\n", ip.FillLevel)
	for i, s := range ip.Sources {
		fmt.Printf("Sources[%d] = (%8.5f, %8.5f)\n", i, s[0], s[1])
	}
}
