package geometry2D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gobie/types"
)

// Shape is a closed curve parametrized by t in [0, 2Pi]
type Shape interface {
	Name() string
	Z(t float64) complex128   // Position
	Zp(t float64) complex128  // First derivative wrt t
	Zpp(t float64) complex128 // Second derivative wrt t
}

type ShapeType uint8

const (
	SHAPE_Circle ShapeType = iota
)

var (
	ShapeNames = map[string]ShapeType{
		"circle": SHAPE_Circle,
	}
	ShapePrintNames = []string{"Circle"}
)

func (st ShapeType) Print() (txt string) {
	if int(st) < len(ShapePrintNames) {
		txt = ShapePrintNames[st]
	} else {
		txt = fmt.Sprintf("ShapeType(%d)", st)
	}
	return
}

func NewShapeType(label string) (st ShapeType, err error) {
	var (
		ok bool
	)
	if st, ok = ShapeNames[strings.ToLower(label)]; !ok {
		err = types.NewConfigurationError("Shape", label, "no geometry defined for this shape")
	}
	return
}

// NewShape builds the parametrized interface curve named by label
func NewShape(label string, radius float64) (sh Shape, err error) {
	var (
		st ShapeType
	)
	if st, err = NewShapeType(label); err != nil {
		return
	}
	if !(radius > 0) {
		err = types.NewConfigurationError("Radius", radius, "radius must be positive")
		return
	}
	switch st {
	case SHAPE_Circle:
		sh = Circle{Radius: radius}
	}
	return
}

type Circle struct {
	Radius float64
}

func (c Circle) Name() string { return "circle" }

func (c Circle) Z(t float64) complex128 {
	sin, cos := math.Sincos(t)
	return complex(c.Radius*cos, c.Radius*sin)
}

func (c Circle) Zp(t float64) complex128 {
	sin, cos := math.Sincos(t)
	return complex(-c.Radius*sin, c.Radius*cos)
}

func (c Circle) Zpp(t float64) complex128 {
	return -c.Z(t)
}
