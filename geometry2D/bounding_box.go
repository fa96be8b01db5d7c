package geometry2D

import "fmt"

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(Z []complex128) (Box *BoundingBox) {
	if len(Z) == 0 {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin[0], Box.XMin[1] = real(Z[0]), imag(Z[0])
	Box.XMax = Box.XMin
	for _, z := range Z {
		x := [2]float64{real(z), imag(z)}
		for i := 0; i < 2; i++ {
			if x[i] < Box.XMin[i] {
				Box.XMin[i] = x[i]
			}
			if x[i] > Box.XMax[i] {
				Box.XMax[i] = x[i]
			}
		}
	}
	return Box
}

func (bb *BoundingBox) Centroid() complex128 {
	return complex(0.5*(bb.XMax[0]+bb.XMin[0]), 0.5*(bb.XMax[1]+bb.XMin[1]))
}

func (bb *BoundingBox) Contains(z complex128) bool {
	x, y := real(z), imag(z)
	return x >= bb.XMin[0] && x <= bb.XMax[0] && y >= bb.XMin[1] && y <= bb.XMax[1]
}

func (bb *BoundingBox) String() string {
	return fmt.Sprintf("[%8.5f,%8.5f] x [%8.5f,%8.5f]", bb.XMin[0], bb.XMax[0], bb.XMin[1], bb.XMax[1])
}
