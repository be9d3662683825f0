// Package geometry holds the vertex data uploaded to the GPU.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	PositionComponents = 3
	ColourComponents   = 4
)

// Mesh is a pair of per-vertex attribute lists indexed by vertex slot.
// It is built once at startup and treated as read-only afterwards.
type Mesh struct {
	Positions []mgl32.Vec3
	Colours   []mgl32.Vec4
}

// Triangle returns the red/green/blue triangle facing the camera.
func Triangle() *Mesh {
	return &Mesh{
		Positions: []mgl32.Vec3{
			{0, 1, 0},
			{1, -1, 0},
			{-1, -1, 0},
		},
		Colours: []mgl32.Vec4{
			{1, 0, 0, 1},
			{0, 1, 0, 1},
			{0, 0, 1, 1},
		},
	}
}

func (m *Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if len(m.Positions) != len(m.Colours) {
		return fmt.Errorf("mesh has %d positions but %d colours", len(m.Positions), len(m.Colours))
	}
	return nil
}

func (m *Mesh) VertexCount() int32 {
	return int32(len(m.Positions))
}

// PositionData flattens the positions into the layout of the position buffer.
func (m *Mesh) PositionData() []float32 {
	data := make([]float32, 0, len(m.Positions)*PositionComponents)
	for _, p := range m.Positions {
		data = append(data, p[:]...)
	}
	return data
}

// ColourData flattens the colours into the layout of the colour buffer.
func (m *Mesh) ColourData() []float32 {
	data := make([]float32, 0, len(m.Colours)*ColourComponents)
	for _, c := range m.Colours {
		data = append(data, c[:]...)
	}
	return data
}
