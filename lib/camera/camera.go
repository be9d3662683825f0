// Package camera builds the projection, view and model matrices fed to
// the shader every frame.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFovDegrees = 45
	DefaultNear       = 1
	DefaultFar        = 1024
	DefaultDistance   = 5
)

type Camera struct {
	FovDegrees float32
	Near       float32
	Far        float32

	// Distance pushes the model away from the eye along -Z
	Distance float32
}

// Matrices are uploaded column-major, as mgl32 stores them.
type Matrices struct {
	Proj  mgl32.Mat4
	View  mgl32.Mat4
	Model mgl32.Mat4
}

func Default() Camera {
	return Camera{
		FovDegrees: DefaultFovDegrees,
		Near:       DefaultNear,
		Far:        DefaultFar,
		Distance:   DefaultDistance,
	}
}

func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovDegrees), aspect, c.Near, c.Far)
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.Ident4()
}

// Model places the mesh in front of the camera, rotated by angle degrees
// around the Y axis.
func (c Camera) Model(angle float32) mgl32.Mat4 {
	translate := mgl32.Translate3D(0, 0, -c.Distance)
	rotate := mgl32.HomogRotate3DY(mgl32.DegToRad(angle))
	return translate.Mul4(rotate)
}

func (c Camera) Matrices(angle float32, width, height int) Matrices {
	return Matrices{
		Proj:  c.Projection(width, height),
		View:  c.View(),
		Model: c.Model(angle),
	}
}
