package rendering

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/trispin/trispin/lib/camera"
	"github.com/trispin/trispin/lib/geometry"
	"github.com/trispin/trispin/lib/rendering/renderconsts"
	"github.com/trispin/trispin/lib/rendering/shaders"
	"github.com/trispin/trispin/lib/utils"
)

const f32 = 4

// GLVars owns the GPU side of the mesh: the vertex array, one buffer per
// attribute and the uniform locations of the current program.
type GLVars struct {
	Program *Program
	Mesh    *geometry.Mesh
	Usage   renderconsts.BufferUsage

	ClearColour color.RGBA

	// GL IDs
	VAO          uint32
	PositionVBO  uint32
	ColourVBO    uint32
	ProjUniform  int32
	ViewUniform  int32
	ModelUniform int32

	VertexCount int32
}

func NewGLVars(program *Program, mesh *geometry.Mesh, usage renderconsts.BufferUsage, clearColour color.RGBA) (*GLVars, error) {
	err := mesh.Validate()
	if err != nil {
		return nil, fmt.Errorf("refusing to upload mesh: %w", err)
	}

	g := &GLVars{}

	g.Program = program
	g.Mesh = mesh
	g.Usage = usage
	g.ClearColour = clearColour
	g.VertexCount = mesh.VertexCount()

	return g, nil
}

func (g *GLVars) Start() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	r, gr, b, a := utils.ColourFloats(g.ClearColour)
	gl.ClearColor(r, gr, b, a)
	gl.ClearDepth(1.0)

	g.allocate()
	g.locateUniforms()
}

// SetProgram swaps in a freshly built program and returns the old one,
// which the caller should delete.
func (g *GLVars) SetProgram(program *Program) *Program {
	old := g.Program
	g.Program = program
	g.locateUniforms()
	return old
}

func (g *GLVars) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (g *GLVars) StartFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (g *GLVars) Draw(m *camera.Matrices) {
	gl.UseProgram(g.Program.ID)

	gl.UniformMatrix4fv(g.ProjUniform, 1, false, &m.Proj[0])
	gl.UniformMatrix4fv(g.ViewUniform, 1, false, &m.View[0])
	gl.UniformMatrix4fv(g.ModelUniform, 1, false, &m.Model[0])

	gl.BindVertexArray(g.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, g.VertexCount)
	gl.BindVertexArray(0)

	gl.UseProgram(0)
}

func (g *GLVars) Delete() {
	gl.DeleteBuffers(1, &g.PositionVBO)
	gl.DeleteBuffers(1, &g.ColourVBO)
	gl.DeleteVertexArrays(1, &g.VAO)
}

func (g *GLVars) allocate() {
	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	gl.EnableVertexAttribArray(shaders.PositionAttrib)
	gl.EnableVertexAttribArray(shaders.ColourAttrib)

	g.PositionVBO = g.upload(shaders.PositionAttrib, geometry.PositionComponents, g.Mesh.PositionData())
	g.ColourVBO = g.upload(shaders.ColourAttrib, geometry.ColourComponents, g.Mesh.ColourData())

	gl.BindVertexArray(0)
}

// upload creates a buffer holding data and points attrib at it in the
// currently bound vertex array.
func (g *GLVars) upload(attrib uint32, components int32, data []float32) uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*f32, gl.Ptr(data), uint32(g.Usage))
	gl.VertexAttribPointerWithOffset(attrib, components, gl.FLOAT, false, 0, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return id
}

func (g *GLVars) locateUniforms() {
	g.ProjUniform = g.Program.UniformLocation(shaders.ProjUniform)
	g.ViewUniform = g.Program.UniformLocation(shaders.ViewUniform)
	g.ModelUniform = g.Program.UniformLocation(shaders.ModelUniform)
}
