package rendering

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/trispin/trispin/lib/rendering/shaders"
)

// Program is a linked shader program. The shader objects stay attached
// until Delete so teardown mirrors setup.
type Program struct {
	ID             uint32
	VertexShader   uint32
	FragmentShader uint32
}

func BuildGLProgram(sources *shaders.Sources) (*Program, error) {
	vertexShader, err := compileShader(sources.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("could not compile vertex shader: %w", err)
	}

	fragmentShader, err := compileShader(sources.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, fmt.Errorf("could not compile fragment shader: %w", err)
	}

	p := &Program{
		VertexShader:   vertexShader,
		FragmentShader: fragmentShader,
	}
	p.ID = gl.CreateProgram()

	gl.AttachShader(p.ID, vertexShader)
	gl.AttachShader(p.ID, fragmentShader)
	gl.LinkProgram(p.ID)

	var status int32
	gl.GetProgramiv(p.ID, gl.LINK_STATUS, &status)
	infoLog := programInfoLog(p.ID)
	if status == gl.FALSE {
		p.Delete()
		return nil, fmt.Errorf("failed to link program: %v", infoLog)
	}
	if infoLog != "" {
		logger().Warn(fmt.Sprintf("Program link log: %s", infoLog))
	}

	return p, nil
}

// Delete detaches the shaders, deletes the program and then the shaders.
func (p *Program) Delete() {
	gl.DetachShader(p.ID, p.VertexShader)
	gl.DetachShader(p.ID, p.FragmentShader)
	gl.DeleteProgram(p.ID)
	gl.DeleteShader(p.VertexShader)
	gl.DeleteShader(p.FragmentShader)
}

func (p *Program) UniformLocation(name string) int32 {
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		logger().Warn(fmt.Sprintf("Uniform %s is not active in program %d", name, p.ID))
	}
	return loc
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	infoLog := shaderInfoLog(shader)
	if status == gl.FALSE {
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %v", infoLog)
	}
	if infoLog != "" {
		logger().Warn(fmt.Sprintf("Shader compile log: %s", infoLog))
	}

	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
	return strings.TrimSpace(strings.TrimRight(clog, "\x00"))
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(clog))
	return strings.TrimSpace(strings.TrimRight(clog, "\x00"))
}
