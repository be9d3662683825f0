package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	VertexTemplate   = "triangle.vert"
	FragmentTemplate = "triangle.frag"
)

// Attribute slots shared by the shaders and the vertex array setup
const (
	PositionAttrib uint32 = 0
	ColourAttrib   uint32 = 1
)

const (
	ProjUniform  = "proj"
	ViewUniform  = "view"
	ModelUniform = "model"
)

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	GLSLVersion    string
	PositionAttrib uint32
	ColourAttrib   uint32
	ProjUniform    string
	ViewUniform    string
	ModelUniform   string
}

func NewShaderData(glslVersion string) *ShaderData {
	return &ShaderData{
		GLSLVersion:    glslVersion,
		PositionAttrib: PositionAttrib,
		ColourAttrib:   ColourAttrib,
		ProjUniform:    ProjUniform,
		ViewUniform:    ViewUniform,
		ModelUniform:   ModelUniform,
	}
}

// Sources is a vertex/fragment pair ready to be compiled
type Sources struct {
	Vertex   string
	Fragment string
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

// LoadShaderFile reads a shader from disk and runs it through the same
// template step as the embedded ones.
func (s *Shaderer) LoadShaderFile(path string, data *ShaderData) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read shader %s: %w", path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("could not parse shader %s: %w", path, err)
	}

	var b bytes.Buffer
	err = tmpl.Execute(&b, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering %s: %w", path, err)
	}
	return b.String(), nil
}

// Source returns the shader at path, or the embedded template when path
// is empty.
func (s *Shaderer) Source(path string, embedded string, data *ShaderData) (string, error) {
	if path == "" {
		return s.GetShaderSource(embedded, data)
	}
	return s.LoadShaderFile(path, data)
}

func (s *Shaderer) Sources(vertexPath, fragmentPath string, data *ShaderData) (*Sources, error) {
	vertex, err := s.Source(vertexPath, VertexTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragment, err := s.Source(fragmentPath, FragmentTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("could not get fragment shader: %w", err)
	}

	return &Sources{Vertex: vertex, Fragment: fragment}, nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
