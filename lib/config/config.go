package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/trispin/trispin/lib/camera"
	"github.com/trispin/trispin/lib/log"
	"github.com/trispin/trispin/lib/spin"
	"github.com/trispin/trispin/lib/utils"
)

const (
	DefaultTitle       = "Triangle Example"
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultClearColour = "#0000ffff"
	DefaultBufferUsage = "dynamic"
	DefaultGLSLVersion = "410 core"
)

// BufferUsages are the accepted values of buffer_usage
var BufferUsages = []string{"static", "dynamic", "stream"}

type Config struct {
	Window      WindowCfg
	Camera      CameraCfg
	Spin        SpinCfg
	Shaders     ShadersCfg
	ClearColour string `yaml:"clear_colour"`
	BufferUsage string `yaml:"buffer_usage"`
	LogLevel    string `yaml:"log_level"`
	Api         *ApiCfg
}

type WindowCfg struct {
	Title  string
	Width  int
	Height int
	VSync  *bool `yaml:"vsync"`
}

type CameraCfg struct {
	FovDegrees float32 `yaml:"fov_degrees"`
	Near       float32
	Far        float32
	Distance   float32
}

type SpinCfg struct {
	DegreesPerSecond *float32 `yaml:"degrees_per_second"`
	Paused           bool
}

type ShadersCfg struct {
	Vertex      CfgPath
	Fragment    CfgPath
	GLSLVersion string `yaml:"glsl_version"`
	Watch       bool
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			slog.Warn(fmt.Sprintf("could not close %s: %s", filename, err), slog.String("module", "config"))
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		// io.EOF means the file holds no values, everything is defaulted
		return nil, fmt.Errorf("could not parse %s: %w", filename, err)
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Window.VSync == nil {
		vsync := true
		c.Window.VSync = &vsync
	}

	if c.Camera.FovDegrees == 0 {
		c.Camera.FovDegrees = camera.DefaultFovDegrees
	}
	if c.Camera.Near == 0 {
		c.Camera.Near = camera.DefaultNear
	}
	if c.Camera.Far == 0 {
		c.Camera.Far = camera.DefaultFar
	}
	if c.Camera.Distance == 0 {
		c.Camera.Distance = camera.DefaultDistance
	}

	if c.Spin.DegreesPerSecond == nil {
		speed := float32(spin.DefaultSpeed)
		c.Spin.DegreesPerSecond = &speed
	}

	if c.Shaders.GLSLVersion == "" {
		c.Shaders.GLSLVersion = DefaultGLSLVersion
	}
	if c.ClearColour == "" {
		c.ClearColour = DefaultClearColour
	}
	if c.BufferUsage == "" {
		c.BufferUsage = DefaultBufferUsage
	}
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	err = c.Camera.Validate()
	if err != nil {
		return fmt.Errorf("camera is invalid: %w", err)
	}
	err = c.Spin.Validate()
	if err != nil {
		return fmt.Errorf("spin is invalid: %w", err)
	}
	err = c.Shaders.Validate()
	if err != nil {
		return fmt.Errorf("shaders are invalid: %w", err)
	}
	if c.Api != nil {
		err = c.Api.Validate()
		if err != nil {
			return fmt.Errorf("api is invalid: %w", err)
		}
	}

	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if !slices.Contains(BufferUsages, c.BufferUsage) {
		return fmt.Errorf("buffer_usage must be one of %s, got %q", strings.Join(BufferUsages, ", "), c.BufferUsage)
	}
	_, err = log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %q %dx%d (vsync %t)\n", c.Window.Title, c.Window.Width, c.Window.Height, *c.Window.VSync))

	b.WriteString("\nCamera:\n")
	b.WriteString(fmt.Sprintf("  fov %g°, planes %g..%g, distance %g\n", c.Camera.FovDegrees, c.Camera.Near, c.Camera.Far, c.Camera.Distance))

	b.WriteString("\nSpin:\n")
	b.WriteString(fmt.Sprintf("  %g°/s", *c.Spin.DegreesPerSecond))
	if c.Spin.Paused {
		b.WriteString(" (paused)")
	}
	b.WriteString("\n")

	b.WriteString("\nShaders:\n")
	b.WriteString(fmt.Sprintf("  vertex:   %s\n", c.Shaders.Vertex.OrEmbedded()))
	b.WriteString(fmt.Sprintf("  fragment: %s\n", c.Shaders.Fragment.OrEmbedded()))
	b.WriteString(fmt.Sprintf("  glsl %s, watch %t\n", c.Shaders.GLSLVersion, c.Shaders.Watch))

	b.WriteString(fmt.Sprintf("\nClear colour %s, buffer usage %s\n", c.ClearColour, c.BufferUsage))

	if c.Api != nil {
		b.WriteString(fmt.Sprintf("\nApi on %s\n", c.Api.Bind))
	}
	return b.String()
}

func (c *Config) CameraSettings() camera.Camera {
	return camera.Camera{
		FovDegrees: c.Camera.FovDegrees,
		Near:       c.Camera.Near,
		Far:        c.Camera.Far,
		Distance:   c.Camera.Distance,
	}
}

func (w *WindowCfg) Validate() error {
	if w.Width < 1 || w.Height < 1 {
		return fmt.Errorf("size must be positive, got %dx%d", w.Width, w.Height)
	}
	return nil
}

func (c *CameraCfg) Validate() error {
	if c.FovDegrees <= 0 || c.FovDegrees >= 180 {
		return fmt.Errorf("fov_degrees must be between 0 and 180, got %g", c.FovDegrees)
	}
	if c.Near <= 0 {
		return fmt.Errorf("near must be positive, got %g", c.Near)
	}
	if c.Far <= c.Near {
		return fmt.Errorf("far (%g) must be beyond near (%g)", c.Far, c.Near)
	}
	if c.Distance <= 0 {
		return fmt.Errorf("distance must be positive, got %g", c.Distance)
	}
	return nil
}

func (s *SpinCfg) Validate() error {
	if s.DegreesPerSecond == nil {
		return fmt.Errorf("degrees_per_second must be specified")
	}
	speed := float64(*s.DegreesPerSecond)
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fmt.Errorf("degrees_per_second must be finite")
	}
	return nil
}

func (s *ShadersCfg) Validate() error {
	if s.Watch && s.Vertex == "" && s.Fragment == "" {
		return fmt.Errorf("watch needs at least one shader path")
	}
	return nil
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}
