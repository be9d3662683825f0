package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/trispin/trispin/lib/config"
)

// WindowSink is the on-screen window the triangle is rendered into.
type WindowSink struct {
	Name   string
	Width  int
	Height int
	VSync  bool

	Window *glfw.Window
}

func New(cfg *config.WindowCfg) *WindowSink {
	return &WindowSink{
		Name:   cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		VSync:  cfg.VSync == nil || *cfg.VSync,
	}
}

// Start creates the window and makes its GL context current on the
// calling thread, which must be the locked main thread.
func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}
	window, err := w.makeWindow()
	if err != nil {
		return err
	}
	w.Window = window
	return nil
}

func (w *WindowSink) makeWindow() (*glfw.Window, error) {
	w.log().Debug("Initializing window")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(w.Width, w.Height, w.Name, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window: %w", err)
	}

	window.MakeContextCurrent()
	if w.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetFramebufferSizeCallback(w.handleResize)

	w.log().Info(fmt.Sprintf("Opened %dx%d window %q", w.Width, w.Height, w.Name))
	return window, nil
}

// handleResize is a stub: the window is not resizable and the projection
// keeps the configured aspect ratio.
func (w *WindowSink) handleResize(_ *glfw.Window, width int, height int) {
	w.log().Debug(fmt.Sprintf("Ignoring framebuffer resize to %dx%d", width, height))
}

func (w *WindowSink) FramebufferSize() (int, int) {
	return w.Window.GetFramebufferSize()
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

// Destroy closes the window and shuts glfw down.
func (w *WindowSink) Destroy() {
	if w.Window != nil {
		w.Window.Destroy()
		w.Window = nil
	}
	glfw.Terminate()
}

func (w *WindowSink) log() *slog.Logger {
	return slog.Default().With(slog.String("module", w.Name))
}
