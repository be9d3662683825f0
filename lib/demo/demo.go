// Package demo runs the render loop: window and context setup, shader and
// buffer creation, the per-frame update/draw/swap cycle and teardown.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/trispin/trispin/lib/api"
	"github.com/trispin/trispin/lib/camera"
	"github.com/trispin/trispin/lib/config"
	"github.com/trispin/trispin/lib/geometry"
	"github.com/trispin/trispin/lib/kbdctl"
	"github.com/trispin/trispin/lib/metrics"
	"github.com/trispin/trispin/lib/rendering"
	"github.com/trispin/trispin/lib/rendering/renderconsts"
	"github.com/trispin/trispin/lib/rendering/shaders"
	"github.com/trispin/trispin/lib/sink/windowsink"
	"github.com/trispin/trispin/lib/spin"
	"github.com/trispin/trispin/lib/stats"
	"github.com/trispin/trispin/lib/utils"
)

type Demo struct {
	cfg *config.Config

	Window   *windowsink.WindowSink
	GLVars   *rendering.GLVars
	Spinner  *spin.Spinner
	Stats    *stats.Stats
	Camera   camera.Camera
	Shaderer *shaders.Shaderer

	api     *api.Api
	watcher *shaders.Watcher

	shutdownRequested atomic.Bool
}

func New(cfg *config.Config) (*Demo, error) {
	spinner, err := spin.New(*cfg.Spin.DegreesPerSecond)
	if err != nil {
		return nil, err
	}
	spinner.SetPaused(cfg.Spin.Paused)

	shaderer, err := shaders.NewShaderer()
	if err != nil {
		return nil, fmt.Errorf("could not load shader templates: %w", err)
	}

	return &Demo{
		cfg:      cfg,
		Window:   windowsink.New(&cfg.Window),
		Spinner:  spinner,
		Stats:    stats.New(),
		Camera:   cfg.CameraSettings(),
		Shaderer: shaderer,
	}, nil
}

// Run must be called from the main thread with the OS thread locked.
func Run(cfg *config.Config) error {
	d, err := New(cfg)
	if err != nil {
		return err
	}
	return d.Run()
}

func (d *Demo) RequestShutdown() {
	d.shutdownRequested.Store(true)
}

func (d *Demo) ShutdownRequested() bool {
	return d.shutdownRequested.Load()
}

func (d *Demo) Run() error {
	err := d.Window.Start()
	if err != nil {
		return fmt.Errorf("could not open window: %w", err)
	}
	defer d.Window.Destroy()

	err = rendering.Init()
	if err != nil {
		return fmt.Errorf("could not initialise renderer: %w", err)
	}

	program, err := d.buildProgram()
	if err != nil {
		return fmt.Errorf("could not init GL program: %w", err)
	}

	usage, err := renderconsts.ParseBufferUsage(d.cfg.BufferUsage)
	if err != nil {
		program.Delete()
		return err
	}
	d.GLVars, err = rendering.NewGLVars(program, geometry.Triangle(), usage, utils.ColourParse(d.cfg.ClearColour))
	if err != nil {
		program.Delete()
		return err
	}
	d.GLVars.Start()
	defer d.releaseGL()
	d.GLVars.Viewport(d.Window.FramebufferSize())

	if d.cfg.Shaders.Watch {
		d.startWatcher()
		defer d.stopWatcher()
	}

	kbdctl.SetupShortcutKeys(d.Window, d.RequestShutdown)

	d.api = api.ServeInBackground(d.cfg.Api, d.Spinner, d.Stats, d.RequestShutdown)
	defer d.stopApi()

	d.loop()
	d.log().Info("render loop finished, shutting down")
	return nil
}

func (d *Demo) loop() {
	var deltaTimer utils.DeltaTimer
	for !d.ShutdownRequested() {
		kbdctl.Poll()
		if d.Window.ShouldClose() {
			d.RequestShutdown()
			break
		}

		if d.reloadPending() {
			d.reloadProgram()
			deltaTimer.Reset()
		}

		dt := deltaTimer.Next()
		state := d.update(dt)

		d.GLVars.StartFrame()
		matrices := d.Camera.Matrices(state.Angle, d.Window.Width, d.Window.Height)
		d.GLVars.Draw(&matrices)
		d.Window.SwapBuffers()

		metrics.ObserveFrame(dt.Seconds(), state.Angle, state.Speed, state.Paused)
	}
}

// update advances the simulation by dt and returns the state to draw.
func (d *Demo) update(dt time.Duration) spin.State {
	d.Spinner.Advance(dt)
	state := d.Spinner.State()
	d.Stats.Update(state)
	return state
}

func (d *Demo) buildProgram() (*rendering.Program, error) {
	data := shaders.NewShaderData(d.cfg.Shaders.GLSLVersion)
	sources, err := d.Shaderer.Sources(string(d.cfg.Shaders.Vertex), string(d.cfg.Shaders.Fragment), data)
	if err != nil {
		metrics.ShaderBuild(err)
		return nil, err
	}

	program, err := rendering.BuildGLProgram(sources)
	metrics.ShaderBuild(err)
	return program, err
}

func (d *Demo) reloadProgram() {
	program, err := d.buildProgram()
	if err != nil {
		d.log().Error(fmt.Sprintf("Shader reload failed, keeping the previous program: %s", err))
		return
	}
	old := d.GLVars.SetProgram(program)
	old.Delete()
	d.log().Info("Shaders reloaded")
}

func (d *Demo) startWatcher() {
	w, err := shaders.NewWatcher(string(d.cfg.Shaders.Vertex), string(d.cfg.Shaders.Fragment))
	if err != nil {
		d.log().Warn(fmt.Sprintf("Shader hot reload disabled: %s", err))
		return
	}
	d.watcher = w
	d.watcher.Start()
}

func (d *Demo) stopWatcher() {
	if d.watcher == nil {
		return
	}
	err := d.watcher.Close()
	if err != nil {
		d.log().Debug(fmt.Sprintf("could not close shader watcher: %s", err))
	}
}

func (d *Demo) reloadPending() bool {
	if d.watcher == nil {
		return false
	}
	select {
	case path := <-d.watcher.Reloads():
		d.log().Info(fmt.Sprintf("Reloading shaders after change to %s", path))
		return true
	default:
		return false
	}
}

func (d *Demo) releaseGL() {
	d.GLVars.Delete()
	d.GLVars.Program.Delete()
}

func (d *Demo) stopApi() {
	if d.api == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := d.api.Shutdown(ctx)
	if err != nil {
		d.log().Warn(fmt.Sprintf("could not stop web server cleanly: %s", err))
	}
}

func (d *Demo) log() *slog.Logger {
	return slog.Default().With(slog.String("module", "demo"))
}
