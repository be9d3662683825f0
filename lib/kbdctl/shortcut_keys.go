package kbdctl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/trispin/trispin/lib/sink/windowsink"
)

// SetupShortcutKeys wires the quit shortcuts of the window to quit.
// Everything else is ignored.
func SetupShortcutKeys(ws *windowsink.WindowSink, quit func()) {
	ws.Window.SetKeyCallback(keyCallback(quit))
	ws.Window.SetCloseCallback(func(w *glfw.Window) {
		slog.Info("window closed, exiting", slog.String("module", "kbdctl"))
		quit()
	})
}

func Poll() {
	glfw.PollEvents()
}

func keyCallback(quit func()) glfw.KeyCallback {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Release {
			return
		}
		if isQuitShortcut(key, mods) {
			slog.Info("told to quit, exiting", slog.String("module", "kbdctl"))
			quit()
		}
	}
}

func isQuitShortcut(key glfw.Key, mods glfw.ModifierKey) bool {
	if key == glfw.KeyEscape {
		return true
	}
	return key == glfw.KeyQ &&
		mods&glfw.ModControl != 0 &&
		mods&glfw.ModShift != 0
}
