package kbdctl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestIsQuitShortcut(t *testing.T) {
	tests := []struct {
		name string
		key  glfw.Key
		mods glfw.ModifierKey
		want bool
	}{
		{"escape", glfw.KeyEscape, 0, true},
		{"escape with modifiers", glfw.KeyEscape, glfw.ModShift, true},
		{"ctrl shift q", glfw.KeyQ, glfw.ModControl | glfw.ModShift, true},
		{"ctrl shift alt q", glfw.KeyQ, glfw.ModControl | glfw.ModShift | glfw.ModAlt, true},
		{"plain q", glfw.KeyQ, 0, false},
		{"ctrl q", glfw.KeyQ, glfw.ModControl, false},
		{"shift q", glfw.KeyQ, glfw.ModShift, false},
		{"ctrl shift w", glfw.KeyW, glfw.ModControl | glfw.ModShift, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuitShortcut(tt.key, tt.mods); got != tt.want {
				t.Fatalf("isQuitShortcut(%v, %v) = %v, want %v", tt.key, tt.mods, got, tt.want)
			}
		})
	}
}

func TestKeyCallbackQuitsOnRelease(t *testing.T) {
	quits := 0
	cb := keyCallback(func() { quits++ })

	cb(nil, glfw.KeyEscape, 0, glfw.Press, 0)
	cb(nil, glfw.KeyEscape, 0, glfw.Repeat, 0)
	if quits != 0 {
		t.Fatalf("quit on press/repeat, want only on release")
	}
	cb(nil, glfw.KeyEscape, 0, glfw.Release, 0)
	cb(nil, glfw.KeyA, 0, glfw.Release, 0)
	if quits != 1 {
		t.Fatalf("quits = %d, want 1", quits)
	}
}
