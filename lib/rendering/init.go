package rendering

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the GL function pointers. A context must be current.
func Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger().Info(fmt.Sprintf("OpenGL version %s / %s / %s", vendor, renderer, version))

	return nil
}

func logger() *slog.Logger {
	return slog.Default().With(slog.String("module", "rendering"))
}
