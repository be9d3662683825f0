package renderconsts

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type BufferUsage uint32

const (
	StaticDraw  BufferUsage = gl.STATIC_DRAW
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
	StreamDraw  BufferUsage = gl.STREAM_DRAW
)

// ParseBufferUsage maps the buffer_usage config values onto GL enums.
func ParseBufferUsage(name string) (BufferUsage, error) {
	switch name {
	case "static":
		return StaticDraw, nil
	case "dynamic", "":
		return DynamicDraw, nil
	case "stream":
		return StreamDraw, nil
	default:
		return 0, fmt.Errorf("unknown buffer usage: %s", name)
	}
}
