package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// LogHandler renders records as a single coloured line:
// time, level, [module] and the message followed by any other attributes.
// Attribute handling is delegated to a JSON handler writing into a buffer.
type LogHandler struct {
	subHandler  slog.Handler
	buffer      *bytes.Buffer
	bufferMutex *sync.Mutex
	out         io.Writer
}

const (
	reset = "\033[0m"

	cyan        = 36
	lightGray   = 37
	darkGray    = 90
	lightRed    = 91
	lightYellow = 93
)

// keys the JSON sub-handler always emits, which are printed elsewhere
var builtinKeys = map[string]bool{
	slog.TimeKey:    true,
	slog.LevelKey:   true,
	slog.MessageKey: true,
	"module":        true,
}

func colorize(colorCode int, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.subHandler.Enabled(ctx, level)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{subHandler: h.subHandler.WithAttrs(attrs), buffer: h.buffer, bufferMutex: h.bufferMutex, out: h.out}
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{subHandler: h.subHandler.WithGroup(name), buffer: h.buffer, bufferMutex: h.bufferMutex, out: h.out}
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + " "

	switch {
	case r.Level >= slog.LevelError:
		level = colorize(lightRed, level)
	case r.Level >= slog.LevelWarn:
		level = colorize(lightYellow, level)
	case r.Level >= slog.LevelInfo:
		level = colorize(cyan, level)
	default:
		level = colorize(darkGray, level)
	}

	attrs, err := h.parseAttributes(ctx, r)
	if err != nil {
		return err
	}

	var line strings.Builder
	line.WriteString(colorize(lightGray, r.Time.Format("15:04:05.000 ")))
	line.WriteString(level)
	if attrs["module"] != nil {
		line.WriteString(colorize(lightGray, fmt.Sprintf("[%s] ", attrs["module"])))
	}
	line.WriteString(r.Message)
	for _, k := range extraKeys(attrs) {
		line.WriteString(colorize(darkGray, fmt.Sprintf(" %s=%v", k, attrs[k])))
	}
	line.WriteString("\n")

	h.bufferMutex.Lock()
	defer h.bufferMutex.Unlock()
	_, err = io.WriteString(h.out, line.String())
	return err
}

func (h *LogHandler) parseAttributes(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.bufferMutex.Lock()
	defer func() {
		h.buffer.Reset()
		h.bufferMutex.Unlock()
	}()
	if err := h.subHandler.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	err := json.Unmarshal(h.buffer.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}

func extraKeys(attrs map[string]any) []string {
	var keys []string
	for k := range attrs {
		if !builtinKeys[k] {
			keys = append(keys, k)
		}
	}
	// map iteration order is random, keep the output stable
	slices.Sort(keys)
	return keys
}

func NewHandler(opts *slog.HandlerOptions) *LogHandler {
	return NewHandlerTo(os.Stdout, opts)
}

func NewHandlerTo(out io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	b := &bytes.Buffer{}
	return &LogHandler{
		buffer: b,
		subHandler: slog.NewJSONHandler(b, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: opts.ReplaceAttr,
		}),
		bufferMutex: &sync.Mutex{},
		out:         out,
	}
}

// Setup installs a LogHandler at the given level as the slog default and
// routes the standard library logger through it.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(&slog.HandlerOptions{Level: level})))
}

// ParseLevel accepts the names slog understands (debug, info, warn, error).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(s))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
