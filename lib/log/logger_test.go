package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerFormatsModuleAndAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, nil))

	logger.With(slog.String("module", "renderer")).Info("program linked", slog.Int("program", 3))

	line := out.String()
	for _, want := range []string{"INFO", "[renderer] ", "program linked", "program=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("output %q does not contain %q", line, want)
		}
	}
	if strings.Count(line, "\n") != 1 {
		t.Errorf("expected exactly one line, got %q", line)
	}
}

func TestHandlerRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	logger.Debug("hidden too")
	if out.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", out.String())
	}

	logger.Warn("shader info log")
	if !strings.Contains(out.String(), "WARN") {
		t.Fatalf("expected a warning, got %q", out.String())
	}
}

func TestHandlerWithoutModule(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, nil))

	logger.Error("boom")
	if strings.Contains(out.String(), "] boom") {
		t.Fatalf("unexpected module prefix in %q", out.String())
	}
	if !strings.Contains(out.String(), "boom") {
		t.Fatalf("message missing from %q", out.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
