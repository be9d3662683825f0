package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatal(err)
	}
	switch {
	case out.Counter != nil:
		return out.GetCounter().GetValue()
	case out.Gauge != nil:
		return out.GetGauge().GetValue()
	}
	t.Fatalf("unsupported metric %v", m.Desc())
	return 0
}

func TestObserveFrame(t *testing.T) {
	before := value(t, FramesRendered)

	ObserveFrame(0.016, 42, 64, false)
	if got := value(t, FramesRendered); got != before+1 {
		t.Errorf("frames rendered = %v, want %v", got, before+1)
	}
	if got := value(t, RotationDegrees); got != 42 {
		t.Errorf("rotation = %v, want 42", got)
	}
	if got := value(t, RotationSpeed); got != 64 {
		t.Errorf("speed = %v, want 64", got)
	}

	ObserveFrame(0.016, 43, 64, true)
	if got := value(t, RotationSpeed); got != 0 {
		t.Errorf("speed while paused = %v, want 0", got)
	}
}

func TestShaderBuild(t *testing.T) {
	ok := value(t, ShaderBuilds.WithLabelValues(BuildOK))
	failed := value(t, ShaderBuilds.WithLabelValues(BuildFailed))

	ShaderBuild(nil)
	ShaderBuild(errors.New("syntax error"))
	ShaderBuild(errors.New("syntax error"))

	if got := value(t, ShaderBuilds.WithLabelValues(BuildOK)); got != ok+1 {
		t.Errorf("ok builds = %v, want %v", got, ok+1)
	}
	if got := value(t, ShaderBuilds.WithLabelValues(BuildFailed)); got != failed+2 {
		t.Errorf("failed builds = %v, want %v", got, failed+2)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	ObserveFrame(0.016, 1, 64, false)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		"trispin_frames_rendered_total",
		"trispin_frame_duration_seconds_bucket",
		"trispin_rotation_degrees",
		`trispin_shader_builds_total{result="failed"}`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output does not contain %s", want)
		}
	}
}
