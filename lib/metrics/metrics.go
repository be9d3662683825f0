package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trispin_frames_rendered_total",
		Help: "Total number of frames drawn and swapped",
	})
	FrameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trispin_frame_duration_seconds",
		Help:    "Time between consecutive frames",
		Buckets: []float64{0.001, 0.004, 0.008, 0.0167, 0.025, 0.034, 0.05, 0.1, 0.25, 1},
	})
	RotationDegrees = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trispin_rotation_degrees",
		Help: "Current rotation angle of the triangle around the Y axis",
	})
	RotationSpeed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trispin_rotation_speed_degrees_per_second",
		Help: "Configured rotation speed, zero while paused",
	})
	ShaderBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trispin_shader_builds_total",
		Help: "Shader program builds by result",
	}, []string{"result"})
	WsClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trispin_ws_clients",
		Help: "Number of connected websocket clients",
	})
)

const (
	BuildOK     = "ok"
	BuildFailed = "failed"
)

func init() {
	ShaderBuilds.WithLabelValues(BuildOK).Add(0)
	ShaderBuilds.WithLabelValues(BuildFailed).Add(0)
}

// ObserveFrame records one rendered frame.
func ObserveFrame(dtSeconds float64, angle float32, speed float32, paused bool) {
	FramesRendered.Inc()
	if dtSeconds > 0 {
		FrameDuration.Observe(dtSeconds)
	}
	RotationDegrees.Set(float64(angle))
	if paused {
		RotationSpeed.Set(0)
	} else {
		RotationSpeed.Set(float64(speed))
	}
}

func ShaderBuild(err error) {
	if err != nil {
		ShaderBuilds.WithLabelValues(BuildFailed).Inc()
		return
	}
	ShaderBuilds.WithLabelValues(BuildOK).Inc()
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
