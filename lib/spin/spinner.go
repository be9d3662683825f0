// Package spin tracks the rotation angle of the triangle.
package spin

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	DefaultSpeed = 64.0 // degrees per second
	fullTurn     = 360.0
)

type State struct {
	Angle  float32 `json:"angle"`
	Speed  float32 `json:"speed"`
	Paused bool    `json:"paused"`
}

// Spinner advances a rotation angle at a fixed speed. The render loop
// advances it while the API may change speed or pause it concurrently.
type Spinner struct {
	mu    sync.Mutex
	state State
}

func New(speed float32) (*Spinner, error) {
	s := &Spinner{}
	if err := s.SetSpeed(speed); err != nil {
		return nil, err
	}
	return s, nil
}

// Advance moves the angle by speed*dt and returns the new angle, which
// is always within [0, 360).
func (s *Spinner) Advance(dt time.Duration) float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Paused && dt > 0 {
		angle := float64(s.state.Angle) + float64(s.state.Speed)*dt.Seconds()
		s.state.Angle = Wrap(angle)
	}
	return s.state.Angle
}

func (s *Spinner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Spinner) SetSpeed(speed float32) error {
	if math.IsNaN(float64(speed)) || math.IsInf(float64(speed), 0) {
		return fmt.Errorf("rotation speed must be finite, got %v", speed)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Speed = speed
	return nil
}

func (s *Spinner) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Paused = paused
}

// Wrap folds an angle in degrees into [0, 360).
func Wrap(angle float64) float32 {
	angle = math.Mod(angle, fullTurn)
	if angle < 0 {
		angle += fullTurn
	}
	wrapped := float32(angle)
	// float64 values just below 360 can round up when narrowed
	if wrapped >= fullTurn {
		wrapped = 0
	}
	return wrapped
}
