package stats

import (
	"sync"
	"time"

	"github.com/trispin/trispin/lib/spin"
)

// Snapshot is what the API reports.
type Snapshot struct {
	Uptime    float64 `json:"uptime"`
	FPS       uint64  `json:"fps"`
	Frames    uint64  `json:"frames"`
	Angle     float32 `json:"angle"`
	Speed     float32 `json:"speed"`
	Paused    bool    `json:"paused"`
	WsClients int     `json:"ws_clients"`
}

// Stats is updated by the render loop and read by the API.
type Stats struct {
	mu   sync.Mutex
	snap Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time

	now func() time.Time
}

func New() *Stats {
	s := &Stats{now: time.Now}
	s.start = s.now()
	s.frameTimer = s.start
	return s
}

// Update is called once per rendered frame.
func (s *Stats) Update(state spin.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.frameCounter++
	s.snap.Frames++
	if now.Sub(s.frameTimer) >= time.Second {
		s.snap.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.snap.Uptime = now.Sub(s.start).Seconds()
	s.snap.Angle = state.Angle
	s.snap.Speed = state.Speed
	s.snap.Paused = state.Paused
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.WsClients = n
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
