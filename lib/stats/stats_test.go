package stats

import (
	"testing"
	"time"

	"github.com/trispin/trispin/lib/spin"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStats() (*Stats, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := &Stats{now: clock.now}
	s.start = clock.t
	s.frameTimer = clock.t
	return s, clock
}

func TestFPS(t *testing.T) {
	s, clock := newTestStats()

	// the 59th frame at 17ms each crosses the one second mark
	for range 60 {
		clock.advance(17 * time.Millisecond)
		s.Update(spin.State{})
	}

	snap := s.Snapshot()
	if snap.FPS != 59 {
		t.Fatalf("fps = %d, want 59", snap.FPS)
	}
	if snap.Frames != 60 {
		t.Fatalf("frames = %d, want 60", snap.Frames)
	}
	if snap.Uptime < 1.019 || snap.Uptime > 1.021 {
		t.Fatalf("uptime = %v, want 1.02s", snap.Uptime)
	}
}

func TestFPSBeforeFirstSecond(t *testing.T) {
	s, clock := newTestStats()
	clock.advance(100 * time.Millisecond)
	s.Update(spin.State{})
	if fps := s.Snapshot().FPS; fps != 0 {
		t.Fatalf("fps before a full second = %d, want 0", fps)
	}
}

func TestSpinStateIsCopied(t *testing.T) {
	s, _ := newTestStats()
	s.Update(spin.State{Angle: 12.5, Speed: 64, Paused: true})
	s.SetWsClients(3)

	snap := s.Snapshot()
	if snap.Angle != 12.5 || snap.Speed != 64 || !snap.Paused {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.WsClients != 3 {
		t.Fatalf("ws clients = %d, want 3", snap.WsClients)
	}
}

func TestNew(t *testing.T) {
	s := New()
	s.Update(spin.State{Angle: 1})
	if snap := s.Snapshot(); snap.Frames != 1 || snap.Uptime < 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
}
