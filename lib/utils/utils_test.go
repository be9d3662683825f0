package utils

import (
	"image/color"
	"testing"
	"time"
)

func TestColourValidate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#0000ffff", true},
		{"#A1b2C3d4", true},
		{"#0000ff", false},
		{"0000ffff", false},
		{"#0000ffff00", false},
		{"#gg0000ff", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ColourValidate(tt.in); got != tt.want {
			t.Errorf("ColourValidate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColourParse(t *testing.T) {
	got := ColourParse("#ff800040")
	want := color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x40}
	if got != want {
		t.Fatalf("ColourParse = %+v, want %+v", got, want)
	}
}

func TestColourFloats(t *testing.T) {
	r, g, b, a := ColourFloats(color.RGBA{R: 0, G: 0, B: 255, A: 255})
	if r != 0 || g != 0 || b != 1 || a != 1 {
		t.Fatalf("ColourFloats = %v %v %v %v, want 0 0 1 1", r, g, b, a)
	}
}

func TestDeltaTimer(t *testing.T) {
	start := time.Unix(1000, 0)
	ticks := []time.Time{
		start,
		start.Add(16 * time.Millisecond),
		start.Add(50 * time.Millisecond),
	}
	i := 0
	d := DeltaTimer{Now: func() time.Time {
		now := ticks[i]
		i++
		return now
	}}

	if dt := d.Next(); dt != 0 {
		t.Fatalf("first delta = %v, want 0", dt)
	}
	if dt := d.Next(); dt != 16*time.Millisecond {
		t.Fatalf("second delta = %v, want 16ms", dt)
	}
	if dt := d.Next(); dt != 34*time.Millisecond {
		t.Fatalf("third delta = %v, want 34ms", dt)
	}
}

func TestDeltaTimerReset(t *testing.T) {
	now := time.Unix(0, 0)
	d := DeltaTimer{Now: func() time.Time {
		now = now.Add(time.Second)
		return now
	}}
	d.Next()
	d.Reset()
	if dt := d.Next(); dt != 0 {
		t.Fatalf("delta after reset = %v, want 0", dt)
	}
}
