package utils

import "time"

// DeltaTimer reports the time elapsed between consecutive frames.
// The first call to Next returns zero.
type DeltaTimer struct {
	last time.Time

	// Now defaults to time.Now when nil
	Now func() time.Time
}

func (d *DeltaTimer) Next() time.Duration {
	// acquire timestamp exactly once to ensure we're not accumulating error
	now := d.now()

	defer func() { d.last = now }()
	if d.last.IsZero() {
		return 0
	}
	return now.Sub(d.last)
}

// Reset makes the next call to Next return zero again, so a long stall
// (e.g. a shader rebuild) does not show up as one huge frame.
func (d *DeltaTimer) Reset() {
	d.last = time.Time{}
}

func (d *DeltaTimer) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
