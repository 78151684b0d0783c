package core

import "time"

// Clock clamping bounds. The floor guards against zero-division in rate
// computations; the catch-up substitution avoids a huge integration step
// after a suspended frame callback (backgrounded terminal, debugger pause);
// the final cap prevents a "spiral of death" where one long step tunnels
// the player through thin platforms.
const (
	MinFrameMS     = 1.0      // Floor for non-positive elapsed values
	MaxRawMS       = 1000.0   // Raw elapsed above this is treated as a stall
	NominalFrameMS = 1000.0 / 60.0
	MaxDeltaTime   = 0.1 // Hard cap on the integration step, in seconds
)

// Clock converts raw host frame timings into a bounded, monotonic
// delta-time value in seconds. Pure computation, never blocks.
type Clock struct {
	last time.Time
}

// NewClock creates a clock with no previous frame recorded.
func NewClock() *Clock {
	return &Clock{}
}

// Tick records a new frame timestamp and returns the bounded delta time
// since the previous Tick. The first call returns the nominal 60 Hz step.
func (c *Clock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return BoundDelta(NominalFrameMS)
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return BoundDelta(float64(elapsed) / float64(time.Millisecond))
}

// Reset forgets the previous frame so the next Tick returns the nominal step.
func (c *Clock) Reset() {
	c.last = time.Time{}
}

// BoundDelta maps a raw elapsed duration in milliseconds to a delta time
// in seconds, guaranteed to be in (0, MaxDeltaTime].
func BoundDelta(elapsedMS float64) float64 {
	if elapsedMS <= 0 {
		elapsedMS = MinFrameMS
	}
	if elapsedMS > MaxRawMS {
		elapsedMS = NominalFrameMS
	}
	dt := elapsedMS / 1000.0
	if dt > MaxDeltaTime {
		dt = MaxDeltaTime
	}
	return dt
}
