package core

import (
	"testing"
	"time"
)

func TestBoundDeltaRange(t *testing.T) {
	tests := []struct {
		name      string
		elapsedMS float64
	}{
		{"zero elapsed", 0},
		{"negative elapsed", -50},
		{"tiny elapsed", 0.001},
		{"normal 60Hz frame", 16.7},
		{"slow 10Hz frame", 100},
		{"very slow frame", 500},
		{"stalled tab", 1001},
		{"huge stall", 60000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dt := BoundDelta(tc.elapsedMS)
			if dt <= 0 || dt > MaxDeltaTime {
				t.Errorf("BoundDelta(%v) = %v, want in (0, %v]", tc.elapsedMS, dt, MaxDeltaTime)
			}
		})
	}
}

func TestBoundDeltaValues(t *testing.T) {
	// Non-positive elapsed substitutes the 1ms floor
	if got := BoundDelta(-1); got != 0.001 {
		t.Errorf("BoundDelta(-1) = %v, want 0.001", got)
	}
	// A stall substitutes the nominal 60Hz step, not a catch-up step
	if got := BoundDelta(5000); got != NominalFrameMS/1000.0 {
		t.Errorf("BoundDelta(5000) = %v, want %v", got, NominalFrameMS/1000.0)
	}
	// A long but sub-stall frame is capped at 100ms
	if got := BoundDelta(800); got != MaxDeltaTime {
		t.Errorf("BoundDelta(800) = %v, want %v", got, MaxDeltaTime)
	}
	// A normal frame passes through unchanged
	if got := BoundDelta(16.7); got != 16.7/1000.0 {
		t.Errorf("BoundDelta(16.7) = %v, want %v", got, 16.7/1000.0)
	}
}

func TestBoundDeltaMonotoneAtBounds(t *testing.T) {
	// Values already inside the bounds pass through the final clamp unchanged
	if BoundDelta(100) != MaxDeltaTime {
		t.Errorf("BoundDelta(100) = %v, want %v", BoundDelta(100), MaxDeltaTime)
	}
	if BoundDelta(MinFrameMS) != MinFrameMS/1000.0 {
		t.Errorf("BoundDelta(floor) = %v, want %v", BoundDelta(MinFrameMS), MinFrameMS/1000.0)
	}
}

func TestClockTick(t *testing.T) {
	c := NewClock()
	base := time.Unix(1000, 0)

	// First tick has no previous frame: nominal step
	if got := c.Tick(base); got != BoundDelta(NominalFrameMS) {
		t.Errorf("first Tick = %v, want nominal", got)
	}

	// 16ms later
	if got := c.Tick(base.Add(16 * time.Millisecond)); got != 0.016 {
		t.Errorf("Tick after 16ms = %v, want 0.016", got)
	}

	// Clock went backwards: floor applies
	if got := c.Tick(base.Add(10 * time.Millisecond)); got != 0.001 {
		t.Errorf("Tick after backwards step = %v, want 0.001", got)
	}

	// Reset forgets the previous frame
	c.Reset()
	if got := c.Tick(base.Add(time.Hour)); got != BoundDelta(NominalFrameMS) {
		t.Errorf("Tick after Reset = %v, want nominal", got)
	}
}
