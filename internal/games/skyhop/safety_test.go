package skyhop

import (
	"math"
	"testing"

	"github.com/ndmitry/skyhop/internal/config"
)

type stubScore int

func (s stubScore) Level() int { return int(s) }

type safetyFixture struct {
	cfg    config.SafetyConfig
	world  *World
	safety *SafetySystem
	events *recordingEvents
}

func newSafetyFixture() *safetyFixture {
	cfg := config.DefaultSkyhopConfig()
	world := NewWorld(cfg.Level)
	ev := &recordingEvents{}
	rescue := NewRescueGenerator(cfg.Level, 7, testCanvasW, testCanvasH)
	safety := NewSafetySystem(cfg.Safety, world, stubScore(1), ev, rescue, testCanvasW, testCanvasH, cfg.Player.Height)
	return &safetyFixture{cfg: cfg.Safety, world: world, safety: safety, events: ev}
}

func TestSafetyPlatformInstalledPinned(t *testing.T) {
	f := newSafetyFixture()

	rec := f.world.Platforms.Get(f.safety.Handle())
	if rec == nil {
		t.Fatal("safety system should install its platform record")
	}
	if rec.Type != PlatformSafety {
		t.Errorf("record type = %v, want safety", rec.Type)
	}
	if rec.VX != 0 {
		t.Errorf("safety platform must not scroll, VX = %v", rec.VX)
	}
	if !rec.Collidable {
		t.Error("a fully charged safety platform should be collidable")
	}
	if rec.Charges != f.cfg.MaxCharges {
		t.Errorf("charges = %d, want %d", rec.Charges, f.cfg.MaxCharges)
	}
}

func TestSafetyLandingConsumesOneCharge(t *testing.T) {
	f := newSafetyFixture()
	platformsBefore := f.world.Platforms.Len()

	f.safety.Update(0.016, true)

	if f.safety.State() != SafetyActive {
		t.Fatalf("state = %v, want ACTIVE", f.safety.State())
	}
	if f.safety.Charges() != f.cfg.MaxCharges-1 {
		t.Errorf("charges = %d, want %d", f.safety.Charges(), f.cfg.MaxCharges-1)
	}
	if f.world.Platforms.Len() <= platformsBefore {
		t.Error("entering the active state should spawn a rescue batch")
	}
	if len(f.events.rescues) != 1 {
		t.Errorf("rescue events = %v, want one batch", f.events.rescues)
	}
	if n := f.events.rescues[0]; n < 4 || n > 7 {
		t.Errorf("batch size = %d, want 4..7", n)
	}
}

func TestSafetyEarlyExitKeepsRemainingCharges(t *testing.T) {
	f := newSafetyFixture()
	f.safety.Update(0.016, true)

	// Step away after a second, well before the dissolve threshold.
	f.safety.Update(1.0, true)
	f.safety.Update(0.016, false)

	if f.safety.State() != SafetyIdle {
		t.Errorf("state = %v, want IDLE after leaving", f.safety.State())
	}
	if f.safety.Charges() != f.cfg.MaxCharges-1 {
		t.Errorf("early exit should cost only the entry charge, got %d", f.safety.Charges())
	}
	if f.safety.TimeOnPlatform() != 0 {
		t.Errorf("time on platform should reset, got %v", f.safety.TimeOnPlatform())
	}
}

func TestSafetyForcedDissolve(t *testing.T) {
	f := newSafetyFixture()
	f.safety.Update(0.016, true)

	// Stay past the dissolve threshold.
	for elapsed := 0.0; elapsed < f.cfg.DissolveAfter+0.1; elapsed += 0.1 {
		f.safety.Update(0.1, true)
	}

	if f.safety.State() != SafetyIdle {
		t.Errorf("state = %v, want IDLE after dissolve", f.safety.State())
	}
	if f.safety.Charges() != 0 {
		t.Errorf("forced dissolve should burn all charges, got %d", f.safety.Charges())
	}
	if f.events.dissolves != 1 {
		t.Errorf("dissolve events = %d, want 1", f.events.dissolves)
	}
	if f.events.ticks == 0 {
		t.Error("tick cues should fire while the countdown runs")
	}

	rec := f.world.Platforms.Get(f.safety.Handle())
	if rec == nil {
		t.Fatal("safety record must survive the dissolve")
	}
	if rec.Collidable {
		t.Error("a dissolved safety platform must not be collidable")
	}
}

func TestSafetySpawnsBatchesWhileOccupied(t *testing.T) {
	f := newSafetyFixture()
	f.safety.Update(0.016, true)

	// Ride until just before the dissolve; one more batch is due at the
	// batch interval.
	for elapsed := 0.016; elapsed < f.cfg.DissolveAfter-0.1; elapsed += 0.05 {
		f.safety.Update(0.05, true)
	}

	if len(f.events.rescues) < 2 {
		t.Errorf("rescue batches = %d, want at least the entry batch plus one interval batch", len(f.events.rescues))
	}
}

func TestSafetyRechargesAfterQuietWindow(t *testing.T) {
	f := newSafetyFixture()
	f.safety.Update(0.016, true)

	// Burn everything.
	for elapsed := 0.0; elapsed < f.cfg.DissolveAfter+0.1; elapsed += 0.1 {
		f.safety.Update(0.1, true)
	}
	if f.safety.Charges() != 0 {
		t.Fatalf("setup failed, charges = %d", f.safety.Charges())
	}

	// Idle through the recharge window plus the replenish ramp.
	for elapsed := 0.0; elapsed < f.cfg.RechargeWindow+f.cfg.RechargeRamp+0.2; elapsed += 0.1 {
		f.safety.Update(0.1, false)
	}

	if f.safety.Charges() != f.cfg.MaxCharges {
		t.Errorf("charges after recharge = %d, want %d", f.safety.Charges(), f.cfg.MaxCharges)
	}
	rec := f.world.Platforms.Get(f.safety.Handle())
	if rec == nil || !rec.Collidable {
		t.Error("recharged safety platform should be collidable again")
	}
}

// platformLog records platforms in emission order.
type platformLog struct {
	platforms []Platform
}

func (l *platformLog) AddPlatform(p Platform) Handle {
	l.platforms = append(l.platforms, p)
	return Handle{}
}

func TestRescueBatchNeighborSeparation(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()

	for seed := int64(1); seed <= 20; seed++ {
		for level := 1; level <= 10; level++ {
			r := NewRescueGenerator(cfg.Level, seed, testCanvasW, testCanvasH)
			log := &platformLog{}
			r.SpawnBatch(log, level, -120, testCanvasH-100)

			for i := 1; i < len(log.platforms); i++ {
				prev := log.platforms[i-1]
				cur := log.platforms[i]
				if cur.X >= prev.X+prev.W {
					continue
				}
				if gap := math.Abs(cur.Y - prev.Y); gap < minRescueVerticalGap {
					t.Fatalf("seed %d level %d: overlapping neighbors %d,%d separated by %v, want >= %v",
						seed, level, i-1, i, gap, minRescueVerticalGap)
				}
			}
		}
	}
}

func TestSafetyRescuePlatformsStayAbovePlatform(t *testing.T) {
	f := newSafetyFixture()
	f.safety.Update(0.016, true)

	safetyTop := f.world.Platforms.Get(f.safety.Handle()).Y
	limit := safetyTop - 36 - rescueSafeMargin // player height from default config

	f.world.Platforms.Each(func(h Handle, p *Platform) {
		if p.Type != PlatformRescue {
			return
		}
		if p.Y > limit {
			t.Errorf("rescue platform at y=%v is below the safe limit %v", p.Y, limit)
		}
	})
}
