package skyhop

import "github.com/ndmitry/skyhop/internal/config"

// SafetyState is the control state of the safety platform.
type SafetyState uint8

const (
	// SafetyIdle: the default; collidable only while charges remain.
	SafetyIdle SafetyState = iota
	// SafetyActive: the player is standing on it, counting down toward
	// the forced dissolve.
	SafetyActive
)

// String returns the state name.
func (s SafetyState) String() string {
	if s == SafetyActive {
		return "ACTIVE"
	}
	return "IDLE"
}

// SafetySystem is the charge-limited emergency platform. It owns one
// special platform record in the world arena and is the only writer of
// its charge and collidability state. While active it asks the rescue
// generator to emit escape platforms ahead of the player.
type SafetySystem struct {
	cfg       config.SafetyConfig
	entities  EntityCollection
	platforms *Arena[Platform]
	score     ScoreSource
	events    Events
	rescue    *RescueGenerator

	handle Handle

	charges        int
	state          SafetyState
	timeOnPlatform float64

	sinceLastUse float64
	recharging   bool
	rechargeT    float64
	rampStart    int

	tickTimer  float64
	batchTimer float64

	canvasW float64
	canvasH float64
	playerH float64
	scroll  float64 // current world scroll velocity for spawned rescues
}

// NewSafetySystem creates the system and installs its platform record
// into the world arena.
func NewSafetySystem(cfg config.SafetyConfig, world *World, score ScoreSource, events Events, rescue *RescueGenerator, canvasW, canvasH, playerH float64) *SafetySystem {
	s := &SafetySystem{
		cfg:       cfg,
		entities:  world,
		platforms: &world.Platforms,
		score:     score,
		events:    events,
		rescue:    rescue,
		charges:   cfg.MaxCharges,
		state:     SafetyIdle,
		canvasW:   canvasW,
		canvasH:   canvasH,
		playerH:   playerH,
	}
	s.handle = world.AddPlatform(s.platformRecord())
	return s
}

// platformRecord builds the safety platform record at its fixed screen
// position near the bottom of the canvas.
func (s *SafetySystem) platformRecord() Platform {
	return Platform{
		X:          s.canvasW/2 - s.cfg.Width/2,
		Y:          s.canvasH - s.cfg.BottomMargin - s.cfg.Height,
		W:          s.cfg.Width,
		H:          s.cfg.Height,
		VX:         0, // pinned to the screen, not the world
		Type:       PlatformSafety,
		Collidable: true,
		Charges:    s.charges,
	}
}

// Handle returns the arena handle of the safety platform record.
func (s *SafetySystem) Handle() Handle {
	return s.handle
}

// Charges returns the remaining emergency uses.
func (s *SafetySystem) Charges() int {
	return s.charges
}

// State returns the current control state.
func (s *SafetySystem) State() SafetyState {
	return s.state
}

// TimeOnPlatform returns the accumulated resting time in the active state.
func (s *SafetySystem) TimeOnPlatform() float64 {
	return s.timeOnPlatform
}

// IsActive reports whether the platform is usable or in use:
// active, or idle with charges remaining.
func (s *SafetySystem) IsActive() bool {
	return s.state == SafetyActive || s.charges > 0
}

// SetScroll records the current world scroll velocity; spawned rescue
// platforms inherit it.
func (s *SafetySystem) SetScroll(vx float64) {
	s.scroll = vx
}

// Update drives the state machine with the collision layer's "player is
// resting on the safety platform" signal.
func (s *SafetySystem) Update(dt float64, playerOn bool) {
	switch s.state {
	case SafetyIdle:
		if playerOn && s.charges > 0 {
			// Consume exactly one charge and open the recharge window.
			s.charges--
			s.sinceLastUse = 0
			s.recharging = false
			s.state = SafetyActive
			s.timeOnPlatform = 0
			s.tickTimer = 0
			s.batchTimer = 0
			s.spawnBatch()
		}

	case SafetyActive:
		if !playerOn {
			// Early exit: timers reset, no charge penalty beyond the one
			// already consumed on entry.
			s.state = SafetyIdle
			s.timeOnPlatform = 0
			s.tickTimer = 0
			s.batchTimer = 0
			break
		}

		s.timeOnPlatform += dt

		// Tick cue, accelerating as the dissolve approaches.
		s.tickTimer += dt
		if s.tickTimer >= s.tickInterval() {
			s.tickTimer = 0
			s.events.SafetyTick()
		}

		// Another rescue batch at a fixed cadence.
		s.batchTimer += dt
		if s.batchTimer >= s.cfg.BatchInterval {
			s.batchTimer = 0
			s.spawnBatch()
		}

		if s.timeOnPlatform >= s.cfg.DissolveAfter {
			// Forced dissolve: all charges gone, the platform stops
			// being collidable and the player falls through.
			s.charges = 0
			s.state = SafetyIdle
			s.timeOnPlatform = 0
			s.sinceLastUse = 0
			s.recharging = false
			s.events.SafetyDissolve()
		}
	}

	s.updateRecharge(dt)
	s.syncRecord()
}

// tickInterval shrinks linearly from the start interval toward the floor
// as time on the platform approaches the dissolve threshold.
func (s *SafetySystem) tickInterval() float64 {
	progress := s.timeOnPlatform / s.cfg.DissolveAfter
	if progress > 1 {
		progress = 1
	}
	return s.cfg.TickStart - (s.cfg.TickStart-s.cfg.TickMin)*progress
}

// updateRecharge replenishes all charges together after a quiet window,
// via a short animated ramp rather than instantaneously.
func (s *SafetySystem) updateRecharge(dt float64) {
	if s.charges >= s.cfg.MaxCharges || s.state == SafetyActive {
		return
	}

	if !s.recharging {
		s.sinceLastUse += dt
		if s.sinceLastUse >= s.cfg.RechargeWindow {
			s.recharging = true
			s.rechargeT = 0
			s.rampStart = s.charges
		}
		return
	}

	s.rechargeT += dt
	progress := s.rechargeT / s.cfg.RechargeRamp
	if progress >= 1 {
		s.charges = s.cfg.MaxCharges
		s.recharging = false
		return
	}
	ramped := s.rampStart + int(float64(s.cfg.MaxCharges-s.rampStart)*progress)
	if ramped > s.charges {
		s.charges = ramped
	}
}

// record looks up the owned platform record. The arena backing array can
// move as entities are added, so the pointer is never cached.
func (s *SafetySystem) record() *Platform {
	return s.platforms.Get(s.handle)
}

// syncRecord mirrors charge and collidability state onto the platform
// record for the collision detector and renderer.
func (s *SafetySystem) syncRecord() {
	if rec := s.record(); rec != nil {
		rec.Charges = s.charges
		rec.Collidable = s.state == SafetyActive || s.charges > 0
	}
}

// spawnBatch asks the rescue generator for a batch of escape platforms
// keyed off the current level.
func (s *SafetySystem) spawnBatch() {
	minSafeY := s.safetyY() - s.playerH - rescueSafeMargin
	n := s.rescue.SpawnBatch(s.entities, s.score.Level(), s.scroll, minSafeY)
	s.events.RescueSpawned(n)
}

// safetyY returns the platform's top edge.
func (s *SafetySystem) safetyY() float64 {
	if rec := s.record(); rec != nil {
		return rec.Y
	}
	return s.canvasH - s.cfg.BottomMargin - s.cfg.Height
}

// Resize repositions the platform record for a new canvas. Idempotent;
// charges and timers are untouched.
func (s *SafetySystem) Resize(canvasW, canvasH float64) {
	s.canvasW = canvasW
	s.canvasH = canvasH
	if rec := s.record(); rec != nil {
		rec.X = canvasW/2 - s.cfg.Width/2
		rec.Y = canvasH - s.cfg.BottomMargin - s.cfg.Height
	}
}
