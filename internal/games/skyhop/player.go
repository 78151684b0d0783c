package skyhop

import (
	"math"

	"github.com/ndmitry/skyhop/internal/config"
	"github.com/ndmitry/skyhop/internal/core"
)

// TrailParticle is a short-lived visual emitted while turbo is active.
// Purely for the rendering collaborator; carries no physics weight.
type TrailParticle struct {
	X, Y float64
	Life float64
}

// Player is the singleton simulated entity of a session. X is visually
// fixed (only the world scrolls); VX is a camera-speed reference used to
// scroll the world faster, not a true horizontal displacement.
type Player struct {
	cfg     config.SkyhopConfig
	canvasW float64
	canvasH float64

	X, Y   float64
	VX, VY float64
	Width  float64
	Height float64

	Health       int
	Alive        bool
	Invulnerable bool
	invulnLeft   float64
	flashLeft    float64

	Grounded        bool
	wasGrounded     bool
	JustLanded      bool
	CurrentPlatform Handle
	sliding         bool

	// Transient powerup flags. Independently activatable, not mutually
	// exclusive. Durations are owned by the caller.
	Immortal   bool
	SuperJump  bool
	shieldHeld bool // one-shot shield powerup, consumed on the next hit
	shieldBuff bool // persistent shield buff

	turbo     timedAbility
	turboMult float64
	flight    timedAbility
	instant   timedAbility // instant flight: bonus-triggered, no cooldown

	flightTarget float64
	hoverPhase   float64

	boost boostState

	// Derived animation state: recomputed every frame from the physical
	// state above, never read back into physics.
	Expression    string
	SquashStretch float64
	Rotation      float64
	ShakeAmp      float64
	bobPhase      float64
	Trail         []TrailParticle
	trailTimer    float64
}

// NewPlayer constructs the player at a fixed world position.
func NewPlayer(cfg config.SkyhopConfig, canvasW, canvasH float64) *Player {
	p := &Player{
		cfg:           cfg,
		canvasW:       canvasW,
		canvasH:       canvasH,
		X:             cfg.Player.X,
		Y:             canvasH * 0.4,
		Width:         cfg.Player.Width,
		Height:        cfg.Player.Height,
		Health:        cfg.Player.MaxHealth,
		Alive:         true,
		SquashStretch: 1,
		Expression:    "happy",
	}
	p.turbo.cooldown = cfg.Turbo.Cooldown
	p.flight.cooldown = cfg.Flight.Cooldown
	p.instant.cooldown = 0
	p.boost.cfg = cfg.Boost
	return p
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Bottom returns the player's bottom edge.
func (p *Player) Bottom() float64 {
	return p.Y + p.Height
}

// Radius returns the pickup-test radius.
func (p *Player) Radius() float64 {
	return math.Max(p.Width, p.Height) / 2
}

// Flying reports whether flight or instant flight is active.
func (p *Player) Flying() bool {
	return p.flight.active() || p.instant.active()
}

// TurboActive reports whether turbo is active.
func (p *Player) TurboActive() bool {
	return p.turbo.active()
}

// BoostCombo returns the current combo count.
func (p *Player) BoostCombo() int {
	return p.boost.combo
}

// BoostComboSpeedBonus returns the combo speed-bonus multiplier.
func (p *Player) BoostComboSpeedBonus() float64 {
	return p.boost.bonus()
}

// Update advances the player by one bounded frame. No-ops entirely when
// dead; the surrounding game layer observes Alive and reacts.
func (p *Player) Update(dt float64) {
	if !p.Alive {
		return
	}

	// 1. Landing edge detection. A pure output for animation and sound.
	p.JustLanded = p.Grounded && !p.wasGrounded
	if p.JustLanded {
		p.ShakeAmp = 6
		p.SquashStretch = 0.6
	}
	p.wasGrounded = p.Grounded

	// 2. Damage-related timers.
	if p.invulnLeft > 0 {
		p.invulnLeft -= dt
		if p.invulnLeft <= 0 {
			p.invulnLeft = 0
			p.Invulnerable = false
		}
	}
	if p.flashLeft > 0 {
		p.flashLeft -= dt
		if p.flashLeft < 0 {
			p.flashLeft = 0
		}
	}

	// 3. Turbo. Cooldown starts at the moment of deactivation.
	p.turbo.update(dt)
	if p.turbo.active() {
		p.trailTimer -= dt
		if p.trailTimer <= 0 {
			p.trailTimer = p.cfg.Turbo.TrailInterval
			p.Trail = append(p.Trail, TrailParticle{
				X:    p.X,
				Y:    p.Y + p.Height/2,
				Life: p.cfg.Turbo.TrailLife,
			})
		}
	}
	p.updateTrail(dt)

	// 4. Flight and instant flight share the same vertical control.
	p.flight.update(dt)
	p.instant.update(dt)
	if p.Flying() {
		p.hoverPhase += p.cfg.Flight.HoverRate * dt
		d := p.flightTarget - p.Y
		if math.Abs(d) > 5 {
			speed := math.Min(math.Abs(d)*p.cfg.Flight.ApproachGain, p.cfg.Flight.MaxApproachSpeed)
			p.VY = core.Sign(d) * speed
		} else {
			p.VY = math.Cos(p.hoverPhase) * p.cfg.Flight.HoverAmplitude * 4
		}
	}

	// 5. Boost burst, deceleration and combo decay.
	p.boost.update(dt)

	// 6. Gravity and vertical integration.
	g := p.cfg.Physics.Gravity
	if p.Flying() {
		g *= p.cfg.Physics.FlightGravityFactor
	}
	p.VY += g * dt
	if p.VY > p.cfg.Physics.MaxFallSpeed {
		p.VY = p.cfg.Physics.MaxFallSpeed
	}
	p.Y += p.VY * dt

	// 7+8. Horizontal reference speed. Boost, boost-deceleration and
	// turbo override friction; icy sliding retains more speed than the
	// normal decay.
	switch {
	case p.boost.overriding():
		p.VX = p.boost.speed()
		if p.turbo.active() {
			p.VX += p.turboBonus()
		}
	case p.turbo.active():
		p.VX = p.turboBonus()
	case p.sliding && p.Grounded:
		p.VX *= p.cfg.Physics.IcyFriction
	default:
		p.VX *= p.cfg.Physics.Friction
	}
	if !p.Grounded && p.sliding {
		// Left the icy platform mid-slide: slide state ends at once.
		p.sliding = false
	}

	// 9. Death check.
	if p.Y > p.canvasH && !p.Immortal {
		p.Alive = false
		p.turbo.cancel()
		p.flight.cancel()
		p.instant.cancel()
		return
	}

	p.updateAnimation(dt)
}

// turboBonus is the extra camera speed contributed by an active turbo.
func (p *Player) turboBonus() float64 {
	return p.cfg.Physics.ScrollSpeed * (p.turboMult - 1)
}

// updateTrail ages trail particles and drops expired ones.
func (p *Player) updateTrail(dt float64) {
	alive := p.Trail[:0]
	for _, t := range p.Trail {
		t.Life -= dt
		t.X -= 120 * dt // drift behind the player
		if t.Life > 0 {
			alive = append(alive, t)
		}
	}
	p.Trail = alive
}

// updateAnimation recomputes the derived visual state.
func (p *Player) updateAnimation(dt float64) {
	// Squash/stretch relaxes toward neutral.
	p.SquashStretch += (1 - p.SquashStretch) * math.Min(10*dt, 1)

	// Camera shake decays.
	p.ShakeAmp *= math.Pow(0.05, dt)
	if p.ShakeAmp < 0.1 {
		p.ShakeAmp = 0
	}

	// Slight tilt while airborne, proportional to vertical speed.
	if p.Grounded {
		p.Rotation = 0
		p.bobPhase += 3 * dt
	} else {
		p.Rotation = core.ClampF(p.VY/1000, -0.4, 0.4)
	}

	switch {
	case p.flashLeft > 0:
		p.Expression = "dizzy"
	case p.turbo.active() || p.boost.overriding():
		p.Expression = "determined"
	case p.Flying():
		p.Expression = "soaring"
	case !p.Grounded && p.VY > p.cfg.Physics.MaxFallSpeed*0.8:
		p.Expression = "scared"
	case !p.Grounded:
		p.Expression = "worried"
	case p.Health == 1:
		p.Expression = "tense"
	default:
		p.Expression = "happy"
	}
}

// IdleBob returns the grounded idle bobbing offset.
func (p *Player) IdleBob() float64 {
	if !p.Grounded {
		return 0
	}
	return math.Sin(p.bobPhase) * 1.5
}

// Jump applies a jump impulse. Succeeds only when grounded, or while
// flight/instant flight is active (unlimited jumping is the flight
// reward). Returns false otherwise.
func (p *Player) Jump() bool {
	if !p.Alive {
		return false
	}
	if !p.Grounded && !p.Flying() {
		return false
	}
	force := p.cfg.Player.MaxJumpForce
	if p.SuperJump {
		force = p.cfg.Player.SuperJumpForce
	}
	p.VY = force
	p.Grounded = false
	p.sliding = false
	p.CurrentPlatform = NoHandle
	p.SquashStretch = 1.3
	return true
}

// ReleaseJump scales the current upward velocity by a factor depending on
// how long the jump key was held, implementing variable jump height from
// a single impulse plus a later release signal. Only meaningful while
// still moving upward; otherwise a no-op.
func (p *Player) ReleaseJump(holdMS float64) {
	if !p.Alive || p.VY >= 0 {
		return
	}
	switch {
	case holdMS < 300:
		p.VY *= 0.35
	case holdMS < 600:
		p.VY *= 0.65
	}
	// >= 600ms keeps full power.
}

// ActivateTurbo starts turbo at the given level. The speed multiplier
// grows with level, capped. Fails while active or on cooldown. The player
// cannot take damage while turbo is active.
func (p *Player) ActivateTurbo(level int) bool {
	if !p.Alive {
		return false
	}
	if !p.turbo.activate(p.cfg.Turbo.Duration) {
		return false
	}
	mult := p.cfg.Turbo.BaseMult + float64(level-1)*p.cfg.Turbo.PerLevelMult
	if mult > p.cfg.Turbo.MaxMult {
		mult = p.cfg.Turbo.MaxMult
	}
	p.turboMult = mult
	p.trailTimer = 0
	return true
}

// ActivateFlight starts button-triggered flight. Fails while active or on
// cooldown.
func (p *Player) ActivateFlight() bool {
	if !p.Alive {
		return false
	}
	if !p.flight.activate(p.cfg.Flight.Duration) {
		return false
	}
	p.flightTarget = p.clampFlightTarget(p.Y)
	p.hoverPhase = 0
	return true
}

// FlightMoveUp raises the flight target. No-op when not flying.
func (p *Player) FlightMoveUp() {
	if !p.Flying() {
		return
	}
	p.flightTarget = p.clampFlightTarget(p.flightTarget - p.cfg.Flight.Step)
}

// FlightMoveDown lowers the flight target. No-op when not flying.
func (p *Player) FlightMoveDown() {
	if !p.Flying() {
		return
	}
	p.flightTarget = p.clampFlightTarget(p.flightTarget + p.cfg.Flight.Step)
}

func (p *Player) clampFlightTarget(y float64) float64 {
	return core.ClampF(y, p.cfg.Flight.Margin, p.canvasH-p.cfg.Flight.Margin)
}

// ApplyBoost starts a boost burst, stacking the combo. A new boost
// interrupts an in-progress deceleration.
func (p *Player) ApplyBoost() {
	if !p.Alive {
		return
	}
	p.boost.activate()
}

// TakeDamage applies damage. Returns false when no damage was applied:
// a held shield powerup absorbs the hit (consumed, brief invulnerability
// granted instead), a persistent shield buff blocks it, and so do an open
// invulnerability window, immortality and active turbo.
func (p *Player) TakeDamage(amount int) bool {
	if !p.Alive {
		return false
	}
	if p.shieldHeld {
		p.shieldHeld = false
		p.Invulnerable = true
		p.invulnLeft = p.cfg.Player.ShieldInvuln
		return false
	}
	if p.shieldBuff || p.Invulnerable || p.Immortal || p.turbo.active() {
		return false
	}

	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invulnerable = true
	p.invulnLeft = p.cfg.Player.InvulnDuration
	p.flashLeft = p.cfg.Player.DamageFlash
	p.ShakeAmp = 10

	if p.Health == 0 {
		p.Alive = false
		p.turbo.cancel()
		p.flight.cancel()
		p.instant.cancel()
	}
	return true
}

// Heal raises health up to the maximum and reports whether anything
// changed.
func (p *Player) Heal(amount int) bool {
	if !p.Alive || p.Health >= p.cfg.Player.MaxHealth {
		return false
	}
	p.Health += amount
	if p.Health > p.cfg.Player.MaxHealth {
		p.Health = p.cfg.Player.MaxHealth
	}
	return true
}

// ActivatePowerup flips a transient buff on. Flight powerups start the
// instant-flight window, which shares flight physics but has no cooldown.
func (p *Player) ActivatePowerup(t PowerupType) {
	if !p.Alive {
		return
	}
	switch t {
	case PowerupImmortality:
		p.Immortal = true
	case PowerupSuperJump:
		p.SuperJump = true
	case PowerupShield:
		p.shieldHeld = true
	case PowerupFlight:
		if p.instant.activate(p.cfg.Flight.InstantDuration) {
			p.flightTarget = p.clampFlightTarget(p.Y)
			p.hoverPhase = 0
		}
	case PowerupHeal:
		p.Heal(1)
	}
}

// DeactivatePowerup flips a transient buff off.
func (p *Player) DeactivatePowerup(t PowerupType) {
	switch t {
	case PowerupImmortality:
		p.Immortal = false
	case PowerupSuperJump:
		p.SuperJump = false
	case PowerupShield:
		p.shieldHeld = false
	case PowerupFlight:
		p.instant.cancel()
	}
}

// SetShieldBuff toggles the persistent shield buff.
func (p *Player) SetShieldBuff(on bool) {
	p.shieldBuff = on
}

// BeginSlide marks the player as sliding; called by the collision
// detector when landing on an icy platform.
func (p *Player) BeginSlide() {
	p.sliding = true
}

// EndSlide clears sliding; called by the collision detector when contact
// with the icy platform ends.
func (p *Player) EndSlide() {
	p.sliding = false
}

// Reset re-spawns the player at a new position after a level transition.
// Health is preserved (damage persists across levels); every timer, flag
// and ability state is cleared.
func (p *Player) Reset(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.Grounded = false
	p.wasGrounded = false
	p.JustLanded = false
	p.CurrentPlatform = NoHandle
	p.sliding = false

	p.Invulnerable = false
	p.invulnLeft = 0
	p.flashLeft = 0

	p.Immortal = false
	p.SuperJump = false
	p.shieldHeld = false
	p.shieldBuff = false

	p.turbo.cancel()
	p.flight.cancel()
	p.instant.cancel()
	p.boost.reset()

	p.Expression = "happy"
	p.SquashStretch = 1
	p.Rotation = 0
	p.ShakeAmp = 0
	p.Trail = p.Trail[:0]
	p.trailTimer = 0

	p.Alive = p.Health > 0
}

// Resize recomputes layout-dependent bounds. Idempotent; never touches
// timers.
func (p *Player) Resize(canvasW, canvasH float64) {
	p.canvasW = canvasW
	p.canvasH = canvasH
	p.flightTarget = p.clampFlightTarget(p.flightTarget)
}
