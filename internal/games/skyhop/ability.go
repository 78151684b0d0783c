package skyhop

import (
	"math"

	"github.com/ndmitry/skyhop/internal/config"
)

// PowerupType identifies pickups that flip transient player buffs.
type PowerupType uint8

const (
	PowerupImmortality PowerupType = iota
	PowerupFlight
	PowerupSuperJump
	PowerupShield
	PowerupHeal
)

// String returns the name of the powerup type.
func (t PowerupType) String() string {
	switch t {
	case PowerupImmortality:
		return "immortality"
	case PowerupFlight:
		return "flight"
	case PowerupSuperJump:
		return "superjump"
	case PowerupShield:
		return "shield"
	case PowerupHeal:
		return "heal"
	default:
		return "?"
	}
}

type abilityPhase uint8

const (
	abilityIdle abilityPhase = iota
	abilityActive
	abilityCooldown
)

// timedAbility is the shared duration-then-cooldown state machine behind
// turbo, flight and instant flight. The cooldown timer is exactly zero
// until the active window expires; it starts counting only at the moment
// of deactivation, never concurrently with the active window.
type timedAbility struct {
	phase        abilityPhase
	remaining    float64
	duration     float64
	cooldown     float64
	cooldownLeft float64
}

// activate starts the active window. Fails while already active or on
// cooldown.
func (a *timedAbility) activate(duration float64) bool {
	if a.phase != abilityIdle {
		return false
	}
	a.phase = abilityActive
	a.duration = duration
	a.remaining = duration
	return true
}

// update ticks the machine and reports whether the active window expired
// on this frame.
func (a *timedAbility) update(dt float64) bool {
	switch a.phase {
	case abilityActive:
		a.remaining -= dt
		if a.remaining <= 0 {
			a.remaining = 0
			if a.cooldown > 0 {
				a.phase = abilityCooldown
				a.cooldownLeft = a.cooldown
			} else {
				a.phase = abilityIdle
			}
			return true
		}
	case abilityCooldown:
		a.cooldownLeft -= dt
		if a.cooldownLeft <= 0 {
			a.cooldownLeft = 0
			a.phase = abilityIdle
		}
	}
	return false
}

// active reports whether the active window is running.
func (a *timedAbility) active() bool {
	return a.phase == abilityActive
}

// onCooldown reports whether the cooldown is running.
func (a *timedAbility) onCooldown() bool {
	return a.phase == abilityCooldown
}

// cancel force-clears the machine, including any running cooldown.
func (a *timedAbility) cancel() {
	a.phase = abilityIdle
	a.remaining = 0
	a.cooldownLeft = 0
}

type boostPhase uint8

const (
	boostIdle boostPhase = iota
	boostActive
	boostDecel
)

// boostState implements the boost burst with its rolling combo counter
// and the decelerating sub-state that eases velocity back to zero instead
// of cutting it abruptly.
type boostState struct {
	cfg config.BoostConfig

	phase     boostPhase
	remaining float64
	decelT    float64
	peakSpeed float64

	combo     int
	comboLeft float64
}

// activate starts (or restarts) a boost burst. Always succeeds: a new
// boost while already boosting stacks the combo, and a new boost
// interrupts an in-progress deceleration.
func (b *boostState) activate() {
	b.combo++
	b.comboLeft = b.cfg.ComboTimeout
	b.phase = boostActive
	b.remaining = b.cfg.Duration
}

// bonus returns the combo speed-bonus multiplier, capped.
func (b *boostState) bonus() float64 {
	bonus := float64(b.combo) * b.cfg.ComboBonus
	if bonus > b.cfg.ComboMaxBonus {
		bonus = b.cfg.ComboMaxBonus
	}
	return bonus
}

// overriding reports whether boost currently owns the horizontal velocity
// (either bursting or easing down), suppressing normal friction.
func (b *boostState) overriding() bool {
	return b.phase != boostIdle
}

// speed returns the current horizontal speed contribution.
func (b *boostState) speed() float64 {
	switch b.phase {
	case boostActive:
		return b.cfg.Speed * (1 + b.bonus())
	case boostDecel:
		t := b.decelT / b.cfg.DecelDuration
		// Exponential ease-out: velocity drops fast, then settles.
		return b.peakSpeed * (1 - easeOutExpo(t))
	default:
		return 0
	}
}

// update ticks the burst, deceleration and combo timers.
func (b *boostState) update(dt float64) {
	switch b.phase {
	case boostActive:
		b.remaining -= dt
		if b.remaining <= 0 {
			b.peakSpeed = b.cfg.Speed * (1 + b.bonus())
			b.phase = boostDecel
			b.decelT = 0
		}
	case boostDecel:
		b.decelT += dt
		if b.decelT >= b.cfg.DecelDuration {
			b.phase = boostIdle
		}
	}

	if b.combo > 0 {
		b.comboLeft -= dt
		if b.comboLeft <= 0 {
			b.combo = 0
			b.comboLeft = 0
		}
	}
}

// reset clears all boost state.
func (b *boostState) reset() {
	b.phase = boostIdle
	b.remaining = 0
	b.decelT = 0
	b.peakSpeed = 0
	b.combo = 0
	b.comboLeft = 0
}

// easeOutExpo is the standard 1 - 2^(-10t) easing, clamped to [0, 1].
func easeOutExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}
