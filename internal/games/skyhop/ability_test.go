package skyhop

import (
	"math"
	"testing"

	"github.com/ndmitry/skyhop/internal/config"
)

func TestTimedAbilityCooldownStartsAtExpiry(t *testing.T) {
	a := timedAbility{cooldown: 10}

	if !a.activate(4) {
		t.Fatal("activate should succeed from idle")
	}
	if a.activate(4) {
		t.Error("activate should fail while active")
	}

	// Halfway through the active window no cooldown is running yet.
	a.update(2)
	if !a.active() {
		t.Error("ability should still be active at t=2")
	}
	if a.cooldownLeft != 0 {
		t.Errorf("cooldown must not run concurrently with the active window, got %v", a.cooldownLeft)
	}

	// Expiry flips to cooldown with the full cooldown remaining.
	expired := a.update(2)
	if !expired {
		t.Error("update should report expiry on the frame the window ends")
	}
	if !a.onCooldown() {
		t.Error("ability should be on cooldown after expiry")
	}
	if a.cooldownLeft != 10 {
		t.Errorf("cooldown should start full at expiry, got %v", a.cooldownLeft)
	}
	if a.activate(4) {
		t.Error("activate should fail during cooldown")
	}

	a.update(10)
	if a.onCooldown() || a.active() {
		t.Error("ability should be idle after the cooldown runs out")
	}
	if !a.activate(4) {
		t.Error("activate should succeed again after cooldown")
	}
}

func TestTimedAbilityCancelClearsCooldown(t *testing.T) {
	a := timedAbility{cooldown: 10}
	a.activate(4)
	a.update(5) // expire into cooldown
	a.cancel()

	if !a.activate(4) {
		t.Error("activate should succeed immediately after cancel")
	}
}

func TestBoostComboStacksAndCaps(t *testing.T) {
	b := boostState{cfg: config.DefaultSkyhopConfig().Boost}

	for i := 1; i <= 3; i++ {
		b.activate()
		if b.combo != i {
			t.Fatalf("combo after %d boosts = %d, want %d", i, b.combo, i)
		}
	}
	want := 3 * b.cfg.ComboBonus
	if math.Abs(b.bonus()-want) > 1e-9 {
		t.Errorf("bonus at combo 3 = %v, want %v", b.bonus(), want)
	}

	// Far beyond the cap the bonus saturates.
	for i := 0; i < 50; i++ {
		b.activate()
	}
	if b.bonus() != b.cfg.ComboMaxBonus {
		t.Errorf("bonus should cap at %v, got %v", b.cfg.ComboMaxBonus, b.bonus())
	}
}

func TestBoostComboDecaysAfterTimeout(t *testing.T) {
	b := boostState{cfg: config.DefaultSkyhopConfig().Boost}
	b.activate()

	b.update(b.cfg.ComboTimeout + 0.1)
	if b.combo != 0 {
		t.Errorf("combo should reset after the timeout, got %d", b.combo)
	}
}

func TestBoostDecelerationEasesOut(t *testing.T) {
	cfg := config.DefaultSkyhopConfig().Boost
	b := boostState{cfg: cfg}
	b.activate()

	peak := b.speed()
	if peak != cfg.Speed*(1+cfg.ComboBonus) {
		t.Fatalf("burst speed = %v, want %v", peak, cfg.Speed*(1+cfg.ComboBonus))
	}

	// Run past the burst window into deceleration.
	b.update(cfg.Duration + 0.01)
	if !b.overriding() {
		t.Fatal("boost should still own velocity while decelerating")
	}

	prev := b.speed()
	for i := 0; i < 4; i++ {
		b.update(cfg.DecelDuration / 8)
		s := b.speed()
		if s > prev {
			t.Fatalf("deceleration speed rose from %v to %v", prev, s)
		}
		prev = s
	}

	b.update(cfg.DecelDuration)
	if b.overriding() {
		t.Error("boost should be idle after the deceleration window")
	}
}

func TestBoostReactivationInterruptsDecel(t *testing.T) {
	cfg := config.DefaultSkyhopConfig().Boost
	b := boostState{cfg: cfg}
	b.activate()
	b.update(cfg.Duration + 0.01) // into decel

	b.activate()
	if b.phase != boostActive {
		t.Error("a new boost should interrupt deceleration")
	}
	if b.combo != 2 {
		t.Errorf("combo should stack across the interrupt, got %d", b.combo)
	}
}
