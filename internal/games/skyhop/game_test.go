package skyhop

import (
	"testing"
	"time"

	"github.com/ndmitry/skyhop/internal/config"
	"github.com/ndmitry/skyhop/internal/core"
)

const frame = 16 * time.Millisecond

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSkyhopConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and input sequence must produce identical runs.
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%20 == 0 {
			inputs[i].Set(core.ActionJump)
		}
		if i%90 == 0 {
			inputs[i].Set(core.ActionBoost)
		}
	}

	run := func() (core.GameState, float64) {
		g := newTestGame(12345)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in, frame).State
			if st.GameOver {
				break
			}
		}
		return st, g.distance
	}

	st1, dist1 := run()
	st2, dist2 := run()

	if st1 != st2 {
		t.Errorf("determinism failed: states differ. run1=%+v run2=%+v", st1, st2)
	}
	if dist1 != dist2 {
		t.Errorf("determinism failed: distances differ. run1=%v run2=%v", dist1, dist2)
	}
}

func TestGameResetClearsSession(t *testing.T) {
	g := newTestGame(42)

	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		if i%15 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in, frame)
	}

	g.Reset(g.runtime)

	st := g.State()
	if st.Score != 0 {
		t.Errorf("reset should clear score, got %d", st.Score)
	}
	if st.Level != 1 {
		t.Errorf("reset should return to level 1, got %d", st.Level)
	}
	if st.GameOver || st.Paused {
		t.Error("reset should clear game-over and pause flags")
	}
	if g.distance != 0 {
		t.Errorf("reset should clear distance, got %v", g.distance)
	}
	if g.player.Health != g.cfg.Player.MaxHealth {
		t.Errorf("reset should restore full health, got %d", g.player.Health)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := newTestGame(42)
	g.Step(core.NewInputFrame(), frame)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, frame)

	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	dist := g.distance
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
	if g.distance != dist {
		t.Error("paused game must not advance")
	}

	g.Step(pause, frame)
	if g.State().Paused {
		t.Error("pause action should toggle back")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(42)
	g.gameOver = true

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart, frame)

	if g.State().GameOver {
		t.Error("restart should clear game over")
	}
	if g.distance != 0 {
		t.Errorf("restart should reset distance, got %v", g.distance)
	}
}

func TestGameLevelProgression(t *testing.T) {
	g := newTestGame(42)

	g.distance = g.cfg.Level.LevelLength + 1
	g.advanceLevel()

	if g.level != 2 {
		t.Fatalf("level = %d, want 2", g.level)
	}
	if g.player.VX != 0 || g.player.VY != 0 {
		t.Error("level transition should re-spawn the player with zero velocity")
	}
	if g.scrollSpeed() <= g.cfg.Physics.ScrollSpeed {
		t.Errorf("scroll speed should rise at level 2, got %v", g.scrollSpeed())
	}
}

func TestGameDamagePersistsAcrossLevels(t *testing.T) {
	g := newTestGame(42)
	g.player.TakeDamage(1)
	health := g.player.Health

	g.distance = g.cfg.Level.LevelLength + 1
	g.advanceLevel()

	if g.player.Health != health {
		t.Errorf("health across level transition = %d, want %d", g.player.Health, health)
	}
}

func TestGamePowerupExpires(t *testing.T) {
	g := newTestGame(42)
	g.PowerupPicked(PowerupImmortality)

	if !g.player.Immortal {
		t.Fatal("picking the powerup should activate it")
	}

	dt := 0.016
	steps := int(immortalityDuration/dt) + 10
	for i := 0; i < steps; i++ {
		g.tickPowerups(dt)
	}
	if g.player.Immortal {
		t.Error("immortality should expire after its window")
	}
}

func TestGameShieldExpiresUnconsumed(t *testing.T) {
	g := newTestGame(42)
	g.PowerupPicked(PowerupShield)

	dt := 0.016
	steps := int(shieldDuration/dt) + 10
	for i := 0; i < steps; i++ {
		g.tickPowerups(dt)
	}

	health := g.player.Health
	if !g.player.TakeDamage(1) {
		t.Fatal("an expired shield must not absorb a hit")
	}
	if g.player.Health != health-1 {
		t.Errorf("health = %d, want %d", g.player.Health, health-1)
	}
}

func TestGameRenderDoesNotPanic(t *testing.T) {
	g := newTestGame(42)
	dst := core.NewScreen(80, 24)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
	g.Render(dst)

	g.paused = true
	g.Render(dst)
	g.paused = false
	g.gameOver = true
	g.Render(dst)
}

func TestGameResizeKeepsSession(t *testing.T) {
	g := newTestGame(42)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
	dist := g.distance

	g.Resize(120, 40)

	if g.distance != dist {
		t.Error("resize must not reset progress")
	}
	if g.canvasW != 120*core.CellW || g.canvasH != 40*core.CellH {
		t.Errorf("canvas = %vx%v after resize", g.canvasW, g.canvasH)
	}
}
