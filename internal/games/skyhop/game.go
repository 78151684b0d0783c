// Package skyhop implements the skyhop side-scrolling platformer: a
// fixed-x player over a procedurally generated scrolling world, with
// timed abilities and a charge-limited safety platform.
package skyhop

import (
	"time"

	"github.com/ndmitry/skyhop/internal/config"
	"github.com/ndmitry/skyhop/internal/core"
	"github.com/ndmitry/skyhop/internal/registry"
)

func init() {
	registry.Register("skyhop", func() registry.Game {
		return New()
	})
}

// Timed powerup windows. Heal is instant; the shield is one-shot but
// still expires if it was never consumed.
const (
	immortalityDuration = 5.0
	superJumpDuration   = 6.0
	shieldDuration      = 8.0
)

const noticeDuration = 2.0

// Game wires the simulation components together and drives them through
// one bounded step per frame. It is also the event sink for collision
// and safety cues, which it folds into score and HUD state.
type Game struct {
	cfg     config.SkyhopConfig
	runtime core.RuntimeConfig
	diff    *config.DifficultyManager

	canvasW float64
	canvasH float64

	player   *Player
	world    *World
	detector *Detector
	gen      *Generator
	rescue   *RescueGenerator
	safety   *SafetySystem

	distance    float64
	pickupScore int
	level       int
	gameOver    bool
	paused      bool

	// Remaining windows for timed powerups, deactivated on expiry.
	powerups map[PowerupType]float64

	notice     string
	noticeLeft float64
}

// Package-level settings applied at creation time, set by the CLI before
// the registry factory runs.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next created game.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset sets the difficulty preset for the next created game.
func SetDifficultyPreset(preset string) { difficultyPreset = preset }

// New creates a game with the loaded (or embedded default) tuning config.
func New() *Game {
	cfg, err := config.LoadSkyhop(configPath)
	if err != nil {
		cfg = config.DefaultSkyhopConfig()
	}
	if difficultyPreset != "" {
		config.ApplySkyhopPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit tuning config.
func NewWithConfig(cfg config.SkyhopConfig) *Game {
	return &Game{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "skyhop" }

// Title returns the display name.
func (g *Game) Title() string { return "Sky Hop" }

// Reset initializes or restarts the session. Restart rebuilds the entire
// world; only the tuning config survives.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	g.runtime = rt
	g.canvasW = rt.CanvasW()
	g.canvasH = rt.CanvasH()

	g.level = 1
	g.distance = 0
	g.pickupScore = 0
	g.gameOver = false
	g.paused = false
	g.powerups = make(map[PowerupType]float64)
	g.notice = ""
	g.noticeLeft = 0

	g.player = NewPlayer(g.cfg, g.canvasW, g.canvasH)
	g.world = NewWorld(g.cfg.Level)
	g.detector = NewDetector(g.cfg.Physics, g.player, g)
	g.gen = NewGenerator(g.cfg.Level, g.diff, rt.Seed, g.canvasW, g.canvasH)
	g.rescue = NewRescueGenerator(g.cfg.Level, rt.Seed+1, g.canvasW, g.canvasH)
	g.safety = NewSafetySystem(g.cfg.Safety, g.world, g, g, g.rescue, g.canvasW, g.canvasH, g.cfg.Player.Height)

	scroll := g.scrollSpeed()
	g.safety.SetScroll(-scroll)
	g.gen.SeedInitial(g.world, g.player.X, -scroll)
}

// Level returns the current 1-based level.
func (g *Game) Level() int { return g.level }

// scrollSpeed is the base world scroll speed at the current level.
func (g *Game) scrollSpeed() float64 {
	return g.cfg.Physics.ScrollSpeed * g.diff.ScrollMult(g.level)
}

// Step advances the simulation by one frame.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && (g.gameOver || g.paused) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := core.BoundDelta(float64(elapsed) / float64(time.Millisecond))

	g.applyInput(in)
	g.player.Update(dt)

	scroll := g.scrollSpeed()
	bonus := g.player.VX
	scrolled := (scroll + bonus) * dt

	g.world.Update(dt, bonus)
	g.gen.Advance(scrolled, g.world, -scroll)

	g.detector.ResolvePlatforms(g.world)
	g.detector.ResolveObstacles(g.world)
	g.detector.ResolveCollectibles(g.world)

	onSafety := g.player.Grounded && g.player.CurrentPlatform == g.safety.Handle()
	g.safety.SetScroll(-scroll)
	g.safety.Update(dt, onSafety)

	g.tickPowerups(dt)

	if g.noticeLeft > 0 {
		g.noticeLeft -= dt
		if g.noticeLeft <= 0 {
			g.notice = ""
		}
	}

	g.distance += scrolled
	g.advanceLevel()

	if !g.player.Alive {
		g.gameOver = true
	}
	return core.StepResult{State: g.State()}
}

// applyInput translates decoded actions into player commands.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	if in.Has(core.ActionJumpRelease) {
		g.player.ReleaseJump(in.JumpHoldMS)
	}
	if in.Has(core.ActionBoost) {
		g.player.ApplyBoost()
	}
	if in.Has(core.ActionTurbo) {
		g.player.ActivateTurbo(g.level)
	}
	if in.Has(core.ActionFlight) {
		g.player.ActivateFlight()
	}
	if in.Has(core.ActionUp) {
		g.player.FlightMoveUp()
	}
	if in.Has(core.ActionDown) {
		g.player.FlightMoveDown()
	}
}

// tickPowerups counts down timed powerup windows and deactivates them on
// expiry.
func (g *Game) tickPowerups(dt float64) {
	for t, left := range g.powerups {
		left -= dt
		if left <= 0 {
			delete(g.powerups, t)
			g.player.DeactivatePowerup(t)
			continue
		}
		g.powerups[t] = left
	}
}

// advanceLevel promotes the level when enough distance was covered. On a
// transition the spacing difficulty rescales and the player re-spawns at
// the start position with health carried over.
func (g *Game) advanceLevel() {
	next := 1 + int(g.distance/g.cfg.Level.LevelLength)
	if next <= g.level {
		return
	}
	g.level = next
	g.gen.SetDifficulty(g.level)
	g.player.Reset(g.cfg.Player.X, g.canvasH*0.4)
	g.LevelUp(g.level)
}

// Resize adapts the simulation to a new screen size without resetting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.canvasW = g.runtime.CanvasW()
	g.canvasH = g.runtime.CanvasH()
	if g.player == nil {
		// Resize before the first Reset only records the dimensions.
		return
	}

	g.player.Resize(g.canvasW, g.canvasH)
	g.gen.Resize(g.canvasW, g.canvasH)
	g.rescue.Resize(g.canvasW, g.canvasH)
	g.safety.Resize(g.canvasW, g.canvasH)
}

// State reports score and status to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.distance/10) + g.pickupScore,
		Level:    g.level,
		Health:   g.player.Health,
		Distance: int(g.distance),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Events implementation. The detector and safety system report cues here;
// the game folds them into score and HUD state.

func (g *Game) Landed(t PlatformType) {}

func (g *Game) SpringBounce() {
	g.setNotice("BOING!")
}

func (g *Game) DamageTaken() {
	g.setNotice("OUCH!")
}

func (g *Game) CoinPicked(value int) {
	g.pickupScore += value
}

func (g *Game) PowerupPicked(t PowerupType) {
	g.player.ActivatePowerup(t)
	switch t {
	case PowerupImmortality:
		g.powerups[t] = immortalityDuration
	case PowerupSuperJump:
		g.powerups[t] = superJumpDuration
	case PowerupShield:
		g.powerups[t] = shieldDuration
	}
	g.pickupScore += 25
	g.setNotice(t.String() + "!")
}

func (g *Game) SafetyTick() {
	g.setNotice("platform dissolving...")
}

func (g *Game) SafetyDissolve() {
	g.setNotice("SAFETY GONE!")
}

func (g *Game) RescueSpawned(count int) {}

func (g *Game) LevelUp(level int) {
	g.pickupScore += level * 50
	g.setNotice("LEVEL UP!")
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeLeft = noticeDuration
}
