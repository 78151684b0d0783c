package skyhop

import "github.com/ndmitry/skyhop/internal/config"

// lcgModulus and friends are the classic 9301/49297/233280 linear
// congruential parameters. Given the same seed and call sequence the
// placement stream is fully reproducible.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// LCG is a seeded linear congruential generator producing floats in [0, 1).
type LCG struct {
	seed int64
}

// NewLCG creates a generator, normalizing the seed into the modulus range.
func NewLCG(seed int64) *LCG {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &LCG{seed: s}
}

// Next advances the stream and returns a value in [0, 1).
func (r *LCG) Next() float64 {
	r.seed = (r.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.seed) / lcgModulus
}

// Range returns a value in [min, max).
func (r *LCG) Range(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// IntN returns an integer in [0, n).
func (r *LCG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(r.Next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Chance draws from the stream and reports whether it fell under p.
func (r *LCG) Chance(p float64) bool {
	return r.Next() < p
}

// Generator produces platform, obstacle and collectible placement records
// as the world scrolls. Spacing bounds scale with a capped difficulty
// factor; obstacle and collectible positions are offset relative to the
// most recently generated platform.
type Generator struct {
	cfg  config.LevelGenConfig
	diff *config.DifficultyManager
	rng  *LCG

	canvasW float64
	canvasH float64

	nextSpawnX float64
	factor     float64
	last       Platform // most recently generated platform
	hasLast    bool
}

// NewGenerator creates a generator for the given canvas and seed.
func NewGenerator(cfg config.LevelGenConfig, diff *config.DifficultyManager, seed int64, canvasW, canvasH float64) *Generator {
	g := &Generator{
		cfg:     cfg,
		diff:    diff,
		rng:     NewLCG(seed),
		canvasW: canvasW,
		canvasH: canvasH,
		factor:  1,
	}
	g.nextSpawnX = canvasW * 0.5
	return g
}

// SetDifficulty rescales spacing for the given 1-based level. The factor
// is linear in level and capped.
func (g *Generator) SetDifficulty(level int) {
	g.factor = g.diff.Factor(level)
}

// Resize updates cached canvas bounds. Idempotent.
func (g *Generator) Resize(canvasW, canvasH float64) {
	g.canvasW = canvasW
	g.canvasH = canvasH
}

// SeedInitial fills the visible area with starting platforms, including a
// wide one directly under the player spawn.
func (g *Generator) SeedInitial(world *World, playerX float64, scrollVX float64) {
	start := Platform{
		X:          playerX - 60,
		Y:          g.canvasH * g.cfg.YBandCenter,
		W:          g.cfg.PlatformMaxWidth * 1.5,
		H:          g.cfg.PlatformHeight,
		VX:         scrollVX,
		Type:       PlatformNormal,
		Collidable: true,
	}
	world.AddPlatform(start)
	g.last = start
	g.hasLast = true
	g.nextSpawnX = start.X + start.W + g.gap()

	for g.nextSpawnX <= g.canvasW {
		g.emit(world, scrollVX)
	}
}

// Advance shifts the spawn cursor by the distance scrolled this frame and
// emits new entities until the area just past the right edge is filled.
func (g *Generator) Advance(scrolled float64, world *World, scrollVX float64) {
	g.nextSpawnX -= scrolled
	for g.nextSpawnX <= g.canvasW+g.cfg.MaxGap {
		g.emit(world, scrollVX)
	}
}

// gap draws the next horizontal gap, scaled by the difficulty factor.
func (g *Generator) gap() float64 {
	return g.rng.Range(g.cfg.MinGap, g.cfg.MaxGap) * g.factor
}

// emit generates one platform and, gated on threshold draws from the same
// stream, an obstacle and/or collectible placed relative to it.
func (g *Generator) emit(world *World, scrollVX float64) {
	width := g.rng.Range(g.cfg.PlatformMinWidth, g.cfg.PlatformMaxWidth)

	// Platform Y is sampled within a band around 70% of canvas height.
	band := g.cfg.YBandSpread * g.canvasH
	y := g.canvasH*g.cfg.YBandCenter + g.rng.Range(-band, band)

	plat := Platform{
		X:          g.nextSpawnX,
		Y:          y,
		W:          width,
		H:          g.cfg.PlatformHeight,
		VX:         scrollVX,
		Type:       g.platformType(),
		Collidable: true,
	}
	world.AddPlatform(plat)
	g.last = plat
	g.hasLast = true

	if g.shouldGenerateObstacle() {
		size := g.cfg.ObstacleSize
		world.AddObstacle(Obstacle{
			X:  plat.X + g.rng.Range(0, plat.W-size),
			Y:  plat.Y - size,
			W:  size,
			H:  size,
			VX: scrollVX,
		})
	}

	if g.shouldGenerateCollectible() {
		c := Collectible{
			X:      plat.X + g.rng.Range(plat.W*0.2, plat.W*0.8),
			Y:      plat.Y - g.rng.Range(30, 70),
			Radius: g.cfg.CollectibleRadius,
			VX:     scrollVX,
			Kind:   CollectibleCoin,
			Value:  10,
		}
		if g.rng.Chance(g.cfg.PowerupChance / g.cfg.CollectibleChance) {
			c.Kind = CollectiblePowerup
			c.Power = g.powerupType()
		}
		world.AddCollectible(c)
	}

	g.nextSpawnX += width + g.gap()
}

// platformType draws the type for the next platform.
func (g *Generator) platformType() PlatformType {
	v := g.rng.Next()
	switch {
	case v < g.cfg.IcyChance:
		return PlatformIcy
	case v < g.cfg.IcyChance+g.cfg.CrumblingChance:
		return PlatformCrumbling
	case v < g.cfg.IcyChance+g.cfg.CrumblingChance+g.cfg.SpringChance:
		return PlatformSpring
	default:
		return PlatformNormal
	}
}

// powerupType draws which powerup a powerup collectible carries.
func (g *Generator) powerupType() PowerupType {
	switch g.rng.IntN(5) {
	case 0:
		return PowerupImmortality
	case 1:
		return PowerupFlight
	case 2:
		return PowerupSuperJump
	case 3:
		return PowerupShield
	default:
		return PowerupHeal
	}
}

// shouldGenerateObstacle is a threshold draw from the shared stream.
func (g *Generator) shouldGenerateObstacle() bool {
	return g.rng.Chance(g.cfg.ObstacleChance)
}

// shouldGenerateCollectible is a threshold draw from the shared stream.
func (g *Generator) shouldGenerateCollectible() bool {
	return g.rng.Chance(g.cfg.CollectibleChance)
}
