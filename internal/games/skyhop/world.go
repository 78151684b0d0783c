package skyhop

import "github.com/ndmitry/skyhop/internal/config"

// cullMargin is how far past the left edge an entity may drift before it
// is freed.
const cullMargin = 60.0

// EntityCollection is the one surface through which other components push
// entities into the world. The safety system uses it to emit rescue
// platforms; nothing else mutates state it does not own.
type EntityCollection interface {
	AddPlatform(p Platform) Handle
}

// ScoreSource exposes the current level to components that key generation
// off it. Read-only.
type ScoreSource interface {
	Level() int
}

// World owns the entity arenas and their per-frame upkeep: scrolling,
// crumble countdowns, spring relaxation and off-screen culling.
type World struct {
	Platforms    Arena[Platform]
	Obstacles    Arena[Obstacle]
	Collectibles Arena[Collectible]

	crumbleDelay float64
}

// NewWorld creates an empty world.
func NewWorld(cfg config.LevelGenConfig) *World {
	return &World{crumbleDelay: cfg.CrumbleDelay}
}

// AddPlatform inserts a platform record.
func (w *World) AddPlatform(p Platform) Handle {
	if p.Type == PlatformCrumbling {
		p.CrumbleLeft = w.crumbleDelay
	}
	return w.Platforms.Add(p)
}

// AddObstacle inserts an obstacle record.
func (w *World) AddObstacle(o Obstacle) Handle {
	return w.Obstacles.Add(o)
}

// AddCollectible inserts a collectible record.
func (w *World) AddCollectible(c Collectible) Handle {
	return w.Collectibles.Add(c)
}

// Update scrolls every entity by its own velocity plus the camera bonus,
// ticks type-specific decay, and culls entities that left the screen.
// bonus is the player's extra forward speed; it shifts the world further
// left, which is how boost and turbo read as motion on a fixed-x player.
func (w *World) Update(dt, bonus float64) {
	w.Platforms.Each(func(h Handle, p *Platform) {
		if p.Type != PlatformSafety {
			p.X += (p.VX - bonus) * dt
		}

		// Crumble decay is owned here, not by the collision detector:
		// the detector only flips the flag on first contact.
		if p.Crumbling {
			p.CrumbleLeft -= dt
			if p.CrumbleLeft <= 0 {
				w.Platforms.Remove(h)
				return
			}
		}

		if p.SpringCompression > 0 {
			p.SpringCompression -= dt * 4
			if p.SpringCompression < 0 {
				p.SpringCompression = 0
			}
		}

		if p.Type != PlatformSafety && p.X+p.W < -cullMargin {
			w.Platforms.Remove(h)
		}
	})

	w.Obstacles.Each(func(h Handle, o *Obstacle) {
		o.X += (o.VX - bonus) * dt
		if o.X+o.W < -cullMargin {
			w.Obstacles.Remove(h)
		}
	})

	w.Collectibles.Each(func(h Handle, c *Collectible) {
		c.X += (c.VX - bonus) * dt
		if c.X+c.Radius < -cullMargin {
			w.Collectibles.Remove(h)
		}
	})
}
