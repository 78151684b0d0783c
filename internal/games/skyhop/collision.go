package skyhop

import (
	"math"

	"github.com/ndmitry/skyhop/internal/config"
)

// Events is the cue sink for side effects on contact: score bumps, sound
// and particle cues for the (out-of-core) rendering and audio
// collaborators. All methods are fire-and-forget.
type Events interface {
	Landed(platformType PlatformType)
	SpringBounce()
	DamageTaken()
	CoinPicked(value int)
	PowerupPicked(t PowerupType)
	SafetyTick()
	SafetyDissolve()
	RescueSpawned(count int)
	LevelUp(level int)
}

// Detector runs the stateless geometric tests between the player and each
// entity category. It holds no state beyond constructor-injected
// collaborators; all outcomes are written to the player or the entity
// record in place.
type Detector struct {
	cfg    config.PhysicsConfig
	player *Player
	events Events
}

// NewDetector creates a detector for the given player.
func NewDetector(cfg config.PhysicsConfig, player *Player, events Events) *Detector {
	return &Detector{cfg: cfg, player: player, events: events}
}

// ResolvePlatforms tests the player against every platform and resolves
// landing, spring bounce, crumble marking and icy state. It is the only
// writer of the player's Grounded flag and CurrentPlatform handle.
func (d *Detector) ResolvePlatforms(world *World) {
	p := d.player
	landedOn := NoHandle

	world.Platforms.Each(func(h Handle, plat *Platform) {
		if !plat.Collidable {
			return
		}
		if h == p.CurrentPlatform && d.stillOn(plat) {
			// Resting contact: keep the player pinned to the top so the
			// per-frame gravity step cannot sink it through.
			p.Y = plat.Y - p.Height
			p.VY = 0
			landedOn = h
			return
		}
		if !d.landing(plat) {
			return
		}

		// Snap the player's bottom exactly to the platform top.
		p.Y = plat.Y - p.Height

		if plat.Type == PlatformSpring {
			// Reflect instead of stopping; no grounding on springs.
			p.VY = -math.Abs(p.VY) * d.cfg.SpringBounce
			plat.SpringCompression = 1
			d.events.SpringBounce()
			return
		}

		p.VY = 0
		landedOn = h

		switch plat.Type {
		case PlatformIcy:
			p.BeginSlide()
		case PlatformCrumbling:
			if !plat.Crumbling {
				// First contact only; decay is owned by the world.
				plat.Crumbling = true
			}
		}
		d.events.Landed(plat.Type)
	})

	wasOn := p.CurrentPlatform
	p.CurrentPlatform = landedOn
	p.Grounded = landedOn != NoHandle
	if wasOn != NoHandle && landedOn == NoHandle {
		// Left the tracked platform: clear icy state immediately.
		p.EndSlide()
	}
}

// landing is the platform landing test: horizontal overlap within a
// tolerance margin, the bottom edge crossing the platform top this frame
// or sitting within the tolerance band, and the player falling.
func (d *Detector) landing(plat *Platform) bool {
	p := d.player
	if p.VY <= 0 {
		return false
	}
	if !p.Box().OverlapsX(plat.Box(), d.cfg.HorizontalMargin) {
		return false
	}

	// Reconstruct last frame's bottom edge assuming a fixed 60Hz step.
	// TODO: this under-reconstructs at low frame rates and can tunnel
	// through thin platforms; kept for behavioral parity with the
	// original tuning.
	prevBottom := p.Bottom() - p.VY*(1.0/60.0)
	crossed := prevBottom <= plat.Y && p.Bottom() >= plat.Y
	within := math.Abs(p.Bottom()-plat.Y) <= d.cfg.VerticalBand
	return crossed || within
}

// stillOn reports whether the player remains in resting contact with the
// platform it landed on.
func (d *Detector) stillOn(plat *Platform) bool {
	p := d.player
	if !plat.Collidable {
		return false
	}
	if p.VY < 0 {
		return false
	}
	if !p.Box().OverlapsX(plat.Box(), d.cfg.HorizontalMargin) {
		return false
	}
	return math.Abs(p.Bottom()-plat.Y) <= d.cfg.VerticalBand
}

// ResolveObstacles runs the AABB overlap test against every obstacle.
// Immortal or invulnerable players pass through untouched; otherwise the
// hit is delegated to TakeDamage.
func (d *Detector) ResolveObstacles(world *World) {
	p := d.player
	pb := p.Box()

	world.Obstacles.Each(func(h Handle, o *Obstacle) {
		if !pb.Overlaps(o.Box()) {
			return
		}
		if p.Immortal || p.Invulnerable {
			return
		}
		if p.TakeDamage(1) {
			d.events.DamageTaken()
			world.Obstacles.Remove(h)
		}
	})
}

// ResolveCollectibles runs the circular-distance pickup test. Powerup
// radii are inflated for a generous pickup feel.
func (d *Detector) ResolveCollectibles(world *World) {
	p := d.player
	pb := p.Box()

	world.Collectibles.Each(func(h Handle, c *Collectible) {
		radius := c.Radius
		if c.Kind == CollectiblePowerup {
			radius *= d.cfg.PowerupRadiusScale
		}
		dx := pb.CenterX() - c.X
		dy := pb.CenterY() - c.Y
		if math.Sqrt(dx*dx+dy*dy) > p.Radius()+radius {
			return
		}

		switch c.Kind {
		case CollectibleCoin:
			d.events.CoinPicked(c.Value)
		case CollectiblePowerup:
			d.events.PowerupPicked(c.Power)
		}
		world.Collectibles.Remove(h)
	})
}
