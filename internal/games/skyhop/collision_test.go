package skyhop

import (
	"testing"

	"github.com/ndmitry/skyhop/internal/config"
)

// recordingEvents captures every cue for assertions.
type recordingEvents struct {
	landed    []PlatformType
	springs   int
	damage    int
	coins     int
	powerups  []PowerupType
	ticks     int
	dissolves int
	rescues   []int
	levels    []int
}

func (r *recordingEvents) Landed(t PlatformType)       { r.landed = append(r.landed, t) }
func (r *recordingEvents) SpringBounce()               { r.springs++ }
func (r *recordingEvents) DamageTaken()                { r.damage++ }
func (r *recordingEvents) CoinPicked(value int)        { r.coins += value }
func (r *recordingEvents) PowerupPicked(t PowerupType) { r.powerups = append(r.powerups, t) }
func (r *recordingEvents) SafetyTick()                 { r.ticks++ }
func (r *recordingEvents) SafetyDissolve()             { r.dissolves++ }
func (r *recordingEvents) RescueSpawned(count int)     { r.rescues = append(r.rescues, count) }
func (r *recordingEvents) LevelUp(level int)           { r.levels = append(r.levels, level) }

type collisionFixture struct {
	cfg      config.SkyhopConfig
	player   *Player
	world    *World
	detector *Detector
	events   *recordingEvents
}

func newCollisionFixture() *collisionFixture {
	cfg := config.DefaultSkyhopConfig()
	p := NewPlayer(cfg, testCanvasW, testCanvasH)
	ev := &recordingEvents{}
	return &collisionFixture{
		cfg:      cfg,
		player:   p,
		world:    NewWorld(cfg.Level),
		detector: NewDetector(cfg.Physics, p, ev),
		events:   ev,
	}
}

// placeFalling positions the player just above the given platform top,
// falling.
func (f *collisionFixture) placeFalling(platTop float64) {
	f.player.Y = platTop - f.player.Height - 4
	f.player.VY = 300
}

func TestLandingSnapsToPlatformTop(t *testing.T) {
	f := newCollisionFixture()
	h := f.world.AddPlatform(Platform{X: 130, Y: 500, W: 100, H: 14, Type: PlatformNormal, Collidable: true})
	f.placeFalling(500)

	f.detector.ResolvePlatforms(f.world)

	if !f.player.Grounded {
		t.Fatal("player should be grounded after landing")
	}
	if f.player.CurrentPlatform != h {
		t.Error("current platform handle should point at the landed platform")
	}
	if f.player.Bottom() != 500 {
		t.Errorf("player bottom = %v, want snapped to 500", f.player.Bottom())
	}
	if f.player.VY != 0 {
		t.Errorf("vertical velocity after landing = %v, want 0", f.player.VY)
	}
	if len(f.events.landed) != 1 || f.events.landed[0] != PlatformNormal {
		t.Errorf("landed events = %v, want one normal landing", f.events.landed)
	}
}

func TestNoLandingWhileRising(t *testing.T) {
	f := newCollisionFixture()
	f.world.AddPlatform(Platform{X: 130, Y: 500, W: 100, H: 14, Type: PlatformNormal, Collidable: true})
	f.placeFalling(500)
	f.player.VY = -200

	f.detector.ResolvePlatforms(f.world)

	if f.player.Grounded {
		t.Error("rising player must pass through platforms")
	}
}

func TestNonCollidablePlatformIgnored(t *testing.T) {
	f := newCollisionFixture()
	f.world.AddPlatform(Platform{X: 130, Y: 500, W: 100, H: 14, Type: PlatformSafety, Collidable: false})
	f.placeFalling(500)

	f.detector.ResolvePlatforms(f.world)

	if f.player.Grounded {
		t.Error("non-collidable platform must not catch the player")
	}
}

func TestSpringReflectsWithoutGrounding(t *testing.T) {
	f := newCollisionFixture()
	f.world.AddPlatform(Platform{X: 130, Y: 500, W: 100, H: 14, Type: PlatformSpring, Collidable: true})
	f.placeFalling(500)

	f.detector.ResolvePlatforms(f.world)

	want := -300 * f.cfg.Physics.SpringBounce
	if !approx(f.player.VY, want) {
		t.Errorf("spring reflection VY = %v, want %v", f.player.VY, want)
	}
	if f.player.Grounded {
		t.Error("spring bounce must not ground the player")
	}
	if f.events.springs != 1 {
		t.Errorf("spring events = %d, want 1", f.events.springs)
	}
}

func TestIcyLandingBeginsSlide(t *testing.T) {
	f := newCollisionFixture()
	f.world.AddPlatform(Platform{X: 130, Y: 500, W: 100, H: 14, Type: PlatformIcy, Collidable: true})
	f.placeFalling(500)

	f.detector.ResolvePlatforms(f.world)

	if !f.player.sliding {
		t.Error("icy landing should begin sliding")
	}

	// Moving clear of the platform ends the slide.
	f.player.Y = 100
	f.detector.ResolvePlatforms(f.world)
	if f.player.sliding {
		t.Error("leaving the icy platform should end sliding")
	}
}

func TestCrumblingPlatformDecaysAfterContact(t *testing.T) {
	f := newCollisionFixture()
	h := f.world.AddPlatform(Platform{X: 130, Y: 500, W: 100, H: 14, Type: PlatformCrumbling, Collidable: true})
	f.placeFalling(500)

	f.detector.ResolvePlatforms(f.world)

	plat := f.world.Platforms.Get(h)
	if plat == nil || !plat.Crumbling {
		t.Fatal("landing should mark the crumbling platform")
	}
	if !approx(plat.CrumbleLeft, f.cfg.Level.CrumbleDelay) {
		t.Errorf("crumble countdown = %v, want %v", plat.CrumbleLeft, f.cfg.Level.CrumbleDelay)
	}

	// The world owns the decay; past the delay the platform is freed.
	f.world.Update(f.cfg.Level.CrumbleDelay+0.1, 0)
	if f.world.Platforms.Get(h) != nil {
		t.Error("crumbled platform should be removed after the delay")
	}
}

func TestObstacleHitDamagesAndRemoves(t *testing.T) {
	f := newCollisionFixture()
	h := f.world.AddObstacle(Obstacle{X: f.player.X, Y: f.player.Y, W: 22, H: 22})
	startHealth := f.player.Health

	f.detector.ResolveObstacles(f.world)

	if f.player.Health != startHealth-1 {
		t.Errorf("health = %d, want %d", f.player.Health, startHealth-1)
	}
	if f.world.Obstacles.Get(h) != nil {
		t.Error("hit obstacle should be removed")
	}
	if f.events.damage != 1 {
		t.Errorf("damage events = %d, want 1", f.events.damage)
	}

	// A second obstacle during the invulnerability window passes through.
	h2 := f.world.AddObstacle(Obstacle{X: f.player.X, Y: f.player.Y, W: 22, H: 22})
	f.detector.ResolveObstacles(f.world)
	if f.world.Obstacles.Get(h2) == nil {
		t.Error("obstacle should survive contact with an invulnerable player")
	}
	if f.events.damage != 1 {
		t.Errorf("invulnerable contact fired a damage event, total %d", f.events.damage)
	}
}

func TestCoinPickup(t *testing.T) {
	f := newCollisionFixture()
	pb := f.player.Box()
	h := f.world.AddCollectible(Collectible{
		X: pb.CenterX(), Y: pb.CenterY(), Radius: 10,
		Kind: CollectibleCoin, Value: 10,
	})

	f.detector.ResolveCollectibles(f.world)

	if f.world.Collectibles.Get(h) != nil {
		t.Error("picked coin should be removed")
	}
	if f.events.coins != 10 {
		t.Errorf("coin value = %d, want 10", f.events.coins)
	}
}

func TestPowerupPickupUsesInflatedRadius(t *testing.T) {
	f := newCollisionFixture()
	pb := f.player.Box()

	// Just outside the plain radius, inside the inflated one.
	offset := f.player.Radius() + 10*f.cfg.Physics.PowerupRadiusScale - 1
	h := f.world.AddCollectible(Collectible{
		X: pb.CenterX() + offset, Y: pb.CenterY(), Radius: 10,
		Kind: CollectiblePowerup, Power: PowerupShield,
	})

	f.detector.ResolveCollectibles(f.world)

	if f.world.Collectibles.Get(h) != nil {
		t.Error("powerup within the inflated radius should be picked up")
	}
	if len(f.events.powerups) != 1 || f.events.powerups[0] != PowerupShield {
		t.Errorf("powerup events = %v, want one shield", f.events.powerups)
	}
}
