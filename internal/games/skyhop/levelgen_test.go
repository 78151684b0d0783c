package skyhop

import (
	"math"
	"testing"

	"github.com/ndmitry/skyhop/internal/config"
)

func TestLCGKnownSequence(t *testing.T) {
	r := NewLCG(1)
	want := float64((1*lcgMultiplier+lcgIncrement)%lcgModulus) / lcgModulus
	if got := r.Next(); math.Abs(got-want) > 1e-12 {
		t.Errorf("first draw from seed 1 = %v, want %v", got, want)
	}
}

func TestLCGDeterminism(t *testing.T) {
	a := NewLCG(12345)
	b := NewLCG(12345)

	for i := 0; i < 100; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("streams diverged at draw %d: %v vs %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, va)
		}
	}
}

func TestLCGNegativeSeedNormalized(t *testing.T) {
	r := NewLCG(-42)
	for i := 0; i < 10; i++ {
		if v := r.Next(); v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestLCGRangeAndIntN(t *testing.T) {
	r := NewLCG(7)
	for i := 0; i < 100; i++ {
		if v := r.Range(80, 220); v < 80 || v >= 220 {
			t.Fatalf("Range draw out of bounds: %v", v)
		}
	}
	for i := 0; i < 100; i++ {
		if v := r.IntN(5); v < 0 || v >= 5 {
			t.Fatalf("IntN draw out of bounds: %d", v)
		}
	}
}

func TestDifficultyFactorCapped(t *testing.T) {
	cfg := config.DefaultSkyhopConfig().Difficulty
	d := config.NewDifficultyManager(cfg)

	if f := d.Factor(1); f != 1.0 {
		t.Errorf("Factor(1) = %v, want 1.0", f)
	}
	want := 1.0 + cfg.Growth
	if f := d.Factor(2); math.Abs(f-want) > 1e-9 {
		t.Errorf("Factor(2) = %v, want %v", f, want)
	}
	if f := d.Factor(1000); f != cfg.MaxFactor {
		t.Errorf("Factor(1000) = %v, want cap %v", f, cfg.MaxFactor)
	}
	if m := d.ScrollMult(1000); m != cfg.MaxScroll {
		t.Errorf("ScrollMult(1000) = %v, want cap %v", m, cfg.MaxScroll)
	}
}

func TestSeedInitialPlacesStartPlatformUnderPlayer(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	g := NewGenerator(cfg.Level, diff, 42, testCanvasW, testCanvasH)
	world := NewWorld(cfg.Level)

	playerX := cfg.Player.X
	g.SeedInitial(world, playerX, -cfg.Physics.ScrollSpeed)

	if world.Platforms.Len() < 2 {
		t.Fatalf("initial seed placed %d platforms, want several", world.Platforms.Len())
	}

	underPlayer := false
	world.Platforms.Each(func(h Handle, p *Platform) {
		if p.X <= playerX && playerX+cfg.Player.Width <= p.X+p.W {
			underPlayer = true
		}
	})
	if !underPlayer {
		t.Error("no starting platform spans the player spawn position")
	}
}

func TestAdvanceKeepsRightEdgeFilled(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	g := NewGenerator(cfg.Level, diff, 42, testCanvasW, testCanvasH)
	world := NewWorld(cfg.Level)
	g.SeedInitial(world, cfg.Player.X, -cfg.Physics.ScrollSpeed)

	before := world.Platforms.Len()
	g.Advance(500, world, -cfg.Physics.ScrollSpeed)

	if world.Platforms.Len() <= before {
		t.Error("advancing by a large scroll should emit new platforms")
	}
	if g.nextSpawnX <= testCanvasW {
		t.Errorf("spawn cursor %v left the right edge unfilled", g.nextSpawnX)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)

	build := func() *World {
		g := NewGenerator(cfg.Level, diff, 12345, testCanvasW, testCanvasH)
		w := NewWorld(cfg.Level)
		g.SeedInitial(w, cfg.Player.X, -cfg.Physics.ScrollSpeed)
		g.Advance(2000, w, -cfg.Physics.ScrollSpeed)
		return w
	}

	w1, w2 := build(), build()
	if w1.Platforms.Len() != w2.Platforms.Len() {
		t.Fatalf("platform counts differ: %d vs %d", w1.Platforms.Len(), w2.Platforms.Len())
	}
	if w1.Obstacles.Len() != w2.Obstacles.Len() {
		t.Errorf("obstacle counts differ: %d vs %d", w1.Obstacles.Len(), w2.Obstacles.Len())
	}
	if w1.Collectibles.Len() != w2.Collectibles.Len() {
		t.Errorf("collectible counts differ: %d vs %d", w1.Collectibles.Len(), w2.Collectibles.Len())
	}
}

func TestGeneratedPlatformsStayInBand(t *testing.T) {
	cfg := config.DefaultSkyhopConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	g := NewGenerator(cfg.Level, diff, 99, testCanvasW, testCanvasH)
	world := NewWorld(cfg.Level)
	g.SeedInitial(world, cfg.Player.X, -cfg.Physics.ScrollSpeed)
	g.Advance(5000, world, -cfg.Physics.ScrollSpeed)

	lo := testCanvasH*cfg.Level.YBandCenter - cfg.Level.YBandSpread*testCanvasH - 1e-9
	hi := testCanvasH*cfg.Level.YBandCenter + cfg.Level.YBandSpread*testCanvasH + 1e-9
	world.Platforms.Each(func(h Handle, p *Platform) {
		if p.Y < lo || p.Y > hi {
			t.Errorf("platform y=%v outside the band [%v, %v]", p.Y, lo, hi)
		}
	})
}
