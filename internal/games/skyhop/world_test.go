package skyhop

import (
	"testing"

	"github.com/ndmitry/skyhop/internal/config"
)

func TestWorldScrollAppliesCameraBonus(t *testing.T) {
	w := NewWorld(config.DefaultSkyhopConfig().Level)
	h := w.AddPlatform(Platform{X: 400, Y: 300, W: 100, H: 14, VX: -180, Type: PlatformNormal, Collidable: true})

	w.Update(1.0, 50)

	p := w.Platforms.Get(h)
	if p == nil {
		t.Fatal("platform should survive the update")
	}
	if !approx(p.X, 400-180-50) {
		t.Errorf("platform x = %v, want %v", p.X, 400.0-180-50)
	}
}

func TestWorldSafetyPlatformNeverScrolls(t *testing.T) {
	w := NewWorld(config.DefaultSkyhopConfig().Level)
	h := w.AddPlatform(Platform{X: 435, Y: 542, W: 90, H: 14, Type: PlatformSafety, Collidable: true})

	w.Update(1.0, 300)

	p := w.Platforms.Get(h)
	if p == nil {
		t.Fatal("safety platform must never be culled")
	}
	if p.X != 435 {
		t.Errorf("safety platform moved to x=%v", p.X)
	}
}

func TestWorldCullsEntitiesPastLeftEdge(t *testing.T) {
	w := NewWorld(config.DefaultSkyhopConfig().Level)
	hp := w.AddPlatform(Platform{X: -300, Y: 300, W: 100, H: 14, Type: PlatformNormal, Collidable: true})
	ho := w.AddObstacle(Obstacle{X: -300, Y: 280, W: 22, H: 22})
	hc := w.AddCollectible(Collectible{X: -300, Y: 250, Radius: 10, Kind: CollectibleCoin, Value: 10})

	w.Update(0.016, 0)

	if w.Platforms.Get(hp) != nil {
		t.Error("off-screen platform should be culled")
	}
	if w.Obstacles.Get(ho) != nil {
		t.Error("off-screen obstacle should be culled")
	}
	if w.Collectibles.Get(hc) != nil {
		t.Error("off-screen collectible should be culled")
	}
}

func TestArenaHandlesSurviveRemovals(t *testing.T) {
	var a Arena[Platform]
	h1 := a.Add(Platform{X: 1})
	h2 := a.Add(Platform{X: 2})
	h3 := a.Add(Platform{X: 3})

	a.Remove(h2)

	if a.Get(h2) != nil {
		t.Error("removed handle should resolve to nil")
	}
	if p := a.Get(h1); p == nil || p.X != 1 {
		t.Error("handle 1 should survive an unrelated removal")
	}
	if p := a.Get(h3); p == nil || p.X != 3 {
		t.Error("handle 3 should survive an unrelated removal")
	}

	// A reused slot gets a fresh generation; the stale handle stays dead.
	h4 := a.Add(Platform{X: 4})
	if a.Get(h2) != nil {
		t.Error("stale handle must not resolve after slot reuse")
	}
	if p := a.Get(h4); p == nil || p.X != 4 {
		t.Error("new handle should resolve to the new record")
	}
}

func TestArenaRemoveDuringEach(t *testing.T) {
	var a Arena[Obstacle]
	for i := 0; i < 5; i++ {
		a.Add(Obstacle{X: float64(i)})
	}

	a.Each(func(h Handle, o *Obstacle) {
		if int(o.X)%2 == 0 {
			a.Remove(h)
		}
	})

	if a.Len() != 2 {
		t.Errorf("len after removing evens = %d, want 2", a.Len())
	}
}
