package skyhop

import "github.com/ndmitry/skyhop/internal/core"

// PlatformType discriminates platform behavior on contact.
type PlatformType uint8

const (
	PlatformNormal PlatformType = iota
	PlatformIcy
	PlatformCrumbling
	PlatformSpring
	PlatformSafety
	PlatformRescue
)

// String returns the name of the platform type.
func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformIcy:
		return "icy"
	case PlatformCrumbling:
		return "crumbling"
	case PlatformSpring:
		return "spring"
	case PlatformSafety:
		return "safety"
	case PlatformRescue:
		return "rescue"
	default:
		return "?"
	}
}

// Platform is a plain data record for a surface the player can land on.
// Records live in the world arena; field ownership is explicit: only the
// safety system writes Charges, only the collision detector marks
// Crumbling and SpringCompression on contact, and only the world ticks
// their decay.
type Platform struct {
	X, Y float64
	W, H float64
	VX   float64 // World scroll velocity, negative = leftward
	Type PlatformType

	Collidable        bool    // False for a safety platform with zero charges
	Crumbling         bool    // Set on first contact with a crumbling platform
	CrumbleLeft       float64 // Seconds until a crumbling platform is removed
	SpringCompression float64 // Spring animation state, decays to 0
	Charges           int     // Safety platform only: visual charge count
}

// Box returns the platform's bounding box.
func (p *Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Obstacle is a damaging hazard record.
type Obstacle struct {
	X, Y float64
	W, H float64
	VX   float64
}

// Box returns the obstacle's bounding box.
func (o *Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// CollectibleKind separates score pickups from ability powerups.
type CollectibleKind uint8

const (
	CollectibleCoin CollectibleKind = iota
	CollectiblePowerup
)

// Collectible is a pickup record: a coin or a powerup.
type Collectible struct {
	X, Y   float64 // Center position
	Radius float64
	VX     float64
	Kind   CollectibleKind
	Power  PowerupType // Meaningful when Kind == CollectiblePowerup
	Value  int         // Score value when Kind == CollectibleCoin
}

// Handle is a stable reference to an arena slot. The zero Handle is never
// valid: generations start at 1.
type Handle struct {
	Index uint32
	Gen   uint32
}

// NoHandle is the invalid handle.
var NoHandle = Handle{}

// Valid reports whether the handle could ever refer to a live slot.
func (h Handle) Valid() bool {
	return h.Gen != 0
}

type slot[T any] struct {
	item T
	gen  uint32
	live bool
}

// Arena is a generational slot arena. Handles stay stable across removals
// of other entities and go stale when their own slot is reused, so no
// component ever holds a dangling reference to a mutated record.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Add inserts an item and returns its handle.
func (a *Arena[T]) Add(item T) Handle {
	a.count++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.item = item
		s.gen++
		s.live = true
		return Handle{Index: idx, Gen: s.gen}
	}
	a.slots = append(a.slots, slot[T]{item: item, gen: 1, live: true})
	return Handle{Index: uint32(len(a.slots) - 1), Gen: 1}
}

// Get returns a pointer to the item for a live, current handle, or nil.
func (a *Arena[T]) Get(h Handle) *T {
	if !h.Valid() || int(h.Index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.Index]
	if !s.live || s.gen != h.Gen {
		return nil
	}
	return &s.item
}

// Remove frees the slot referenced by the handle. Stale handles are ignored.
func (a *Arena[T]) Remove(h Handle) {
	if a.Get(h) == nil {
		return
	}
	a.slots[h.Index].live = false
	a.free = append(a.free, h.Index)
	a.count--
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.count
}

// Each calls fn for every live entity. Removing the visited entity inside
// fn is allowed; adding during iteration is not.
func (a *Arena[T]) Each(fn func(h Handle, item *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			fn(Handle{Index: uint32(i), Gen: s.gen}, &s.item)
		}
	}
}
