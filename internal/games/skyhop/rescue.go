package skyhop

import (
	"math"

	"github.com/ndmitry/skyhop/internal/config"
)

// rescueSafeMargin keeps rescue platforms clear of the safety bar so the
// player always has room to stand.
const rescueSafeMargin = 24.0

// minRescueVerticalGap is the smallest vertical separation allowed
// between horizontally overlapping rescue platforms.
const minRescueVerticalGap = 34.0

// rescuePattern maps a platform index within a batch to a vertical offset
// in world pixels.
type rescuePattern func(i, n int) float64

// Named vertical-offset functions, selected by level % len(patterns).
var rescuePatterns = []rescuePattern{
	// sinusoidal
	func(i, n int) float64 {
		return math.Sin(float64(i)/float64(n)*2*math.Pi) * 70
	},
	// staircase: climbs step by step
	func(i, n int) float64 {
		return -float64(i) * 36
	},
	// zig-zag
	func(i, n int) float64 {
		if i%2 == 0 {
			return 0
		}
		return -60
	},
	// wave: a slower double arc
	func(i, n int) float64 {
		return math.Sin(float64(i)/float64(n)*4*math.Pi) * 45
	},
	// plateau: flat escape lane
	func(i, n int) float64 {
		return -30
	},
}

// RescueGenerator emits batches of temporary escape platforms ahead of
// the player while the safety platform counts down. It keeps its own
// seeded stream, separate from the level generator's, so rescue batches
// do not perturb level placement.
type RescueGenerator struct {
	cfg     config.LevelGenConfig
	rng     *LCG
	canvasW float64
	canvasH float64
}

// NewRescueGenerator creates a rescue generator for the given canvas.
func NewRescueGenerator(cfg config.LevelGenConfig, seed int64, canvasW, canvasH float64) *RescueGenerator {
	return &RescueGenerator{
		cfg:     cfg,
		rng:     NewLCG(seed),
		canvasW: canvasW,
		canvasH: canvasH,
	}
}

// Resize updates cached canvas bounds. Idempotent.
func (r *RescueGenerator) Resize(canvasW, canvasH float64) {
	r.canvasW = canvasW
	r.canvasH = canvasH
}

// SpawnBatch generates 4-7 rescue platforms along the pattern keyed by
// the level, pushes them into the entity collection and returns how many
// were spawned. minSafeY is the lowest allowed platform top; anything
// below is lifted to it.
func (r *RescueGenerator) SpawnBatch(world EntityCollection, level int, scrollVX float64, minSafeY float64) int {
	n := 4 + r.rng.IntN(4)
	pattern := rescuePatterns[level%len(rescuePatterns)]

	// Widths shrink and spacing widens slightly on later levels.
	width := r.cfg.PlatformMinWidth + 30 - math.Min(float64(level)*3, 30)
	spacing := 130.0 + math.Min(float64(level)*6, 60)

	baseY := minSafeY - 90
	x := r.canvasW * 0.4

	prevX, prevY, prevW := 0.0, 0.0, 0.0
	for i := 0; i < n; i++ {
		w := width + r.rng.Range(-10, 10)
		y := baseY + pattern(i, n) + r.rng.Range(-8, 8)
		if y > minSafeY {
			y = minSafeY
		}

		// Nudge up any platform whose footprint overlaps its just-placed
		// neighbor with too small a vertical gap.
		if i > 0 && x < prevX+prevW && math.Abs(y-prevY) < minRescueVerticalGap {
			y = prevY - minRescueVerticalGap
		}

		world.AddPlatform(Platform{
			X:          x,
			Y:          y,
			W:          w,
			H:          r.cfg.PlatformHeight,
			VX:         scrollVX,
			Type:       PlatformRescue,
			Collidable: true,
		})

		prevX, prevY, prevW = x, y, w
		x += spacing + r.rng.Range(-15, 15)
	}
	return n
}
