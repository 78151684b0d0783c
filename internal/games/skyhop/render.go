package skyhop

import (
	"fmt"
	"strings"

	"github.com/ndmitry/skyhop/internal/core"
)

// Rendering glyphs.
const (
	platformChar = '▀'
	icyChar      = '▀'
	crumbleChar  = '▒'
	springChar   = '^'
	springFlat   = '='
	safetyChar   = '█'
	rescueChar   = '▔'
	obstacleChar = '▲'
	coinChar     = '●'
	powerupChar  = '◆'
	trailChar    = '·'
	chargeFull   = '●'
	chargeEmpty  = '○'
	heartFull    = '♥'
	heartEmpty   = '♡'
)

// cellX converts a world x coordinate to a screen column.
func cellX(x float64) int { return int(x / core.CellW) }

// cellY converts a world y coordinate to a screen row.
func cellY(y float64) int { return int(y / core.CellH) }

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawTrail(dst)
	g.drawPlatforms(dst)
	g.drawObstacles(dst)
	g.drawCollectibles(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume, R to restart")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Level: %d  |  Press R to restart", g.State().Score, g.level))
	}
}

// drawPlatforms renders every platform with a type-specific glyph and
// color. The safety platform additionally shows its charge pips.
func (g *Game) drawPlatforms(dst *core.Screen) {
	g.world.Platforms.Each(func(h Handle, p *Platform) {
		x := cellX(p.X)
		y := cellY(p.Y)
		w := core.Max(1, cellX(p.W))

		switch p.Type {
		case PlatformIcy:
			dst.DrawHLine(x, y, w, icyChar, core.ColorBrightCyan)
		case PlatformCrumbling:
			c := core.ColorYellow
			if p.Crumbling {
				c = core.ColorBrightRed
			}
			dst.DrawHLine(x, y, w, crumbleChar, c)
		case PlatformSpring:
			ch := springChar
			if p.SpringCompression > 0.3 {
				ch = springFlat
			}
			dst.DrawHLine(x, y, w, ch, core.ColorBrightGreen)
		case PlatformSafety:
			g.drawSafety(dst, p, x, y, w)
		case PlatformRescue:
			dst.DrawHLine(x, y, w, rescueChar, core.ColorBrightBlue)
		default:
			dst.DrawHLine(x, y, w, platformChar, core.ColorWhite)
		}
	})
}

// drawSafety renders the safety platform body and its remaining charges.
func (g *Game) drawSafety(dst *core.Screen, p *Platform, x, y, w int) {
	c := core.ColorMagenta
	if !p.Collidable {
		c = core.ColorGray
	} else if g.safety.State() == SafetyActive {
		c = core.ColorBrightMagenta
	}
	dst.DrawHLine(x, y, w, safetyChar, c)

	// Charge pips centered above the platform.
	pips := make([]rune, 0, g.cfg.Safety.MaxCharges)
	for i := 0; i < g.cfg.Safety.MaxCharges; i++ {
		if i < p.Charges {
			pips = append(pips, chargeFull)
		} else {
			pips = append(pips, chargeEmpty)
		}
	}
	dst.DrawTextColored(x+(w-len(pips))/2, y-1, string(pips), c)
}

// drawObstacles renders obstacle spikes.
func (g *Game) drawObstacles(dst *core.Screen) {
	g.world.Obstacles.Each(func(h Handle, o *Obstacle) {
		x := cellX(o.X)
		y := cellY(o.Y)
		w := core.Max(1, cellX(o.W))
		dst.DrawHLine(x, y, w, obstacleChar, core.ColorBrightRed)
	})
}

// drawCollectibles renders coins and powerups.
func (g *Game) drawCollectibles(dst *core.Screen) {
	g.world.Collectibles.Each(func(h Handle, c *Collectible) {
		x := cellX(c.X)
		y := cellY(c.Y)
		if c.Kind == CollectiblePowerup {
			dst.SetColored(x, y, powerupChar, core.ColorBrightMagenta)
		} else {
			dst.SetColored(x, y, coinChar, core.ColorBrightYellow)
		}
	})
}

// drawTrail renders turbo trail particles behind the player.
func (g *Game) drawTrail(dst *core.Screen) {
	for _, t := range g.player.Trail {
		dst.SetColored(cellX(t.X), cellY(t.Y), trailChar, core.ColorCyan)
	}
}

// drawPlayer renders the player sprite with its current expression. The
// sprite is two cells wide; damage shake nudges it one column sideways.
func (g *Game) drawPlayer(dst *core.Screen) {
	p := g.player

	x := cellX(p.X)
	y := cellY(p.Y + p.IdleBob())
	if p.ShakeAmp > 3 && int(g.distance)%2 == 0 {
		x++
	}

	face := playerFace(p.Expression)
	color := core.ColorBrightWhite
	switch {
	case p.Immortal:
		color = core.ColorBrightYellow
	case p.Invulnerable && int(g.distance/4)%2 == 0:
		color = core.ColorGray // damage flicker
	case p.TurboActive():
		color = core.ColorBrightCyan
	case p.Flying():
		color = core.ColorBrightBlue
	}

	dst.DrawTextColored(x, y, face, color)
	body := "▙▟"
	if p.SquashStretch < 0.8 {
		body = "▄▄" // landing squash
	}
	dst.DrawTextColored(x, y+1, body, color)
}

// playerFace maps an expression name to a two-rune face.
func playerFace(expression string) string {
	switch expression {
	case "worried":
		return "◉◉"
	case "scared":
		return "⊙⊙"
	case "determined":
		return "◣◢"
	case "soaring":
		return "◠◠"
	case "dizzy":
		return "✕✕"
	case "tense":
		return "◒◒"
	default: // happy
		return "◕◕"
	}
}

// drawHUD renders hearts, score, level and ability status along the top.
func (g *Game) drawHUD(dst *core.Screen) {
	hearts := make([]rune, 0, g.cfg.Player.MaxHealth)
	for i := 0; i < g.cfg.Player.MaxHealth; i++ {
		if i < g.player.Health {
			hearts = append(hearts, heartFull)
		} else {
			hearts = append(hearts, heartEmpty)
		}
	}
	dst.DrawTextColored(2, 0, string(hearts), core.ColorBrightRed)

	status := fmt.Sprintf(" Lv %d  Score %d ", g.level, g.State().Score)
	dst.DrawText(dst.Width()-len(status)-2, 0, status)

	var tags []string
	if g.player.TurboActive() {
		tags = append(tags, "TURBO")
	}
	if g.player.Flying() {
		tags = append(tags, "FLIGHT")
	}
	if combo := g.player.BoostCombo(); combo > 1 {
		tags = append(tags, fmt.Sprintf("x%d", combo))
	}
	if len(tags) > 0 {
		dst.DrawTextColored(2, 1, strings.Join(tags, " "), core.ColorBrightCyan)
	}

	if g.notice != "" {
		dst.DrawTextCentered(2, g.notice)
	}
}

// drawCenteredMessage draws a boxed two-line message in the screen center.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	h := 5
	r := core.Rect{
		X: (dst.Width() - w) / 2,
		Y: (dst.Height() - h) / 2,
		W: w,
		H: h,
	}
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r)
	dst.DrawTextCentered(r.Y+1, title)
	dst.DrawTextCentered(r.Y+3, subtitle)
}
