package bridge

import (
	"fmt"
	"math"

	platformcore "github.com/okhmel/bridgefall/internal/core"
	"github.com/okhmel/bridgefall/internal/games/bridge/core"
)

const (
	tileW          = 4  // Each tile is 3 chars plus a gap
	timingBarWidth = 41 // Odd width so the perfect center is a single cell
	minScreenH     = 18
	hudHeight      = 4
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.broken {
		g.renderOverlay(dst, "Configuration error", "Check the difficulty table")
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	bridgeY := dst.Height()/2 - 2

	g.renderBridge(dst, bridgeY)

	if g.engine.Session().Challenging() {
		g.renderTimingBar(dst, bridgeY+4)
	}
	if g.tick < g.flashUntil {
		g.renderJudgment(dst, bridgeY+7)
	}
	if g.engine.Collapsing() || g.tick < g.collapseFlash {
		dst.DrawTextCenteredColored(bridgeY+7, "THE BRIDGE IS COLLAPSING!", platformcore.ColorBrightRed)
	}

	switch {
	case g.engine.Success():
		score := fmt.Sprintf("Score: %d   Rank: %s", g.engine.FinalScore(), g.engine.FinalRank())
		g.renderOverlay(dst, "Bridge crossed!  "+score, "Press R to play again")
	case g.engine.Ended():
		g.renderOverlay(dst, "The bridge fell", "Press R to try again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.title
	if !g.broken {
		score := g.engine.Score()
		hud += fmt.Sprintf(" | %s | Time: %4.1fs | Combo: %d | Tile: %d/%d",
			g.engine.Profile().Label,
			g.engine.TimeRemaining(),
			score.Combo,
			g.engine.PlayerIndex()+1,
			len(g.engine.Platforms()))
	}
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}

	controls := " Space: Strike / Catch | P: Pause | Q: Quit"
	if g.engine != nil && g.engine.Session().Challenging() {
		controls = " Space: CATCH IT! | P: Pause | Q: Quit"
	}
	dst.DrawTextColored(0, 2, controls, platformcore.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 3, '─', platformcore.ColorGray)
	}
}

// renderBridge draws the tile row with the player marker above it.
func (g *Game) renderBridge(dst *platformcore.Screen, y int) {
	platforms := g.engine.Platforms()
	startX := (dst.Width() - len(platforms)*tileW) / 2
	if startX < 0 {
		startX = 0
	}

	for i, p := range platforms {
		x := startX + i*tileW
		glyph, color := tileGlyph(p)
		for c := 0; c < 3; c++ {
			dst.SetColored(x+c, y, glyph, color)
		}

		// Strike progress under the tile being hammered
		if p.State() == core.StateRepairing {
			progress := fmt.Sprintf("%d/%d", p.StrikeCount(), g.engine.Profile().RequiredStrikes)
			dst.DrawTextColored(x, y+1, progress, platformcore.ColorYellow)
		}
	}

	// Player marker
	playerX := startX + g.engine.PlayerIndex()*tileW + 1
	if g.engine.PlayerIndex() >= len(platforms) {
		playerX = startX + len(platforms)*tileW
	}
	dst.SetColored(playerX, y-1, '@', platformcore.ColorBrightWhite)
}

// tileGlyph maps a tile to its bridge-row appearance.
func tileGlyph(p *core.Platform) (rune, platformcore.Color) {
	switch p.State() {
	case core.StateBroken:
		if p.Kind() == core.KindFragile {
			return '░', platformcore.ColorMagenta
		}
		return '░', platformcore.ColorGray
	case core.StateRepairing:
		return '▒', platformcore.ColorYellow
	case core.StateFalling:
		return '▓', platformcore.ColorBrightYellow
	case core.StateCompleted:
		return '█', platformcore.ColorGreen
	default: // Collapsed
		return ' ', platformcore.ColorDefault
	}
}

// renderTimingBar draws the sweep bar with its judgment zones and cursor.
func (g *Game) renderTimingBar(dst *platformcore.Screen, y int) {
	th := g.engine.Profile().Thresholds
	startX := (dst.Width() - timingBarWidth) / 2

	dst.SetColored(startX-1, y, '[', platformcore.ColorWhite)
	dst.SetColored(startX+timingBarWidth, y, ']', platformcore.ColorWhite)

	half := float64(timingBarWidth-1) / 2
	for i := 0; i < timingBarWidth; i++ {
		// Accuracy at this cell: 100 at center, 0 at the edges.
		offset := math.Abs(float64(i)-half) / half
		accuracy := (1 - offset) * 100

		color := platformcore.ColorGray
		switch {
		case accuracy >= th.PerfectMin:
			color = platformcore.ColorBrightGreen
		case accuracy >= th.GoodMin:
			color = platformcore.ColorYellow
		case accuracy >= th.BadMin:
			color = platformcore.ColorRed
		}
		dst.SetColored(startX+i, y, '─', color)
	}

	// Cursor sweeps left to right over the window.
	challenge := g.engine.Session().Challenge()
	cursor := int(math.Round(challenge.Progress(g.engine.Clock()) * float64(timingBarWidth-1)))
	dst.SetColored(startX+cursor, y-1, '▼', platformcore.ColorBrightWhite)
	dst.SetColored(startX+cursor, y, '█', platformcore.ColorBrightWhite)
}

// renderJudgment draws the banner for the most recent catch.
func (g *Game) renderJudgment(dst *platformcore.Screen, y int) {
	var color platformcore.Color
	switch g.flash {
	case core.JudgmentPerfect:
		color = platformcore.ColorBrightGreen
	case core.JudgmentGood:
		color = platformcore.ColorGreen
	case core.JudgmentBad:
		color = platformcore.ColorYellow
	default:
		color = platformcore.ColorBrightRed
	}

	text := g.flash.String()
	if g.flash != core.JudgmentMiss {
		text = fmt.Sprintf("%s  %.0f%%", text, g.flashAccuracy)
	}
	dst.DrawTextCenteredColored(y, text, color)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := len([]rune(line1))
	if l := len([]rune(line2)); l > maxLen {
		maxLen = l
	}

	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := platformcore.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
