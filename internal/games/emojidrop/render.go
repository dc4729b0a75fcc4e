package emojidrop

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/emojidrop/internal/core"
	"github.com/vovakirdan/emojidrop/internal/games/emojidrop/core"
)

const (
	cellW      = 2 // Each emoji is two columns wide
	hudHeight  = 3 // Title, score line, spacer
	footHeight = 3 // Spacer, stats line, hint line
	minWidth   = 40
)

// requiredWidth returns the minimum screen width for the well and text.
func (g *Game) requiredWidth() int {
	return max(g.cfg.Board.Cols*cellW+2, minWidth)
}

// requiredHeight returns the minimum screen height.
func (g *Game) requiredHeight() int {
	return hudHeight + g.cfg.Board.Rows + 2 + footHeight
}

// wellRect returns the boxed well, centered horizontally below the HUD.
func (g *Game) wellRect(dst *platformcore.Screen) platformcore.Rect {
	w := g.cfg.Board.Cols*cellW + 2
	h := g.cfg.Board.Rows + 2
	r := platformcore.CenteredRect(w, h, dst.Width(), h)
	r.Y = hudHeight
	return r
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	well := g.wellRect(dst)
	g.renderHUD(dst, well)
	g.renderWell(dst, well)
	g.renderFooter(dst, well)

	switch {
	case g.engine.Over():
		g.renderGameOver(dst)
	case g.paused:
		drawOverlay(dst, platformcore.ColorYellow, "Paused", "Press P to continue")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", g.requiredWidth(), g.requiredHeight()))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and combo banner.
func (g *Game) renderHUD(dst *platformcore.Screen, well platformcore.Rect) {
	dst.DrawTextCenteredColored(0, "EmojiDrop", platformcore.ColorBrightMagenta)

	run := g.engine.Run()
	dst.DrawText(well.X, 1, fmt.Sprintf("Score: %d", run.Score))

	if run.Combo > 1 {
		banner := fmt.Sprintf("x%d COMBO!", run.Combo)
		color := platformcore.ColorOrange
		// Blink while the flash is active
		if g.flashMs > 0 && (g.tick/8)%2 == 0 {
			color = platformcore.ColorYellow
		}
		x := max(well.Right()-platformcore.TextWidth(banner), well.X)
		dst.DrawTextColored(x, 1, banner, color)
	}
}

// renderWell draws the boxed board and the falling block.
func (g *Game) renderWell(dst *platformcore.Screen, well platformcore.Rect) {
	dst.DrawBoxColored(well, platformcore.ColorPurple)

	board := g.engine.Board()
	for row := range board.Rows() {
		for col := range board.Cols() {
			x := well.X + 1 + col*cellW
			y := well.Y + 1 + row
			cell := board.Get(core.At(row, col))
			if cell.Filled {
				dst.DrawText(x, y, cell.Symbol.Emoji())
			} else {
				dst.SetColored(x, y, '·', platformcore.ColorGray)
			}
		}
	}

	blk, ok := g.engine.Block()
	if !ok {
		return
	}
	x := well.X + 1 + blk.Col*cellW
	dst.DrawText(x, well.Y+1+blk.Row, blk.Symbol.Emoji())

	// Mark the falling column on both borders
	dst.SetColored(x, well.Y, '▼', platformcore.ColorBrightCyan)
	dst.SetColored(x, well.Bottom()-1, '▲', platformcore.ColorBrightCyan)
}

// renderFooter draws run statistics and the key hint below the well.
func (g *Game) renderFooter(dst *platformcore.Screen, well platformcore.Rect) {
	y := well.Bottom() + 1
	run := g.engine.Run()
	interval := time.Duration(run.DropIntervalMs * float64(time.Millisecond)).Round(time.Millisecond)
	stats := fmt.Sprintf("Cleared: %d  Drop: %v", run.Cleared.Total(), interval)
	if g.last.Kind == core.AdvanceLanded && g.last.Outcome.Points > 0 {
		stats += fmt.Sprintf("  +%d", g.last.Outcome.Points)
	}
	dst.DrawTextCentered(y, stats)
	dst.DrawTextCenteredColored(y+1, g.Controls(), platformcore.ColorGray)
}

// renderGameOver draws the final score and most-cleared symbol.
func (g *Game) renderGameOver(dst *platformcore.Screen) {
	lines := []string{
		"Game Over!",
		fmt.Sprintf("Final Score: %d", g.engine.Score()),
	}
	if most, ok := g.engine.MostCleared(); ok {
		lines = append(lines, fmt.Sprintf("Most cleared: %s %s", most, most.Emoji()))
	}
	lines = append(lines, "Press R to restart")
	drawOverlay(dst, platformcore.ColorRed, lines...)
}

// drawOverlay draws a centered box with one line of text per row.
func drawOverlay(dst *platformcore.Screen, color platformcore.Color, lines ...string) {
	textW := 0
	for _, l := range lines {
		textW = max(textW, platformcore.TextWidth(l))
	}

	box := platformcore.CenteredRect(textW+4, len(lines)+2, dst.Width(), dst.Height())
	dst.DrawRect(box.Inset(1), ' ')
	dst.DrawBoxColored(box, color)

	for i, l := range lines {
		c := platformcore.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextCenteredColored(box.Y+1+i, l, c)
	}
}
