package dodge

import (
	"fmt"
	"time"

	"github.com/vovakirdan/dodge/internal/core"
)

// HUD layout in canvas units.
const (
	hudMargin     = 10
	timeMinOffset = 100 // the timer starts at least this far from the right edge
)

// Render draws the current game state to the surface. It does not modify
// the game.
func (g *Game) Render(dst core.Surface) {
	s := &g.session
	dst.Clear()

	// Draw player
	p := s.Player
	dst.FillRect(p.X, p.Y, p.W, p.H, p.Color)

	// Draw enemies
	for _, e := range s.Enemies {
		dst.FillRect(e.X, e.Y, e.W, e.H, e.Color)
	}

	// Draw collectible
	if s.Dot.Visible {
		dst.FillRect(s.Dot.X, s.Dot.Y, s.Dot.Size, s.Dot.Size, g.colors.dot)
	}

	g.drawHUD(dst)

	if s.Paused {
		g.drawCentered(dst, "PAUSED", "Press P to resume")
	}

	if s.GameOver {
		g.drawCentered(dst, "Game Over", "Press R to restart")
	}
}

// drawHUD draws score, timer and the scoreboard of finished games.
func (g *Game) drawHUD(dst core.Surface) {
	size := g.cfg.HUD.FontSize
	color := g.colors.text
	_, lineH := dst.MeasureText("Score", size)

	dst.FillText(fmt.Sprintf("Score: %d", g.session.Score), hudMargin, size, size, color)

	timeText := "Time: " + FormatClock(g.Elapsed())
	tw, _ := dst.MeasureText(timeText, size)
	dst.FillText(timeText, dst.Width()-max(timeMinOffset, tw+hudMargin), size, size, color)

	y := size + lineH*1.5
	dst.FillText("Scoreboard:", hudMargin, y, size, color)
	for i, h := range g.session.History {
		y += lineH
		dst.FillText(fmt.Sprintf("Game %d: %d", i+1, h.Score), hudMargin, y, size, color)
	}
}

// drawCentered draws a large title in the middle of the canvas with a smaller
// hint line underneath.
func (g *Game) drawCentered(dst core.Surface, title, hint string) {
	size := g.cfg.HUD.TitleFontSize
	tw, th := dst.MeasureText(title, size)
	cy := dst.Height() / 2
	dst.FillText(title, (dst.Width()-tw)/2, cy, size, g.colors.text)

	hintSize := g.cfg.HUD.FontSize
	hw, _ := dst.MeasureText(hint, hintSize)
	dst.FillText(hint, (dst.Width()-hw)/2, cy+th, hintSize, g.colors.text)
}

// FormatClock formats a duration as M:SS, truncating fractional seconds.
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
