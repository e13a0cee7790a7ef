package dodge

import (
	"time"

	"github.com/vovakirdan/dodge/internal/core"
)

// Player is the rectangle controlled by the arrow keys.
type Player struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Color core.Color
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Enemy is a static rectangle that ends the game on contact.
type Enemy struct {
	X, Y  float64
	W, H  float64
	Color core.Color
}

// Rect returns the enemy's collision rectangle.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Collectible is the dot worth one point. It is shown and hidden by the
// DotCycle and hidden early when picked up.
type Collectible struct {
	X, Y    float64
	Size    float64
	Visible bool
}

// Rect returns the collectible's collision rectangle.
func (c Collectible) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.Size, c.Size)
}

// HistoryEntry records one finished game.
type HistoryEntry struct {
	Score    int
	Duration time.Duration
}

// Session holds all mutable game state. History survives restarts; every
// other field is reset by Game.Reset.
type Session struct {
	Player   Player
	Enemies  []Enemy
	Dot      Collectible
	Score    int
	Ticks    int64
	GameOver bool
	Paused   bool
	History  []HistoryEntry
}
