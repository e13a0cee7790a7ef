package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dodge/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks that the configuration can run a game. In particular every
// entity must fit inside the canvas, which random placement relies on.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return invalid("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return invalid("canvas must have a positive size, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}

	sizes := []struct {
		name string
		w, h float64
	}{
		{"player", c.Player.Width, c.Player.Height},
		{"enemy", c.Enemy.Width, c.Enemy.Height},
		{"collectible", c.Collectible.Size, c.Collectible.Size},
	}
	for _, s := range sizes {
		if s.w <= 0 || s.h <= 0 {
			return invalid("%s must have a positive size, got %vx%v", s.name, s.w, s.h)
		}
		if s.w > c.Canvas.Width || s.h > c.Canvas.Height {
			return invalid("%s (%vx%v) does not fit the %vx%v canvas",
				s.name, s.w, s.h, c.Canvas.Width, c.Canvas.Height)
		}
	}

	if c.Player.Speed < 0 {
		return invalid("player speed must not be negative, got %v", c.Player.Speed)
	}
	if c.Collectible.Period <= 0 {
		return invalid("collectible period must be positive, got %v", c.Collectible.Period)
	}
	if c.Collectible.VisibleFor <= 0 || c.Collectible.VisibleFor >= c.Collectible.Period {
		return invalid("collectible visible_for must be in (0, %v), got %v",
			c.Collectible.Period, c.Collectible.VisibleFor)
	}
	if c.Spawn.EnemyEvery <= 0 {
		return invalid("spawn enemy_every must be positive, got %v", c.Spawn.EnemyEvery)
	}
	if c.HUD.FontSize <= 0 || c.HUD.TitleFontSize <= 0 {
		return invalid("hud font sizes must be positive")
	}

	for name, color := range map[string]string{
		"player":      c.Player.Color,
		"enemy":       c.Enemy.Color,
		"collectible": c.Collectible.Color,
		"hud text":    c.HUD.TextColor,
	} {
		if _, err := core.ParseColor(color); err != nil {
			return invalid("%s color: %v", name, err)
		}
	}
	return nil
}
