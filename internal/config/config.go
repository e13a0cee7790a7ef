// Package config provides YAML-based game configuration loading for dodge.
package config

import "time"

// Config contains all tunables for the game.
type Config struct {
	TickRate    int               `yaml:"tick_rate"`
	Canvas      CanvasConfig      `yaml:"canvas"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	HUD         HUDConfig         `yaml:"hud"`
	Input       InputConfig       `yaml:"input"`
}

// CanvasConfig is the logical play area in canvas units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's start position, size and speed.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // canvas units per tick and pressed key
	Color  string  `yaml:"color"`
}

// EnemyConfig defines the initial enemy and the size of spawned ones.
type EnemyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// CollectibleConfig defines the dot and its wall-clock show/hide cycle.
type CollectibleConfig struct {
	Size       float64       `yaml:"size"`
	Color      string        `yaml:"color"`
	Period     time.Duration `yaml:"period"`      // time between appearances
	VisibleFor time.Duration `yaml:"visible_for"` // how long each appearance lasts
}

// SpawnConfig controls enemy growth.
type SpawnConfig struct {
	EnemyEvery time.Duration `yaml:"enemy_every"` // in-game time between new enemies
}

// HUDConfig controls text rendering.
type HUDConfig struct {
	FontSize      float64 `yaml:"font_size"`
	TitleFontSize float64 `yaml:"title_font_size"`
	TextColor     string  `yaml:"text_color"`
}

// InputConfig controls key handling.
type InputConfig struct {
	Hold time.Duration `yaml:"hold"` // how long a key press counts as held
}

// TickInterval returns the in-game duration of one tick.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			X:      100,
			Y:      100,
			Width:  50,
			Height: 50,
			Speed:  5,
			Color:  "blue",
		},
		Enemy: EnemyConfig{
			X:      400,
			Y:      300,
			Width:  50,
			Height: 50,
			Color:  "red",
		},
		Collectible: CollectibleConfig{
			Size:       20,
			Color:      "green",
			Period:     3 * time.Second,
			VisibleFor: 1300 * time.Millisecond,
		},
		Spawn: SpawnConfig{
			EnemyEvery: 30 * time.Second,
		},
		HUD: HUDConfig{
			FontSize:      20,
			TitleFontSize: 30,
			TextColor:     "black",
		},
		Input: InputConfig{
			Hold: 300 * time.Millisecond,
		},
	}
}
