// Package dodge implements the dodge arcade game.
// The player steers a square around the canvas, avoiding a growing set of
// enemy squares while picking up a dot that appears every few seconds.
package dodge

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Options configures a new Game.
type Options struct {
	Config config.Config
	Seed   int64       // RNG seed for spawn positions
	Clock  core.Clock  // wall clock driving the collectible; defaults to SystemClock
	Logger *log.Logger // defaults to a discarding logger
}

// palette holds resolved colors.
type palette struct {
	player core.Color
	enemy  core.Color
	dot    core.Color
	text   core.Color
}

// Game implements the dodge game logic.
type Game struct {
	cfg     config.Config
	clock   core.Clock
	logger  *log.Logger
	colors  palette
	spawner *Spawner
	growth  EnemyGrowth
	dots    *DotCycle
	session Session
}

// New creates a game ready to play its first session.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dodge: %w", err)
	}

	colors, err := resolvePalette(cfg)
	if err != nil {
		return nil, fmt.Errorf("dodge: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:     cfg,
		clock:   clock,
		logger:  logger,
		colors:  colors,
		spawner: NewSpawner(opts.Seed, cfg.Canvas.Width, cfg.Canvas.Height),
		growth:  NewEnemyGrowth(cfg.Spawn.EnemyEvery),
		dots:    NewDotCycle(clock.Now(), cfg.Collectible.Period, cfg.Collectible.VisibleFor),
	}
	g.session.Dot = Collectible{Size: cfg.Collectible.Size}
	g.Reset()
	return g, nil
}

func resolvePalette(cfg config.Config) (palette, error) {
	var p palette
	var err error
	if p.player, err = core.ParseColor(cfg.Player.Color); err != nil {
		return p, err
	}
	if p.enemy, err = core.ParseColor(cfg.Enemy.Color); err != nil {
		return p, err
	}
	if p.dot, err = core.ParseColor(cfg.Collectible.Color); err != nil {
		return p, err
	}
	if p.text, err = core.ParseColor(cfg.HUD.TextColor); err != nil {
		return p, err
	}
	return p, nil
}

// Reset starts a new session: score, time, enemies, player position and the
// game-over flag return to their initial values. History and the collectible
// are left alone.
func (g *Game) Reset() {
	s := &g.session
	s.Player = Player{
		X:     g.cfg.Player.X,
		Y:     g.cfg.Player.Y,
		W:     g.cfg.Player.Width,
		H:     g.cfg.Player.Height,
		Speed: g.cfg.Player.Speed,
		Color: g.colors.player,
	}
	s.Enemies = []Enemy{g.newEnemy(g.cfg.Enemy.X, g.cfg.Enemy.Y)}
	s.Score = 0
	s.Ticks = 0
	s.GameOver = false
	s.Paused = false
	g.growth.Reset()
}

func (g *Game) newEnemy(x, y float64) Enemy {
	return Enemy{
		X:     x,
		Y:     y,
		W:     g.cfg.Enemy.Width,
		H:     g.cfg.Enemy.Height,
		Color: g.colors.enemy,
	}
}

// Step advances the game by one tick using the held keys in `in`.
// Collectible events that came due on the wall clock are applied first, even
// when the game is paused or over.
func (g *Game) Step(in core.InputState) core.StepResult {
	g.applyDotEvents(g.clock.Now())

	s := &g.session
	if s.GameOver || s.Paused {
		return core.StepResult{State: g.State()}
	}

	s.Ticks++

	if g.growth.Due(g.Elapsed()) {
		g.spawnEnemy()
	}

	g.movePlayer(in)

	// Check enemy collisions
	playerRect := s.Player.Rect()
	for _, e := range s.Enemies {
		if playerRect.Intersects(e.Rect()) {
			g.endSession()
			return core.StepResult{State: g.State()}
		}
	}

	// Check collectible pickup
	if s.Dot.Visible && playerRect.Intersects(s.Dot.Rect()) {
		s.Score++
		s.Dot.Visible = false
		g.logger.Info("collected dot", "score", s.Score)
	}

	return core.StepResult{State: g.State()}
}

// movePlayer applies held directions and keeps the player on the canvas.
// Diagonals are the sum of both axes, not normalized.
func (g *Game) movePlayer(in core.InputState) {
	p := &g.session.Player
	if in.Pressed(core.KeyUp) {
		p.Y -= p.Speed
	}
	if in.Pressed(core.KeyDown) {
		p.Y += p.Speed
	}
	if in.Pressed(core.KeyLeft) {
		p.X -= p.Speed
	}
	if in.Pressed(core.KeyRight) {
		p.X += p.Speed
	}

	r := p.Rect().ClampInto(g.cfg.Canvas.Width, g.cfg.Canvas.Height)
	p.X, p.Y = r.X, r.Y
}

func (g *Game) spawnEnemy() {
	x, y := g.spawner.RandomPosition(g.cfg.Enemy.Width, g.cfg.Enemy.Height)
	g.session.Enemies = append(g.session.Enemies, g.newEnemy(x, y))
	g.logger.Debug("enemy spawned", "x", x, "y", y, "enemies", len(g.session.Enemies))
}

func (g *Game) endSession() {
	s := &g.session
	s.GameOver = true
	s.History = append(s.History, HistoryEntry{Score: s.Score, Duration: g.Elapsed()})
	g.logger.Info("game over", "score", s.Score, "elapsed", g.Elapsed(), "game", len(s.History))
}

func (g *Game) applyDotEvents(now time.Time) {
	for _, ev := range g.dots.Due(now) {
		switch ev {
		case DotShow:
			d := &g.session.Dot
			d.X, d.Y = g.spawner.RandomPosition(d.Size, d.Size)
			d.Visible = true
		case DotHide:
			g.session.Dot.Visible = false
		}
	}
}

// TogglePause pauses or resumes a running session. It does nothing once the
// game is over.
func (g *Game) TogglePause() {
	if g.session.GameOver {
		return
	}
	g.session.Paused = !g.session.Paused
}

// Elapsed returns the game time of the current session. It is derived from the
// tick count so that it never drifts.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.session.Ticks) * time.Second / time.Duration(g.cfg.TickRate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Elapsed:  g.Elapsed(),
		GameOver: g.session.GameOver,
		Paused:   g.session.Paused,
	}
}

// History returns a copy of the finished games, oldest first.
func (g *Game) History() []HistoryEntry {
	return append([]HistoryEntry(nil), g.session.History...)
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}
