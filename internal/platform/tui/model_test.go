package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
)

func newTestModel(t *testing.T, cfg config.Config) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m, err := NewModel(Options{Config: cfg, Seed: 1, Width: 80, Height: 25, Clock: clock})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// collidingConfig puts the enemy on top of the player so the first frame ends
// the game.
func collidingConfig() config.Config {
	cfg := config.Default()
	cfg.Enemy.X, cfg.Enemy.Y = cfg.Player.X, cfg.Player.Y
	return cfg
}

func TestInitSchedulesFrame(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	if m.Init() == nil {
		t.Error("Init() = nil, expected a frame command")
	}
}

func TestFrameSchedulesWhileRunning(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	for i := 0; i < 5; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, FrameMsg{})
		if cmd == nil {
			t.Fatalf("frame %d: no next frame scheduled", i)
		}
	}
	if m.Game().Snapshot().Tick != 5 {
		t.Errorf("Tick = %d, expected 5", m.Game().Snapshot().Tick)
	}
}

func TestGameOverStopsFrames(t *testing.T) {
	m, _ := newTestModel(t, collidingConfig())

	m, cmd := update(t, m, FrameMsg{})
	if cmd != nil {
		t.Error("frame ending the game should not schedule another")
	}
	if !m.Game().State().GameOver {
		t.Fatal("expected game over")
	}
	if !strings.Contains(m.View(), "Game Over") {
		t.Error("View() should show Game Over")
	}

	// Late ticks are ignored
	before := m.Game().Snapshot()
	if _, cmd = update(t, m, FrameMsg{}); cmd != nil {
		t.Error("stale frame should not reschedule")
	}
	if after := m.Game().Snapshot(); after != before {
		t.Errorf("stale frame changed state: %+v -> %+v", before, after)
	}
}

func TestRestartKeyResumesFrames(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"r", runeKey('r')},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, collidingConfig())
			m, _ = update(t, m, FrameMsg{})

			m, cmd := update(t, m, tt.msg)
			if cmd == nil {
				t.Error("restart should schedule frames again")
			}
			if m.Game().State().GameOver {
				t.Error("game still over after restart")
			}
			if h := m.Game().History(); len(h) != 1 {
				t.Errorf("history length = %d, expected 1", len(h))
			}
		})
	}
}

// steerIntoEnemy drives the player down and then right into the default
// enemy, returning the model once the frame loop has stopped.
func steerIntoEnemy(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	for i := 0; i < 31; i++ {
		m, _ = update(t, m, FrameMsg{})
	}
	m.tracker.Reset()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 100; i++ {
		var cmd tea.Cmd
		if m, cmd = update(t, m, FrameMsg{}); cmd == nil {
			return m
		}
	}
	t.Fatal("player never reached the enemy")
	return m
}

func TestRestartMidGame(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	m = steerIntoEnemy(t, m)
	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart after game over should schedule frames")
	}

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
		m, _ = update(t, m, FrameMsg{})
	}
	if s := m.Game().Snapshot(); s.Tick != 10 || s.PlayerX == 100 {
		t.Fatalf("second game did not run: %+v", s)
	}

	m, cmd = update(t, m, runeKey('r'))
	if cmd != nil {
		t.Error("restart while running should not start a second frame chain")
	}

	s := m.Game().Snapshot()
	if s.Tick != 0 || s.Score != 0 || s.GameOver {
		t.Errorf("restart did not reset the session: %+v", s)
	}
	if s.Enemies != 1 || s.PlayerX != 100 || s.PlayerY != 100 {
		t.Errorf("restart did not reset positions: %+v", s)
	}
	if h := m.Game().History(); len(h) != 1 {
		t.Errorf("history length = %d, expected 1 (only finished games)", len(h))
	}

	// The pending frame keeps the single chain going
	m, cmd = update(t, m, FrameMsg{})
	if cmd == nil || m.Game().Snapshot().Tick != 1 {
		t.Error("frame loop should continue after a mid-game restart")
	}
}

func TestDirectionKeyHeldForWindow(t *testing.T) {
	m, clock := newTestModel(t, config.Default())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, FrameMsg{})
	m, _ = update(t, m, FrameMsg{})
	if y := m.Game().Snapshot().PlayerY; y != 110 {
		t.Errorf("PlayerY = %v after two held frames, expected 110", y)
	}

	clock.Advance(config.Default().Input.Hold + 50*time.Millisecond)
	m, _ = update(t, m, FrameMsg{})
	if y := m.Game().Snapshot().PlayerY; y != 110 {
		t.Errorf("PlayerY = %v after the key expired, expected 110", y)
	}

	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, FrameMsg{})
	if x := m.Game().Snapshot().PlayerX; x != 105 {
		t.Errorf("PlayerX = %v after d, expected 105", x)
	}
}

func TestPauseKey(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m, _ = update(t, m, runeKey('p'))
	if !m.Game().State().Paused {
		t.Fatal("p should pause")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show PAUSED")
	}

	m, cmd := update(t, m, FrameMsg{})
	if cmd == nil {
		t.Error("frames keep running while paused")
	}
	if m.Game().Snapshot().Tick != 0 {
		t.Error("paused game should not tick")
	}

	m, _ = update(t, m, runeKey('p'))
	if m.Game().State().Paused {
		t.Error("second p should resume")
	}
}

func TestScoreboardToggle(t *testing.T) {
	m, _ := newTestModel(t, collidingConfig())
	m, _ = update(t, m, FrameMsg{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()
	if !strings.Contains(view, "SCOREBOARD") {
		t.Fatalf("View() = %q, expected scoreboard", view)
	}
	if !strings.Contains(view, "Best: 0") {
		t.Errorf("scoreboard should show the best score, got %q", view)
	}

	// Game keys are not handled while the scoreboard is shown
	m, cmd := update(t, m, runeKey('r'))
	if cmd != nil || !m.Game().State().GameOver {
		t.Error("restart should be ignored on the scoreboard")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if strings.Contains(m.View(), "SCOREBOARD") {
		t.Error("second tab should return to the game")
	}
}

func TestHelpToggleResizesPlayfield(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	if m.screen.Height() != 24 {
		t.Fatalf("playfield height = %d, expected 24", m.screen.Height())
	}

	m, _ = update(t, m, runeKey('?'))
	if m.screen.Height() != 21 {
		t.Errorf("playfield height with full help = %d, expected 21", m.screen.Height())
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.screen.Row(0), "Score: 0") {
		t.Errorf("row 0 = %q, expected the redrawn HUD", m.screen.Row(0))
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestBestGame(t *testing.T) {
	tests := []struct {
		name     string
		history  []dodge.HistoryEntry
		expected int
	}{
		{"empty", nil, -1},
		{"single", []dodge.HistoryEntry{{Score: 2}}, 0},
		{"highest", []dodge.HistoryEntry{{Score: 1}, {Score: 5}, {Score: 3}}, 1},
		{"earliest tie", []dodge.HistoryEntry{{Score: 4}, {Score: 4}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestGame(tt.history); got != tt.expected {
				t.Errorf("bestGame() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hi", core.ColorRed)
	s.Set(3, 1, 'x', core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "x") {
		t.Errorf("RenderScreen() = %q, missing text", out)
	}
	if lines := strings.Count(out, "\n"); lines != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", lines)
	}
}
