package loop

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
)

// fakeGame ends after a fixed number of steps.
type fakeGame struct {
	steps    int
	endAfter int
	resets   int
	renders  int
	paused   bool
}

func (g *fakeGame) Reset() {
	g.resets++
	g.steps = 0
	g.paused = false
}

func (g *fakeGame) Step(core.InputState) core.StepResult {
	if !g.paused && g.steps < g.endAfter {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(core.Surface) { g.renders++ }

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.steps, GameOver: g.steps >= g.endAfter, Paused: g.paused}
}

func (g *fakeGame) TogglePause() { g.paused = !g.paused }

func newTestSurface() core.Surface {
	return core.NewCanvasSurface(core.NewScreen(80, 24), 800, 600)
}

func TestFrameStopsOnGameOver(t *testing.T) {
	g := &fakeGame{endAfter: 3}
	d := NewDriver(g, newTestSurface(), nil)

	for i := 1; i <= 2; i++ {
		if !d.Frame(core.NewInputState()) {
			t.Fatalf("Frame() %d = false, expected true", i)
		}
	}
	if d.Frame(core.NewInputState()) {
		t.Error("Frame() on game over = true, expected false")
	}
	if d.Status() != Stopped {
		t.Errorf("Status() = %v, expected %v", d.Status(), Stopped)
	}

	// A stopped loop ignores late frames
	if d.Frame(core.NewInputState()) {
		t.Error("Frame() after stop = true, expected false")
	}
	if d.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", d.Frames())
	}
	if g.renders != 3 {
		t.Errorf("renders = %d, expected 3", g.renders)
	}
}

func TestRestartResumesLoop(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	d := NewDriver(g, newTestSurface(), nil)

	d.Frame(core.NewInputState())
	if d.Status() != Stopped {
		t.Fatal("expected stopped loop")
	}

	if !d.Restart() {
		t.Error("Restart() from stopped = false, expected true")
	}
	if d.Status() != Running {
		t.Errorf("Status() = %v after restart, expected %v", d.Status(), Running)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}

	// Restarting a running loop resets without asking for a new schedule
	if d.Restart() {
		t.Error("Restart() while running = true, expected false")
	}
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
}

func TestTogglePauseKeepsRunning(t *testing.T) {
	g := &fakeGame{endAfter: 10}
	d := NewDriver(g, newTestSurface(), nil)

	d.TogglePause()
	for i := 0; i < 20; i++ {
		if !d.Frame(core.NewInputState()) {
			t.Fatal("paused loop should keep running")
		}
	}
	if !d.State().Paused || g.steps != 0 {
		t.Errorf("paused game advanced: %+v", d.State())
	}
}

func TestDriverWithDodge(t *testing.T) {
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	game, err := dodge.New(dodge.Options{Config: config.Default(), Seed: 1, Clock: clock})
	if err != nil {
		t.Fatalf("dodge.New() failed: %v", err)
	}
	screen := core.NewScreen(80, 24)
	d := NewDriver(game, core.NewCanvasSurface(screen, 800, 600), nil)

	down := core.NewInputState()
	down.Set(core.KeyDown, true)
	right := core.NewInputState()
	right.Set(core.KeyRight, true)

	for i := 0; i < 31; i++ {
		if !d.Frame(down) {
			t.Fatalf("frame %d ended the game early", i)
		}
	}
	frames := 0
	for d.Frame(right) {
		frames++
		if frames > 1000 {
			t.Fatal("player never reached the enemy")
		}
	}

	if !d.State().GameOver {
		t.Fatal("expected game over")
	}
	if got := screen.Row(11); !strings.Contains(got, "Game Over") {
		t.Errorf("row 11 = %q, expected Game Over", got)
	}

	d.Restart()
	if d.State().GameOver || d.State().Score != 0 {
		t.Errorf("state after restart = %+v", d.State())
	}
	if got := screen.Row(3); !strings.Contains(got, "Game 1: 0") {
		t.Errorf("row 3 = %q, expected scoreboard entry", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s        Status
		expected string
	}{
		{Running, "running"},
		{Stopped, "stopped"},
		{Status(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.expected {
			t.Errorf("Status(%d).String() = %q, expected %q", tt.s, got, tt.expected)
		}
	}
}
