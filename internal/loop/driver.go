// Package loop drives a game one frame at a time: it polls input, steps the
// simulation, renders, and decides whether another frame should be scheduled.
package loop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/core"
)

// Game is the simulation the driver runs.
type Game interface {
	Reset()
	Step(in core.InputState) core.StepResult
	Render(dst core.Surface)
	State() core.GameState
	TogglePause()
}

// Status tells the host whether frames should keep coming.
type Status int

const (
	Running Status = iota // schedule the next frame
	Stopped               // the session ended; wait for a restart
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Driver owns the frame loop of a single game. It holds no timers: the host
// calls Frame on its own schedule while Status is Running.
type Driver struct {
	game    Game
	surface core.Surface
	logger  *log.Logger
	status  Status
	frames  int64
}

// NewDriver creates a driver rendering game onto surface.
func NewDriver(game Game, surface core.Surface, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:    game,
		surface: surface,
		logger:  logger,
	}
}

// Frame runs one frame: step with the polled input, then render.
// It reports whether the host should schedule another frame.
func (d *Driver) Frame(in core.InputState) bool {
	if d.status == Stopped {
		return false
	}

	res := d.game.Step(in)
	d.frames++
	d.game.Render(d.surface)

	if res.State.GameOver {
		d.status = Stopped
		d.logger.Debug("frame loop stopped", "frames", d.frames, "score", res.State.Score)
		return false
	}
	return true
}

// Restart resets the game and resumes the frame loop. It reports whether the
// loop was stopped, meaning the host must schedule frames again.
func (d *Driver) Restart() bool {
	wasStopped := d.status == Stopped
	d.game.Reset()
	d.status = Running
	d.game.Render(d.surface)
	d.logger.Info("restart", "resumed", wasStopped)
	return wasStopped
}

// TogglePause pauses or resumes the game. Frames keep running while paused.
func (d *Driver) TogglePause() {
	d.game.TogglePause()
	d.game.Render(d.surface)
}

// Redraw renders the current state without stepping.
func (d *Driver) Redraw() {
	d.game.Render(d.surface)
}

// Status returns the loop status.
func (d *Driver) Status() Status {
	return d.status
}

// State returns the game state.
func (d *Driver) State() core.GameState {
	return d.game.State()
}

// Frames returns how many frames have been stepped since creation.
func (d *Driver) Frames() int64 {
	return d.frames
}
