package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
	"github.com/vovakirdan/dodge/internal/loop"
)

// Terminal rows kept below the playfield for the short and full help.
const (
	shortHelpLines = 1
	fullHelpLines  = 4
)

// Options configures the game screen.
type Options struct {
	Config config.Config
	Seed   int64       // 0 picks a time-based seed
	Width  int         // initial terminal width
	Height int         // initial terminal height
	Clock  core.Clock  // defaults to SystemClock
	Logger *log.Logger // defaults to a discarding logger
}

// Model is the Bubble Tea model that runs a dodge session.
type Model struct {
	game       *dodge.Game
	driver     *loop.Driver
	screen     *core.Screen
	tracker    *core.KeyTracker
	clock      core.Clock
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	scores     Scoreboard
	interval   time.Duration
	width      int
	height     int
	showScores bool
	quitting   bool
}

// NewModel creates the game and the screen it renders to.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		def := core.DefaultConfig()
		width, height = def.ScreenW, def.ScreenH
	}

	game, err := dodge.New(dodge.Options{
		Config: opts.Config,
		Seed:   opts.Seed,
		Clock:  opts.Clock,
		Logger: opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}

	screen := core.NewScreen(width, max(1, height-shortHelpLines))
	surface := core.NewCanvasSurface(screen, opts.Config.Canvas.Width, opts.Config.Canvas.Height)
	driver := loop.NewDriver(game, surface, opts.Logger)
	driver.Redraw()

	h := help.New()
	h.Width = width

	opts.Logger.Info("session started", "seed", opts.Seed, "cols", width, "rows", height)

	return Model{
		game:     game,
		driver:   driver,
		screen:   screen,
		tracker:  core.NewKeyTracker(opts.Config.Input.Hold),
		clock:    opts.Clock,
		logger:   opts.Logger,
		keys:     DefaultKeyMap(),
		help:     h,
		scores:   NewScoreboard(width, height),
		interval: opts.Config.TickInterval(),
		width:    width,
		height:   height,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		m.showScores = !m.showScores
		if m.showScores {
			m.scores.SetHistory(m.game.History())
		}
		return m, nil
	}

	if m.showScores {
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.driver.TogglePause()
		m.logger.Debug("pause toggled", "paused", m.driver.State().Paused)
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.tracker.Reset()
		// A running loop already has a frame pending
		if m.driver.Restart() {
			return m, frameCmd(m.interval)
		}
		return m, nil
	}

	if k, ok := m.keys.Direction(msg); ok {
		m.tracker.Press(k, m.clock.Now())
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.scores.Resize(msg.Width, msg.Height)
	m.layout()
	return m, nil
}

// layout sizes the playfield to the terminal minus the help area.
func (m *Model) layout() {
	rows := shortHelpLines
	if m.help.ShowAll {
		rows = fullHelpLines
	}
	m.screen.Resize(m.width, max(1, m.height-rows))
	m.driver.Redraw()
}

// handleFrame runs one game frame and schedules the next one while the
// driver keeps running.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.driver.Status() == loop.Stopped {
		return m, nil
	}

	in := m.tracker.Snapshot(m.clock.Now())
	if m.driver.Frame(in) {
		return m, frameCmd(m.interval)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showScores {
		return m.scores.View()
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the running game.
func (m Model) Game() *dodge.Game {
	return m.game
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
