package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  Arrows/WASD  - Move
  P            - Pause
  R/Enter      - Restart
  Tab          - Scoreboard
  ?            - Help
  Q/Ctrl+C     - Quit

Examples:
  dodge play
  dodge play --seed 7
  dodge play --config ./my-dodge.yaml --log-file dodge.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// playOptions carries the command-line settings for a game run.
type playOptions struct {
	configPath string
	fps        int
	seed       int64
	logFile    string
	logLevel   string
}

func runPlay(cmd *cobra.Command, args []string) {
	opts := playOptions{
		configPath: flagConfig,
		fps:        flagFPS,
		seed:       flagSeed,
		logFile:    flagLogFile,
		logLevel:   flagLogLevel,
	}
	if err := play(opts, tui.Run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play sets up logging and config, then hands over to run. The log file is
// closed before play returns, on every path.
func play(opts playOptions, run func(tui.Options) error) error {
	logger, closer, err := newLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, source, err := loadSettings(opts.configPath, opts.fps)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}
	logger.Info("config loaded", "source", source, "tick_rate", cfg.TickRate)

	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = run(tui.Options{
		Config: cfg,
		Seed:   opts.seed,
		Width:  width,
		Height: height,
		Logger: logger,
	})
	if err != nil {
		logger.Error("game exited", "err", err)
		return err
	}
	return nil
}
