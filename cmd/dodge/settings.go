package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/config"
)

// loadSettings loads the config named by --config (or the default search
// order) and applies command-line overrides.
func loadSettings(configPath string, fps int) (config.Config, string, error) {
	cfg, source, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, "", err
	}
	if fps > 0 {
		cfg.TickRate = fps
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", fmt.Errorf("config: %w", err)
	}
	return cfg, source, nil
}

// newLogger builds the application logger. The terminal belongs to the game,
// so logs go to path or nowhere. The returned closer must be called on exit.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
		Level:           lvl,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
