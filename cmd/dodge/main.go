// dodge is a terminal arcade game: steer a square around the field, avoid the
// red enemies and grab the green dot while it is visible.
//
// Usage:
//
//	dodge              - Play
//	dodge play         - Play
//	dodge config       - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--config <path>       - Load a custom config YAML
//	--log-file <path>     - Write logs to a file (discarded by default)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - avoid the enemies, catch the dot",
	Long: `Dodge is a small arcade game for the terminal.

Move the blue square with the arrow keys (or WASD). Touching a red enemy
ends the game. A green dot shows up every few seconds and is worth one
point if you reach it before it disappears. Every 30 seconds another
enemy joins.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  dodge
  dodge --seed 42
  dodge play --config ./my-dodge.yaml
  dodge config > ~/.dodge/dodge.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
