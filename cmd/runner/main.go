// runner is a side-scrolling coin runner played in the terminal.
//
// Usage:
//
//	runner                   - Play the endless mode
//	runner play [mode]       - Play a mode (runner, runner_goal)
//	runner list              - List available modes
//	runner config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a custom game config YAML
//	--scroll <profile>  - Background scroll profile: fixed, performance, ramp
//	--sprites <path>    - Load a custom sprite sheet YAML
//	--log <path>        - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/puku-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagScroll   string
	flagSprites  string
	flagLog      string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Puku Runner - jump, duck and collect coins in your terminal",
	Long: `Puku Runner is a side-scrolling arcade runner for the terminal.
Jump over and duck under obstacles, collect ordinary and premium coins,
and catch the banner plane bonus. Best scores last until the program exits.

Available commands:
  play     - Play a mode (default: runner)
  list     - Show all available modes
  config   - Print the default game config

Examples:
  runner
  runner play runner_goal
  runner --scroll performance
  runner --seed 42 --log runner.log
  runner config > configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScroll, "scroll", "", "Scroll profile: fixed, performance, ramp")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file (logs are discarded when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
