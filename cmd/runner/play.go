package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/puku-runner/internal/assets"
	"github.com/vovakirdan/puku-runner/internal/config"
	"github.com/vovakirdan/puku-runner/internal/core"
	"github.com/vovakirdan/puku-runner/internal/games/runner"
	"github.com/vovakirdan/puku-runner/internal/platform/tui"
	"github.com/vovakirdan/puku-runner/internal/registry"
	"github.com/vovakirdan/puku-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: runner).

Modes:
  runner       - Endless run until an obstacle is hit
  runner_goal  - Also won by collecting 47 ordinary and 15 premium coins

Controls:
  Space/Up/W   - Jump (Space/Enter also starts and restarts)
  Down/S       - Duck
  P            - Pause
  Tab          - Runs finished this session (start and game over screens)
  Q/Esc        - Quit
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots

Scroll profiles:
  fixed        - Background scrolls at a constant speed
  performance  - Background scrolls 1.5x faster
  ramp         - Background speeds up a little every tick

Examples:
  runner play
  runner play runner_goal
  runner play --scroll ramp
  runner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := string(runner.ModeEndless)
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available modes.")
		os.Exit(1)
	}

	profile, ok := config.ParseScrollProfile(flagScroll)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown scroll profile %q (want fixed, performance or ramp)\n", flagScroll)
		os.Exit(1)
	}

	// Problems with config or sprites are not fatal; the game falls back to defaults
	gameCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	sheet := loadSprites(os.Stderr, flagSprites)

	runner.SetConfig(&gameCfg)
	runner.SetScrollProfile(profile)
	runner.SetSpriteSheet(sheet)

	logger, closeLog, err := newLogger(flagLog, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The ledger lives in memory and is gone when the program exits
	ledger, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run ledger: %v\n", err)
		ledger = nil
	}

	logger.Info("starting", "mode", gameID, "fps", cfg.TickRate, "seed", cfg.Seed, "scroll", profile)

	runErr := tui.Run(game, ledger, logger, cfg)

	if ledger != nil {
		printSummary(os.Stdout, ledger, gameID)
		ledger.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadSprites reads a custom sprite sheet, warning about anything that falls back.
// An empty path selects the embedded sheet.
func loadSprites(w io.Writer, path string) *assets.Sheet {
	if path == "" {
		return assets.Default()
	}
	sheet, err := assets.Load(path)
	if err != nil {
		fmt.Fprintf(w, "Warning: %v (using built-in sprites)\n", err)
	}
	for _, p := range sheet.Problems {
		fmt.Fprintf(w, "Warning: sprite %s (drawing a placeholder)\n", p)
	}
	return sheet
}

// newLogger opens the log file. With no path logs are discarded,
// since the game owns the terminal while it runs.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// printSummary writes the runs finished during this process.
func printSummary(w io.Writer, ledger *storage.Ledger, mode string) {
	stats, err := ledger.Stats(mode)
	if err != nil || stats.Runs == 0 {
		return
	}

	fmt.Fprintf(w, "Runs this session: %d   Best: %d   Average: %.1f\n", stats.Runs, stats.Best, stats.AvgScore)
	fmt.Fprintf(w, "Coins: %d ordinary, %d premium", stats.Ordinary, stats.Premium)
	if stats.Wins > 0 {
		fmt.Fprintf(w, "   Wins: %d", stats.Wins)
	}
	fmt.Fprintln(w)

	top, err := ledger.TopRuns(mode, 5)
	if err != nil || len(top) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-4s  %6s  %9s  %5s\n", "#", "Score", "Coins", "Ticks")
	for i, r := range top {
		fmt.Fprintf(w, "  %-4d  %6d  %4d/%-4d  %5d\n", i+1, r.Score, r.Ordinary, r.Premium, r.Ticks)
	}
}
