// Package runner implements a side-scrolling coin runner.
// The character jumps and ducks past ground obstacles, collects ordinary and
// premium coins, and earns a bonus from banner planes flying overhead.
package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/puku-runner/internal/assets"
	"github.com/vovakirdan/puku-runner/internal/config"
	"github.com/vovakirdan/puku-runner/internal/core"
	"github.com/vovakirdan/puku-runner/internal/registry"
)

// Mode selects the session rules.
type Mode string

const (
	ModeEndless Mode = "runner"      // Play until an obstacle is hit
	ModeGoal    Mode = "runner_goal" // Also ends with a win once the coin targets are reached
)

var (
	loadedConfig  *config.RunnerConfig
	scrollProfile config.ScrollProfile
	loadedSheet   *assets.Sheet
)

// SetConfig sets the config used by games created with New.
// With nil, Reset searches the default config locations.
func SetConfig(cfg *config.RunnerConfig) {
	loadedConfig = cfg
}

// SetScrollProfile overrides the config's scroll profile. Empty keeps the config's value.
func SetScrollProfile(profile config.ScrollProfile) {
	scrollProfile = profile
}

// SetSpriteSheet sets the sprite sheet used by games created with New.
// With nil, the embedded sheet is used.
func SetSpriteSheet(sheet *assets.Sheet) {
	loadedSheet = sheet
}

// Game implements the runner.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	sheet   *assets.Sheet
	rng     Rand

	fixed     bool // Config, sheet and rng were supplied by NewGame
	character *Character
	spawner   *Spawner
	lifecycle *Lifecycle
	scroll    *config.ScrollManager
	bg        Background
	session   Session
	paused    bool
}

// New creates a game that picks up its config and sprites on Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// NewGame creates a game with an explicit config, sprite sheet and random source.
// A nil sheet uses the embedded one; a nil rng is seeded from the clock.
func NewGame(mode Mode, cfg config.RunnerConfig, sheet *assets.Sheet, rng Rand) *Game {
	if sheet == nil {
		sheet = assets.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		mode:  mode,
		sheet: sheet,
		rng:   rng,
		fixed: true,
	}
	g.configure(cfg)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeGoal {
		return "Puku Runner (coin goal)"
	}
	return "Puku Runner"
}

// Reset prepares the game and shows the start screen. The best score is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg := config.DefaultRunnerConfig()
		if loadedConfig != nil {
			cfg = *loadedConfig
		} else if found, err := config.LoadRunner(""); err == nil {
			cfg = found
		}
		config.ApplyScrollProfile(&cfg, scrollProfile)

		g.sheet = assets.Default()
		if loadedSheet != nil {
			g.sheet = loadedSheet
		}

		seed := runtime.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
		g.configure(cfg)
	}

	g.session.Phase = PhaseStart
	g.paused = false
	g.clearWorld()
}

// configure builds the simulation components for a config.
func (g *Game) configure(cfg config.RunnerConfig) {
	if g.mode == ModeGoal {
		config.ApplyGoalMode(&cfg)
	}
	g.cfg = cfg
	g.character = NewCharacter(cfg)
	g.spawner = NewSpawner(g.rng, &g.cfg, g.sheet)
	g.lifecycle = NewLifecycle()
	g.scroll = config.NewScrollManager(cfg.Scroll, cfg.Physics.GroundSpeed)
	g.bg = Background{Width: cfg.World.BackgroundWidth}
}

// clearWorld puts every simulation component back to its initial state.
func (g *Game) clearWorld() {
	g.character.Reset()
	g.spawner.Reset()
	g.lifecycle.Clear()
	g.bg.Offset = 0
}

// restart begins a new session from the start or game over screen.
func (g *Game) restart() {
	g.clearWorld()
	g.paused = false
	g.session.Begin()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	if g.session.Phase != PhasePlaying {
		if in.Has(core.ActionConfirm) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.advance(in)

	return core.StepResult{State: g.State()}
}

// advance runs one tick of play.
func (g *Game) advance(in core.InputFrame) {
	s := &g.session
	s.Ticks++

	g.character.SetDucking(in.Has(core.ActionDuck))
	if in.Has(core.ActionJump) {
		g.character.Jump()
	}
	g.character.Update()

	if batch := g.spawner.Tick(s.Ticks); !batch.Empty() {
		g.lifecycle.Add(batch)
	}
	g.lifecycle.Advance()

	out := resolveCollisions(g.character, g.lifecycle, g.cfg.Scoring)
	if out.Crashed {
		s.End(false)
		return
	}
	s.Apply(out)
	g.lifecycle.Cull()

	s.Accrue(g.cfg.Scoring.TimeInterval)
	g.bg.Scroll(g.scroll.BackgroundSpeed(s.Ticks))

	if g.goalReached() {
		s.End(true)
	}
}

// goalReached reports whether both coin targets are met.
func (g *Game) goalReached() bool {
	goal := g.cfg.Goal
	if !goal.Enabled() {
		return false
	}
	return g.session.Ordinary >= goal.Ordinary && g.session.Premium >= goal.Premium
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score,
		Best:     s.Best,
		Ordinary: s.Ordinary,
		Premium:  s.Premium,
		Ticks:    s.Ticks,
		GameOver: s.Phase == PhaseGameOver,
		Won:      s.Won,
		Paused:   g.paused,
		Idle:     s.Phase != PhasePlaying,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.session.Phase
}

// Config returns the active config.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Register both modes with the registry
func init() {
	registry.Register(string(ModeEndless), func() registry.Game {
		return New(ModeEndless)
	})
	registry.Register(string(ModeGoal), func() registry.Game {
		return New(ModeGoal)
	})
}
