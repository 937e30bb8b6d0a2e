// Package galaga adapts the shooter simulation to the terminal platform.
// The player ship fights a small wing of randomly drifting enemies; every
// kill scores a point and a hit from an enemy bullet resets the score.
package galaga

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/registry"
	"github.com/vovakirdan/tui-galaga/internal/shooter"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game event logging to l. A nil logger silences it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig resolves the configuration the next Reset will use.
func LoadConfig() (config.GalagaConfig, error) {
	cfg, err := config.Load(configPath)
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg, err
}

// Game implements registry.Game on top of shooter.Simulation.
type Game struct {
	sim     *shooter.Simulation
	cfg     config.GalagaConfig
	runtime core.RuntimeConfig
	snap    shooter.Snapshot
	paused  bool
}

// New creates a new Galaga game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "galaga"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Galaga"
}

// Reset starts a new session. The arena size comes from the config, not the
// terminal, so resizing the window never changes the simulation.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("using default config", "error", err)
	}

	g.runtime = runtime
	g.cfg = cfg
	g.paused = false
	g.sim = shooter.New(cfg, runtime)
	g.sim.Snapshot(&g.snap)

	logger.Info("session started",
		"seed", runtime.Seed,
		"tick_rate", runtime.TickRate,
		"arena", fmt.Sprintf("%gx%g", cfg.Arena.Width, cfg.Arena.Height),
		"enemy_max", cfg.Enemy.Max,
		"difficulty", string(difficultyPreset),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	ev := g.sim.Tick(inputFromFrame(in))
	g.logEvents(ev)
	g.sim.Snapshot(&g.snap)

	return core.StepResult{State: g.State()}
}

// inputFromFrame maps platform actions onto simulation input.
func inputFromFrame(in core.InputFrame) shooter.Input {
	return shooter.Input{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		MoveUp:    in.Has(core.ActionUp),
		MoveDown:  in.Has(core.ActionDown),
		Fire:      in.Has(core.ActionFire),
	}
}

func (g *Game) logEvents(ev shooter.TickEvents) {
	if ev.PlayerRespawn {
		logger.Debug("player respawned", "tick", ev.Tick)
	}
	if ev.EnemySpawned {
		logger.Debug("enemy spawned", "tick", ev.Tick, "live", g.sim.LiveEnemies())
	}
	if ev.Kills > 0 {
		logger.Debug("enemy destroyed", "tick", ev.Tick, "kills", ev.Kills, "score", g.sim.Score())
	}
	if ev.PlayerDied {
		logger.Info("player destroyed", "tick", ev.Tick, "time", g.sim.Now())
	}
}

// Snapshot returns the state published after the last tick.
func (g *Game) Snapshot() shooter.Snapshot {
	return g.snap
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.GalagaConfig {
	return g.cfg
}

// State returns the current game state. The game has no terminal state;
// dying only costs the score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		GameOver: false,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("galaga", func() registry.Game {
		return New()
	})
}
