package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/shooter"
)

var (
	flagTicks     int
	flagFireEvery int
	flagProfile   string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the simulation headless and report stats",
	Long: `Runs the simulation without a terminal UI, driven by an autopilot that
sweeps the ship across the arena and fires at a fixed cadence. Prints
kills, deaths and throughput when done.

Profiles are written to the current directory.

Examples:
  galaga bench
  galaga bench --ticks 1000000 --seed 7
  galaga bench --profile cpu
  galaga bench --difficulty hard --fire-every 5`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	addGameConfigFlags(benchCmd)
	benchCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Number of ticks to simulate")
	benchCmd.Flags().IntVar(&flagFireEvery, "fire-every", 10, "Autopilot fires once every N ticks (0 = never)")
	benchCmd.Flags().StringVar(&flagProfile, "profile", "", "Profile mode: cpu, mem, allocs, trace")
}

// benchStats accumulates tick events over a headless run.
type benchStats struct {
	Ticks        int
	Kills        int
	Deaths       int
	BestScore    int
	PlayerShots  int
	EnemyShots   int
	EnemySpawns  int
	Respawns     int
	Bounces      int
	PeakEntities int
}

func (s *benchStats) add(ev shooter.TickEvents, score, entities int) {
	s.Ticks++
	s.Kills += ev.Kills
	s.PlayerShots += ev.PlayerShots
	s.EnemyShots += ev.EnemyShots
	s.Bounces += ev.Bounced
	if ev.PlayerDied {
		s.Deaths++
	}
	if ev.EnemySpawned {
		s.EnemySpawns++
	}
	if ev.PlayerRespawn {
		s.Respawns++
	}
	s.BestScore = max(s.BestScore, score)
	s.PeakEntities = max(s.PeakEntities, entities)
}

// autopilot sweeps left and right across the arena and fires every
// fireEvery ticks.
func autopilot(tick, fireEvery int) shooter.Input {
	const sweep = 120
	phase := tick % (2 * sweep)
	return shooter.Input{
		MoveLeft:  phase < sweep,
		MoveRight: phase >= sweep,
		Fire:      fireEvery > 0 && tick%fireEvery == 0,
	}
}

// simulate runs ticks steps of sim under the autopilot.
func simulate(sim *shooter.Simulation, ticks, fireEvery int) benchStats {
	var stats benchStats
	for i := 0; i < ticks; i++ {
		ev := sim.Tick(autopilot(i, fireEvery))
		stats.add(ev, sim.Score(), sim.Store().Len())
	}
	return stats
}

// profileMode maps a --profile value to a pkg/profile option.
func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "allocs":
		return profile.MemProfileAllocs, nil
	case "trace":
		return profile.TraceProfile, nil
	}
	return nil, fmt.Errorf("unknown profile mode %q", name)
}

func runBench(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}

	if flagProfile != "" {
		mode, err := profileMode(flagProfile)
		if err != nil {
			return err
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	logger.Info("bench started", "ticks", flagTicks, "seed", seed, "fps", rt.TickRate, "enemy_max", cfg.Enemy.Max)

	sim := shooter.New(cfg, rt)
	start := time.Now()
	stats := simulate(sim, flagTicks, flagFireEvery)
	elapsed := time.Since(start)

	logger.Info("bench finished",
		"elapsed", elapsed.Round(time.Millisecond),
		"ticks_per_sec", int(float64(stats.Ticks)/elapsed.Seconds()),
		"sim_seconds", fmt.Sprintf("%.1f", sim.Now()),
	)

	fmt.Printf("ticks          %d\n", stats.Ticks)
	fmt.Printf("kills          %d\n", stats.Kills)
	fmt.Printf("deaths         %d\n", stats.Deaths)
	fmt.Printf("best score     %d\n", stats.BestScore)
	fmt.Printf("player shots   %d\n", stats.PlayerShots)
	fmt.Printf("enemy shots    %d\n", stats.EnemyShots)
	fmt.Printf("enemy spawns   %d\n", stats.EnemySpawns)
	fmt.Printf("respawns       %d\n", stats.Respawns)
	fmt.Printf("bounces        %d\n", stats.Bounces)
	fmt.Printf("peak entities  %d\n", stats.PeakEntities)
	return nil
}
