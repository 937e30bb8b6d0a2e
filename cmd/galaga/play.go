package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-galaga/internal/config"
	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/games/galaga"
	"github.com/vovakirdan/tui-galaga/internal/platform/tui"
	"github.com/vovakirdan/tui-galaga/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. The game defaults to "galaga".

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P/Esc        - Pause
  R            - Restart
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Two enemies, quick respawn, fire rate ramps from the bottom
  normal - Fire rate ramps from 30%
  hard   - Five enemies, slow respawn, fire rate ramps from 70%
  fixed  - No progression, stays at config's initial level

Without --difficulty a menu asks for one.

Examples:
  galaga play
  galaga play --difficulty hard
  galaga play --config ./my-galaga.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameConfigFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "galaga"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'galaga list' to see available games", gameID)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The alt screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	preset := flagDifficulty
	if preset == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		chosen, ok, err := tui.RunDifficultyMenu(cfg)
		if err != nil {
			return fmt.Errorf("difficulty menu: %w", err)
		}
		if !ok {
			return nil
		}
		preset = string(chosen)
	}

	galaga.SetConfigPath(flagConfig)
	galaga.SetDifficultyPreset(preset)
	galaga.SetLogger(logger)

	if flagConfig != "" {
		if _, err := galaga.LoadConfig(); err != nil {
			return err
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "game", gameID, "difficulty", preset, "fps", flagFPS, "screen", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
