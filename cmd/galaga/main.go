// galaga is a Galaga-style vertical shooter that runs in the terminal.
//
// Usage:
//
//	galaga play              - Play (shows a difficulty menu unless --difficulty is set)
//	galaga list              - List available games
//	galaga bench             - Run the simulation headless and report stats
//	galaga config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file while the game owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-galaga/internal/games/galaga"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Shared by play, bench and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaga",
	Short: "Galaga - a vertical shooter in your terminal",
	Long: `Galaga is a terminal vertical shooter. Steer your ship along the bottom
of the arena, shoot down the drifting enemy wing and dodge its fire.
Every kill scores a point; getting hit resets the score.

Available commands:
  play     - Play the game
  list     - Show all available games
  bench    - Run the simulation headless
  config   - Print the effective configuration

Examples:
  galaga play
  galaga play --difficulty hard
  galaga play --seed 42 --log-level debug --log-file galaga.log
  galaga bench --ticks 100000 --profile cpu
  galaga config --difficulty easy`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (play discards logs when unset)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameConfigFlags registers the flags that select a game configuration.
func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}
