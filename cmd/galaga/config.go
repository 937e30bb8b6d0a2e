package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaga/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML, after the
config file search and the difficulty preset are applied. The output is a
valid config file.

Examples:
  galaga config > ~/.galaga/configs/galaga.yaml
  galaga config --difficulty hard
  galaga config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameConfigFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded defaults and ignore config files")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// loadGameConfig resolves --config and --difficulty into a configuration.
// A broken custom config file is an error; missing defaults are not.
func loadGameConfig() (config.GalagaConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.GalagaConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil && flagConfig != "" {
		return cfg, err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	return cfg, nil
}
