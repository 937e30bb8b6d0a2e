package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultGalagaConfig()
	if cfg.Arena != def.Arena {
		t.Errorf("arena = %+v, expected %+v", cfg.Arena, def.Arena)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Enemy.Max != def.Enemy.Max || cfg.Enemy.Jitter != def.Enemy.Jitter {
		t.Errorf("enemy = %+v, expected %+v", cfg.Enemy, def.Enemy)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaga.yaml")
	data := []byte("enemy:\n  max: 7\nplayer:\n  respawn_time: 4.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Enemy.Max != 7 {
		t.Errorf("enemy.max = %d, expected 7", cfg.Enemy.Max)
	}
	if cfg.Player.RespawnTime != 4.5 {
		t.Errorf("player.respawn_time = %g, expected 4.5", cfg.Player.RespawnTime)
	}
	// Untouched keys keep their defaults
	if cfg.Arena.Height != 1000 {
		t.Errorf("arena.height = %g, expected default 1000", cfg.Arena.Height)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("enemy:\n  maxx: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should reject unknown keys")
	}
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg.Enemy.Max != DefaultGalagaConfig().Enemy.Max {
		t.Errorf("enemy.max = %d, expected default", cfg.Enemy.Max)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GalagaConfig)
		errSub string
	}{
		{"zero arena", func(c *GalagaConfig) { c.Arena.Width = 0 }, "arena size"},
		{"negative enemy cap", func(c *GalagaConfig) { c.Enemy.Max = -1 }, "enemy.max"},
		{"fire chance above one", func(c *GalagaConfig) { c.Enemy.FireChance = 2 }, "fire_chance"},
		{"zero interval", func(c *GalagaConfig) { c.Enemy.SpawnInterval = 0 }, "intervals"},
		{"arena narrower than player", func(c *GalagaConfig) { c.Arena.Width = 20 }, "narrower"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGalagaConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("error %q should mention %q", err, tc.errSub)
			}
		})
	}

	if err := DefaultGalagaConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultGalagaConfig()
	cfg.Enemy.Max = 4

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "max: 4") {
		t.Errorf("marshalled YAML should contain the override:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back.Enemy.Max != 4 {
		t.Errorf("enemy.max = %d after round trip, expected 4", back.Enemy.Max)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGalagaConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Enemy.Max != 5 {
		t.Errorf("hard preset enemy.max = %d, expected 5", cfg.Enemy.Max)
	}

	cfg = DefaultGalagaConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultGalagaConfig()
	ApplyPreset(&cfg, "")
	if cfg != DefaultGalagaConfig() {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("ParsePreset(easy) failed")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}
