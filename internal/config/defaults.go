package config

import (
	_ "embed"
)

//go:embed defaults/galaga.yaml
var defaultGalagaYAML []byte

// DefaultGalagaConfig returns the default configuration without touching the
// embedded YAML. It mirrors defaults/galaga.yaml.
func DefaultGalagaConfig() GalagaConfig {
	return GalagaConfig{
		Arena: ArenaConfig{
			Width:  400,
			Height: 1000,
		},
		Physics: PhysicsConfig{
			BaseSpeed:      100,
			BoundaryMargin: 10,
			WallInset:      5,
		},
		Player: PlayerConfig{
			HalfWidth:       15,
			HalfHeight:      15,
			Speed:           5,
			BulletSpeed:     10,
			BulletHalfSize:  1.5,
			RespawnTime:     2.0,
			RespawnInterval: 0.5,
		},
		Enemy: EnemyConfig{
			Max:            3,
			HalfWidth:      15,
			HalfHeight:     15,
			Jitter:         7,
			BulletSpeed:    5,
			BulletHalfSize: 1.5,
			SpawnInterval:  0.5,
			FireChance:     1.0 / 60.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000,
			},
			Scaling: ScalingConfig{
				FireRateMultiplier: 2.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGalagaYAML
}
