// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"
)

// GalagaConfig contains all configuration for the Galaga shooter.
type GalagaConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the play area in arena units, origin at the centre.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines movement integration parameters.
type PhysicsConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`      // Arena units per second per unit of velocity
	BoundaryMargin float64 `yaml:"boundary_margin"` // Distance past the arena edge before projectiles despawn
	WallInset      float64 `yaml:"wall_inset"`      // Gap kept between clamped ships and the wall
}

// PlayerConfig defines player ship parameters.
type PlayerConfig struct {
	HalfWidth       float64 `yaml:"half_width"`
	HalfHeight      float64 `yaml:"half_height"`
	Speed           float64 `yaml:"speed"`
	BulletSpeed     float64 `yaml:"bullet_speed"`
	BulletHalfSize  float64 `yaml:"bullet_half_size"`
	RespawnTime     float64 `yaml:"respawn_time"`     // Seconds between death and respawn
	RespawnInterval float64 `yaml:"respawn_interval"` // Seconds between respawn checks
}

// EnemyConfig defines enemy ship parameters.
type EnemyConfig struct {
	Max            int     `yaml:"max"`
	HalfWidth      float64 `yaml:"half_width"`
	HalfHeight     float64 `yaml:"half_height"`
	Jitter         float64 `yaml:"jitter"` // Velocity is re-rolled in [-jitter, jitter) each tick
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletHalfSize float64 `yaml:"bullet_half_size"`
	SpawnInterval  float64 `yaml:"spawn_interval"` // Seconds between spawn attempts
	FireChance     float64 `yaml:"fire_chance"`    // Per-tick probability that the enemy wing fires
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FireRateMultiplier float64 `yaml:"fire_rate_multiplier"` // Added to the fire chance multiplier at max difficulty
}

// Validate checks the configuration for values the simulation cannot run with.
func (c GalagaConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if c.Physics.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.base_speed must be positive, got %g", c.Physics.BaseSpeed))
	}
	if c.Enemy.Max < 0 {
		errs = append(errs, fmt.Errorf("enemy.max must not be negative, got %d", c.Enemy.Max))
	}
	if c.Enemy.SpawnInterval <= 0 || c.Player.RespawnInterval <= 0 {
		errs = append(errs, errors.New("spawn and respawn intervals must be positive"))
	}
	if c.Player.RespawnTime < 0 {
		errs = append(errs, fmt.Errorf("player.respawn_time must not be negative, got %g", c.Player.RespawnTime))
	}
	if c.Enemy.FireChance < 0 || c.Enemy.FireChance > 1 {
		errs = append(errs, fmt.Errorf("enemy.fire_chance must be in [0, 1], got %g", c.Enemy.FireChance))
	}
	minW := 2 * (c.Player.HalfWidth + c.Physics.WallInset)
	if c.Arena.Width > 0 && c.Arena.Width < minW {
		errs = append(errs, fmt.Errorf("arena width %g is narrower than the player clamp band %g", c.Arena.Width, minW))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid galaga config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
