package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{FireRateMultiplier: 1.0},
	})

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(0, tc.ticks); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(0, %d) = %f, expected %f", tc.ticks, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Level(100, 100); got != 0.5 {
		t.Errorf("Level() = %f, expected initial level 0.5", got)
	}
}

func TestDifficultyFireChance(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{FireRateMultiplier: 2.0},
	})

	if got := d.FireChance(0.1, 0, 0); got != 0.1 {
		t.Errorf("FireChance at level 0 = %f, expected 0.1", got)
	}
	if got := d.FireChance(0.1, 10, 0); got < 0.2999 || got > 0.3001 {
		t.Errorf("FireChance at max level = %f, expected 0.3", got)
	}
	if got := d.FireChance(0.9, 10, 0); got != 1.0 {
		t.Errorf("FireChance should cap at 1, got %f", got)
	}
}
