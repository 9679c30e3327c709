package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty or unknown values
// map to normal.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return p
	default:
		return DifficultyNormal
	}
}

// Presets returns all presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ApplyFarmPreset modifies the config based on a difficulty preset.
// Fixed keeps every level at the first level's spawn range.
func ApplyFarmPreset(cfg *FarmConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = preset != DifficultyFixed

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Scaling = ScalingConfig{
			SpeedMultiplier:      1.25,
			TargetTimeMultiplier: 1.5,
			WanderMultiplier:     0.75,
		}
	case DifficultyHard:
		cfg.Difficulty.Scaling = ScalingConfig{
			SpeedMultiplier:      0.85,
			TargetTimeMultiplier: 0.75,
			WanderMultiplier:     1.3,
		}
	default:
		cfg.Difficulty.Scaling = ScalingConfig{
			SpeedMultiplier:      1,
			TargetTimeMultiplier: 1,
			WanderMultiplier:     1,
		}
	}
}
