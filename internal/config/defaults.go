package config

import (
	_ "embed"
)

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

// DefaultFarmConfig returns the built-in farm configuration. It mirrors
// defaults/farm.yaml and is used when the embedded file cannot be parsed.
func DefaultFarmConfig() FarmConfig {
	return FarmConfig{
		Farmer: FarmerConfig{
			Glyph:        "👨‍🌾",
			Speed:        20,
			CarryFactor:  0.7,
			PickupRadius: 0.5,
			DropOffsetX:  2,
			DropOffsetY:  1,
		},
		Arena: ArenaConfig{
			HUDRows:    2,
			FooterRows: 1,
			FenceInset: 1,
			Padding:    1,
			ItemMargin: 1,
			MinWidth:   24,
			MinHeight:  8,
		},
		Zone: ZoneConfig{
			Glyph:  "🏠",
			Width:  10,
			Height: 4,
		},
		Spawn: SpawnConfig{
			BaseMin:     3,
			MinStep:     2,
			BaseMax:     7,
			MaxStep:     4,
			ZoneRerolls: 8,
		},
		Scoring: ScoringConfig{
			DepositPoints:    1,
			BonusStepSeconds: 5,
			BonusPoints:      10,
		},
		Timing: TimingConfig{
			TransitionDelay: 2,
			FloatingTextTTL: 1,
		},
		Effects: EffectsConfig{
			MinParticles: 8,
			MaxParticles: 20,
			Gravity:      9,
			Drag:         0.3,
			Kinds: []ParticleKindConfig{
				{Name: "sparkle", Glyphs: []string{"✨", "⭐", "🌟"}, Duration: 0.8, Spread: 2, Speed: 6, Lift: 6},
				{Name: "hearts", Glyphs: []string{"💖", "💕", "💗"}, Duration: 1.2, Spread: 1.5, Speed: 3, Lift: 5},
				{Name: "leaves", Glyphs: []string{"🍃", "🌿", "🍀"}, Duration: 1.5, Spread: 3, Speed: 4, Lift: 3},
				{Name: "confetti", Glyphs: []string{"🎉", "🎊", "✨"}, Duration: 1.0, Spread: 2.5, Speed: 8, Lift: 8},
			},
		},
		Animals: []string{"🐑", "🐖", "🐄", "🐔"},
		Levels: []LevelConfig{
			{Name: "Sheep Roundup", Emoji: "🐑", TargetTime: 30, WanderSpeed: 4},
			{Name: "Corn Harvest", Emoji: "🌽", TargetTime: 40, WanderSpeed: 0},
			{Name: "Pig Push", Emoji: "🐖", TargetTime: 50, WanderSpeed: 3},
			{Name: "Egg Collect", Emoji: "🥚", TargetTime: 60, WanderSpeed: 0},
			{Name: "Cow Parade", Emoji: "🐄", TargetTime: 70, WanderSpeed: 2.5},
			{Name: "Chicken Chase", Emoji: "🐔", TargetTime: 80, WanderSpeed: 5},
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Scaling: ScalingConfig{
				SpeedMultiplier:      1,
				TargetTimeMultiplier: 1,
				WanderMultiplier:     1,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFarmYAML
}
