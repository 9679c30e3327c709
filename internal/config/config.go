// Package config provides YAML-based configuration loading and difficulty
// presets for the farm game.
package config

// FarmConfig contains all tunables for the farm game.
// Distances are in terminal cells, speeds in cells per second and times in
// seconds.
type FarmConfig struct {
	Farmer     FarmerConfig     `yaml:"farmer"`
	Arena      ArenaConfig      `yaml:"arena"`
	Zone       ZoneConfig       `yaml:"zone"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     TimingConfig     `yaml:"timing"`
	Effects    EffectsConfig    `yaml:"effects"`
	Animals    []string         `yaml:"animals"` // Item types that wander when the level allows it
	Levels     []LevelConfig    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FarmerConfig defines the controllable character.
type FarmerConfig struct {
	Glyph        string  `yaml:"glyph"`
	Speed        float64 `yaml:"speed"`         // Base walking speed
	CarryFactor  float64 `yaml:"carry_factor"`  // Speed multiplier while carrying
	PickupRadius float64 `yaml:"pickup_radius"` // Pickup and deposit threshold
	DropOffsetX  float64 `yaml:"drop_offset_x"` // Where a swapped-out item lands, relative to the farmer
	DropOffsetY  float64 `yaml:"drop_offset_y"`
}

// ArenaConfig defines how the playable rectangle is derived from the viewport.
type ArenaConfig struct {
	HUDRows    int     `yaml:"hud_rows"`    // Rows reserved above the fence
	FooterRows int     `yaml:"footer_rows"` // Rows reserved below the fence
	FenceInset int     `yaml:"fence_inset"` // Fence thickness
	Padding    int     `yaml:"padding"`     // Gap between fence and playable area
	ItemMargin float64 `yaml:"item_margin"` // Keeps item glyphs off the fence
	MinWidth   int     `yaml:"min_width"`   // Playable area floor for tiny terminals
	MinHeight  int     `yaml:"min_height"`
}

// ZoneConfig defines the farm deposit zone in the arena's top-left corner.
type ZoneConfig struct {
	Glyph  string `yaml:"glyph"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// SpawnConfig defines the per-level spawn count range:
// min = base_min + index*min_step, max = base_max + index*max_step.
type SpawnConfig struct {
	BaseMin     int `yaml:"base_min"`
	MinStep     int `yaml:"min_step"`
	BaseMax     int `yaml:"base_max"`
	MaxStep     int `yaml:"max_step"`
	ZoneRerolls int `yaml:"zone_rerolls"` // Attempts to keep spawns out of the farm zone
}

// ScoringConfig defines deposit points and the completion time bonus.
type ScoringConfig struct {
	DepositPoints    int     `yaml:"deposit_points"`
	BonusStepSeconds float64 `yaml:"bonus_step_seconds"` // Each full step under target time...
	BonusPoints      int     `yaml:"bonus_points"`       // ...is worth this many points
}

// TimingConfig defines delayed events.
type TimingConfig struct {
	TransitionDelay float64 `yaml:"transition_delay"`  // Pause between clearing a level and the next one
	FloatingTextTTL float64 `yaml:"floating_text_ttl"` // Lifetime of "+1" labels
}

// EffectsConfig defines the deposit particle bursts.
type EffectsConfig struct {
	MinParticles int                  `yaml:"min_particles"`
	MaxParticles int                  `yaml:"max_particles"`
	Gravity      float64              `yaml:"gravity"` // Downward acceleration
	Drag         float64              `yaml:"drag"`    // Fraction of velocity kept per second
	Kinds        []ParticleKindConfig `yaml:"kinds"`
}

// ParticleKindConfig defines one burst category.
type ParticleKindConfig struct {
	Name     string   `yaml:"name"`
	Glyphs   []string `yaml:"glyphs"`
	Duration float64  `yaml:"duration"` // Particle lifetime
	Spread   float64  `yaml:"spread"`   // Spawn offset radius
	Speed    float64  `yaml:"speed"`    // Max horizontal launch speed
	Lift     float64  `yaml:"lift"`     // Upward launch bias
}

// LevelConfig is one row of the level table.
type LevelConfig struct {
	Name        string  `yaml:"name"`
	Emoji       string  `yaml:"emoji"`
	TargetTime  float64 `yaml:"target_time"`
	WanderSpeed float64 `yaml:"wander_speed"`
}

// DifficultyConfig defines level progression and preset scaling.
type DifficultyConfig struct {
	Enabled bool          `yaml:"enabled"` // Spawn ranges grow with the level index
	Scaling ScalingConfig `yaml:"scaling"`
}

// ScalingConfig holds multipliers applied on top of the base values.
// Zero means "unset" and is treated as 1.
type ScalingConfig struct {
	SpeedMultiplier      float64 `yaml:"speed_multiplier"`
	TargetTimeMultiplier float64 `yaml:"target_time_multiplier"`
	WanderMultiplier     float64 `yaml:"wander_multiplier"`
}

// Speed returns the effective farmer speed multiplier.
func (s ScalingConfig) Speed() float64 { return orOne(s.SpeedMultiplier) }

// TargetTime returns the effective target time multiplier.
func (s ScalingConfig) TargetTime() float64 { return orOne(s.TargetTimeMultiplier) }

// Wander returns the effective wander speed multiplier.
func (s ScalingConfig) Wander() float64 { return orOne(s.WanderMultiplier) }

func orOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

// IsAnimal reports whether the item type is in the wandering set.
func (c FarmConfig) IsAnimal(itemType string) bool {
	for _, a := range c.Animals {
		if a == itemType {
			return true
		}
	}
	return false
}

// ParticleKind looks up a burst category by name.
func (c FarmConfig) ParticleKind(name string) (ParticleKindConfig, bool) {
	for _, k := range c.Effects.Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return ParticleKindConfig{}, false
}
