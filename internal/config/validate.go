package config

import (
	"errors"
	"fmt"
)

// Validate reports every problem in the config at once.
func (c FarmConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Farmer.Speed <= 0 {
		add("farmer.speed must be positive, got %v", c.Farmer.Speed)
	}
	if c.Farmer.CarryFactor <= 0 || c.Farmer.CarryFactor > 1 {
		add("farmer.carry_factor must be in (0, 1], got %v", c.Farmer.CarryFactor)
	}
	if c.Farmer.PickupRadius <= 0 {
		add("farmer.pickup_radius must be positive, got %v", c.Farmer.PickupRadius)
	}

	if c.Arena.MinWidth < 1 || c.Arena.MinHeight < 1 {
		add("arena.min_width and arena.min_height must be at least 1")
	}
	if c.Arena.HUDRows < 0 || c.Arena.FooterRows < 0 || c.Arena.FenceInset < 0 || c.Arena.Padding < 0 || c.Arena.ItemMargin < 0 {
		add("arena insets must not be negative")
	}
	if 2*c.Arena.ItemMargin >= float64(min(c.Arena.MinWidth, c.Arena.MinHeight)) {
		add("arena.item_margin %v leaves no room inside the minimum arena", c.Arena.ItemMargin)
	}

	if c.Zone.Width < 1 || c.Zone.Height < 1 {
		add("zone size must be at least 1x1, got %dx%d", c.Zone.Width, c.Zone.Height)
	}

	if c.Spawn.BaseMin < 1 {
		add("spawn.base_min must be at least 1, got %d", c.Spawn.BaseMin)
	}
	if c.Spawn.BaseMin > c.Spawn.BaseMax {
		add("spawn.base_min %d exceeds spawn.base_max %d", c.Spawn.BaseMin, c.Spawn.BaseMax)
	}
	if c.Spawn.MinStep < 0 || c.Spawn.MaxStep < c.Spawn.MinStep {
		add("spawn steps must satisfy 0 <= min_step <= max_step, got %d and %d", c.Spawn.MinStep, c.Spawn.MaxStep)
	}

	if c.Scoring.BonusStepSeconds <= 0 {
		add("scoring.bonus_step_seconds must be positive, got %v", c.Scoring.BonusStepSeconds)
	}
	if c.Timing.TransitionDelay < 0 || c.Timing.FloatingTextTTL <= 0 {
		add("timing.transition_delay must not be negative and timing.floating_text_ttl must be positive")
	}

	if c.Effects.MinParticles < 0 || c.Effects.MinParticles > c.Effects.MaxParticles {
		add("effects particle range [%d, %d] is invalid", c.Effects.MinParticles, c.Effects.MaxParticles)
	}
	for i, k := range c.Effects.Kinds {
		if k.Name == "" {
			add("effects.kinds[%d] has no name", i)
		}
		if len(k.Glyphs) == 0 {
			add("effects.kinds[%d] (%s) has no glyphs", i, k.Name)
		}
		if k.Duration <= 0 {
			add("effects.kinds[%d] (%s) duration must be positive", i, k.Name)
		}
	}

	if len(c.Levels) == 0 {
		add("at least one level is required")
	}
	for i, l := range c.Levels {
		if l.Emoji == "" {
			add("levels[%d] (%s) has no emoji", i, l.Name)
		}
		if l.TargetTime <= 0 {
			add("levels[%d] (%s) target_time must be positive", i, l.Name)
		}
		if l.WanderSpeed < 0 {
			add("levels[%d] (%s) wander_speed must not be negative", i, l.Name)
		}
	}

	return errors.Join(errs...)
}
