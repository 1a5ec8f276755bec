package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Engine.validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	return nil
}

func (e *EngineConfig) validate() error {
	if e.MasteryThreshold < 0 || e.MasteryThreshold > 100 {
		return fmt.Errorf("mastery_threshold must be in [0,100] (got %d)", e.MasteryThreshold)
	}
	if e.GrowthFactor < 1.0 {
		return fmt.Errorf("growth_factor must be >= 1.0 (got %v)", e.GrowthFactor)
	}
	if e.UnlockThreshold < 0 || e.UnlockThreshold > 100 {
		return fmt.Errorf("unlock_threshold must be in [0,100] (got %d)", e.UnlockThreshold)
	}
	if e.ActivityWindow <= 0 {
		return fmt.Errorf("activity_window_days must be > 0 (got %d)", e.ActivityWindow)
	}
	if !e.ScoreWeights().Valid() {
		return fmt.Errorf("score weights must be non-negative and sum to 1.0 (got %v/%v/%v/%v)",
			e.WeightConfidence, e.WeightClarity, e.WeightTechnical, e.WeightFiller)
	}
	return nil
}
