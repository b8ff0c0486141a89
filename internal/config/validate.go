package config

import "fmt"

// Validate checks the configuration for internal consistency.
// An invalid config indicates a defect in the file rather than a runtime
// condition, so callers treat a non-nil error as fatal at startup.
func (c Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field size must be positive, got %.0fx%.0f", c.Field.Width, c.Field.Height)
	}
	if c.Field.GroundY <= 0 || c.Field.GroundY > c.Field.Height {
		return fmt.Errorf("config: ground_y %.0f outside field height %.0f", c.Field.GroundY, c.Field.Height)
	}
	if c.Field.GroundWrap <= 0 {
		return fmt.Errorf("config: ground_wrap must be positive, got %v", c.Field.GroundWrap)
	}

	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("config: jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("config: max_fall_speed must be positive, got %v", c.Physics.MaxFallSpeed)
	}

	if c.Character.Width <= 0 || c.Character.Height <= 0 {
		return fmt.Errorf("config: character size must be positive")
	}
	if c.Character.DuckHeight <= 0 || c.Character.DuckHeight >= c.Character.Height {
		return fmt.Errorf("config: duck_height %v must be positive and below height %v",
			c.Character.DuckHeight, c.Character.Height)
	}

	if c.Obstacles.MinGap <= 0 {
		return fmt.Errorf("config: min_gap must be positive, got %v", c.Obstacles.MinGap)
	}
	if c.Obstacles.MaxGap < c.Obstacles.MinGap {
		return fmt.Errorf("config: max_gap %v below min_gap %v", c.Obstacles.MaxGap, c.Obstacles.MinGap)
	}
	for _, kind := range []struct {
		name string
		k    ObstacleKindConfig
	}{
		{"small_cactus", c.Obstacles.SmallCactus},
		{"large_cactus", c.Obstacles.LargeCactus},
		{"high_bird", c.Obstacles.HighBird},
		{"low_bird", c.Obstacles.LowBird},
	} {
		if kind.k.Width <= 0 || kind.k.Height <= 0 {
			return fmt.Errorf("config: obstacle %s size must be positive", kind.name)
		}
		if kind.k.Altitude < 0 {
			return fmt.Errorf("config: obstacle %s altitude must be non-negative", kind.name)
		}
	}

	if c.Score.PerTick <= 0 {
		return fmt.Errorf("config: per_tick must be positive, got %v", c.Score.PerTick)
	}
	if c.Score.InitialSpeed <= 0 {
		return fmt.Errorf("config: initial_speed must be positive, got %v", c.Score.InitialSpeed)
	}
	if c.Score.MaxSpeed < c.Score.InitialSpeed {
		return fmt.Errorf("config: max_speed %v below initial_speed %v", c.Score.MaxSpeed, c.Score.InitialSpeed)
	}
	if c.Score.SpeedStep < 0 {
		return fmt.Errorf("config: speed_step must be non-negative, got %v", c.Score.SpeedStep)
	}
	if c.Score.SpeedInterval <= 0 {
		return fmt.Errorf("config: speed_interval must be positive, got %d", c.Score.SpeedInterval)
	}
	if c.Score.MilestoneEvery <= 0 {
		return fmt.Errorf("config: milestone_every must be positive, got %d", c.Score.MilestoneEvery)
	}

	for _, anim := range []struct {
		name string
		a    AnimStateConfig
	}{
		{"running", c.Animation.Running},
		{"jumping", c.Animation.Jumping},
		{"ducking", c.Animation.Ducking},
		{"dead", c.Animation.Dead},
	} {
		if anim.a.Frames < 1 {
			return fmt.Errorf("config: animation %s needs at least one frame, got %d", anim.name, anim.a.Frames)
		}
		if anim.a.FrameMillis < 0 {
			return fmt.Errorf("config: animation %s frame_millis must be non-negative, got %v", anim.name, anim.a.FrameMillis)
		}
	}

	return nil
}
