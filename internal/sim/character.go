package sim

import (
	"github.com/mkurnosov/dasher/internal/config"
	"github.com/mkurnosov/dasher/internal/core"
)

// MotionState is the character-local animation/physics state, distinct
// from the game phase.
type MotionState int

const (
	MotionRunning MotionState = iota
	MotionJumping
	MotionDucking
	MotionDead

	motionStateCount
)

// String returns a human-readable name for the motion state.
func (m MotionState) String() string {
	switch m {
	case MotionRunning:
		return "Running"
	case MotionJumping:
		return "Jumping"
	case MotionDucking:
		return "Ducking"
	case MotionDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// animSpec describes the sprite cycle of one motion state.
// A frameMillis of 0 holds a static pose.
type animSpec struct {
	frames      int
	frameMillis float64
}

// animTable is indexed by MotionState, so a missing state is impossible
// once the config has validated.
type animTable [motionStateCount]animSpec

func buildAnimTable(cfg config.AnimationConfig) animTable {
	return animTable{
		MotionRunning: {frames: cfg.Running.Frames, frameMillis: cfg.Running.FrameMillis},
		MotionJumping: {frames: cfg.Jumping.Frames, frameMillis: cfg.Jumping.FrameMillis},
		MotionDucking: {frames: cfg.Ducking.Frames, frameMillis: cfg.Ducking.FrameMillis},
		MotionDead:    {frames: cfg.Dead.Frames, frameMillis: cfg.Dead.FrameMillis},
	}
}

// Character holds the player's vertical motion and animation state.
// Pos is the feet y on a downward-growing axis: grounded means
// Pos == GroundY, airborne means Pos < GroundY, and the ground clamp
// keeps Pos from ever exceeding GroundY.
type Character struct {
	Pos       float64
	Vel       float64
	Motion    MotionState
	Frame     int
	AnimTimer float64
}

// rest puts the character on the ground in the running pose.
func (c *Character) rest(groundY float64) {
	c.Pos = groundY
	c.Vel = 0
	c.setMotion(MotionRunning)
}

// die marks the character dead, freezing its pose.
func (c *Character) die() {
	c.setMotion(MotionDead)
}

// grounded reports whether the character rests exactly on the ground line.
func (c *Character) grounded(cfg *config.Config) bool {
	return c.Pos == cfg.Field.GroundY
}

// step advances physics and animation by one tick. dtMillis only feeds the
// animation timer; the integration itself is per-tick.
func (c *Character) step(dtMillis float64, duckHeld bool, cfg *config.Config, anims *animTable) {
	// Duck is level-triggered: releasing the input stands the character
	// back up before gravity applies.
	if !duckHeld && c.Motion == MotionDucking {
		c.setMotion(MotionRunning)
	}

	c.Vel += cfg.Physics.Gravity
	if c.Vel > cfg.Physics.MaxFallSpeed {
		c.Vel = cfg.Physics.MaxFallSpeed
	}
	c.Pos += c.Vel

	// The ground is a floor, never a ceiling.
	if c.Pos >= cfg.Field.GroundY {
		c.Pos = cfg.Field.GroundY
		c.Vel = 0
		if c.Motion == MotionJumping {
			c.setMotion(MotionRunning)
		}
	}

	spec := anims[c.Motion]
	c.AnimTimer += dtMillis
	if spec.frameMillis > 0 && c.AnimTimer >= spec.frameMillis {
		c.AnimTimer = 0
		c.Frame = (c.Frame + 1) % spec.frames
	}
}

// requestJump launches the character when it rests at ground level.
// Reports whether the jump was taken.
func (c *Character) requestJump(cfg *config.Config) bool {
	if !c.grounded(cfg) {
		return false
	}
	c.Vel = cfg.Physics.JumpImpulse
	c.setMotion(MotionJumping)
	return true
}

// requestDuck crouches the character when it rests at ground level.
func (c *Character) requestDuck(cfg *config.Config) {
	if !c.grounded(cfg) || c.Motion == MotionDucking {
		return
	}
	c.setMotion(MotionDucking)
}

func (c *Character) setMotion(m MotionState) {
	if c.Motion == m {
		return
	}
	c.Motion = m
	c.Frame = 0
	c.AnimTimer = 0
}

// height returns the current visual height, shorter while ducking.
func (c *Character) height(cfg *config.Config) float64 {
	if c.Motion == MotionDucking {
		return cfg.Character.DuckHeight
	}
	return cfg.Character.Height
}

// hitbox is the character's effective collision rectangle: the visual
// bounds inset by the configured margins for forgiving collision.
func (c *Character) hitbox(cfg *config.Config) core.Rect {
	h := c.height(cfg)
	bounds := core.NewRect(cfg.Character.X, c.Pos-h, cfg.Character.Width, h)
	return bounds.Inset(core.Insets{
		Top:    cfg.Character.Hitbox.Top,
		Right:  cfg.Character.Hitbox.Right,
		Bottom: cfg.Character.Hitbox.Bottom,
		Left:   cfg.Character.Hitbox.Left,
	})
}
