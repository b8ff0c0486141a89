package sim

import (
	"testing"

	"github.com/mkurnosov/dasher/internal/config"
)

func newTestCharacter(cfg *config.Config) (Character, animTable) {
	var c Character
	c.rest(cfg.Field.GroundY)
	return c, buildAnimTable(cfg.Animation)
}

func TestGroundAndFallSpeedInvariants(t *testing.T) {
	cfg := config.Default()
	c, anims := newTestCharacter(&cfg)

	deltas := []float64{0, 8, 16.7, 50, 123}
	for i := 0; i < 3000; i++ {
		if i%37 == 0 {
			c.requestJump(&cfg)
		}
		c.step(deltas[i%len(deltas)], false, &cfg, &anims)

		if c.Pos > cfg.Field.GroundY {
			t.Fatalf("tick %d: position %v crossed the ground line %v", i, c.Pos, cfg.Field.GroundY)
		}
		if c.Vel > cfg.Physics.MaxFallSpeed {
			t.Fatalf("tick %d: fall speed %v exceeded clamp %v", i, c.Vel, cfg.Physics.MaxFallSpeed)
		}
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	cfg := config.Default()
	c, anims := newTestCharacter(&cfg)

	if !c.requestJump(&cfg) {
		t.Fatal("grounded jump should be taken")
	}
	if c.Motion != MotionJumping || c.Vel != cfg.Physics.JumpImpulse {
		t.Errorf("jump should set impulse %v and Jumping, got vel %v motion %v",
			cfg.Physics.JumpImpulse, c.Vel, c.Motion)
	}

	c.step(16.7, false, &cfg, &anims)
	if c.requestJump(&cfg) {
		t.Error("airborne jump request should be refused")
	}
}

func TestJumpLandsBackToRunning(t *testing.T) {
	cfg := config.Default()
	c, anims := newTestCharacter(&cfg)

	c.requestJump(&cfg)
	landed := false
	for i := 0; i < 200; i++ {
		c.step(16.7, false, &cfg, &anims)
		if c.grounded(&cfg) {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("character never landed")
	}
	if c.Vel != 0 {
		t.Errorf("velocity on landing = %v, expected 0", c.Vel)
	}
	if c.Motion != MotionRunning {
		t.Errorf("motion on landing = %v, expected Running", c.Motion)
	}
}

func TestDuckHeldAndReleased(t *testing.T) {
	cfg := config.Default()
	c, anims := newTestCharacter(&cfg)

	c.requestDuck(&cfg)
	if c.Motion != MotionDucking {
		t.Fatalf("grounded duck request should crouch, got %v", c.Motion)
	}

	// Held duck persists across ticks.
	c.step(16.7, true, &cfg, &anims)
	if c.Motion != MotionDucking {
		t.Errorf("held duck reverted to %v", c.Motion)
	}

	// Release stands the character back up on the next tick.
	c.step(16.7, false, &cfg, &anims)
	if c.Motion != MotionRunning {
		t.Errorf("released duck = %v, expected Running", c.Motion)
	}
}

func TestDuckRefusedInAir(t *testing.T) {
	cfg := config.Default()
	c, anims := newTestCharacter(&cfg)

	c.requestJump(&cfg)
	c.step(16.7, false, &cfg, &anims)

	c.requestDuck(&cfg)
	if c.Motion == MotionDucking {
		t.Error("airborne duck request should be refused")
	}
}

func TestAnimationAdvancesByElapsedTime(t *testing.T) {
	cfg := config.Default()
	cfg.Animation.Running = config.AnimStateConfig{Frames: 3, FrameMillis: 100}
	c, anims := newTestCharacter(&cfg)

	c.step(60, false, &cfg, &anims)
	if c.Frame != 0 {
		t.Errorf("frame advanced before the duration elapsed, got %d", c.Frame)
	}

	c.step(60, false, &cfg, &anims) // timer reaches 120 >= 100
	if c.Frame != 1 {
		t.Errorf("frame = %d after duration elapsed, expected 1", c.Frame)
	}
	if c.AnimTimer != 0 {
		t.Errorf("timer should reset on frame advance, got %v", c.AnimTimer)
	}

	// Frames cycle modulo the configured count.
	for i := 0; i < 4; i++ {
		c.step(100, false, &cfg, &anims)
	}
	if c.Frame >= 3 {
		t.Errorf("frame %d escaped the configured cycle of 3", c.Frame)
	}
}

func TestStaticPoseNeverAdvances(t *testing.T) {
	cfg := config.Default()
	c, anims := newTestCharacter(&cfg)

	c.requestJump(&cfg) // jumping is a static pose in the default config
	for i := 0; i < 10; i++ {
		c.step(500, false, &cfg, &anims)
	}
	if c.Motion == MotionJumping && c.Frame != 0 {
		t.Errorf("static pose advanced to frame %d", c.Frame)
	}
}

func TestDuckShortensHitbox(t *testing.T) {
	cfg := config.Default()
	c, _ := newTestCharacter(&cfg)

	running := c.hitbox(&cfg)
	c.requestDuck(&cfg)
	ducking := c.hitbox(&cfg)

	if ducking.H >= running.H {
		t.Errorf("duck hitbox height %v should be below running height %v", ducking.H, running.H)
	}
	// Feet stay on the ground line either way.
	if running.Bottom() != ducking.Bottom() {
		t.Errorf("hitbox bottoms differ: %v vs %v", running.Bottom(), ducking.Bottom())
	}
}
