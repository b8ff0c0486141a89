package sim

import "github.com/mkurnosov/dasher/internal/core"

// advanceProgress runs the scoring side of a tick: score increment, speed
// ramp, ground scroll, collision check, and the milestone chime. Collision
// ends the run and stops further progression this tick.
func (s *Sim) advanceProgress() {
	// Score advances by a fixed amount per tick, not per unit of wall
	// time. The rate is tied to tick count on purpose: scaling it by dt
	// would change the gameplay feel.
	s.score += s.cfg.Score.PerTick

	points := s.points()
	if points > 0 && points%s.cfg.Score.SpeedInterval == 0 {
		s.speed = core.ClampF(s.speed+s.cfg.Score.SpeedStep, 0, s.cfg.Score.MaxSpeed)
	}

	s.groundOffset -= s.speed
	if s.groundOffset <= -s.cfg.Field.GroundWrap {
		s.groundOffset = 0
	}

	if s.collides() {
		s.endRun()
		return
	}

	// Chime once per milestone value even when fractional increments keep
	// the floor on the same multiple across several ticks.
	if points > 0 && points%s.cfg.Score.MilestoneEvery == 0 && points != s.lastMilestone {
		s.lastMilestone = points
		s.notify(EventMilestone)
	}
}
