package sim

import (
	"github.com/mkurnosov/dasher/internal/config"
	"github.com/mkurnosov/dasher/internal/core"
)

// hitbox is the obstacle's effective collision rectangle, inset from the
// visual bounds by the configured margins.
func (o Obstacle) hitbox(cfg *config.Config) core.Rect {
	bounds := core.NewRect(o.X, o.Y, o.W, o.H)
	return bounds.Inset(core.Insets{
		Top:    cfg.Obstacles.Hitbox.Top,
		Right:  cfg.Obstacles.Hitbox.Right,
		Bottom: cfg.Obstacles.Hitbox.Bottom,
		Left:   cfg.Obstacles.Hitbox.Left,
	})
}

// collides tests the character against every live obstacle. Any overlap is
// terminal, so iteration order does not matter.
func (s *Sim) collides() bool {
	hit := s.char.hitbox(&s.cfg)
	for i := range s.spawner.obstacles {
		if hit.Overlaps(s.spawner.obstacles[i].hitbox(&s.cfg)) {
			return true
		}
	}
	return false
}
