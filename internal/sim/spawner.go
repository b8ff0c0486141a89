package sim

import (
	"github.com/mkurnosov/dasher/internal/config"
)

// ObstacleKind identifies one of the four obstacle shapes.
type ObstacleKind int

const (
	KindSmallCactus ObstacleKind = iota // low ground obstacle, easy jump
	KindLargeCactus                     // tall ground obstacle
	KindHighBird                        // flies high, duck under it
	KindLowBird                         // flies low, jump over it

	obstacleKindCount
)

// String returns a human-readable name for the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindSmallCactus:
		return "SmallCactus"
	case KindLargeCactus:
		return "LargeCactus"
	case KindHighBird:
		return "HighBird"
	case KindLowBird:
		return "LowBird"
	default:
		return "Unknown"
	}
}

// Obstacle is a live obstacle. X/Y is the top-left corner in world units;
// the size is fixed per kind at creation.
type Obstacle struct {
	Kind ObstacleKind
	X, Y float64
	W, H float64
}

// spawner owns the obstacle collection and the spawn countdown.
// The countdown is measured in world distance, so faster scroll speeds
// spawn obstacles proportionally sooner.
type spawner struct {
	obstacles []Obstacle
	countdown float64
	rng       Rand
}

// reset clears the collection and restarts the countdown at the minimum
// configured distance, so the first obstacle of a run never spawns
// unfairly close.
func (sp *spawner) reset(minGap float64) {
	sp.obstacles = sp.obstacles[:0]
	sp.countdown = minGap
}

// step advances every obstacle, culls the ones that left the field, and
// spawns a new obstacle when the countdown elapses.
func (sp *spawner) step(speed float64, cfg *config.Config) {
	for i := range sp.obstacles {
		sp.obstacles[i].X -= speed
	}

	live := sp.obstacles[:0]
	for _, o := range sp.obstacles {
		if o.X+o.W > 0 {
			live = append(live, o)
		}
	}
	sp.obstacles = live

	sp.countdown -= speed
	if sp.countdown <= 0 {
		sp.spawn(cfg)
		gap := cfg.Obstacles.MaxGap - cfg.Obstacles.MinGap
		sp.countdown = cfg.Obstacles.MinGap + sp.rng.Float64()*gap
	}
}

// spawn creates a uniformly random obstacle at the right field edge.
func (sp *spawner) spawn(cfg *config.Config) {
	kind := ObstacleKind(sp.rng.Intn(int(obstacleKindCount)))
	kc := kindConfig(cfg, kind)
	sp.obstacles = append(sp.obstacles, Obstacle{
		Kind: kind,
		X:    cfg.Field.Width,
		Y:    cfg.Field.GroundY - kc.Altitude - kc.Height,
		W:    kc.Width,
		H:    kc.Height,
	})
}

func kindConfig(cfg *config.Config, kind ObstacleKind) config.ObstacleKindConfig {
	switch kind {
	case KindSmallCactus:
		return cfg.Obstacles.SmallCactus
	case KindLargeCactus:
		return cfg.Obstacles.LargeCactus
	case KindHighBird:
		return cfg.Obstacles.HighBird
	default:
		return cfg.Obstacles.LowBird
	}
}
