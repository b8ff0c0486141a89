package sim

import (
	"testing"

	"github.com/mkurnosov/dasher/internal/config"
)

func TestObstacleAdvancesAndIsRemovedExactly(t *testing.T) {
	cfg := config.Default()
	sp := spawner{rng: &scriptRand{}}
	sp.reset(cfg.Obstacles.MinGap)
	sp.countdown = 1e9 // no further spawns

	sp.obstacles = append(sp.obstacles, Obstacle{Kind: KindSmallCactus, X: 600, W: 20, H: 32, Y: 98})

	speed := 5.0
	for tick := 1; tick <= 115; tick++ {
		sp.step(speed, &cfg)
		if len(sp.obstacles) != 1 {
			t.Fatalf("tick %d: obstacle removed early (x+w=%v)", tick, 600-float64(tick)*speed+20)
		}
		want := 600 - float64(tick)*speed
		if got := sp.obstacles[0].X; got != want {
			t.Fatalf("tick %d: x = %v, expected %v", tick, got, want)
		}
	}

	// Tick 116: x = -20, so x+width = 0 and the obstacle is gone.
	sp.step(speed, &cfg)
	if len(sp.obstacles) != 0 {
		t.Errorf("obstacle should be removed at tick 116, x = %v", sp.obstacles[0].X)
	}
}

func TestSpawnPlacesKindAtRightEdge(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		pick int
		kind ObstacleKind
		kc   config.ObstacleKindConfig
	}{
		{"small cactus", 0, KindSmallCactus, cfg.Obstacles.SmallCactus},
		{"large cactus", 1, KindLargeCactus, cfg.Obstacles.LargeCactus},
		{"high bird", 2, KindHighBird, cfg.Obstacles.HighBird},
		{"low bird", 3, KindLowBird, cfg.Obstacles.LowBird},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sp := spawner{rng: &scriptRand{ints: []int{tc.pick}, floats: []float64{0.5}}}
			sp.reset(cfg.Obstacles.MinGap)
			sp.countdown = 0.0001 // elapses on the first step

			sp.step(1.0, &cfg)

			if len(sp.obstacles) != 1 {
				t.Fatalf("expected one spawned obstacle, got %d", len(sp.obstacles))
			}
			o := sp.obstacles[0]
			if o.Kind != tc.kind {
				t.Errorf("kind = %v, expected %v", o.Kind, tc.kind)
			}
			if o.X != cfg.Field.Width {
				t.Errorf("x = %v, expected right edge %v", o.X, cfg.Field.Width)
			}
			if o.W != tc.kc.Width || o.H != tc.kc.Height {
				t.Errorf("size = %vx%v, expected %vx%v", o.W, o.H, tc.kc.Width, tc.kc.Height)
			}
			wantY := cfg.Field.GroundY - tc.kc.Altitude - tc.kc.Height
			if o.Y != wantY {
				t.Errorf("y = %v, expected %v", o.Y, wantY)
			}
		})
	}
}

func TestCountdownRedrawStaysInRange(t *testing.T) {
	cfg := config.Default()

	for _, f := range []float64{0, 0.25, 0.5, 0.99} {
		sp := spawner{rng: &scriptRand{ints: []int{0}, floats: []float64{f}}}
		sp.reset(cfg.Obstacles.MinGap)
		sp.countdown = 0.0001

		sp.step(1.0, &cfg)

		if sp.countdown < cfg.Obstacles.MinGap || sp.countdown > cfg.Obstacles.MaxGap {
			t.Errorf("redraw with f=%v gave countdown %v outside [%v, %v]",
				f, sp.countdown, cfg.Obstacles.MinGap, cfg.Obstacles.MaxGap)
		}
	}
}

func TestCountdownDropsBySpeed(t *testing.T) {
	cfg := config.Default()
	sp := spawner{rng: &scriptRand{}}
	sp.reset(cfg.Obstacles.MinGap)

	before := sp.countdown
	sp.step(7.5, &cfg)
	if got := before - sp.countdown; got != 7.5 {
		t.Errorf("countdown dropped by %v, expected the scroll speed 7.5", got)
	}
}

func TestResetClearsObstacles(t *testing.T) {
	cfg := config.Default()
	sp := spawner{rng: &scriptRand{}}
	sp.obstacles = append(sp.obstacles, Obstacle{X: 100, W: 10})

	sp.reset(cfg.Obstacles.MinGap)

	if len(sp.obstacles) != 0 {
		t.Errorf("reset should clear obstacles, got %d", len(sp.obstacles))
	}
	if sp.countdown != cfg.Obstacles.MinGap {
		t.Errorf("reset countdown = %v, expected %v", sp.countdown, cfg.Obstacles.MinGap)
	}
}
