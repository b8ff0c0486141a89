// Package sim implements the runner's simulation core: the game phase
// machine, character physics and animation, obstacle spawning, collision
// detection, and the score/speed ramp.
//
// The package is pure game logic with no terminal, audio, or storage
// dependencies; those collaborators are injected as narrow interfaces and
// every notification to them is fire-and-forget. All state is owned by a
// Sim instance and mutated only inside Tick and the request methods, which
// the driver must call from a single goroutine.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/mkurnosov/dasher/internal/config"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event identifies a cosmetic happening the audio collaborator may react to.
type Event int

const (
	EventJump Event = iota
	EventMilestone
	EventCollision
)

// Notifier receives fire-and-forget event notifications.
// Implementations must not block and must never fail the simulation.
type Notifier interface {
	Notify(Event)
}

// ScoreStore persists the high score across runs.
// Implementations swallow and log their own failures; a broken store
// degrades to "high score not saved".
type ScoreStore interface {
	LoadHighScore() int
	PersistHighScore(score int)
}

// Rand is the source of spawn randomness. *rand.Rand satisfies it; tests
// inject scripted sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Options injects the Sim's collaborators. Every field may be nil.
type Options struct {
	Rand  Rand       // nil: a time-seeded math/rand source
	Audio Notifier   // nil: silent
	Store ScoreStore // nil: high score kept in memory only
}

// Sim owns the complete simulation state. Create one with New, drive it
// with Tick, and read it through Snapshot.
type Sim struct {
	cfg   config.Config
	anims animTable
	audio Notifier
	store ScoreStore

	phase        Phase
	score        float64
	highScore    int
	speed        float64
	groundOffset float64
	ticks        int

	char          Character
	spawner       spawner
	duckHeld      bool
	lastMilestone int
}

// New builds a Sim from a validated config. An inconsistent config is a
// startup defect and is returned as an error for the caller to treat as
// fatal.
func New(cfg config.Config, opts Options) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Sim{
		cfg:   cfg,
		anims: buildAnimTable(cfg.Animation),
		audio: opts.Audio,
		store: opts.Store,
		phase: PhaseMenu,
		speed: cfg.Score.InitialSpeed,
		spawner: spawner{
			obstacles: make([]Obstacle, 0, 8),
			rng:       rng,
		},
	}
	s.char.rest(cfg.Field.GroundY)
	s.spawner.reset(cfg.Obstacles.MinGap)

	if s.store != nil {
		s.highScore = s.store.LoadHighScore()
	}
	return s, nil
}

// Tick advances the simulation by one step. dtMillis is the elapsed wall
// time since the previous tick and only drives animation timing; physics
// and scoring advance by fixed per-tick amounts. Outside PLAYING the
// simulation is frozen and Tick is a no-op.
func (s *Sim) Tick(dtMillis float64) {
	if dtMillis < 0 {
		dtMillis = 0
	}
	if s.phase != PhasePlaying {
		return
	}

	s.ticks++
	s.char.step(dtMillis, s.duckHeld, &s.cfg, &s.anims)
	s.spawner.step(s.speed, &s.cfg)
	s.advanceProgress()
}

// RequestStart begins a run from MENU or GAME_OVER. Ignored while PLAYING.
func (s *Sim) RequestStart() {
	if s.phase == PhasePlaying {
		return
	}
	s.startRun()
}

// RequestJump launches the character if it is grounded and not already
// jumping. Invalid requests are silently ignored.
func (s *Sim) RequestJump() {
	if s.phase != PhasePlaying {
		return
	}
	if s.char.Motion == MotionJumping {
		return
	}
	if s.char.requestJump(&s.cfg) {
		s.notify(EventJump)
	}
}

// SetDuckHeld records the level-triggered duck signal. While held and
// grounded the character ducks; release is picked up at the next tick.
func (s *Sim) SetDuckHeld(held bool) {
	s.duckHeld = held
	if held && s.phase == PhasePlaying {
		s.char.requestDuck(&s.cfg)
	}
}

// HighScore returns the best score seen across the process lifetime.
func (s *Sim) HighScore() int {
	return s.highScore
}

// startRun resets all per-run state and enters PLAYING.
func (s *Sim) startRun() {
	s.score = 0
	s.speed = s.cfg.Score.InitialSpeed
	s.groundOffset = 0
	s.ticks = 0
	s.lastMilestone = 0
	s.duckHeld = false
	s.char.rest(s.cfg.Field.GroundY)
	s.spawner.reset(s.cfg.Obstacles.MinGap)
	s.phase = PhasePlaying
}

// endRun freezes the simulation after a collision. Score, speed, and
// obstacles keep their last values until the next start request.
func (s *Sim) endRun() {
	s.phase = PhaseGameOver
	s.char.die()

	if points := s.points(); points > s.highScore {
		s.highScore = points
		if s.store != nil {
			s.store.PersistHighScore(points)
		}
	}
	s.notify(EventCollision)
}

// points is the displayed integer score.
func (s *Sim) points() int {
	return int(math.Floor(s.score))
}

func (s *Sim) notify(ev Event) {
	if s.audio != nil {
		s.audio.Notify(ev)
	}
}
