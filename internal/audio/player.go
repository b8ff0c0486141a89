// Package audio synthesizes the runner's sound effects with gopxl/beep.
// Everything here is best-effort: a machine without a usable audio device
// gets a silent player, never an error that reaches the simulation.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mkurnosov/dasher/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Player implements sim.Notifier by mixing short synthesized blips.
// Initialization failure degrades to silence, not an error.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player. Call Initialize before use;
// a player that was never initialized is safely silent.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Returns the speaker error for logging, but
// the player remains usable (silent) regardless.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences and releases the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Notify plays the effect for a simulation event. It only queues a short
// streamer on the mixer. The speaker goroutine streams from the same mixer,
// so the mutation must happen under the speaker lock; p.mu alone does not
// synchronize against the audio callback.
func (p *Player) Notify(ev sim.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	switch ev {
	case sim.EventJump:
		p.mixer.Add(NewTone(660, 70*time.Millisecond, 0.4, WaveSquare, sampleRate))
	case sim.EventMilestone:
		p.mixer.Add(beep.Seq(
			NewTone(880, 90*time.Millisecond, 0.35, WaveSine, sampleRate),
			NewTone(1175, 120*time.Millisecond, 0.35, WaveSine, sampleRate),
		))
	case sim.EventCollision:
		p.mixer.Add(NewTone(110, 250*time.Millisecond, 0.5, WaveSquare, sampleRate))
	}
}

// Player must satisfy the simulation's notifier contract.
var _ sim.Notifier = (*Player)(nil)
