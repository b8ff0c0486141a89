package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mkurnosov/dasher/internal/sim"
)

func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	dur := 50 * time.Millisecond
	s := NewTone(440, dur, 0.5, WaveSine, sampleRate)

	samples := drain(t, s)
	if want := sampleRate.N(dur); len(samples) != want {
		t.Errorf("tone produced %d samples, expected %d", len(samples), want)
	}
}

func TestToneStaysInVolumeBounds(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare} {
		s := NewTone(660, 30*time.Millisecond, 0.4, wave, sampleRate)
		for _, v := range drain(t, s) {
			if math.Abs(v) > 0.4 {
				t.Fatalf("sample %v exceeded volume 0.4", v)
			}
		}
	}
}

func TestToneFadesOut(t *testing.T) {
	s := NewTone(440, 40*time.Millisecond, 1.0, WaveSquare, sampleRate)
	samples := drain(t, s)

	if len(samples) == 0 {
		t.Fatal("no samples produced")
	}
	last := math.Abs(samples[len(samples)-1])
	if last > 0.01 {
		t.Errorf("tone should fade to near zero, last sample %v", last)
	}
}

func TestExhaustedToneStops(t *testing.T) {
	s := NewTone(440, 10*time.Millisecond, 0.5, WaveSine, sampleRate)
	drain(t, s)

	buf := make([][2]float64, 16)
	n, ok := s.Stream(buf)
	if n != 0 || ok {
		t.Errorf("exhausted tone should report (0, false), got (%d, %v)", n, ok)
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()

	// Must not panic or block without a speaker.
	p.Notify(sim.EventJump)
	p.Notify(sim.EventMilestone)
	p.Notify(sim.EventCollision)
	p.Close()
}

func TestNotifyMutatesMixerUnderSpeakerLock(t *testing.T) {
	p := NewPlayer()
	// Mark the player live without opening a device; the mixer mutation
	// path is the same either way.
	p.initialized = true

	speaker.Lock()
	done := make(chan struct{})
	go func() {
		p.Notify(sim.EventJump)
		close(done)
	}()

	select {
	case <-done:
		speaker.Unlock()
		t.Fatal("Notify touched the mixer while the speaker lock was held elsewhere")
	case <-time.After(100 * time.Millisecond):
	}
	speaker.Unlock()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify did not complete after the speaker lock was released")
	}

	if got := p.mixer.Len(); got != 1 {
		t.Errorf("mixer holds %d streamers after the jump cue, expected 1", got)
	}
}
