package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// tone is a fixed-length oscillator with a linear fade-out that keeps
// short blips from clicking.
type tone struct {
	freq     float64
	phase    float64
	volume   float64
	wave     WaveType
	rate     beep.SampleRate
	duration int
	position int
}

// NewTone returns a streamer producing a single blip of the given shape.
func NewTone(freq float64, duration time.Duration, volume float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		volume:   volume,
		wave:     wave,
		rate:     rate,
		duration: rate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}

		// Linear fade over the whole blip.
		env := 1.0 - float64(t.position)/float64(t.duration)
		val *= t.volume * env

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
