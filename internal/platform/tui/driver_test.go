package tui

import (
	"context"
	"testing"
	"time"
)

func TestDriverDeliversElapsedDeltas(t *testing.T) {
	d := NewDriver(200)
	d.Start()
	defer d.Stop()

	for i := 0; i < 3; i++ {
		select {
		case dt, ok := <-d.Ticks():
			if !ok {
				t.Fatal("tick channel closed while driver running")
			}
			if dt < 0 {
				t.Fatalf("tick %d: negative delta %f", i, dt)
			}
		case <-time.After(time.Second):
			t.Fatalf("tick %d: no delta within a second", i)
		}
	}
}

func TestDriverStopIsIdempotent(t *testing.T) {
	d := NewDriver(200)
	d.Start()

	d.Stop()
	d.Stop()
	d.Stop()

	// The channel must drain and close; no further deltas arrive.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-d.Ticks():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("tick channel did not close after Stop")
		}
	}
}

func TestDriverStopBeforeFirstTick(t *testing.T) {
	d := NewDriver(1) // one tick per second, Stop lands first
	d.Start()
	d.Stop()

	select {
	case _, ok := <-d.Ticks():
		if ok {
			t.Fatal("received a delta after Stop")
		}
	case <-time.After(time.Second):
		t.Fatal("tick channel did not close")
	}
}

func TestDriverDefaultsBadRate(t *testing.T) {
	d := NewDriver(0)
	if d.interval != time.Second/60 {
		t.Fatalf("interval = %v, want %v", d.interval, time.Second/60)
	}
}

func TestDriverStopsWhenContextEnds(t *testing.T) {
	d := NewDriver(200)
	d.Start()

	ctx, cancel := context.WithCancel(context.Background())
	d.StopWhenDone(ctx)
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-d.Ticks():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("tick channel did not close after context ended")
		}
	}
}
