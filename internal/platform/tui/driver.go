// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, rendering, and the
// tick driver feeding the simulation.
package tui

import (
	"context"
	"sync"
	"time"
)

// Driver delivers elapsed-time deltas once per presentation frame.
// It is the only scheduler of simulation ticks: Start begins the sequence,
// Stop halts it. Ticks are delivered serially over a channel, so a tick in
// flight always completes before the next one is observed.
type Driver struct {
	interval time.Duration
	ticks    chan float64
	stop     chan struct{}
	stopOnce sync.Once
}

// NewDriver creates a driver producing ticks at the given rate.
func NewDriver(fps int) *Driver {
	if fps <= 0 {
		fps = 60
	}
	return &Driver{
		interval: time.Second / time.Duration(fps),
		ticks:    make(chan float64, 1),
		stop:     make(chan struct{}),
	}
}

// Start launches the tick loop.
func (d *Driver) Start() {
	go d.loop()
}

// Stop halts tick scheduling. Safe to call more than once; after the
// first call no further ticks are delivered either way.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
	})
}

// StopWhenDone stops the driver once ctx ends. Sessions that vanish
// without a quit key (dropped connection, idle timeout) never reach the
// key handler, so their driver must be torn down with the session itself
// or its ticker goroutine leaks.
func (d *Driver) StopWhenDone(ctx context.Context) {
	go func() {
		<-ctx.Done()
		d.Stop()
	}()
}

// Ticks returns the delta channel. Each value is the elapsed milliseconds
// since the previous tick. The channel closes once the driver stops.
func (d *Driver) Ticks() <-chan float64 {
	return d.ticks
}

func (d *Driver) loop() {
	defer close(d.ticks)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-d.stop:
			return
		case now := <-ticker.C:
			dt := float64(now.Sub(last).Microseconds()) / 1000.0
			last = now
			select {
			case d.ticks <- dt:
			case <-d.stop:
				return
			}
		}
	}
}
