package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mkurnosov/dasher/internal/config"
	"github.com/mkurnosov/dasher/internal/core"
	"github.com/mkurnosov/dasher/internal/sim"
	"github.com/mkurnosov/dasher/internal/storage"
)

// TickMsg carries the elapsed milliseconds since the previous frame.
type TickMsg float64

// Terminals report key presses only, never releases. Holding duck is
// approximated with a window of ticks refreshed by key autorepeat: each
// down-arrow press re-arms the window, and the duck is released when it
// runs out.
const duckHoldTicks = 8

// ModelOptions configures a runner session.
type ModelOptions struct {
	Config config.Config
	Store  *storage.Store // nil: scores are not persisted
	Audio  sim.Notifier   // nil: silent
	FPS    int
	Seed   int64 // 0: time-seeded
	Width  int
	Height int
	Logger *log.Logger
}

// Model is the Bubble Tea model for a runner session.
type Model struct {
	sim    *sim.Sim
	screen *core.Screen
	cfg    config.Config
	keys   KeyMap
	help   help.Model
	driver *Driver
	runs   *runStore
	logger *log.Logger

	duckTicks int
	lastPhase sim.Phase
	quitting  bool
}

// NewModel builds a session model. The config must validate; an invalid
// one is returned as an error for the caller to treat as fatal.
func NewModel(opts ModelOptions) (Model, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	runs := newRunStore(opts.Store, logger)
	s, err := sim.New(opts.Config, sim.Options{
		Rand:  rand.New(rand.NewSource(seed)),
		Audio: opts.Audio,
		Store: runs,
	})
	if err != nil {
		return Model{}, err
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	return Model{
		sim:       s,
		screen:    core.NewScreen(width, height),
		cfg:       opts.Config,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		driver:    NewDriver(opts.FPS),
		runs:      runs,
		logger:    logger,
		lastPhase: sim.PhaseMenu,
	}, nil
}

// Init starts the tick driver and waits for the first delta.
func (m Model) Init() tea.Cmd {
	m.driver.Start()
	return waitForTick(m.driver)
}

// waitForTick blocks on the driver channel and forwards the next delta.
// Deltas arrive one at a time, so a tick is always fully processed before
// the next one is observed.
func waitForTick(d *Driver) tea.Cmd {
	return func() tea.Msg {
		dt, ok := <-d.Ticks()
		if !ok {
			return nil
		}
		return TickMsg(dt)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(float64(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.driver.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		if m.sim.Snapshot().Phase == sim.PhasePlaying {
			m.sim.RequestJump()
		} else {
			m.sim.RequestStart()
		}

	case key.Matches(msg, m.keys.Duck):
		m.duckTicks = duckHoldTicks
		m.sim.SetDuckHeld(true)

	case key.Matches(msg, m.keys.Restart):
		if m.sim.Snapshot().Phase == sim.PhaseGameOver {
			m.sim.RequestStart()
		}

	case key.Matches(msg, m.keys.Start):
		if m.sim.Snapshot().Phase != sim.PhasePlaying {
			m.sim.RequestStart()
		}
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick(dtMillis float64) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if m.duckTicks > 0 {
		m.duckTicks--
		if m.duckTicks == 0 {
			m.sim.SetDuckHeld(false)
		}
	}

	m.sim.Tick(dtMillis)

	snap := m.sim.Snapshot()
	if snap.Phase == sim.PhaseGameOver && m.lastPhase == sim.PhasePlaying {
		m.runs.RecordRun(snap.Points, snap.Ticks)
	}
	m.lastPhase = snap.Phase

	return m, waitForTick(m.driver)
}

// Run starts a local session and blocks until the player quits.
func Run(opts ModelOptions) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	// The quit key stops the driver; this covers every other exit path.
	defer m.driver.Stop()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}

	m.screen.Clear()
	drawFrame(m.screen, m.sim.Snapshot(), &m.cfg)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
