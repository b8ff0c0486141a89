package tui

import (
	"github.com/charmbracelet/log"

	"github.com/mkurnosov/dasher/internal/sim"
	"github.com/mkurnosov/dasher/internal/storage"
)

// runStore adapts storage.Store to sim.ScoreStore. Storage failures are
// logged and swallowed so a broken database never interrupts play.
// Every finished run is recorded via RecordRun, which makes the durable
// high score the maximum over recorded runs; PersistHighScore only
// announces that a new maximum was reached.
type runStore struct {
	store  *storage.Store
	logger *log.Logger
}

func newRunStore(store *storage.Store, logger *log.Logger) *runStore {
	if logger == nil {
		logger = log.Default()
	}
	return &runStore{store: store, logger: logger}
}

// LoadHighScore reads the best recorded score, or 0 when nothing is
// recorded or the store is unavailable.
func (rs *runStore) LoadHighScore() int {
	if rs.store == nil {
		return 0
	}
	high, err := rs.store.HighScore()
	if err != nil {
		rs.logger.Warn("failed to load high score", "error", err)
		return 0
	}
	return high
}

// PersistHighScore implements sim.ScoreStore.
func (rs *runStore) PersistHighScore(score int) {
	rs.logger.Info("new high score", "score", score)
}

// RecordRun stores a finished run.
func (rs *runStore) RecordRun(score, ticks int) {
	if rs.store == nil {
		return
	}
	if _, err := rs.store.SaveRun(score, ticks); err != nil {
		rs.logger.Warn("failed to record run", "score", score, "error", err)
	}
}

var _ sim.ScoreStore = (*runStore)(nil)
