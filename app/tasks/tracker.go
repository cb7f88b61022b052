package tasks

import (
	"sync"

	"github.com/lysyi3m/yt-mirror/app/database"
)

// Tracker holds a snapshot of the most recent cycle for the status API. It
// is the only state shared between the run loop and HTTP handlers.
type Tracker struct {
	mu   sync.RWMutex
	last *database.CycleRun
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Record(run database.CycleRun) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = &run
}

func (t *Tracker) Last() (database.CycleRun, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.last == nil {
		return database.CycleRun{}, false
	}
	return *t.last, true
}
