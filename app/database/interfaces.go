package database

import (
	"time"
)

type CycleRepository interface {
	InsertCycleRun(run CycleRun) error
	RecentCycleRuns(limit int) ([]CycleRun, error)
	PruneOlderThan(cutoff time.Time) (int64, error)
}
