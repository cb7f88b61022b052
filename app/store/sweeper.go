package store

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Sweeper removes entries from a channel directory that have aged out of the
// retention window or do not follow the canonical naming scheme. A channel
// directory is fully owned by the mirror, so foreign content is deleted
// unconditionally.
type Sweeper struct{}

func NewSweeper() *Sweeper {
	return &Sweeper{}
}

// Run sweeps the directory of a single channel. Deletion failures are logged
// per entry and do not abort the sweep.
func (s *Sweeper) Run(root, localName string, keepDays int) SweepResult {
	dir := filepath.Join(root, localName)

	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Error("Failed to list channel directory", "dir", dir, "error", err)
		return SweepResult{}
	}

	now := time.Now().UTC()

	var result SweepResult
	for _, entry := range entries {
		name := entry.Name()

		if date, ok := ParseEntryDate(name); ok && !Expired(date, keepDays, now) {
			continue
		}

		full := filepath.Join(dir, name)
		slog.Debug("Removing entry", "path", full)

		if err := os.RemoveAll(full); err != nil {
			slog.Error("Failed to remove entry", "path", full, "error", err)
			result.Failed++
			continue
		}
		result.Removed++
	}

	return result
}
