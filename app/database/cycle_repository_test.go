package database

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestRepository(t *testing.T) (CycleRepository, *DB) {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewCycleRepository(db), db
}

func testCycleRun(id string, startedAt time.Time) CycleRun {
	return CycleRun{
		ID:             id,
		StartedAt:      startedAt,
		FinishedAt:     startedAt.Add(45 * time.Second),
		ChannelsTotal:  2,
		ChannelsFailed: 1,
		Downloaded:     3,
		Swept:          2,
		Reconciled:     1,
		Channels: []ChannelRun{
			{
				ID:         id + "-ch1",
				CycleID:    id,
				ChannelURL: "https://www.youtube.com/c/SomeChannel",
				LocalName:  "Some Channel",
				Total:      15,
				Downloaded: 3,
				Skipped:    11,
				Filtered:   1,
				Swept:      2,
			},
			{
				ID:         id + "-ch2",
				CycleID:    id,
				ChannelURL: "https://www.youtube.com/c/OtherChannel",
				Error:      "failed to resolve feed URL",
			},
		},
	}
}

func TestInsertAndReadCycleRun(t *testing.T) {
	repo, _ := newTestRepository(t)

	started := time.Now().UTC().Truncate(time.Second)
	if err := repo.InsertCycleRun(testCycleRun("cycle-1", started)); err != nil {
		t.Fatalf("Failed to insert cycle run: %v", err)
	}

	runs, err := repo.RecentCycleRuns(5)
	if err != nil {
		t.Fatalf("Failed to read cycle runs: %v", err)
	}

	if len(runs) != 1 {
		t.Fatalf("Expected 1 cycle run, got %d", len(runs))
	}

	run := runs[0]
	if run.ID != "cycle-1" {
		t.Errorf("Expected ID 'cycle-1', got '%s'", run.ID)
	}
	if !run.StartedAt.Equal(started) {
		t.Errorf("Expected start time %v, got %v", started, run.StartedAt)
	}
	if run.ChannelsTotal != 2 || run.ChannelsFailed != 1 {
		t.Errorf("Expected 2 channels with 1 failure, got %d/%d", run.ChannelsTotal, run.ChannelsFailed)
	}
	if run.Downloaded != 3 || run.Swept != 2 || run.Reconciled != 1 {
		t.Errorf("Unexpected cycle counters: downloaded=%d swept=%d reconciled=%d", run.Downloaded, run.Swept, run.Reconciled)
	}

	if len(run.Channels) != 2 {
		t.Fatalf("Expected 2 channel runs, got %d", len(run.Channels))
	}

	first := run.Channels[0]
	if first.LocalName != "Some Channel" {
		t.Errorf("Expected local name 'Some Channel', got '%s'", first.LocalName)
	}
	if first.Total != 15 || first.Downloaded != 3 || first.Skipped != 11 || first.Filtered != 1 {
		t.Errorf("Unexpected channel counters: %+v", first)
	}

	second := run.Channels[1]
	if second.Error != "failed to resolve feed URL" {
		t.Errorf("Expected failure message on second channel, got '%s'", second.Error)
	}
}

func TestRecentCycleRunsNewestFirst(t *testing.T) {
	repo, _ := newTestRepository(t)

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"cycle-1", "cycle-2", "cycle-3"} {
		run := testCycleRun(id, base.Add(time.Duration(i)*time.Hour))
		if err := repo.InsertCycleRun(run); err != nil {
			t.Fatalf("Failed to insert cycle run '%s': %v", id, err)
		}
	}

	runs, err := repo.RecentCycleRuns(2)
	if err != nil {
		t.Fatalf("Failed to read cycle runs: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("Expected 2 cycle runs, got %d", len(runs))
	}

	if runs[0].ID != "cycle-3" || runs[1].ID != "cycle-2" {
		t.Errorf("Expected newest first, got '%s', '%s'", runs[0].ID, runs[1].ID)
	}
}

func TestRecentCycleRunsEmpty(t *testing.T) {
	repo, _ := newTestRepository(t)

	runs, err := repo.RecentCycleRuns(10)
	if err != nil {
		t.Fatalf("Failed to read cycle runs: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("Expected no cycle runs, got %d", len(runs))
	}
}

func TestPruneOlderThan(t *testing.T) {
	repo, db := newTestRepository(t)

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.InsertCycleRun(testCycleRun("cycle-old", now.AddDate(0, 0, -40))); err != nil {
		t.Fatalf("Failed to insert old cycle run: %v", err)
	}
	if err := repo.InsertCycleRun(testCycleRun("cycle-new", now)); err != nil {
		t.Fatalf("Failed to insert new cycle run: %v", err)
	}

	removed, err := repo.PruneOlderThan(now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("Failed to prune cycle runs: %v", err)
	}

	if removed != 1 {
		t.Errorf("Expected 1 pruned cycle run, got %d", removed)
	}

	runs, err := repo.RecentCycleRuns(10)
	if err != nil {
		t.Fatalf("Failed to read cycle runs: %v", err)
	}

	if len(runs) != 1 || runs[0].ID != "cycle-new" {
		t.Fatalf("Expected only 'cycle-new' to remain, got %d runs", len(runs))
	}

	var orphans int
	if err := db.QueryRow("SELECT COUNT(*) FROM channel_runs WHERE cycle_id = 'cycle-old'").Scan(&orphans); err != nil {
		t.Fatalf("Failed to count channel runs: %v", err)
	}

	if orphans != 0 {
		t.Errorf("Expected cascaded delete of channel runs, got %d left", orphans)
	}
}
