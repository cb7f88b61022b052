package database

import (
	"fmt"
	"time"
)

type cycleRepository struct {
	db *DB
}

func NewCycleRepository(db *DB) CycleRepository {
	return &cycleRepository{db: db}
}

// InsertCycleRun journals a cycle together with its channel rows in one
// transaction.
func (r *cycleRepository) InsertCycleRun(run CycleRun) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO cycle_runs (id, started_at, finished_at, channels_total, channels_failed, downloaded, swept, reconciled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt, run.FinishedAt, run.ChannelsTotal, run.ChannelsFailed, run.Downloaded, run.Swept, run.Reconciled)
	if err != nil {
		return fmt.Errorf("failed to insert cycle run: %w", err)
	}

	for _, channel := range run.Channels {
		_, err = tx.Exec(`
			INSERT INTO channel_runs (id, cycle_id, channel_url, local_name, total, downloaded, skipped, filtered, failed, swept, error)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, channel.ID, run.ID, channel.ChannelURL, channel.LocalName, channel.Total, channel.Downloaded,
			channel.Skipped, channel.Filtered, channel.Failed, channel.Swept, channel.Error)
		if err != nil {
			return fmt.Errorf("failed to insert channel run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cycle run: %w", err)
	}

	return nil
}

// RecentCycleRuns returns the newest cycles first, channel rows included.
func (r *cycleRepository) RecentCycleRuns(limit int) ([]CycleRun, error) {
	rows, err := r.db.Query(`
		SELECT id, started_at, finished_at, channels_total, channels_failed, downloaded, swept, reconciled
		FROM cycle_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get cycle runs: %w", err)
	}
	defer rows.Close()

	var runs []CycleRun
	for rows.Next() {
		var run CycleRun
		err := rows.Scan(
			&run.ID, &run.StartedAt, &run.FinishedAt, &run.ChannelsTotal,
			&run.ChannelsFailed, &run.Downloaded, &run.Swept, &run.Reconciled,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cycle run row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cycle run rows: %w", err)
	}

	for i := range runs {
		channels, err := r.getChannelRuns(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Channels = channels
	}

	return runs, nil
}

func (r *cycleRepository) getChannelRuns(cycleID string) ([]ChannelRun, error) {
	rows, err := r.db.Query(`
		SELECT id, cycle_id, channel_url, local_name, total, downloaded, skipped, filtered, failed, swept, error
		FROM channel_runs
		WHERE cycle_id = ?
		ORDER BY rowid
	`, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel runs: %w", err)
	}
	defer rows.Close()

	var channels []ChannelRun
	for rows.Next() {
		var channel ChannelRun
		err := rows.Scan(
			&channel.ID, &channel.CycleID, &channel.ChannelURL, &channel.LocalName,
			&channel.Total, &channel.Downloaded, &channel.Skipped, &channel.Filtered,
			&channel.Failed, &channel.Swept, &channel.Error,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel run row: %w", err)
		}
		channels = append(channels, channel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating channel run rows: %w", err)
	}

	return channels, nil
}

// PruneOlderThan deletes cycles started before the cutoff; channel rows go
// with them via the cascading foreign key.
func (r *cycleRepository) PruneOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM cycle_runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune cycle runs: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned cycle runs: %w", err)
	}

	return removed, nil
}
