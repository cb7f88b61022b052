package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lysyi3m/yt-mirror/app/cfg"
	"github.com/lysyi3m/yt-mirror/app/config"
	"github.com/lysyi3m/yt-mirror/app/database"
	"github.com/lysyi3m/yt-mirror/app/download"
	"github.com/lysyi3m/yt-mirror/app/feed"
	"github.com/lysyi3m/yt-mirror/app/jellyfin"
	"github.com/lysyi3m/yt-mirror/app/nfo"
	"github.com/lysyi3m/yt-mirror/app/store"
	"github.com/lysyi3m/yt-mirror/app/sync"
)

const journalRetentionDays = 30

// Runner drives the mirror loop: reload configuration, sync and sweep each
// channel in order, reconcile the store root, notify, journal, sleep. All
// work runs sequentially on the calling goroutine. The configuration file is
// re-read at every cycle boundary and the snapshot is immutable for the rest
// of the cycle, so config-derived collaborators are rebuilt per cycle.
type Runner struct {
	loader     *config.Loader
	cache      *feed.Cache
	cycleRepo  database.CycleRepository
	tracker    *Tracker
	sweeper    *store.Sweeper
	reconciler *store.Reconciler

	newSyncer   func(snapshot *config.Config) SyncerInterface
	newNotifier func(snapshot *config.Config) NotifierInterface
}

func NewRunner(loader *config.Loader, resolver sync.ResolverInterface, fetcher sync.FetcherInterface,
	filterer *feed.Filterer, nfoWriter *nfo.Writer, cache *feed.Cache,
	cycleRepo database.CycleRepository, tracker *Tracker) *Runner {
	debug := cfg.Get().Debug

	r := &Runner{
		loader:     loader,
		cache:      cache,
		cycleRepo:  cycleRepo,
		tracker:    tracker,
		sweeper:    store.NewSweeper(),
		reconciler: store.NewReconciler(),
	}

	r.newSyncer = func(snapshot *config.Config) SyncerInterface {
		downloader := download.NewDownloader(snapshot.Downloader, debug)
		ownership := store.NewOwnership(snapshot.Permissions)
		return sync.NewSyncer(resolver, fetcher, downloader, filterer, nfoWriter, cache, ownership, snapshot.OutputDirectory)
	}

	r.newNotifier = func(snapshot *config.Config) NotifierInterface {
		return jellyfin.NewClient(snapshot.Jellyfin)
	}

	return r
}

// Run loops cycles until the context is canceled. The only error it returns
// is a configuration read/validation failure, which is fatal to the process.
func (r *Runner) Run(ctx context.Context) error {
	for {
		interval, err := r.runCycle(ctx)
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}

func (r *Runner) runCycle(ctx context.Context) (time.Duration, error) {
	snapshot, err := r.loader.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load configuration: %w", err)
	}

	syncer := r.newSyncer(snapshot)

	cycle := database.CycleRun{
		ID:            uuid.New().String(),
		StartedAt:     time.Now().UTC(),
		ChannelsTotal: len(snapshot.Channels),
	}
	keep := make(map[string]bool)

	for _, channel := range snapshot.Channels {
		if ctx.Err() != nil {
			break
		}

		syncTask := NewSyncChannelTask(channel, syncer)
		channelRun := database.ChannelRun{
			ID:         syncTask.GetID(),
			CycleID:    cycle.ID,
			ChannelURL: syncTask.GetChannelURL(),
		}

		if err := r.executeTask(ctx, syncTask); err != nil {
			channelRun.Error = err.Error()
			cycle.ChannelsFailed++

			// A configured channel that failed this cycle keeps its last
			// known directory, so a transient failure cannot wipe it
			if localName, ok := r.cache.GetLocalName(channel.URL); ok {
				keep[localName] = true
			}

			cycle.Channels = append(cycle.Channels, channelRun)
			continue
		}

		result := syncTask.Result
		keep[result.LocalName] = true

		channelRun.LocalName = result.LocalName
		channelRun.Total = result.Total
		channelRun.Downloaded = result.Downloaded
		channelRun.Skipped = result.SkippedOld + result.SkippedExists + result.SkippedNoLink
		channelRun.Filtered = result.Filtered
		channelRun.Failed = result.Failed
		cycle.Downloaded += result.Downloaded

		sweepTask := NewSweepChannelTask(channel.URL, snapshot.OutputDirectory, result.LocalName, channel.KeepDays, r.sweeper)
		if err := r.executeTask(ctx, sweepTask); err != nil {
			cycle.Channels = append(cycle.Channels, channelRun)
			break
		}
		channelRun.Swept = sweepTask.Result.Removed
		cycle.Swept += sweepTask.Result.Removed

		cycle.Channels = append(cycle.Channels, channelRun)
	}

	// An interrupted cycle is left incomplete: reconciling against a partial
	// keep set would delete directories of channels that never got their turn
	if ctx.Err() != nil {
		return 0, nil
	}

	reconcileTask := NewReconcileStoreTask(snapshot.OutputDirectory, keep, r.reconciler)
	if err := r.executeTask(ctx, reconcileTask); err != nil {
		return 0, nil
	}
	cycle.Reconciled = reconcileTask.Result.Removed

	if snapshot.Jellyfin != nil {
		// Notification failure never affects the cycle result
		notifyTask := NewNotifyTask(r.newNotifier(snapshot))
		r.executeTask(ctx, notifyTask)
	}

	cycle.FinishedAt = time.Now().UTC()

	slog.Info("Cycle completed",
		"duration", cycle.FinishedAt.Sub(cycle.StartedAt),
		"channels", cycle.ChannelsTotal,
		"failed", cycle.ChannelsFailed,
		"downloaded", cycle.Downloaded,
		"swept", cycle.Swept,
		"reconciled", cycle.Reconciled)

	r.tracker.Record(cycle)
	r.journal(cycle)

	return snapshot.GetInterval(), nil
}

// executeTask runs one task through the common task surface: start, execute,
// report. Failures are logged with the task's identity; a canceled context is
// shutdown, not a task failure.
func (r *Runner) executeTask(ctx context.Context, task TaskInterface) error {
	task.Start()

	err := task.Execute(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Task execution failed", "type", string(task.GetType()), "id", task.GetID(), "channel", task.GetChannelURL(), "error", err)
	}

	return err
}

func (r *Runner) journal(cycle database.CycleRun) {
	if err := r.cycleRepo.InsertCycleRun(cycle); err != nil {
		slog.Error("Failed to journal cycle", "error", err)
		return
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -journalRetentionDays)
	if _, err := r.cycleRepo.PruneOlderThan(cutoff); err != nil {
		slog.Error("Failed to prune cycle journal", "error", err)
	}
}
