package tasks

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/yt-mirror/app/store"
)

type SweepChannelTask struct {
	Task
	LocalName string
	KeepDays  int
	Result    store.SweepResult
	sweeper   *store.Sweeper
	root      string
}

func NewSweepChannelTask(channelURL, root, localName string, keepDays int, sweeper *store.Sweeper) *SweepChannelTask {
	return &SweepChannelTask{
		Task:      NewTask(TaskTypeSweepChannel, channelURL),
		LocalName: localName,
		KeepDays:  keepDays,
		sweeper:   sweeper,
		root:      root,
	}
}

func (t *SweepChannelTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.Result = t.sweeper.Run(t.root, t.LocalName, t.KeepDays)

	slog.Info("Task completed",
		"type", string(t.Type),
		"channel", t.LocalName,
		"duration", t.GetDuration(),
		"removed", t.Result.Removed,
		"failed", t.Result.Failed)

	return nil
}
