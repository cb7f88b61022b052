package tasks

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/yt-mirror/app/config"
	"github.com/lysyi3m/yt-mirror/app/sync"
)

type SyncChannelTask struct {
	Task
	Channel config.Channel
	Result  *sync.Result
	syncer  SyncerInterface
}

func NewSyncChannelTask(channel config.Channel, syncer SyncerInterface) *SyncChannelTask {
	return &SyncChannelTask{
		Task:    NewTask(TaskTypeSyncChannel, channel.URL),
		Channel: channel,
		syncer:  syncer,
	}
}

func (t *SyncChannelTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	result, err := t.syncer.Run(ctx, t.Channel)
	if err != nil {
		return err
	}
	t.Result = result

	slog.Info("Task completed",
		"type", string(t.Type),
		"channel", result.LocalName,
		"duration", t.GetDuration(),
		"total", result.Total,
		"downloaded", result.Downloaded,
		"filtered", result.Filtered,
		"failed", result.Failed)

	return nil
}
