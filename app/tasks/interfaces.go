package tasks

import (
	"context"

	"github.com/lysyi3m/yt-mirror/app/config"
	"github.com/lysyi3m/yt-mirror/app/jellyfin"
	"github.com/lysyi3m/yt-mirror/app/sync"
)

type SyncerInterface interface {
	Run(ctx context.Context, channel config.Channel) (*sync.Result, error)
}

var _ SyncerInterface = (*sync.Syncer)(nil)

type NotifierInterface interface {
	Run(ctx context.Context) error
}

var _ NotifierInterface = (*jellyfin.Client)(nil)
