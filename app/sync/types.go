package sync

import (
	"context"

	"github.com/lysyi3m/yt-mirror/app/download"
	"github.com/lysyi3m/yt-mirror/app/feed"
)

type ResolverInterface interface {
	Run(ctx context.Context, channelURL string) (string, error)
}

var _ ResolverInterface = (*feed.Resolver)(nil)

type FetcherInterface interface {
	Run(ctx context.Context, feedURL string) (*feed.Feed, error)
}

var _ FetcherInterface = (*feed.Fetcher)(nil)

type DownloaderInterface interface {
	Run(ctx context.Context, url string, destPath string) error
}

var _ DownloaderInterface = (*download.Downloader)(nil)

// Result summarizes a single channel sync. The counts partition the fetched
// feed: Total = Downloaded + SkippedOld + SkippedExists + SkippedNoLink +
// Filtered + Failed.
type Result struct {
	LocalName     string
	Total         int
	Downloaded    int
	SkippedOld    int
	SkippedExists int
	SkippedNoLink int
	Filtered      int
	Failed        int
}
