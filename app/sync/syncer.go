package sync

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lysyi3m/yt-mirror/app/config"
	"github.com/lysyi3m/yt-mirror/app/feed"
	"github.com/lysyi3m/yt-mirror/app/nfo"
	"github.com/lysyi3m/yt-mirror/app/store"
)

// Syncer converges one channel's directory toward its current feed. Videos
// already on disk or outside the retention window are left alone, the rest
// are downloaded with an NFO sidecar. A failed video never aborts the
// channel; a failed resolve or fetch aborts the channel without touching
// its directory.
type Syncer struct {
	resolver   ResolverInterface
	fetcher    FetcherInterface
	downloader DownloaderInterface
	filterer   *feed.Filterer
	nfoWriter  *nfo.Writer
	cache      *feed.Cache
	ownership  *store.Ownership
	outputDir  string
}

func NewSyncer(resolver ResolverInterface, fetcher FetcherInterface, downloader DownloaderInterface, filterer *feed.Filterer, nfoWriter *nfo.Writer, cache *feed.Cache, ownership *store.Ownership, outputDir string) *Syncer {
	return &Syncer{
		resolver:   resolver,
		fetcher:    fetcher,
		downloader: downloader,
		filterer:   filterer,
		nfoWriter:  nfoWriter,
		cache:      cache,
		ownership:  ownership,
		outputDir:  outputDir,
	}
}

func (s *Syncer) Run(ctx context.Context, channel config.Channel) (*Result, error) {
	feedURL, err := s.resolver.Run(ctx, channel.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve feed URL: %w", err)
	}

	channelFeed, err := s.fetcher.Run(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	localName := store.SanitizeName(channelFeed.Title)
	if localName == "" {
		return nil, fmt.Errorf("channel title '%s' sanitizes to an empty name", channelFeed.Title)
	}
	s.cache.SetLocalName(channel.URL, localName)

	if err := store.EnsureDir(filepath.Join(s.outputDir, localName), s.ownership); err != nil {
		return nil, fmt.Errorf("failed to create channel directory: %w", err)
	}

	result := &Result{
		LocalName: localName,
		Total:     len(channelFeed.Videos),
	}
	now := time.Now().UTC()

	for _, video := range channelFeed.Videos {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if excluded, reason := s.filterer.Run(video, channel.Filters); excluded {
			slog.Debug("Video filtered", "channel", localName, "video", video.ID, "reason", reason)
			result.Filtered++
			continue
		}

		if store.Expired(video.Published, channel.KeepDays, now) {
			result.SkippedOld++
			continue
		}

		base := store.EntryPath(s.outputDir, localName, video.Title, video.ID, video.Published)
		mediaPath := base + store.MediaExt
		nfoPath := base + store.NFOExt

		if _, err := os.Stat(mediaPath); err == nil {
			result.SkippedExists++

			// Re-create a missing sidecar for media downloaded earlier,
			// the media itself is never re-downloaded.
			if _, err := os.Stat(nfoPath); os.IsNotExist(err) {
				if err := s.writeNFO(nfoPath, video); err != nil {
					slog.Error("Failed to write NFO", "channel", localName, "video", video.ID, "error", err)
				}
			}
			continue
		}

		if video.Link == "" {
			slog.Warn("Video has no link, skipping", "channel", localName, "video", video.ID)
			result.SkippedNoLink++
			continue
		}

		if err := s.downloader.Run(ctx, video.Link, mediaPath); err != nil {
			slog.Error("Failed to download video", "channel", localName, "video", video.ID, "error", err)
			result.Failed++
			continue
		}
		s.ownership.Apply(mediaPath)

		if err := s.writeNFO(nfoPath, video); err != nil {
			slog.Error("Failed to write NFO", "channel", localName, "video", video.ID, "error", err)
		}

		result.Downloaded++
	}

	return result, nil
}

func (s *Syncer) writeNFO(path string, video feed.Video) error {
	movie := nfo.Movie{
		Title:     video.Title,
		Plot:      video.Summary,
		Premiered: video.Published,
	}

	if err := s.nfoWriter.Run(path, movie); err != nil {
		return err
	}
	s.ownership.Apply(path)

	return nil
}
