package main

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/lysyi3m/yt-mirror/app/config"
	"github.com/lysyi3m/yt-mirror/app/download"
	"github.com/lysyi3m/yt-mirror/app/nfo"
)

// outputTemplate names downloads "YYYY-MM-DD - Title [id].ext" so files sort
// chronologically in the directory listing.
const outputTemplate = "%(upload_date>%Y-%m-%d)s - %(title)s [%(id)s].%(ext)s"

type options struct {
	Debug bool `long:"debug" description:"Enable debug logging"`

	Args struct {
		URL string `positional-arg-name:"url" description:"Video or playlist URL"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options

	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if opts.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	downloader := download.NewDownloader(config.DownloaderOptions{
		MergeOutputFormat: "mp4",
		Timeout:           21600, // playlists can take hours
	}, opts.Debug)

	if err := downloader.RunTemplate(ctx, opts.Args.URL, outputTemplate); err != nil {
		slog.Error("Failed to download", "url", opts.Args.URL, "error", err)
		os.Exit(1)
	}

	entries, err := downloader.Metadata(ctx, opts.Args.URL)
	if err != nil {
		slog.Error("Failed to fetch metadata", "url", opts.Args.URL, "error", err)
		os.Exit(1)
	}

	writer := nfo.NewWriter()
	for _, entry := range entries {
		// Unavailable playlist entries come back as null objects
		if entry.ID == "" {
			continue
		}
		if err := writeSidecar(writer, entry); err != nil {
			slog.Error("Failed to write NFO file", "id", entry.ID, "error", err)
		}
	}
}

func writeSidecar(writer *nfo.Writer, entry download.Metadata) error {
	mediaPath, err := findMediaFile(entry.ID)
	if err != nil {
		return err
	}

	uploaded, err := entry.UploadTime()
	if err != nil {
		return err
	}

	title := cmp.Or(entry.FullTitle, entry.Title)
	movie := nfo.Movie{
		Title:     title,
		Plot:      entry.Description,
		Premiered: uploaded,
		SortTitle: fmt.Sprintf("%s - %s", uploaded.UTC().Format("2006-01-02"), title),
	}

	nfoPath := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + ".nfo"

	return writer.Run(nfoPath, movie)
}

// findMediaFile locates the downloaded media in the current directory by its
// video ID. yt-dlp sanitizes titles when expanding the output template, so
// the final name cannot be derived from metadata alone.
func findMediaFile(id string) (string, error) {
	dirEntries, err := os.ReadDir(".")
	if err != nil {
		return "", fmt.Errorf("failed to read current directory: %w", err)
	}

	marker := fmt.Sprintf(" [%s].", id)
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if !strings.Contains(name, marker) {
			continue
		}
		switch filepath.Ext(name) {
		case ".mp4", ".mkv", ".webm":
			return name, nil
		}
	}

	return "", fmt.Errorf("no media file found for video '%s'", id)
}
