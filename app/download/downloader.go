package download

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/lysyi3m/yt-mirror/app/config"
)

const defaultBinary = "yt-dlp"

// Downloader retrieves videos through a yt-dlp subprocess. Format selection,
// merge container and extra arguments come from the downloader_options config
// block and are passed through unchanged.
type Downloader struct {
	binary  string
	options config.DownloaderOptions
	debug   bool
}

func NewDownloader(options config.DownloaderOptions, debug bool) *Downloader {
	return &Downloader{
		binary:  defaultBinary,
		options: options,
		debug:   debug,
	}
}

// Run downloads the video behind url to exactly destPath. The call blocks
// until the download finishes, fails or the per-download timeout expires.
// Cancelling ctx kills yt-dlp and leaves partial files in place.
func (d *Downloader) Run(ctx context.Context, url, destPath string) error {
	args := d.buildArgs(destPath)
	args = append(args, url)

	_, err := d.run(ctx, args)
	return err
}

// RunTemplate downloads using a yt-dlp output template instead of a fixed
// path, writing a PNG thumbnail next to the media. Used by the one-shot
// fetch tool, where yt-dlp derives the file name itself.
func (d *Downloader) RunTemplate(ctx context.Context, url, template string) error {
	args := d.buildArgs(template)
	args = append(args, "--write-thumbnail", "--convert-thumbnails", "png")
	args = append(args, url)

	_, err := d.run(ctx, args)
	return err
}

func (d *Downloader) buildArgs(output string) []string {
	args := []string{
		"--output", output,
		"--no-progress",
	}

	if !d.debug {
		args = append(args, "--quiet")
	}
	if d.options.Format != "" {
		args = append(args, "--format", d.options.Format)
	}
	if d.options.MergeOutputFormat != "" {
		args = append(args, "--merge-output-format", d.options.MergeOutputFormat)
	}

	args = append(args, d.options.ExtraArgs...)

	return args
}

func (d *Downloader) run(ctx context.Context, args []string) (*bytes.Buffer, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, d.options.GetTimeout())
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, d.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Running yt-dlp", "args", strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("yt-dlp timed out after %s", d.options.GetTimeout())
		}
		if cmdCtx.Err() != nil {
			return nil, cmdCtx.Err()
		}
		return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return &stdout, nil
}
