package download

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata is the subset of yt-dlp's JSON video description used to write
// sidecar files
type Metadata struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	FullTitle   string `json:"fulltitle"`
	Description string `json:"description"`
	UploadDate  string `json:"upload_date"` // YYYYMMDD
}

// UploadTime parses the upload date. yt-dlp reports dates without a time
// component, so the result is midnight UTC.
func (m Metadata) UploadTime() (time.Time, error) {
	t, err := time.Parse("20060102", m.UploadDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse upload date '%s': %w", m.UploadDate, err)
	}
	return t, nil
}

// metadataDocument covers both shapes yt-dlp -J emits: a single video object
// or a playlist object wrapping entries.
type metadataDocument struct {
	Metadata
	Type    string     `json:"_type"`
	Entries []Metadata `json:"entries"`
}

// Metadata fetches video metadata without downloading any media. A playlist
// URL yields one entry per video.
func (d *Downloader) Metadata(ctx context.Context, url string) ([]Metadata, error) {
	stdout, err := d.run(ctx, []string{"-J", "--no-warnings", url})
	if err != nil {
		return nil, err
	}

	return parseMetadata(stdout.Bytes())
}

func parseMetadata(data []byte) ([]Metadata, error) {
	var doc metadataDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	if len(doc.Entries) > 0 {
		return doc.Entries, nil
	}

	return []Metadata{doc.Metadata}, nil
}
