package feed

import (
	"time"
)

// Feed is a fetched channel feed reduced to what the mirror needs. Title is
// validated non-empty at the fetch boundary.
type Feed struct {
	Title  string
	Videos []Video
}

// Video is a single feed entry. ID and Published are validated at the fetch
// boundary, so downstream code can rely on both being usable.
type Video struct {
	ID        string
	Title     string
	Published time.Time
	Summary   string
	Link      string
}
