package database

import (
	"time"
)

// CycleRun is the journal record of one completed pass over all configured
// channels, including the store-wide sweep and reconciliation totals.
type CycleRun struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	ChannelsTotal  int
	ChannelsFailed int
	Downloaded     int
	Swept          int // entries removed by retention sweeps
	Reconciled     int // entries removed by store reconciliation
	Channels       []ChannelRun
}

// ChannelRun is the per-channel slice of a cycle. Error holds the failure
// message when the channel was skipped, empty otherwise.
type ChannelRun struct {
	ID         string
	CycleID    string
	ChannelURL string
	LocalName  string
	Total      int
	Downloaded int
	Skipped    int
	Filtered   int
	Failed     int
	Swept      int
	Error      string
}
