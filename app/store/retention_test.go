package store

import (
	"testing"
	"time"
)

func TestExpired(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ts       time.Time
		keepDays int
		expired  bool
	}{
		{
			name:     "exactly keep days old is expired",
			ts:       time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			keepDays: 7,
			expired:  true,
		},
		{
			name:     "one day inside the window is kept",
			ts:       time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			keepDays: 7,
			expired:  false,
		},
		{
			name:     "one second inside the window is kept",
			ts:       time.Date(2024, 1, 3, 0, 0, 1, 0, time.UTC),
			keepDays: 7,
			expired:  false,
		},
		{
			name:     "one second past the window is expired",
			ts:       time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC),
			keepDays: 7,
			expired:  true,
		},
		{
			name:     "far in the past is expired",
			ts:       time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			keepDays: 30,
			expired:  true,
		},
		{
			name:     "future timestamp is kept",
			ts:       time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
			keepDays: 1,
			expired:  false,
		},
		{
			name:     "single day window",
			ts:       time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
			keepDays: 1,
			expired:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expired(tt.ts, tt.keepDays, now); got != tt.expired {
				t.Errorf("Expired(%v, %d, %v) = %v, want %v", tt.ts, tt.keepDays, now, got, tt.expired)
			}
		})
	}
}
