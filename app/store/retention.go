package store

import (
	"time"
)

// Expired reports whether a timestamp has aged out of a channel's retention
// window. The boundary is strict: something exactly keepDays old is already
// expired. Callers pass UTC timestamps so the result does not depend on the
// local timezone.
func Expired(ts time.Time, keepDays int, now time.Time) bool {
	return now.Sub(ts) >= time.Duration(keepDays)*24*time.Hour
}
