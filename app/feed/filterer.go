package feed

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/yt-mirror/app/config"
)

// Filterer applies a channel's optional title filters
type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run reports whether a video is excluded by the channel's filters, with a
// human-readable reason for logging. Matching is case-insensitive substring
// matching, excludes take precedence over includes.
func (f *Filterer) Run(video Video, filters []config.Filter) (bool, string) {
	for _, filter := range filters {
		for _, exclude := range filter.Excludes {
			if f.matches(video.Title, exclude) {
				return true, fmt.Sprintf("title contains '%s'", exclude)
			}
		}

		if len(filter.Includes) > 0 {
			matched := false
			for _, include := range filter.Includes {
				if f.matches(video.Title, include) {
					matched = true
					break
				}
			}
			if !matched {
				return true, fmt.Sprintf("title does not contain any of %v", filter.Includes)
			}
		}
	}

	return false, ""
}

func (f *Filterer) matches(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}
