package store

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"
)

// Extensions of the file pair that makes up one store entry
const (
	MediaExt = ".mp4"
	NFOExt   = ".nfo"
)

var entryNamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) - .* \[[\w-]+\]\.(mp4|nfo)$`)

// EntryName returns the canonical file stem for a video: publish date,
// sanitized title and video ID. The same video always yields the same name.
// A title that sanitizes to an empty string falls back to the ID.
func EntryName(title, id string, published time.Time) string {
	name := SanitizeName(title)
	if name == "" {
		name = id
	}

	return fmt.Sprintf("%s - %s [%s]", published.UTC().Format("2006-01-02"), name, id)
}

// EntryPath returns the canonical path for a video under the store root,
// without extension. Callers append MediaExt or NFOExt.
func EntryPath(root, localName, title, id string, published time.Time) string {
	return filepath.Join(root, localName, EntryName(title, id, published))
}

// ParseEntryDate extracts the embedded publish date from a canonical entry
// name. The second return value is false when the name does not follow the
// canonical scheme, including names whose date digits do not form a real date.
func ParseEntryDate(name string) (time.Time, bool) {
	m := entryNamePattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}

	date, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}
