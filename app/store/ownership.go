package store

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lysyi3m/yt-mirror/app/config"
)

// Ownership applies configured uid/gid to store paths. A nil Ownership is
// valid and applies nothing.
type Ownership struct {
	uid int
	gid int
}

func NewOwnership(permissions *config.Permissions) *Ownership {
	if permissions == nil {
		return nil
	}

	uid, gid := permissions.IDs()
	return &Ownership{uid: uid, gid: gid}
}

// Apply sets the configured owner on path. Failures are logged, never fatal.
func (o *Ownership) Apply(path string) {
	if o == nil {
		return
	}

	if err := os.Chown(path, o.uid, o.gid); err != nil {
		slog.Error("Failed to chown", "path", path, "error", err)
	}
}

// EnsureDir creates a channel directory if it does not exist yet, applying
// ownership to newly created directories. An existing non-directory at the
// path is an error.
func EnsureDir(path string, own *Ownership) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	own.Apply(path)

	return nil
}
