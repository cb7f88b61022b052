package config

import (
	"time"
)

// GetInterval returns the pause between cycles as time.Duration
func (c *Config) GetInterval() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// GetTimeout returns the per-download timeout as time.Duration
func (d *DownloaderOptions) GetTimeout() time.Duration {
	if d.Timeout <= 0 {
		return 1800 * time.Second // default 30 minutes
	}
	return time.Duration(d.Timeout) * time.Second
}

// IDs returns the configured uid and gid. Only valid on a validated config.
func (p *Permissions) IDs() (int, int) {
	return *p.UID, *p.GID
}
