package config

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var (
	channelURLPattern = regexp.MustCompile(`^https?://(www\.)?youtube\.com/((c|channel|user)/[^/]+|@[^/]+)$`)
	apiKeyPattern     = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

// Loader handles loading and validation of the mirror configuration
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the YAML configuration file, applies defaults and validates it.
// The returned config is a fresh snapshot on every call.
func (l *Loader) Load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Set defaults
	l.setDefaults(&config)

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	slog.Debug("Configuration loaded", "path", l.path, "channels", len(config.Channels))

	return &config, nil
}

// setDefaults applies default values to configuration
func (l *Loader) setDefaults(config *Config) {
	if config.Downloader.MergeOutputFormat == "" {
		config.Downloader.MergeOutputFormat = "mp4"
	}
	if config.Downloader.Timeout == 0 {
		config.Downloader.Timeout = 1800 // seconds
	}
	if config.Jellyfin != nil && config.Jellyfin.Path == "" {
		config.Jellyfin.Path = "/"
	}
}

// validate validates the configuration
func (l *Loader) validate(config *Config) error {
	if config.OutputDirectory == "" {
		return fmt.Errorf("output directory is required")
	}
	if config.Interval < 60 {
		return fmt.Errorf("interval must be at least 60 seconds")
	}
	if len(config.Channels) == 0 {
		return fmt.Errorf("at least one channel is required")
	}

	for i, channel := range config.Channels {
		if !channelURLPattern.MatchString(channel.URL) {
			return fmt.Errorf("invalid channel URL at index %d: %s", i, channel.URL)
		}
		if channel.KeepDays < 1 {
			return fmt.Errorf("keep_days must be at least 1 at index %d", i)
		}
		for j, filter := range channel.Filters {
			if len(filter.Includes) == 0 && len(filter.Excludes) == 0 {
				return fmt.Errorf("filter %d of channel %d must have at least one include or exclude rule", j, i)
			}
		}
	}

	if p := config.Permissions; p != nil {
		if p.UID == nil || p.GID == nil {
			return fmt.Errorf("permissions requires both uid and gid")
		}
		if *p.UID < 0 || *p.UID > 65535 {
			return fmt.Errorf("uid must be between 0 and 65535")
		}
		if *p.GID < 0 || *p.GID > 65535 {
			return fmt.Errorf("gid must be between 0 and 65535")
		}
	}

	if j := config.Jellyfin; j != nil {
		if !apiKeyPattern.MatchString(j.APIKey) {
			return fmt.Errorf("jellyfin api_key must be 32 lowercase hex characters")
		}
		if j.Host == "" {
			return fmt.Errorf("jellyfin host is required")
		}
		if j.Port < 1 || j.Port > 65535 {
			return fmt.Errorf("jellyfin port must be between 1 and 65535")
		}
		if j.LibraryName == "" {
			return fmt.Errorf("jellyfin library_name is required")
		}
	}

	return nil
}
