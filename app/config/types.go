package config

// Config represents the complete mirror configuration
type Config struct {
	OutputDirectory string            `yaml:"output_directory"`
	Interval        int               `yaml:"interval"` // seconds
	Channels        []Channel         `yaml:"channels"`
	Downloader      DownloaderOptions `yaml:"downloader_options"`
	Permissions     *Permissions      `yaml:"permissions"`
	Jellyfin        *Jellyfin         `yaml:"jellyfin"`
}

// Channel describes a single mirrored channel
type Channel struct {
	URL      string   `yaml:"url"`
	KeepDays int      `yaml:"keep_days"`
	Filters  []Filter `yaml:"filters"`
}

// Filter represents a title filter rule
type Filter struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// DownloaderOptions contains settings passed through to yt-dlp
type DownloaderOptions struct {
	Format            string   `yaml:"format"`
	MergeOutputFormat string   `yaml:"merge_output_format"`
	ExtraArgs         []string `yaml:"extra_args"`
	Timeout           int      `yaml:"timeout"` // seconds per download
}

// Permissions describes ownership applied to created files and directories
type Permissions struct {
	UID *int `yaml:"uid"`
	GID *int `yaml:"gid"`
}

// Jellyfin describes the optional media server to notify after each cycle
type Jellyfin struct {
	APIKey      string `yaml:"api_key"`
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Path        string `yaml:"path"`
	TLS         bool   `yaml:"tls"`
	LibraryName string `yaml:"library_name"`
}
