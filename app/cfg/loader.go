package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Application configuration
	ConfigPath string `long:"config" env:"CONFIG" description:"Path to the channels configuration file (required)" required:"true"`
	DBPath     string `long:"db-path" env:"DB_PATH" default:"yt-mirror.db" description:"Path to the cycle journal database"`
	Listen     string `long:"listen" env:"LISTEN" description:"Listen address for the status API (e.g. :8080); empty disables it"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"yt-mirror/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ConfigPath: raw.ConfigPath,
		DBPath:     raw.DBPath,
		Listen:     raw.Listen,
		UserAgent:  raw.UserAgent,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
