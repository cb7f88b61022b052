package cfg

type Cfg struct {
	// Application configuration
	ConfigPath string
	DBPath     string
	Listen     string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
