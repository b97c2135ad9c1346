package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPaths are files, directories, or glob patterns naming plugin
	// table sources. Optional: references still resolve without a table.
	ConfigPaths []string

	// Group is the plugin group aliases are looked up in.
	Group string

	LogFormat string
	LogLevel  string
}

// NewConfig validates and applies defaults to a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
