package config

const (
	defaultServerURL = "http://127.0.0.1:8000"
	defaultLogLevel  = "info"
	defaultLogFile   = "logs/kbchat.log"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	markdown := true
	return &Config{
		Server: ServerConfig{
			URL: defaultServerURL,
		},
		UI: UIConfig{
			Markdown: &markdown,
		},
		Logging: defaultLoggingConfig(),
	}
}

func defaultLoggingConfig() LoggingConfig {
	enabled := true
	return LoggingConfig{
		Enabled: &enabled,
		Level:   defaultLogLevel,
		Stdout:  false,
		File:    defaultLogFile,
	}
}

func (c *Config) applyDefaults() {
	if c.Server.URL == "" {
		c.Server.URL = defaultServerURL
	}

	def := defaultLoggingConfig()
	if c.Logging == (LoggingConfig{}) {
		c.Logging = def
		return
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Level
	}
	if c.Logging.File == "" && !c.Logging.Stdout {
		c.Logging.File = def.File
	}
	if c.Logging.Enabled == nil {
		c.Logging.Enabled = def.Enabled
	}
}
