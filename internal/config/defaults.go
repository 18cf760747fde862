package config

const (
	defaultBaseDirectory   = "."
	defaultOutputFormat    = "mp3"
	defaultOutputQuality   = "medium"
	defaultDeleteOriginals = DeleteNever
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BaseDirectory: defaultBaseDirectory,
		},
		Output: Output{
			Format:  defaultOutputFormat,
			Quality: defaultOutputQuality,
		},
		Cleanup: Cleanup{
			DeleteOriginals: defaultDeleteOriginals,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
