package config

import "fmt"

var (
	validFormats     = []string{"mp3", "wav", "ogg", "aac"}
	validQualities   = []string{"low", "medium", "high"}
	validDeleteModes = []string{DeleteNever, DeleteAlways, DeletePrompt}
	validLogFormats  = []string{"console", "json"}
	validLogLevels   = []string{"debug", "info", "warn", "error"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := validateEnum("output.format", c.Output.Format, validFormats); err != nil {
		return err
	}
	if err := validateEnum("output.quality", c.Output.Quality, validQualities); err != nil {
		return err
	}
	if err := validateEnum("cleanup.delete_originals", c.Cleanup.DeleteOriginals, validDeleteModes); err != nil {
		return err
	}
	if err := validateEnum("logging.format", c.Logging.Format, validLogFormats); err != nil {
		return err
	}
	return validateEnum("logging.level", c.Logging.Level, validLogLevels)
}

func validateEnum(field, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s: unsupported value %q (expected one of %v)", field, value, allowed)
}
