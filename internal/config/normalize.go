package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeCleanup()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.BaseDirectory) == "" {
		c.Paths.BaseDirectory = defaultBaseDirectory
	}
	if c.Paths.BaseDirectory, err = expandPath(c.Paths.BaseDirectory); err != nil {
		return fmt.Errorf("paths.base_directory: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		// Merged files land next to the session folders unless told otherwise.
		c.Paths.OutputDir = c.Paths.BaseDirectory
		return nil
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Quality = strings.ToLower(strings.TrimSpace(c.Output.Quality))
	if c.Output.Quality == "" {
		c.Output.Quality = defaultOutputQuality
	}
}

func (c *Config) normalizeCleanup() {
	c.Cleanup.DeleteOriginals = strings.ToLower(strings.TrimSpace(c.Cleanup.DeleteOriginals))
	if c.Cleanup.DeleteOriginals == "" {
		c.Cleanup.DeleteOriginals = defaultDeleteOriginals
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
