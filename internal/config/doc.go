// Package config loads, normalizes, and validates craigmix configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. CLI flags override whatever the file
// provides, so the merge pipeline only ever sees one resolved Config.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical enum values, and clear validation errors.
package config
