// Package logging constructs the slog loggers used across craigmix.
//
// Two output formats are supported: a console handler aimed at humans running
// the CLI interactively, and a JSON handler for machine consumption. Loggers
// are always built explicitly and passed down; nothing in this repository
// relies on the process-global slog default.
package logging
