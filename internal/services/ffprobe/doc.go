// Package ffprobe mediates access to the ffprobe CLI used for duration
// probing.
//
// Durations only feed progress estimation and post-merge reporting, so every
// failure here is soft: callers treat an error as "duration unknown" and move
// on. Prefer this package over ad-hoc exec.Command usage so probe invocation
// and JSON parsing stay in one place.
package ffprobe
