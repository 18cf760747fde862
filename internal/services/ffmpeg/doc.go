// Package ffmpeg mediates access to the ffmpeg CLI that performs the actual
// mix, loudness normalization, and encode.
//
// BuildMergeArgs is pure argument construction: input order fixes the stream
// indices referenced by the generated filter graph, so callers must pass
// tracks already in playback order. The runner streams ffmpeg's diagnostic
// output line by line, turning time= markers into progress updates and
// capturing the full text as error detail on a nonzero exit.
//
// Prefer this package over ad-hoc exec.Command usage so progress reporting
// and failure capture remain consistent.
package ffmpeg
