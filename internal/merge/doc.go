// Package merge orchestrates the per-folder merge pipeline.
//
// A run walks a fixed sequence: verify ffmpeg, discover Craig session
// folders, then process each folder to completion before starting the next.
// Folder failures are recorded and never stop the run; only a missing or
// too-old ffmpeg, an unreadable base directory, or a held output-directory
// lock abort the whole thing. Dry runs share the same discovery path but stop
// short of invoking ffmpeg.
package merge
