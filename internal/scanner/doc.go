// Package scanner discovers Craig session folders and the audio tracks inside
// them.
//
// Craig writes one directory per recording session, named "craig-" plus a
// session identifier, with one audio file per participant. Track files carry
// numeric suffixes, so listing uses a natural-order comparator to keep
// "track2" ahead of "track10". Input order matters downstream: the ffmpeg
// filter graph refers to inputs by position.
package scanner
