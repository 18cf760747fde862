// Package textutil provides filename sanitization helpers.
//
// Craig session folders carry user-supplied identifiers that end up in the
// merged output filename, so anything outside a conservative character set is
// replaced before the name touches the filesystem.
package textutil
