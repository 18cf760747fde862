package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTracks creates a Craig session folder under base with the given track
// filenames and returns its path.
func WriteTracks(t testing.TB, base, folderName string, tracks ...string) string {
	t.Helper()

	dir := filepath.Join(base, folderName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for _, track := range tracks {
		path := filepath.Join(dir, track)
		if err := os.WriteFile(path, []byte{0x42}, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}
