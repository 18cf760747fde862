package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// FolderPrefix is the directory name prefix Craig gives every session.
const FolderPrefix = "craig-"

// Prefix-anchored on purpose: Craig appends ".flac" style suffixes to some
// folder names and those still count as sessions.
var folderPattern = regexp.MustCompile(`^craig-[A-Za-z0-9_-]+`)

// Folder is a discovered Craig session directory.
type Folder struct {
	Path string
	Name string
}

// DisplayName returns the session identifier with the craig- prefix stripped.
func (f Folder) DisplayName() string {
	return strings.TrimPrefix(f.Name, FolderPrefix)
}

// MatchesFolder reports whether a directory name identifies a Craig session.
func MatchesFolder(name string) bool {
	return folderPattern.MatchString(name)
}

// DetectFolders lists the immediate subdirectories of base that match the
// Craig naming convention, in filesystem enumeration order. An unreadable
// base directory is an error; a readable directory with no matches returns
// an empty slice.
func DetectFolders(base string) ([]Folder, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("scan base directory %s: %w", base, err)
	}

	var folders []Folder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !MatchesFolder(entry.Name()) {
			continue
		}
		folders = append(folders, Folder{
			Path: filepath.Join(base, entry.Name()),
			Name: entry.Name(),
		})
	}
	return folders, nil
}
