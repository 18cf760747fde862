package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// supportedExtensions is the set of track formats Craig produces.
var supportedExtensions = map[string]struct{}{
	".aac": {},
	".mp3": {},
	".wav": {},
	".m4a": {},
}

// SupportedExtension reports whether a filename carries a supported audio
// extension. Matching is case-insensitive.
func SupportedExtension(name string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// AudioFiles lists the supported audio files directly inside dir, sorted in
// natural order. The listing is non-recursive. An empty result is valid and
// means there is nothing to merge.
func AudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list audio files in %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !SupportedExtension(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	SortNatural(files)
	return files, nil
}

// SortNatural orders paths by their base names using numeric-aware,
// case-insensitive collation, so "track2" precedes "track10". The sort is
// stable: equal names keep their enumeration order.
func SortNatural(paths []string) {
	collator := collate.New(language.Und, collate.Numeric, collate.Loose)
	sort.SliceStable(paths, func(i, j int) bool {
		return collator.CompareString(filepath.Base(paths[i]), filepath.Base(paths[j])) < 0
	})
}
