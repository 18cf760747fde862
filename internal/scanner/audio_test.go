package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAudioFilesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	names := []string{"10.aac", "2.aac", "1.aac", "notes.txt", "cover.PNG", "extra.M4A"}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.aac"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := AudioFiles(dir)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, f := range files {
		got = append(got, filepath.Base(f))
	}
	want := []string{"1.aac", "2.aac", "10.aac", "extra.M4A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AudioFiles order = %v, want %v", got, want)
	}
}

func TestAudioFilesEmptyIsValid(t *testing.T) {
	files, err := AudioFiles(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty result, got %v", files)
	}
}

func TestSortNatural(t *testing.T) {
	paths := []string{"f10.mp3", "f1.mp3", "F2.mp3", "f1.mp3"}
	SortNatural(paths)
	want := []string{"f1.mp3", "f1.mp3", "F2.mp3", "f10.mp3"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("SortNatural = %v, want %v", paths, want)
	}
}

func TestSupportedExtension(t *testing.T) {
	if !SupportedExtension("track.WAV") {
		t.Error("extension match should be case-insensitive")
	}
	if SupportedExtension("track.flac") {
		t.Error("flac is not a Craig track format")
	}
}
