package ffmpeg

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func findValue(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("flag %s not found in %v", flag, args)
	return ""
}

func TestBuildMergeArgsSingleInput(t *testing.T) {
	args, err := BuildMergeArgs(MergeRequest{
		Inputs:     []string{"/in/1.aac"},
		OutputPath: "/out/merged_session1_20240101_120000.mp3",
		Format:     FormatMP3,
		Quality:    QualityMedium,
		Date:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}

	graph := findValue(t, args, "-filter_complex")
	want := "[0:a]loudnorm=I=-16:TP=-1.5:LRA=11[out]"
	if graph != want {
		t.Errorf("filter graph = %q, want %q", graph, want)
	}
	if findValue(t, args, "-map") != "[out]" {
		t.Error("expected -map [out]")
	}
	if findValue(t, args, "-c:a") != "libmp3lame" {
		t.Error("mp3 should use libmp3lame")
	}
	if findValue(t, args, "-q:a") != "2" {
		t.Error("medium quality should map to q:a 2")
	}
	if args[len(args)-1] != "/out/merged_session1_20240101_120000.mp3" {
		t.Error("output path must be the final argument")
	}
}

func TestBuildMergeArgsMultipleInputs(t *testing.T) {
	args, err := BuildMergeArgs(MergeRequest{
		Inputs:     []string{"/in/1.aac", "/in/2.aac", "/in/3.aac"},
		OutputPath: "/out/m.ogg",
		Format:     FormatOGG,
		Quality:    QualityHigh,
	})
	if err != nil {
		t.Fatal(err)
	}

	graph := findValue(t, args, "-filter_complex")
	want := "[0:a][1:a][2:a]amix=inputs=3:duration=longest:dropout_transition=2,loudnorm=I=-16:TP=-1.5:LRA=11[out]"
	if graph != want {
		t.Errorf("filter graph = %q, want %q", graph, want)
	}
	if findValue(t, args, "-c:a") != "libvorbis" {
		t.Error("ogg should use libvorbis")
	}
	if findValue(t, args, "-q:a") != "0" {
		t.Error("high quality should map to q:a 0")
	}

	// Input order fixes the positional indices the graph refers to.
	var inputs []string
	for i, arg := range args {
		if arg == "-i" {
			inputs = append(inputs, args[i+1])
		}
	}
	if !reflect.DeepEqual(inputs, []string{"/in/1.aac", "/in/2.aac", "/in/3.aac"}) {
		t.Errorf("input order changed: %v", inputs)
	}
}

func TestBuildMergeArgsRejectsEmptyInputs(t *testing.T) {
	_, err := BuildMergeArgs(MergeRequest{OutputPath: "/out/m.mp3", Format: FormatMP3})
	if err == nil {
		t.Fatal("expected error for empty input list")
	}
}

func TestBuildMergeArgsRejectsUnknownFormat(t *testing.T) {
	_, err := BuildMergeArgs(MergeRequest{
		Inputs:     []string{"/in/1.aac"},
		OutputPath: "/out/m.flac",
		Format:     Format("flac"),
	})
	if err == nil {
		t.Fatal("expected error for flac")
	}
}

func TestBuildMergeArgsMetadata(t *testing.T) {
	args, err := BuildMergeArgs(MergeRequest{
		Inputs:     []string{"/in/1.aac"},
		OutputPath: "/out/merged_standup_20240315_093000.wav",
		Format:     FormatWAV,
		Quality:    QualityLow,
		Date:       time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}

	joined := strings.Join(args, "\x00")
	for _, want := range []string{
		"title=Merged merged_standup_20240315_093000",
		"artist=Craig Recording",
		"date=2024-03-15",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("metadata %q missing from args %v", want, args)
		}
	}
	if findValue(t, args, "-ar") != "44100" || findValue(t, args, "-ac") != "2" {
		t.Error("expected 44100 Hz stereo output")
	}
	if findValue(t, args, "-avoid_negative_ts") != "make_zero" {
		t.Error("expected timestamp rebasing")
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("MP3"); err != nil {
		t.Error("format parsing should be case-insensitive")
	}
	if _, err := ParseFormat("flac"); err == nil {
		t.Error("flac must be rejected")
	}
}

func TestParseQualityDefaultsToMedium(t *testing.T) {
	q, err := ParseQuality("")
	if err != nil {
		t.Fatal(err)
	}
	if q != QualityMedium {
		t.Errorf("ParseQuality(\"\") = %q, want medium", q)
	}
	if _, err := ParseQuality("extreme"); err == nil {
		t.Error("unknown quality must be rejected")
	}
}
