package ffmpeg

import "testing"

func TestParseElapsed(t *testing.T) {
	line := "size=    2048kB time=00:01:00.00 bitrate= 279.6kbits/s speed=31.1x"
	elapsed, marker, ok := parseElapsed(line)
	if !ok {
		t.Fatal("expected a time marker")
	}
	if elapsed != 60 {
		t.Errorf("elapsed = %v, want 60", elapsed)
	}
	if marker != "00:01:00.00" {
		t.Errorf("marker = %q", marker)
	}
}

func TestParseElapsedHoursAndFraction(t *testing.T) {
	elapsed, _, ok := parseElapsed("frame= time=01:02:03.50 x")
	if !ok {
		t.Fatal("expected a time marker")
	}
	if want := 3723.5; elapsed != want {
		t.Errorf("elapsed = %v, want %v", elapsed, want)
	}
}

func TestParseElapsedIgnoresOtherLines(t *testing.T) {
	for _, line := range []string{
		"Stream mapping:",
		"  Duration: 00:02:00.00, start: 0.000000",
		"time=N/A",
		"",
	} {
		if _, _, ok := parseElapsed(line); ok {
			t.Errorf("line %q should not parse", line)
		}
	}
}

func TestProgressForPercent(t *testing.T) {
	update := progressFor(60, "00:01:00.00", 120)
	if update.Percent != 50 {
		t.Errorf("Percent = %v, want 50", update.Percent)
	}
}

func TestProgressForUnknownTotal(t *testing.T) {
	update := progressFor(60, "00:01:00.00", 0)
	if update.Percent != 0 {
		t.Errorf("Percent = %v, want 0 when total unknown", update.Percent)
	}
	if update.Elapsed != 60 {
		t.Errorf("Elapsed = %v, want 60", update.Elapsed)
	}
}
