package ffmpeg

import (
	"regexp"
	"strconv"
	"strings"
)

// ProgressUpdate captures one parsed ffmpeg progress line.
type ProgressUpdate struct {
	// Elapsed output seconds reported by ffmpeg.
	Elapsed float64
	// Percent complete against the estimated total duration; zero when the
	// total is unknown.
	Percent float64
	// Marker is the raw HH:MM:SS.ss text from the diagnostic line.
	Marker string
}

var timePattern = regexp.MustCompile(`time=(\d+):(\d+):(\d+(?:\.\d+)?)`)

// parseElapsed extracts the time= marker from an ffmpeg diagnostic line and
// converts it to seconds. ffmpeg's stderr format is not a stable interface,
// so anything that does not match is simply skipped.
func parseElapsed(line string) (float64, string, bool) {
	if !strings.Contains(line, "time=") {
		return 0, "", false
	}
	match := timePattern.FindStringSubmatch(line)
	if match == nil {
		return 0, "", false
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.ParseFloat(match[3], 64)
	elapsed := float64(hours)*3600 + float64(minutes)*60 + seconds
	return elapsed, match[1] + ":" + match[2] + ":" + match[3], true
}

// progressFor combines an elapsed marker with the estimated total duration.
func progressFor(elapsed float64, marker string, totalSeconds float64) ProgressUpdate {
	update := ProgressUpdate{Elapsed: elapsed, Marker: marker}
	if totalSeconds > 0 {
		update.Percent = elapsed / totalSeconds * 100
	}
	return update
}
