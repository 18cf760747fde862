package deps

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Minimum ffmpeg release carrying the loudnorm filter.
const (
	minFFmpegMajor = 4
	minFFmpegMinor = 0
)

// Sentinel errors for the pre-run ffmpeg gate. Both abort the whole run.
var (
	ErrFFmpegNotFound = errors.New("ffmpeg not found; install FFmpeg and ensure it is on PATH")
	ErrFFmpegTooOld   = fmt.Errorf("ffmpeg older than %d.%d; loudnorm requires at least that release", minFFmpegMajor, minFFmpegMinor)
)

var ffmpegVersionPattern = regexp.MustCompile(`ffmpeg version (\d+)\.(\d+)`)

// VersionRunner abstracts the version probe for testability.
type VersionRunner interface {
	Output(ctx context.Context, binary string, args ...string) ([]byte, error)
}

type execVersionRunner struct{}

func (execVersionRunner) Output(ctx context.Context, binary string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, binary, args...).Output()
}

// VerifyFFmpeg confirms the ffmpeg binary exists and meets the minimum
// version. A version string that cannot be parsed is accepted with the raw
// banner returned as detail, since distribution builds sometimes carry
// nonstandard version labels.
func VerifyFFmpeg(ctx context.Context, binary string) (string, error) {
	return verifyFFmpeg(ctx, binary, execVersionRunner{})
}

func verifyFFmpeg(ctx context.Context, binary string, runner VersionRunner) (string, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return "", ErrFFmpegNotFound
	}

	out, err := runner.Output(ctx, binary, "-version")
	if err != nil {
		return "", fmt.Errorf("ffmpeg -version: %w", err)
	}

	banner := firstLine(string(out))
	match := ffmpegVersionPattern.FindStringSubmatch(string(out))
	if match == nil {
		return banner, nil
	}

	major, _ := strconv.Atoi(match[1])
	minor, _ := strconv.Atoi(match[2])
	if major < minFFmpegMajor || (major == minFFmpegMajor && minor < minFFmpegMinor) {
		return banner, ErrFFmpegTooOld
	}
	return banner, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
