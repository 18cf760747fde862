package ffmpeg

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Loudness normalization targets for the loudnorm filter.
const (
	loudnormIntegrated = "-16"
	loudnormTruePeak   = "-1.5"
	loudnormRange      = "11"
)

// amix holds the mix to the longest input and fades a stream out over two
// seconds when it ends early.
const dropoutTransitionSeconds = 2

const metadataArtist = "Craig Recording"

// MergeRequest describes one merge invocation.
type MergeRequest struct {
	// Inputs in playback order. Positional index i becomes stream [i:a] in
	// the filter graph.
	Inputs     []string
	OutputPath string
	Format     Format
	Quality    Quality
	// Date stamps the output metadata; zero means time.Now.
	Date time.Time
}

// BuildMergeArgs constructs the full ffmpeg argument list for a merge. It is
// pure: no process is launched and no filesystem state is touched. Callers
// prepend the binary name.
func BuildMergeArgs(req MergeRequest) ([]string, error) {
	if len(req.Inputs) == 0 {
		return nil, errors.New("no input files provided")
	}
	codec, ok := codecByFormat[req.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", string(req.Format))
	}
	vbr, ok := vbrByQuality[req.Quality]
	if !ok {
		vbr = vbrByQuality[QualityMedium]
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return nil, errors.New("output path required")
	}

	args := make([]string, 0, 24+2*len(req.Inputs))
	args = append(args, "-y")
	for _, input := range req.Inputs {
		args = append(args, "-i", input)
	}

	args = append(args,
		"-filter_complex", filterGraph(len(req.Inputs)),
		"-map", "[out]",
		"-c:a", codec,
		"-q:a", vbr,
		"-ar", "44100",
		"-ac", "2",
		"-avoid_negative_ts", "make_zero",
	)

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	args = append(args,
		"-metadata", "title=Merged "+outputTitle(req.OutputPath),
		"-metadata", "artist="+metadataArtist,
		"-metadata", "date="+date.Format("2006-01-02"),
	)

	args = append(args, req.OutputPath)
	return args, nil
}

// filterGraph builds the filter_complex expression: a single input only needs
// loudness normalization, multiple inputs are mixed first. The [out] label is
// what -map refers to.
func filterGraph(inputs int) string {
	loudnorm := fmt.Sprintf("loudnorm=I=%s:TP=%s:LRA=%s", loudnormIntegrated, loudnormTruePeak, loudnormRange)
	if inputs == 1 {
		return "[0:a]" + loudnorm + "[out]"
	}
	var b strings.Builder
	for i := 0; i < inputs; i++ {
		fmt.Fprintf(&b, "[%d:a]", i)
	}
	fmt.Fprintf(&b, "amix=inputs=%d:duration=longest:dropout_transition=%d,", inputs, dropoutTransitionSeconds)
	b.WriteString(loudnorm)
	b.WriteString("[out]")
	return b.String()
}

// outputTitle derives the metadata title from the output filename stem,
// stripping the session prefix if one leaked through.
func outputTitle(outputPath string) string {
	base := filepath.Base(outputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(stem, "craig-")
}
