package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"craigmix/internal/merge"
	"craigmix/internal/services/ffmpeg"
)

// newProgressFactory returns a per-folder progress renderer, or nil when
// stderr is not a terminal. Log lines stay readable when output is piped.
func newProgressFactory() merge.ProgressFactory {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return nil
	}
	return func(folderName string, totalSeconds float64) merge.Progress {
		return newFolderProgress(folderName, totalSeconds)
	}
}

type folderProgress struct {
	bar     *progressbar.ProgressBar
	bounded bool
}

func newFolderProgress(folderName string, totalSeconds float64) *folderProgress {
	description := fmt.Sprintf("merging %s", folderName)
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(100 * time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSpinnerType(14),
	}

	total := int64(totalSeconds)
	if total > 0 {
		opts = append(opts, progressbar.OptionSetPredictTime(true))
		return &folderProgress{bar: progressbar.NewOptions64(total, opts...), bounded: true}
	}
	// Unknown duration (ffprobe missing or every probe failed); render a
	// spinner driven by ffmpeg's progress lines instead.
	return &folderProgress{bar: progressbar.NewOptions64(-1, opts...)}
}

func (p *folderProgress) Update(update ffmpeg.ProgressUpdate) {
	if p.bounded {
		_ = p.bar.Set64(int64(update.Elapsed))
		return
	}
	_ = p.bar.Add(1)
}

func (p *folderProgress) Finish() {
	_ = p.bar.Finish()
}
