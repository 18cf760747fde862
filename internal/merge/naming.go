package merge

import (
	"time"

	"craigmix/internal/scanner"
	"craigmix/internal/services/ffmpeg"
	"craigmix/internal/textutil"
)

const outputTimestampLayout = "20060102_150405"

// OutputFileName builds the deterministic-but-unique name for a folder's
// merged output: the sanitized session identifier plus a timestamp suffix.
func OutputFileName(folder scanner.Folder, format ffmpeg.Format, ts time.Time) string {
	name := textutil.SanitizeToken(folder.DisplayName())
	return "merged_" + name + "_" + ts.Format(outputTimestampLayout) + "." + format.Extension()
}
