package ffmpeg

import (
	"fmt"
	"strings"
)

// Format identifies the output container/encoder family.
type Format string

const (
	FormatMP3 Format = "mp3"
	FormatWAV Format = "wav"
	FormatOGG Format = "ogg"
	FormatAAC Format = "aac"
)

// Quality selects the encoder VBR quality index.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
)

// codecByFormat maps output formats to ffmpeg audio encoders.
var codecByFormat = map[Format]string{
	FormatMP3: "libmp3lame",
	FormatWAV: "pcm_s16le",
	FormatOGG: "libvorbis",
	FormatAAC: "aac",
}

// vbrByQuality maps quality levels to -q:a indices. Higher index means lower
// quality for the VBR encoders.
var vbrByQuality = map[Quality]string{
	QualityLow:    "4",
	QualityMedium: "2",
	QualityHigh:   "0",
}

// ParseFormat validates a user-supplied format string.
func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := codecByFormat[format]; !ok {
		return "", fmt.Errorf("unsupported output format %q", value)
	}
	return format, nil
}

// ParseQuality validates a user-supplied quality string. Empty input means
// medium.
func ParseQuality(value string) (Quality, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return QualityMedium, nil
	}
	quality := Quality(trimmed)
	if _, ok := vbrByQuality[quality]; !ok {
		return "", fmt.Errorf("unsupported quality level %q", value)
	}
	return quality, nil
}

// Extension returns the output filename extension for the format.
func (f Format) Extension() string {
	return string(f)
}
