// Package transcript loads reference transcripts from local files. Plain
// text files are used verbatim; SubRip (.srt) and WebVTT (.vtt) caption
// files are flattened to plain text with per-word timestamps interpolated
// across each cue span.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Transcript is reference material for one practice run. Times, when
// non-nil, holds a start time in seconds for each whitespace-separated word
// of Text.
type Transcript struct {
	Path  string
	Name  string
	Text  string
	Times []float64
}

// Load reads a transcript file, dispatching on the file extension. Unknown
// extensions are treated as plain text.
func Load(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".vtt":
		cues := parseCues(string(data))
		if len(cues) == 0 {
			return nil, fmt.Errorf("no caption cues found in %s", path)
		}
		text, times := flattenCues(cues)
		return &Transcript{Path: path, Name: name, Text: text, Times: times}, nil
	default:
		return &Transcript{Path: path, Name: name, Text: string(data)}, nil
	}
}

// flattenCues joins cue texts into one plain text and spreads each cue's
// span evenly over its words.
func flattenCues(cues []cue) (string, []float64) {
	var parts []string
	var times []float64
	for _, c := range cues {
		words := strings.Fields(c.text)
		if len(words) == 0 {
			continue
		}
		span := c.end - c.start
		if span < 0 {
			span = 0
		}
		for i, w := range words {
			parts = append(parts, w)
			times = append(times, c.start+span*float64(i)/float64(len(words)))
		}
	}
	return strings.Join(parts, " "), times
}
