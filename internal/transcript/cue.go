package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// cue is one timed caption block.
type cue struct {
	start float64
	end   float64
	text  string
}

// parseCues scans SubRip or WebVTT content. Both formats are line oriented:
// a line containing "-->" opens a cue, following non-blank lines are its
// text, a blank line closes it. Headers, numeric indices, cue identifiers,
// and NOTE/STYLE blocks never follow an open cue and are dropped.
func parseCues(content string) []cue {
	var cues []cue
	open := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			open = false
			continue
		}
		if strings.Contains(trimmed, "-->") {
			start, end, err := parseTimeRange(trimmed)
			if err != nil {
				open = false
				continue
			}
			cues = append(cues, cue{start: start, end: end})
			open = true
			continue
		}
		if !open {
			continue
		}
		text := stripTags(trimmed)
		if text == "" {
			continue
		}
		last := &cues[len(cues)-1]
		if last.text != "" {
			last.text += " "
		}
		last.text += text
	}
	return cues
}

// parseTimeRange parses "00:00:01,000 --> 00:00:04,000" (SubRip) or
// "00:01.000 --> 00:04.000 align:start" (WebVTT, settings ignored).
func parseTimeRange(line string) (float64, float64, error) {
	left, right, ok := strings.Cut(line, "-->")
	if !ok {
		return 0, 0, fmt.Errorf("not a time range: %q", line)
	}
	rightFields := strings.Fields(right)
	if len(rightFields) == 0 {
		return 0, 0, fmt.Errorf("missing end time: %q", line)
	}
	start, err := parseTimestamp(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(rightFields[0])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// parseTimestamp parses "HH:MM:SS.mmm" or "MM:SS.mmm"; SubRip's comma
// separator is accepted.
func parseTimestamp(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", ".")
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp: %q", s)
	}
	var total float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp: %q", s)
		}
		total = total*60 + v
	}
	return total, nil
}

// stripTags removes <...> markup: styling tags, voice spans, and inline
// timestamps.
func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
