package transcript

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadPlainText(t *testing.T) {
	path := writeFile(t, "talk.txt", "hello world\nsecond line\n")
	tr, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tr.Name != "talk" {
		t.Fatalf("unexpected name: %q", tr.Name)
	}
	if !strings.Contains(tr.Text, "second line") {
		t.Fatalf("unexpected text: %q", tr.Text)
	}
	if tr.Times != nil {
		t.Fatalf("plain text must not carry timestamps")
	}
}

func TestLoadSRT(t *testing.T) {
	content := "1\n" +
		"00:00:01,000 --> 00:00:03,000\n" +
		"hello brave\n" +
		"world\n" +
		"\n" +
		"2\n" +
		"00:00:04,500 --> 00:00:05,500\n" +
		"again\n"
	path := writeFile(t, "talk.srt", content)
	tr, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tr.Text != "hello brave world again" {
		t.Fatalf("unexpected text: %q", tr.Text)
	}
	if len(tr.Times) != 4 {
		t.Fatalf("expected 4 word times, got %v", tr.Times)
	}
	if tr.Times[0] != 1.0 {
		t.Fatalf("first word time: got %v, want 1.0", tr.Times[0])
	}
	// Three words spread over the 1s..3s cue.
	if math.Abs(tr.Times[2]-(1.0+2.0*2.0/3.0)) > 1e-9 {
		t.Fatalf("third word time: got %v", tr.Times[2])
	}
	if tr.Times[3] != 4.5 {
		t.Fatalf("second cue start: got %v, want 4.5", tr.Times[3])
	}
}

func TestLoadVTTStripsTagsAndHeader(t *testing.T) {
	content := "WEBVTT\n" +
		"\n" +
		"NOTE a comment block\n" +
		"that spans lines\n" +
		"\n" +
		"intro\n" +
		"00:01.000 --> 00:02.000 align:start\n" +
		"<v Speaker>styled <i>words</i> here\n"
	path := writeFile(t, "talk.vtt", content)
	tr, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tr.Text != "styled words here" {
		t.Fatalf("unexpected text: %q", tr.Text)
	}
	if len(tr.Times) != 3 || tr.Times[0] != 61.0 {
		t.Fatalf("unexpected times: %v", tr.Times)
	}
}

func TestLoadCaptionWithoutCues(t *testing.T) {
	path := writeFile(t, "broken.vtt", "WEBVTT\n\njust prose, no cues\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for caption file without cues")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseTimestampForms(t *testing.T) {
	cases := map[string]float64{
		"00:00:01,500": 1.5,
		"00:01:00.000": 60,
		"01:02.250":    62.25,
		"10:00:00.000": 36000,
	}
	for in, want := range cases {
		got, err := parseTimestamp(in)
		if err != nil {
			t.Fatalf("parseTimestamp(%q): %v", in, err)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("parseTimestamp(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := parseTimestamp("nonsense"); err == nil {
		t.Fatalf("expected error for invalid timestamp")
	}
}
