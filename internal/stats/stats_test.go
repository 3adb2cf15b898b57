package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/dictype/internal/model"
)

func TestSessionMetrics(t *testing.T) {
	wpm := SessionMetrics(50, 6, 4, 60000)
	if math.Abs(wpm-60) > 1e-9 {
		t.Fatalf("wpm: got %v, want 60", wpm)
	}
	if got := SessionMetrics(10, 0, 0, 0); got != 0 {
		t.Fatalf("zero duration must yield 0, got %v", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("moving average: got %v, want %v", got, want)
		}
	}
}

func TestMovingAverageWindowOne(t *testing.T) {
	in := []float64{3, 1, 4}
	got := MovingAverage(in, 1)
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("window 1 must copy input, got %v", got)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("empty input: got %q", got)
	}
	flat := Sparkline([]float64{2, 2, 2})
	if len(flat) != 3 {
		t.Fatalf("flat sparkline length: got %q", flat)
	}
	spark := Sparkline([]float64{0, 5, 10})
	if spark[0] != ' ' || spark[2] != '@' {
		t.Fatalf("sparkline extremes: got %q", spark)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	sessions := []model.SessionAggregate{
		{
			SessionID:  1,
			EndedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			Transcript: "talk",
			Correct:    50,
			Mistake:    6,
			Missing:    4,
			Wrong:      4,
			Total:      60,
			Accuracy:   0.8,
			DurationMs: 60000,
		},
	}
	if err := RenderSummary(&buf, sessions); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Sessions: 1") {
		t.Fatalf("missing session count: %q", out)
	}
	if !strings.Contains(out, "Avg Accuracy: 80.00%") {
		t.Fatalf("missing accuracy: %q", out)
	}
	if !strings.Contains(out, "Avg WPM: 60.00") {
		t.Fatalf("missing wpm: %q", out)
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions found.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderSessionTable(t *testing.T) {
	var buf bytes.Buffer
	sessions := []model.SessionAggregate{
		{
			EndedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			Transcript: "talk",
			Correct:    8,
			Mistake:    1,
			Missing:    1,
			Wrong:      0,
			Total:      10,
			Accuracy:   0.85,
			DurationMs: 30000,
		},
	}
	if err := RenderSessionTable(&buf, sessions); err != nil {
		t.Fatalf("render table: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "2026-08-01 12:00") {
		t.Fatalf("missing date column: %q", out)
	}
	if !strings.Contains(out, "85.00%") {
		t.Fatalf("missing accuracy column: %q", out)
	}
}
