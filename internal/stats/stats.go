// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/dictype/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes words-per-minute for a session. Typed words are
// everything the user produced: correct, near-miss, and extraneous.
func SessionMetrics(correct, mistake, wrong int, durationMs int64) (wpm float64) {
	if durationMs <= 0 {
		return 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0
	}
	typed := correct + mistake + wrong
	return float64(typed) / minutes
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary table for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWPM, totalAcc float64
	bestAcc := 0.0
	for _, s := range sessions {
		wpm := SessionMetrics(s.Correct, s.Mistake, s.Wrong, s.DurationMs)
		totalWPM += wpm
		totalAcc += s.Accuracy
		if s.Accuracy > bestAcc {
			bestAcc = s.Accuracy
		}
	}
	count := float64(len(sessions))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", len(sessions)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", (totalAcc/count)*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Accuracy: %.2f%%\n", bestAcc*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", totalWPM/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderSessionTable prints one row per session.
func RenderSessionTable(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		return nil
	}
	headers := []string{"Date", "Transcript", "Accuracy", "WPM", "Correct", "Mistake", "Missing", "Wrong"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		wpm := SessionMetrics(s.Correct, s.Mistake, s.Wrong, s.DurationMs)
		rows = append(rows, []string{
			s.EndedAt.Format("2006-01-02 15:04"),
			s.Transcript,
			fmt.Sprintf("%.2f%%", s.Accuracy*100),
			fmt.Sprintf("%.1f", wpm),
			fmt.Sprintf("%d", s.Correct),
			fmt.Sprintf("%d", s.Mistake),
			fmt.Sprintf("%d", s.Missing),
			fmt.Sprintf("%d", s.Wrong),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	if _, err := fmt.Fprintln(w, "Sessions"); err != nil {
		return err
	}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderCurves prints learning curves for accuracy and WPM.
func RenderCurves(w io.Writer, sessions []model.SessionAggregate, window int) error {
	return RenderCurvesWithSize(w, sessions, window, 0, 10, false)
}

// RenderCurvesWithSize prints learning curves sized to a given total width.
func RenderCurvesWithSize(w io.Writer, sessions []model.SessionAggregate, window, totalWidth, height int, useColor bool) error {
	if len(sessions) == 0 {
		return nil
	}
	accs := make([]float64, len(sessions))
	wpms := make([]float64, len(sessions))
	for i, s := range sessions {
		accs[i] = s.Accuracy * 100
		wpms[i] = SessionMetrics(s.Correct, s.Mistake, s.Wrong, s.DurationMs)
	}
	accs = MovingAverage(accs, window)
	wpms = MovingAverage(wpms, window)

	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Learning Curves", []Series{
		{Name: "Accuracy", Values: accs},
		{Name: "WPM", Values: wpms},
	}, width, height, useColor)
}

// RenderTroubleTable prints the hardest words of recent sessions.
func RenderTroubleTable(w io.Writer, aggs []model.WordAggregate, top int) error {
	rows := TopTroubleWords(aggs, top)
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No word stats found.")
		return err
	}
	headers := []string{"Word", "Miss Rate", "Correct", "Mistake", "Missing"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.Word,
			fmt.Sprintf("%.2f%%", MissRate(r)*100),
			fmt.Sprintf("%d", r.Correct),
			fmt.Sprintf("%d", r.Mistake),
			fmt.Sprintf("%d", r.Missing),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	if _, err := fmt.Fprintln(w, "Trouble Words (Windowed)"); err != nil {
		return err
	}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
