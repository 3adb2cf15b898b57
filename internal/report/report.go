// Package report renders an annotated comparison as terminal text. Every
// word of the attempt and the reference appears once, marked by how it was
// classified.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/dictype/internal/compare"
)

var (
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	mistakeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Strikethrough(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// plain-mode sigils, used when color output is off.
var sigils = map[compare.Kind][2]string{
	compare.Mistake: {"[~", "]"},
	compare.Missing: {"[-", "]"},
	compare.Wrong:   {"[+", "]"},
}

// Render writes the annotated text followed by a stats summary. Width
// bounds line length in display columns; zero or negative disables
// wrapping. With color off each non-correct word is bracketed instead.
func Render(w io.Writer, res compare.Result, width int, color bool) error {
	if err := renderWords(w, res.Words, width, color); err != nil {
		return err
	}
	return RenderStats(w, res.Stats)
}

// RenderStats writes the summary counts and accuracy.
func RenderStats(w io.Writer, st compare.Stats) error {
	_, err := fmt.Fprintf(w,
		"\ncorrect %d  mistake %d  missing %d  wrong %d\naccuracy %.2f%% of %d words\n",
		st.Correct, st.Mistake, st.Missing, st.Wrong, st.Accuracy()*100, st.Total)
	return err
}

func renderWords(w io.Writer, words []compare.AnnotatedWord, width int, color bool) error {
	lineWidth := 0
	for i, word := range words {
		text := word.Text
		if !color {
			if s, ok := sigils[word.Kind]; ok {
				text = s[0] + text + s[1]
			}
		}
		wordWidth := runewidth.StringWidth(text)

		sep := ""
		if i > 0 {
			sep = " "
		}
		if width > 0 && lineWidth > 0 && lineWidth+len(sep)+wordWidth > width {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			lineWidth = 0
			sep = ""
		}

		if color {
			text = styleFor(word.Kind).Render(text)
		}
		if _, err := io.WriteString(w, sep+text); err != nil {
			return err
		}
		lineWidth += len(sep) + wordWidth
	}
	if len(words) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func styleFor(kind compare.Kind) lipgloss.Style {
	switch kind {
	case compare.Mistake:
		return mistakeStyle
	case compare.Missing:
		return missingStyle
	case compare.Wrong:
		return wrongStyle
	default:
		return correctStyle
	}
}

// Legend explains the plain-mode sigils.
func Legend() string {
	return strings.Join([]string{
		"[~word] near miss",
		"[-word] missing from attempt",
		"[+word] not in reference",
	}, "  ")
}
