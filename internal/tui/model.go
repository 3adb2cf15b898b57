// Package tui provides the Bubble Tea dictation practice interface.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/dictype/internal/compare"
	"github.com/verte-zerg/dictype/internal/model"
	"github.com/verte-zerg/dictype/internal/report"
	statsPkg "github.com/verte-zerg/dictype/internal/stats"
	"github.com/verte-zerg/dictype/internal/store"
	"github.com/verte-zerg/dictype/internal/transcript"
)

type phase int

const (
	phaseTyping phase = iota
	phaseResult
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea practice UI. The user types what they
// remember of the transcript, submits, and reviews the annotated result
// before starting the next round.
type Model struct {
	cmp *compare.Comparer
	st  *store.Store
	tr  *transcript.Transcript

	ta textarea.Model
	vp viewport.Model

	width  int
	height int
	phase  phase

	started   bool
	startedAt time.Time

	rounds  int
	lastAcc float64
	hasLast bool
}

// NewModel constructs a practice TUI model.
func NewModel(cmp *compare.Comparer, st *store.Store, tr *transcript.Transcript) *Model {
	ta := textarea.New()
	ta.Placeholder = "Type the transcript from memory..."
	ta.CharLimit = 0
	ta.Focus()

	m := &Model{
		cmp: cmp,
		st:  st,
		tr:  tr,
		ta:  ta,
		vp:  viewport.New(0, 0),
	}
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.phase == phaseResult {
			return m.updateResult(msg)
		}
		return m.updateTyping(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlD {
		m.finishRound()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	if !m.started && m.ta.Length() > 0 {
		m.started = true
		m.startedAt = time.Now()
	}
	return m, cmd
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter || msg.String() == "n" {
		m.nextRound()
		return m, textarea.Blink
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	title := titleStyle.Render(m.tr.Name)
	var body, help string
	switch m.phase {
	case phaseTyping:
		body = m.ta.View()
		help = "ctrl+d submit · ctrl+c quit"
	case phaseResult:
		body = m.vp.View()
		help = "enter/n next round · ctrl+c quit"
	}
	footer := footerStyle.Render(footerText(m.rounds, m.hasLast, m.lastAcc) + "  " + help)
	return strings.Join([]string{title, body, footer}, "\n")
}

func (m *Model) resize() {
	contentWidth := m.width
	if contentWidth < 1 {
		contentWidth = 1
	}
	bodyHeight := m.height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.ta.SetWidth(contentWidth)
	m.ta.SetHeight(bodyHeight)
	m.vp.Width = contentWidth
	m.vp.Height = bodyHeight
}

func (m *Model) finishRound() {
	if !m.started {
		return
	}
	endedAt := time.Now()
	attempt := m.ta.Value()
	res := m.cmp.Compare(attempt, m.tr.Text)

	m.saveSession(res, endedAt)

	m.rounds++
	m.lastAcc = res.Stats.Accuracy()
	m.hasLast = true

	m.vp.SetContent(m.renderResult(res))
	m.vp.GotoTop()
	m.phase = phaseResult
}

func (m *Model) renderResult(res compare.Result) string {
	var buf bytes.Buffer
	width := m.vp.Width
	if width <= 0 {
		width = 80
	}
	if err := report.Render(&buf, res, width, true); err != nil {
		logErrf("failed to render result: %v\n", err)
	}
	return buf.String()
}

func (m *Model) saveSession(res compare.Result, endedAt time.Time) {
	stats := model.SessionStats{
		StartedAt:  m.startedAt,
		EndedAt:    endedAt,
		Transcript: m.tr.Name,
		Correct:    res.Stats.Correct,
		Mistake:    res.Stats.Mistake,
		Missing:    res.Stats.Missing,
		Wrong:      res.Stats.Wrong,
		Total:      res.Stats.Total,
		Accuracy:   res.Stats.Accuracy(),
		DurationMs: endedAt.Sub(m.startedAt).Milliseconds(),
	}
	words := statsPkg.BuildWordStats(res.Words)
	ctx := context.Background()
	if _, err := m.st.InsertSession(ctx, stats, words); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
}

func (m *Model) nextRound() {
	m.ta.Reset()
	m.ta.Focus()
	m.started = false
	m.startedAt = time.Time{}
	m.phase = phaseTyping
}

func (m *Model) loadFooterStats() {
	ctx := context.Background()
	sessions, err := m.st.ListSessions(ctx, model.StatsConfig{Transcript: m.tr.Name})
	if err != nil {
		logErrf("failed to load session stats: %v\n", err)
		return
	}
	if len(sessions) == 0 {
		return
	}
	m.lastAcc = sessions[len(sessions)-1].Accuracy
	m.hasLast = true
}

func footerText(rounds int, hasLast bool, lastAcc float64) string {
	segments := []string{fmt.Sprintf("Round %d", rounds+1)}
	if hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f%%", lastAcc*100))
	}
	return strings.Join(segments, "  ")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
