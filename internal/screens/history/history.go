// Package history implements the session history browser with expandable
// per-question details.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprout/internal/history"
	"github.com/abhisek/mathsprout/internal/router"
	"github.com/abhisek/mathsprout/internal/screen"
	"github.com/abhisek/mathsprout/internal/ui/layout"
	"github.com/abhisek/mathsprout/internal/ui/theme"
)

// HistoryScreen lists past sessions, newest first.
type HistoryScreen struct {
	sessions []history.GameSession
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen over the archive's retained sessions.
func New(archive *history.Archive) *HistoryScreen {
	return &HistoryScreen{
		sessions: archive.Sessions(),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.sessions)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("\n\n  No games played yet. Go play a round!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			marker = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %-13s %d/%d (%.0f%%)  %s",
			marker,
			sess.FormattedDate(),
			sess.Difficulty,
			sess.Score,
			sess.QuestionsAnswered,
			sess.Accuracy(),
			sess.FormattedDuration(),
		)
		b.WriteString("  " + style.Render(line) + "\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetails(sess))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetails(sess history.GameSession) string {
	if len(sess.Details) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("        no question details recorded") + "\n"
	}

	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	for _, d := range sess.Details {
		attempts := ""
		if d.Attempts > 1 {
			attempts = fmt.Sprintf(", %d tries", d.Attempts)
		}
		b.WriteString(dim.Render(fmt.Sprintf("        %s = %s  (%s%s)",
			d.QuestionText, d.CorrectAnswer, d.FormattedTime(), attempts)) + "\n")
	}
	return b.String()
}
