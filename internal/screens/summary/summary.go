// Package summary shows the game-over screen after a play session.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprout/internal/i18n"
	"github.com/abhisek/mathsprout/internal/question"
	"github.com/abhisek/mathsprout/internal/router"
	"github.com/abhisek/mathsprout/internal/screen"
	"github.com/abhisek/mathsprout/internal/ui/layout"
	"github.com/abhisek/mathsprout/internal/ui/theme"
)

// Result captures the session outcome before the engine is reset.
type Result struct {
	Difficulty        question.Difficulty
	Score             int
	QuestionsAnswered int
	BestStreak        int
	HighScore         int
	TimedOut          bool
}

// Accuracy returns the score as a percentage of questions answered.
func (r Result) Accuracy() float64 {
	if r.QuestionsAnswered == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.QuestionsAnswered) * 100
}

// SummaryScreen displays a finished session's result.
type SummaryScreen struct {
	result Result
	tr     i18n.Translator
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the result.
func New(result Result, tr i18n.Translator) *SummaryScreen {
	return &SummaryScreen{result: result, tr: tr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", " ":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder
	b.WriteString("\n")

	title := "Well played!"
	if r.TimedOut {
		title = s.tr.Translate("game.over")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{s.tr.Translate("game.score"), fmt.Sprintf("%d", r.Score)},
		{"Questions", fmt.Sprintf("%d", r.QuestionsAnswered)},
		{"Accuracy", fmt.Sprintf("%.0f%%", r.Accuracy())},
		{"Best streak", fmt.Sprintf("%d", r.BestStreak)},
		{s.tr.Translate("game.high_score"), fmt.Sprintf("%d", r.HighScore)},
	}

	var card strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&card, "%-14s %s\n", row.label, row.value)
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(strings.TrimRight(card.String(), "\n"))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(r.Difficulty.DisplayName()))

	return b.String()
}
