package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprout/internal/question"
	"github.com/abhisek/mathsprout/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.showingQuit {
		return s.renderQuitConfirm(width)
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.difficulty.Timed() {
		b.WriteString(s.renderCountdown(width))
		b.WriteString("\n")
	}

	b.WriteString(s.renderQuestion(width))

	if s.showingFeedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s: %d   %s: %d",
			s.tr.Translate("game.score"), s.engine.Score,
			s.tr.Translate("game.high_score"), s.engine.HighScore)))

	return b.String()
}

func (s *PlayScreen) renderCountdown(width int) string {
	color := theme.Secondary
	if s.engine.TimeRemaining < 10 {
		color = theme.Error
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(color).
		Bold(true).
		Render(fmt.Sprintf("⏱  %d", s.engine.TimeRemaining))
}

func (s *PlayScreen) renderQuestion(width int) string {
	card := s.choice.View()

	// Counting questions show answer-many dots to count.
	if q := s.engine.CurrentQuestion; q != nil && q.Text == question.ToddlerTextKey {
		dots := strings.TrimRight(strings.Repeat("● ", q.Answer), " ")
		dotLine := lipgloss.NewStyle().
			Foreground(theme.TierColors[s.difficulty.Key()]).
			Bold(true).
			Render(dots)
		parts := strings.SplitN(card, "\n\n", 2)
		if len(parts) == 2 {
			card = parts[0] + "\n\n" + dotLine + "\n\n" + parts[1]
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(card))
}

func (s *PlayScreen) renderFeedback(width int) string {
	var line string
	switch {
	case s.lastCorrect && s.lastBonus:
		line = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(s.tr.Translate("game.correct") + "  " + s.tr.Translate("game.bonus"))
	case s.lastCorrect:
		line = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(s.tr.Translate("game.correct"))
	default:
		line = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render(s.tr.Translate("game.wrong"))
	}

	if s.appreciation != "" {
		line += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(s.appreciation)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(line)
}

func (s *PlayScreen) renderQuitConfirm(width int) string {
	msg := "End this session?\n\nYour progress will be saved\nto the parent report.\n\n[Y] Yes    [N] Keep playing"
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(msg))
}
