// Package report displays the parent-facing progress report.
package report

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprout/internal/history"
	"github.com/abhisek/mathsprout/internal/i18n"
	"github.com/abhisek/mathsprout/internal/router"
	"github.com/abhisek/mathsprout/internal/screen"
	"github.com/abhisek/mathsprout/internal/ui/layout"
	"github.com/abhisek/mathsprout/internal/ui/theme"
)

// ReportScreen renders the aggregated report with simple scrolling.
type ReportScreen struct {
	lines  []string
	offset int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen over the archive.
func New(archive *history.Archive, tr i18n.Translator) *ReportScreen {
	text := history.GenerateReport(archive, tr, time.Now())
	return &ReportScreen{lines: strings.Split(text, "\n")}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Parent Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(s.lines)-1 {
			s.offset++
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	visible := s.lines[s.offset:]
	if height > 2 && len(visible) > height-2 {
		visible = visible[:height-2]
	}

	body := strings.Join(visible, "\n")
	return "\n" + lipgloss.NewStyle().
		Foreground(theme.Text).
		PaddingLeft(4).
		Render(body)
}
