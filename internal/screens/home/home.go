// Package home is the main menu: difficulty tiers, parent report, session
// history.
package home

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprout/internal/history"
	"github.com/abhisek/mathsprout/internal/i18n"
	"github.com/abhisek/mathsprout/internal/question"
	"github.com/abhisek/mathsprout/internal/router"
	"github.com/abhisek/mathsprout/internal/screen"
	historyscreen "github.com/abhisek/mathsprout/internal/screens/history"
	"github.com/abhisek/mathsprout/internal/screens/play"
	"github.com/abhisek/mathsprout/internal/screens/report"
	"github.com/abhisek/mathsprout/internal/session"
	"github.com/abhisek/mathsprout/internal/store"
	"github.com/abhisek/mathsprout/internal/ui/components"
	"github.com/abhisek/mathsprout/internal/ui/theme"
)

// HomeScreen is the root menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. A fresh session engine is constructed each
// time a tier is started, so no session state leaks between plays.
func New(kv store.KV, archive *history.Archive, tr i18n.Translator) *HomeScreen {
	tiers := []struct {
		difficulty question.Difficulty
		label      string
	}{
		{question.Toddler, "TODDLER  (ages 2-4)"},
		{question.EarlySchool, "EARLY SCHOOL  (ages 5-7)"},
		{question.OlderKids, "OLDER KIDS  (ages 8-12)"},
	}

	items := make([]components.MenuItem, 0, len(tiers)+3)
	for _, t := range tiers {
		d := t.difficulty
		items = append(items, components.MenuItem{
			Label:  t.label,
			Detail: highScoreDetail(kv, d, tr),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					engine := session.New(kv, archive)
					return router.PushScreenMsg{Screen: play.New(engine, tr, d)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "PARENT REPORT",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: report.New(archive, tr)}
				}
			},
		},
		components.MenuItem{
			Label: "HISTORY",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: historyscreen.New(archive)}
				}
			},
		},
		components.MenuItem{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{menu: components.NewMenu(items)}
}

func highScoreDetail(kv store.KV, d question.Difficulty, tr i18n.Translator) string {
	raw, ok := kv.Get(session.HighScoreKey(d))
	if !ok {
		return ""
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil || n <= 0 {
		return ""
	}
	return fmt.Sprintf("%s: %d", tr.Translate("game.high_score"), n)
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Pick your game!"))
	b.WriteString("\n\n")

	menu := s.menu.View()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	return b.String()
}
