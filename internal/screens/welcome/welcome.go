// Package welcome shows a short splash before the home screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprout/internal/router"
	"github.com/abhisek/mathsprout/internal/screen"
	"github.com/abhisek/mathsprout/internal/ui/theme"
)

const splashDuration = 1500 * time.Millisecond

const mascotArt = `   ╭─────────╮
   │  ◠   ◠  │
   │    ▿    │
   │  + - ×  │
   ╰─────────╯`

type splashDoneMsg struct{}

// WelcomeScreen shows the splash, then replaces itself with the screen
// produced by next. Any key skips the wait.
type WelcomeScreen struct {
	next func() screen.Screen
	done bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen transitioning to next().
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(splashDuration, func(time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case splashDoneMsg, tea.KeyMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: w.next()}
		}
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(mascotArt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("MathSprout"))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("numbers are fun!"))

	return b.String()
}
