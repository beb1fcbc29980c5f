package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprout/internal/ui/layout"
)

// Screen is the interface implemented by every application screen.
type Screen interface {
	// Init returns the command to run when the screen is first shown.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding the header/footer frame).
	View(width, height int) string

	// Title returns the screen name shown in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatsProvider lets a screen feed the header's score/streak readout.
type StatsProvider interface {
	Stats() (score, streak int)
}
