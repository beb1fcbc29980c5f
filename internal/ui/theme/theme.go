// Package theme holds the shared color palette and text styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — bright and friendly for small players
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#0EA5E9") // Sky Blue
	Accent    = lipgloss.Color("#EC4899") // Pink
	Success   = lipgloss.Color("#16A34A") // Green
	Error     = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#FAFAF9") // Off-white
	TextDim   = lipgloss.Color("#A8A29E") // Warm Gray
	BgCard    = lipgloss.Color("#1C1917") // Charcoal
	Border    = lipgloss.Color("#44403C") // Stone
)

// TierColors gives each difficulty tier its own accent, keyed by the tier's
// persistence key.
var TierColors = map[string]color.Color{
	"toddler":     lipgloss.Color("#FACC15"), // Yellow
	"earlySchool": lipgloss.Color("#2DD4BF"), // Teal
	"olderKids":   lipgloss.Color("#A78BFA"), // Violet
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
