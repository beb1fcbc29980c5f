package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprout/internal/ui/theme"
)

// Choice is the answer selector: 3 or 4 numeric options labeled A-D. After
// submission it locks and reveals the correct option.
type Choice struct {
	Prompt    string
	Options   []int
	Answer    int
	Selected  int
	Submitted bool
	Chosen    int
}

// NewChoice creates a selector for the given options.
func NewChoice(prompt string, options []int, answer int) Choice {
	return Choice{
		Prompt:  prompt,
		Options: options,
		Answer:  answer,
		Chosen:  -1,
	}
}

// Update handles navigation and selection. Number keys 1-4 select and
// submit directly; arrow keys move; enter submits the highlighted option.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k", "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j", "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter", " ":
		c.Submitted = true
		c.Chosen = c.Selected
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
			c.Selected = n - 1
			c.Submitted = true
			c.Chosen = c.Selected
		}
	}

	return c, nil
}

// Reveal marks the component submitted without a chosen option, used when
// the countdown expires mid-question.
func (c Choice) Reveal() Choice {
	c.Submitted = true
	return c
}

// IsCorrect reports whether the submitted choice was the answer.
func (c Choice) IsCorrect() bool {
	return c.Submitted && c.Chosen >= 0 && c.Options[c.Chosen] == c.Answer
}

// Value returns the numeric value of the chosen option, or ok=false if
// nothing was chosen.
func (c Choice) Value() (int, bool) {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return 0, false
	}
	return c.Options[c.Chosen], true
}

var choiceLabels = []string{"A", "B", "C", "D"}

// View renders the prompt and option list.
func (c Choice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %d", prefix, choiceLabels[i], opt)

		var style lipgloss.Style
		switch {
		case c.Submitted && opt == c.Answer:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case c.Submitted && i == c.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case c.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		s += style.Render(line) + "\n"
	}

	return s
}
