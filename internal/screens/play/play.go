// Package play implements the active game screen: question display, answer
// selection, feedback, the timed-mode countdown, and hand-off to the
// game-over summary.
package play

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprout/internal/i18n"
	"github.com/abhisek/mathsprout/internal/question"
	"github.com/abhisek/mathsprout/internal/router"
	"github.com/abhisek/mathsprout/internal/screen"
	"github.com/abhisek/mathsprout/internal/screens/summary"
	"github.com/abhisek/mathsprout/internal/session"
	"github.com/abhisek/mathsprout/internal/ui/components"
	"github.com/abhisek/mathsprout/internal/ui/layout"
)

// feedbackDelay is how long the correct/wrong overlay stays before the game
// auto-advances. Answer input is ignored during this window so a stale
// submission can never land on the next question.
const feedbackDelay = 1200 * time.Millisecond

// PlayScreen runs one play session against a session.Engine.
type PlayScreen struct {
	engine     *session.Engine
	tr         i18n.Translator
	difficulty question.Difficulty

	choice components.Choice

	showingFeedback bool
	showingQuit     bool
	lastCorrect     bool
	lastBonus       bool
	appreciation    string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatsProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for one session at the given tier.
func New(engine *session.Engine, tr i18n.Translator, d question.Difficulty) *PlayScreen {
	return &PlayScreen{
		engine:     engine,
		tr:         tr,
		difficulty: d,
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	s.serveNext()
	if s.difficulty.Timed() {
		return countdownTick()
	}
	return nil
}

func (s *PlayScreen) Title() string {
	return s.difficulty.DisplayName()
}

// Stats feeds the header's score and streak readout.
func (s *PlayScreen) Stats() (score, streak int) {
	return s.engine.Score, s.engine.Streak
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "...", Description: "Next question"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return s.handleCountdownTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleCountdownTick() (screen.Screen, tea.Cmd) {
	s.engine.Tick()
	if s.engine.GameOver {
		return s, s.finish()
	}
	return s, countdownTick()
}

func (s *PlayScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	if s.engine.GameOver {
		return s, s.finish()
	}
	if s.lastCorrect {
		s.serveNext()
	} else {
		// Same question again: fresh selector, attempts keep counting.
		q := s.engine.CurrentQuestion
		s.choice = components.NewChoice(s.prompt(q), q.Options, q.Answer)
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.showingQuit {
		switch msg.String() {
		case "y", "Y", "enter":
			return s, s.finish()
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, nil
	}

	if msg.String() == "esc" {
		s.showingQuit = true
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		return s.submitAnswer()
	}
	return s, cmd
}

func (s *PlayScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	selected, ok := s.choice.Value()
	if !ok {
		return s, nil
	}

	s.lastCorrect, s.lastBonus = s.engine.CheckAnswer(selected)
	s.appreciation = ""
	if s.lastCorrect {
		if key, ok := s.engine.AppreciationMessage(); ok {
			s.appreciation = s.tr.Translate(key)
		}
	}

	if s.engine.GameOver {
		// Wrong-answer time penalty drained the clock.
		return s, s.finish()
	}

	s.showingFeedback = true
	return s, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

// finish captures the session outcome, resets the engine (which records the
// session into history), and swaps in the summary screen.
func (s *PlayScreen) finish() tea.Cmd {
	result := summary.Result{
		Difficulty:        s.difficulty,
		Score:             s.engine.Score,
		QuestionsAnswered: s.engine.QuestionsAnswered,
		BestStreak:        s.engine.BestStreak,
		HighScore:         s.engine.HighScore,
		TimedOut:          s.engine.GameOver,
	}
	s.engine.Reset()

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result, s.tr)}
	}
}

func (s *PlayScreen) serveNext() {
	s.engine.GenerateQuestion(s.difficulty)
	q := s.engine.CurrentQuestion
	s.choice = components.NewChoice(s.prompt(q), q.Options, q.Answer)
}

// prompt resolves the question's display text: counting questions carry a
// localization key, arithmetic questions carry literal text.
func (s *PlayScreen) prompt(q *question.Question) string {
	if q.Text == question.ToddlerTextKey {
		return s.tr.Translate(q.Text)
	}
	return q.Text + " = ?"
}

func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}
