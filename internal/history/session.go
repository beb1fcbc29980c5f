// Package history persists completed game sessions and aggregates them into
// the parent-facing report.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuestionPerformance records one correctly answered question: how long it
// took and how many attempts it needed. Wrong answers are not recorded on
// their own; they surface only as extra attempts on the question that was
// eventually answered right.
type QuestionPerformance struct {
	QuestionText  string  `json:"questionText"`
	CorrectAnswer string  `json:"correctAnswer"`
	TimeTaken     float64 `json:"timeTaken"` // seconds
	Attempts      int     `json:"attempts"`
	IsCorrect     bool    `json:"isCorrect"`
}

// FormattedTime renders the answer time as "2.4s".
func (p QuestionPerformance) FormattedTime() string {
	return fmt.Sprintf("%.1fs", p.TimeTaken)
}

// GameSession is the immutable record of one finished play session.
type GameSession struct {
	ID                uuid.UUID             `json:"id"`
	Date              time.Time             `json:"date"`
	Difficulty        string                `json:"difficulty"`
	Score             int                   `json:"score"`
	QuestionsAnswered int                   `json:"questionsAnswered"`
	Duration          float64               `json:"duration"` // seconds
	Details           []QuestionPerformance `json:"details,omitempty"`
}

// Accuracy returns the session's score as a percentage of questions answered.
func (s GameSession) Accuracy() float64 {
	if s.QuestionsAnswered == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.QuestionsAnswered) * 100
}

// FormattedDate renders the session date for the report.
func (s GameSession) FormattedDate() string {
	return s.Date.Format("Jan 02, 2006 3:04 PM")
}

// FormattedDuration renders the session length as "m:ss".
func (s GameSession) FormattedDuration() string {
	total := int(s.Duration)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
