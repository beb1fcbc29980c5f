// Package session implements the per-play-session game engine: question
// serving, answer checking, score/streak/bonus rules, the timed-mode
// countdown, and finalization into history.
//
// One Engine is constructed per play session and owned by a single actor.
// All transitions are synchronous; the countdown is driven by explicit
// Tick calls delivered on the same goroutine as answer checks.
package session

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathsprout/internal/history"
	"github.com/abhisek/mathsprout/internal/question"
	"github.com/abhisek/mathsprout/internal/store"
)

const (
	// SessionSeconds is the timed-mode (Older Kids) countdown length.
	SessionSeconds = 60

	// WrongAnswerPenalty is the number of seconds deducted from the
	// countdown for each wrong answer in timed mode.
	WrongAnswerPenalty = 5
)

// Engine tracks the state of one active play session.
type Engine struct {
	Difficulty        question.Difficulty
	Score             int
	HighScore         int
	Streak            int
	BestStreak        int
	QuestionsAnswered int

	// CurrentQuestion is the question awaiting an answer, nil between
	// questions and before the first GenerateQuestion.
	CurrentQuestion *question.Question

	// Attempts counts answer submissions against the current question.
	Attempts int

	// TimeRemaining is the countdown in seconds; meaningful only in timed
	// mode. Never negative.
	TimeRemaining int

	// GameOver is set when the timed-mode countdown reaches zero.
	GameOver bool

	StartTime         time.Time
	QuestionStartTime time.Time

	// Performance accumulates one record per correctly answered question.
	Performance []history.QuestionPerformance

	kv      store.KV
	archive *history.Archive
	rng     *rand.Rand
	pool    *question.Pool
}

// New creates an Engine backed by the given persistence port and archive.
func New(kv store.KV, archive *history.Archive) *Engine {
	return &Engine{
		kv:      kv,
		archive: archive,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateQuestion serves the next question for the tier. The pool is built
// on first use and rebuilt on difficulty change; otherwise questions cycle
// through the pregenerated batch with wraparound.
func (e *Engine) GenerateQuestion(d question.Difficulty) {
	e.Difficulty = d
	e.loadHighScore()

	if e.StartTime.IsZero() {
		e.StartTime = time.Now()
	}
	e.QuestionStartTime = time.Now()

	if e.pool == nil || e.pool.Difficulty != d {
		e.pool = question.GeneratePool(e.rng, d)
		if d.Timed() {
			e.TimeRemaining = SessionSeconds
		}
	}

	q := e.pool.Next()
	e.CurrentQuestion = &q
	e.QuestionsAnswered++
	e.Attempts = 0
}

// CheckAnswer evaluates a submitted option. A correct answer scores one
// point, plus a bonus point when answered within the tier's speed threshold,
// extends the streak, and records a performance entry. A wrong answer resets
// the streak and, in timed mode, costs countdown seconds. Submitting with no
// active question is ignored.
func (e *Engine) CheckAnswer(selected int) (correct, bonus bool) {
	if e.CurrentQuestion == nil {
		return false, false
	}

	e.Attempts++
	q := e.CurrentQuestion

	if selected != q.Answer {
		e.Streak = 0
		if e.Difficulty.Timed() && !e.GameOver {
			e.TimeRemaining -= WrongAnswerPenalty
			if e.TimeRemaining <= 0 {
				e.TimeRemaining = 0
				e.GameOver = true
			}
		}
		return false, false
	}

	elapsed := time.Since(e.QuestionStartTime)
	points := 1
	bonus = elapsed <= e.Difficulty.BonusThreshold()
	if bonus {
		points++
	}

	e.Performance = append(e.Performance, history.QuestionPerformance{
		QuestionText:  q.Text,
		CorrectAnswer: strconv.Itoa(q.Answer),
		TimeTaken:     elapsed.Seconds(),
		Attempts:      e.Attempts,
		IsCorrect:     true,
	})

	e.Score += points
	e.Streak++
	if e.Streak > e.BestStreak {
		e.BestStreak = e.Streak
	}
	if e.Score > e.HighScore {
		e.HighScore = e.Score
		e.saveHighScore()
	}

	return true, bonus
}

// Tick advances the timed-mode countdown by one second. Ticks are ignored in
// untimed tiers, before the first question, and after game over; the
// countdown never goes below zero.
func (e *Engine) Tick() {
	if !e.Difficulty.Timed() || e.GameOver || e.pool == nil {
		return
	}
	if e.TimeRemaining > 0 {
		e.TimeRemaining--
	}
	if e.TimeRemaining == 0 {
		e.GameOver = true
	}
}

// AppreciationMessage returns the localization key for the current streak's
// encouragement message, if the streak sits exactly on a milestone.
func (e *Engine) AppreciationMessage() (string, bool) {
	return AppreciationKey(e.Streak)
}

// Reset finalizes the session into history (when any questions were
// answered) and returns the engine to its idle state, keeping the current
// difficulty and reloading its high score.
func (e *Engine) Reset() {
	e.finalize()

	e.Score = 0
	e.QuestionsAnswered = 0
	e.Streak = 0
	e.BestStreak = 0
	e.CurrentQuestion = nil
	e.Attempts = 0
	e.TimeRemaining = 0
	e.GameOver = false
	e.StartTime = time.Time{}
	e.QuestionStartTime = time.Time{}
	e.Performance = nil
	e.pool = nil

	e.loadHighScore()
}

func (e *Engine) finalize() {
	if e.QuestionsAnswered == 0 || e.StartTime.IsZero() || e.archive == nil {
		return
	}
	e.archive.Record(history.GameSession{
		ID:                uuid.New(),
		Date:              time.Now(),
		Difficulty:        e.Difficulty.DisplayName(),
		Score:             e.Score,
		QuestionsAnswered: e.QuestionsAnswered,
		Duration:          time.Since(e.StartTime).Seconds(),
		Details:           e.Performance,
	})
}

// HighScoreKey returns the persistence key for a tier's high score.
func HighScoreKey(d question.Difficulty) string {
	return "HighScore_" + d.Key()
}

func (e *Engine) loadHighScore() {
	e.HighScore = 0
	raw, ok := e.kv.Get(HighScoreKey(e.Difficulty))
	if !ok {
		return
	}
	if n, err := strconv.Atoi(string(raw)); err == nil && n >= 0 {
		e.HighScore = n
	}
}

// saveHighScore writes the high score back immediately so it survives the
// process even if the session never resets cleanly. Best-effort.
func (e *Engine) saveHighScore() {
	_ = e.kv.Set(HighScoreKey(e.Difficulty), []byte(strconv.Itoa(e.HighScore)))
}
