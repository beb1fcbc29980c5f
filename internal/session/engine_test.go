package session

import (
	"strconv"
	"testing"
	"time"

	"github.com/abhisek/mathsprout/internal/history"
	"github.com/abhisek/mathsprout/internal/question"
	"github.com/abhisek/mathsprout/internal/store"
)

func newTestEngine() (*Engine, *store.Memory, *history.Archive) {
	kv := store.NewMemory()
	archive := history.Load(kv)
	return New(kv, archive), kv, archive
}

// wrongOption picks any option that isn't the answer, or answer+1000 if the
// options somehow all match.
func wrongOption(q *question.Question) int {
	for _, o := range q.Options {
		if o != q.Answer {
			return o
		}
	}
	return q.Answer + 1000
}

func TestGenerateQuestion_FirstCall(t *testing.T) {
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.EarlySchool)

	if e.CurrentQuestion == nil {
		t.Fatal("CurrentQuestion is nil after GenerateQuestion")
	}
	if e.QuestionsAnswered != 1 {
		t.Errorf("QuestionsAnswered = %d, want 1", e.QuestionsAnswered)
	}
	if e.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", e.Attempts)
	}
	if e.StartTime.IsZero() {
		t.Error("StartTime not recorded")
	}
	if e.QuestionStartTime.IsZero() {
		t.Error("QuestionStartTime not recorded")
	}
}

func TestGenerateQuestion_PoolCyclesWithWraparound(t *testing.T) {
	e, _, _ := newTestEngine()

	poolSize := question.Toddler.PoolSize()
	e.GenerateQuestion(question.Toddler)
	first := *e.CurrentQuestion

	// Walk the full pool; the next question must be the first one again.
	for i := 1; i < poolSize; i++ {
		e.GenerateQuestion(question.Toddler)
	}
	e.GenerateQuestion(question.Toddler)

	if e.CurrentQuestion.Text != first.Text || e.CurrentQuestion.Answer != first.Answer {
		t.Error("pool did not wrap to the first question")
	}
	if e.QuestionsAnswered != poolSize+1 {
		t.Errorf("QuestionsAnswered = %d, want %d", e.QuestionsAnswered, poolSize+1)
	}
}

func TestGenerateQuestion_DifficultyChangeRebuildsPool(t *testing.T) {
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.Toddler)
	e.GenerateQuestion(question.OlderKids)

	if e.Difficulty != question.OlderKids {
		t.Errorf("Difficulty = %v, want OlderKids", e.Difficulty)
	}
	if len(e.CurrentQuestion.Options) != 4 {
		t.Errorf("options = %d, want 4 after switching to OlderKids", len(e.CurrentQuestion.Options))
	}
	if e.TimeRemaining != SessionSeconds {
		t.Errorf("TimeRemaining = %d, want %d", e.TimeRemaining, SessionSeconds)
	}
}

func TestCheckAnswer_CorrectWithBonus(t *testing.T) {
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.EarlySchool)

	correct, bonus := e.CheckAnswer(e.CurrentQuestion.Answer)

	if !correct || !bonus {
		t.Fatalf("CheckAnswer = (%v, %v), want (true, true)", correct, bonus)
	}
	if e.Score != 2 {
		t.Errorf("Score = %d, want 2", e.Score)
	}
	if e.Streak != 1 || e.BestStreak != 1 {
		t.Errorf("Streak = %d, BestStreak = %d, want 1, 1", e.Streak, e.BestStreak)
	}
	if len(e.Performance) != 1 {
		t.Fatalf("Performance entries = %d, want 1", len(e.Performance))
	}
	rec := e.Performance[0]
	if rec.Attempts != 1 || !rec.IsCorrect {
		t.Errorf("record = %+v, want attempts 1, correct", rec)
	}
	if rec.CorrectAnswer != strconv.Itoa(e.CurrentQuestion.Answer) {
		t.Errorf("record answer = %q", rec.CorrectAnswer)
	}
}

func TestCheckAnswer_CorrectOutsideBonusWindow(t *testing.T) {
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.EarlySchool)
	e.QuestionStartTime = time.Now().Add(-10 * time.Second)

	correct, bonus := e.CheckAnswer(e.CurrentQuestion.Answer)

	if !correct || bonus {
		t.Fatalf("CheckAnswer = (%v, %v), want (true, false)", correct, bonus)
	}
	if e.Score != 1 {
		t.Errorf("Score = %d, want 1", e.Score)
	}
	if e.Performance[0].TimeTaken < 9 {
		t.Errorf("TimeTaken = %f, want ~10s", e.Performance[0].TimeTaken)
	}
}

func TestCheckAnswer_BonusThresholdPerTier(t *testing.T) {
	// 4 seconds elapsed: inside the 5s window for EarlySchool, outside the
	// 3s window for OlderKids.
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.EarlySchool)
	e.QuestionStartTime = time.Now().Add(-4 * time.Second)
	if _, bonus := e.CheckAnswer(e.CurrentQuestion.Answer); !bonus {
		t.Error("EarlySchool answer at 4s should earn the bonus")
	}

	e2, _, _ := newTestEngine()
	e2.GenerateQuestion(question.OlderKids)
	e2.QuestionStartTime = time.Now().Add(-4 * time.Second)
	if _, bonus := e2.CheckAnswer(e2.CurrentQuestion.Answer); bonus {
		t.Error("OlderKids answer at 4s should not earn the bonus")
	}
}

func TestCheckAnswer_WrongResetsStreak(t *testing.T) {
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.EarlySchool)
	e.CheckAnswer(e.CurrentQuestion.Answer)
	e.GenerateQuestion(question.EarlySchool)
	e.CheckAnswer(e.CurrentQuestion.Answer)

	if e.Streak != 2 {
		t.Fatalf("Streak = %d, want 2", e.Streak)
	}
	scoreBefore := e.Score
	recordsBefore := len(e.Performance)

	e.GenerateQuestion(question.EarlySchool)
	correct, bonus := e.CheckAnswer(wrongOption(e.CurrentQuestion))

	if correct || bonus {
		t.Fatalf("CheckAnswer = (%v, %v), want (false, false)", correct, bonus)
	}
	if e.Streak != 0 {
		t.Errorf("Streak = %d, want 0", e.Streak)
	}
	if e.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", e.BestStreak)
	}
	if e.Score != scoreBefore {
		t.Errorf("Score changed on wrong answer: %d -> %d", scoreBefore, e.Score)
	}
	if len(e.Performance) != recordsBefore {
		t.Error("wrong answer appended a performance record")
	}
}

func TestCheckAnswer_WrongThenRightCountsAttempts(t *testing.T) {
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.EarlySchool)

	e.CheckAnswer(wrongOption(e.CurrentQuestion))
	e.CheckAnswer(wrongOption(e.CurrentQuestion))
	e.CheckAnswer(e.CurrentQuestion.Answer)

	if len(e.Performance) != 1 {
		t.Fatalf("Performance entries = %d, want 1", len(e.Performance))
	}
	if e.Performance[0].Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", e.Performance[0].Attempts)
	}
}

func TestCheckAnswer_NoActiveQuestionIsNoop(t *testing.T) {
	e, _, _ := newTestEngine()
	correct, bonus := e.CheckAnswer(7)
	if correct || bonus {
		t.Errorf("CheckAnswer = (%v, %v), want (false, false)", correct, bonus)
	}
	if e.Score != 0 || e.Attempts != 0 {
		t.Error("no-op CheckAnswer mutated state")
	}
}

func TestHighScore_PersistedWhenBeaten(t *testing.T) {
	e, kv, _ := newTestEngine()
	e.GenerateQuestion(question.Toddler)
	e.CheckAnswer(e.CurrentQuestion.Answer) // 2 points with bonus

	if e.HighScore != 2 {
		t.Fatalf("HighScore = %d, want 2", e.HighScore)
	}
	raw, ok := kv.Get(HighScoreKey(question.Toddler))
	if !ok || string(raw) != "2" {
		t.Errorf("persisted high score = %q, %v", raw, ok)
	}

	// A fresh engine for the same tier loads it back.
	e2 := New(kv, nil)
	e2.GenerateQuestion(question.Toddler)
	if e2.HighScore != 2 {
		t.Errorf("reloaded HighScore = %d, want 2", e2.HighScore)
	}
}

func TestHighScore_PerDifficulty(t *testing.T) {
	e, kv, _ := newTestEngine()
	e.GenerateQuestion(question.Toddler)
	e.CheckAnswer(e.CurrentQuestion.Answer)

	if _, ok := kv.Get(HighScoreKey(question.OlderKids)); ok {
		t.Error("high score leaked into another tier's key")
	}
}

func TestTick_CountsDownAndEndsGame(t *testing.T) {
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.OlderKids)

	if e.TimeRemaining != SessionSeconds {
		t.Fatalf("TimeRemaining = %d, want %d", e.TimeRemaining, SessionSeconds)
	}

	for i := 0; i < SessionSeconds; i++ {
		e.Tick()
	}
	if e.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %d, want 0", e.TimeRemaining)
	}
	if !e.GameOver {
		t.Error("GameOver not set when countdown reached zero")
	}

	// Further ticks are idempotent.
	e.Tick()
	e.Tick()
	if e.TimeRemaining != 0 {
		t.Errorf("TimeRemaining went below zero: %d", e.TimeRemaining)
	}
}

func TestTick_IgnoredForUntimedTiers(t *testing.T) {
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.Toddler)
	e.Tick()
	if e.GameOver || e.TimeRemaining != 0 {
		t.Error("tick affected an untimed session")
	}
}

func TestWrongAnswer_DeductsTimeInTimedMode(t *testing.T) {
	e, _, _ := newTestEngine()
	e.GenerateQuestion(question.OlderKids)

	e.CheckAnswer(wrongOption(e.CurrentQuestion))
	if e.TimeRemaining != SessionSeconds-WrongAnswerPenalty {
		t.Errorf("TimeRemaining = %d, want %d", e.TimeRemaining, SessionSeconds-WrongAnswerPenalty)
	}

	// Drain nearly all remaining time, then one more wrong answer clamps
	// at zero and ends the game.
	for e.TimeRemaining > WrongAnswerPenalty-2 {
		e.Tick()
	}
	e.CheckAnswer(wrongOption(e.CurrentQuestion))
	if e.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %d, want 0", e.TimeRemaining)
	}
	if !e.GameOver {
		t.Error("GameOver not set when penalty drained the clock")
	}
}

func TestReset_FinalizesIntoHistory(t *testing.T) {
	e, _, archive := newTestEngine()

	for i := 0; i < 5; i++ {
		e.GenerateQuestion(question.EarlySchool)
		e.CheckAnswer(e.CurrentQuestion.Answer)
	}
	e.Reset()

	if archive.Len() != 1 {
		t.Fatalf("archive length = %d, want 1", archive.Len())
	}
	rec := archive.Sessions()[0]
	if rec.QuestionsAnswered != 5 {
		t.Errorf("recorded QuestionsAnswered = %d, want 5", rec.QuestionsAnswered)
	}
	if rec.Score != 10 {
		t.Errorf("recorded Score = %d, want 10", rec.Score)
	}
	if rec.Difficulty != "Early School" {
		t.Errorf("recorded Difficulty = %q", rec.Difficulty)
	}
	if len(rec.Details) != 5 {
		t.Errorf("recorded Details = %d, want 5", len(rec.Details))
	}

	// Engine is back to idle, high score retained.
	if e.Score != 0 || e.Streak != 0 || e.BestStreak != 0 || e.QuestionsAnswered != 0 {
		t.Error("Reset left score state behind")
	}
	if e.CurrentQuestion != nil {
		t.Error("Reset left a current question")
	}
	if e.HighScore != 10 {
		t.Errorf("HighScore after reset = %d, want 10", e.HighScore)
	}
}

func TestReset_NoQuestionsNoRecord(t *testing.T) {
	e, _, archive := newTestEngine()
	e.Reset()
	if archive.Len() != 0 {
		t.Errorf("archive length = %d, want 0", archive.Len())
	}
}

func TestEndToEnd_TenFastCorrectAnswers(t *testing.T) {
	e, kv, _ := newTestEngine()

	for i := 0; i < 10; i++ {
		e.GenerateQuestion(question.EarlySchool)
		correct, bonus := e.CheckAnswer(e.CurrentQuestion.Answer)
		if !correct || !bonus {
			t.Fatalf("answer %d: (%v, %v), want (true, true)", i, correct, bonus)
		}
	}

	if e.Score != 20 {
		t.Errorf("Score = %d, want 20", e.Score)
	}
	if e.BestStreak != 10 {
		t.Errorf("BestStreak = %d, want 10", e.BestStreak)
	}
	raw, ok := kv.Get(HighScoreKey(question.EarlySchool))
	if !ok || string(raw) != "20" {
		t.Errorf("persisted high score = %q, %v, want \"20\"", raw, ok)
	}
}

func TestAppreciationMessage_FollowsStreak(t *testing.T) {
	e, _, _ := newTestEngine()

	for i := 1; i <= 4; i++ {
		e.GenerateQuestion(question.Toddler)
		e.CheckAnswer(e.CurrentQuestion.Answer)

		key, ok := e.AppreciationMessage()
		switch i {
		case 3:
			if !ok || key != "appreciation.streak3" {
				t.Errorf("streak 3: (%q, %v)", key, ok)
			}
		default:
			if ok {
				t.Errorf("streak %d: unexpected message %q", i, key)
			}
		}
	}
}
