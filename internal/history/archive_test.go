package history

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathsprout/internal/store"
)

func testSession(score, answered int) GameSession {
	return GameSession{
		ID:                uuid.New(),
		Date:              time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC),
		Difficulty:        "Toddler",
		Score:             score,
		QuestionsAnswered: answered,
		Duration:          125,
	}
}

func TestLoad_EmptyStore(t *testing.T) {
	a := Load(store.NewMemory())
	require.Equal(t, 0, a.Len())
}

func TestRecord_PersistsAndReloads(t *testing.T) {
	kv := store.NewMemory()

	a := Load(kv)
	s := testSession(8, 5)
	s.Details = []QuestionPerformance{
		{QuestionText: "2 + 3", CorrectAnswer: "5", TimeTaken: 2.4, Attempts: 1, IsCorrect: true},
	}
	a.Record(s)

	reloaded := Load(kv)
	require.Equal(t, 1, reloaded.Len())
	got := reloaded.Sessions()[0]
	require.Equal(t, s.ID, got.ID)
	require.Equal(t, 8, got.Score)
	require.Equal(t, 5, got.QuestionsAnswered)
	require.Len(t, got.Details, 1)
	require.Equal(t, "2 + 3", got.Details[0].QuestionText)
}

func TestRecord_NewestFirst(t *testing.T) {
	a := Load(store.NewMemory())
	first := testSession(1, 1)
	second := testSession(2, 2)

	a.Record(first)
	a.Record(second)

	require.Equal(t, second.ID, a.Sessions()[0].ID)
	require.Equal(t, first.ID, a.Sessions()[1].ID)
}

func TestRecord_CapsAtMaxSessions(t *testing.T) {
	a := Load(store.NewMemory())
	var oldest, newest GameSession
	for i := 0; i < MaxSessions+5; i++ {
		s := testSession(i, i+1)
		if i == 0 {
			oldest = s
		}
		newest = s
		a.Record(s)
	}

	require.Equal(t, MaxSessions, a.Len())
	require.Equal(t, newest.ID, a.Sessions()[0].ID)
	for _, s := range a.Sessions() {
		require.NotEqual(t, oldest.ID, s.ID, "oldest session should have been evicted")
	}
}

func TestLoad_MalformedPayloadIsEmpty(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(SessionsKey, []byte("{not json")))

	a := Load(kv)
	require.Equal(t, 0, a.Len())
}

func TestLoad_SchemaInvalidPayloadIsEmpty(t *testing.T) {
	kv := store.NewMemory()
	// Valid JSON, wrong shape: score is a string.
	payload := `[{"id":"x","date":"2026-01-01T00:00:00Z","difficulty":"Toddler","score":"ten","questionsAnswered":3,"duration":10}]`
	require.NoError(t, kv.Set(SessionsKey, []byte(payload)))

	a := Load(kv)
	require.Equal(t, 0, a.Len())
}

func TestLoad_TruncatesOversizedPayload(t *testing.T) {
	kv := store.NewMemory()
	sessions := make([]GameSession, MaxSessions+10)
	for i := range sessions {
		sessions[i] = testSession(i, i+1)
	}
	raw, err := json.Marshal(sessions)
	require.NoError(t, err)
	require.NoError(t, kv.Set(SessionsKey, raw))

	a := Load(kv)
	require.Equal(t, MaxSessions, a.Len())
}

func TestClear(t *testing.T) {
	kv := store.NewMemory()
	a := Load(kv)
	a.Record(testSession(3, 3))
	require.Equal(t, 1, a.Len())

	a.Clear()
	require.Equal(t, 0, a.Len())
	_, ok := kv.Get(SessionsKey)
	require.False(t, ok)
}

func TestGameSession_Accuracy(t *testing.T) {
	tests := []struct {
		score, answered int
		want            float64
	}{
		{0, 0, 0},
		{5, 10, 50},
		{20, 10, 200}, // speed bonuses can push score past question count
		{3, 4, 75},
	}
	for _, tt := range tests {
		s := GameSession{Score: tt.score, QuestionsAnswered: tt.answered}
		require.Equal(t, tt.want, s.Accuracy(),
			fmt.Sprintf("accuracy for %d/%d", tt.score, tt.answered))
	}
}

func TestGameSession_FormattedDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		s := GameSession{Duration: tt.seconds}
		require.Equal(t, tt.want, s.FormattedDuration())
	}
}
