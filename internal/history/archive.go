package history

import (
	"encoding/json"

	"github.com/abhisek/mathsprout/internal/store"
)

// SessionsKey is the persistence key holding the serialized session array.
const SessionsKey = "GameSessions"

// MaxSessions is the number of most-recent sessions retained; older entries
// are evicted.
const MaxSessions = 50

// Archive holds the retained session history, newest first. It loads eagerly
// at construction and writes back after every recorded session. Persistence
// is best-effort: the in-memory copy stays authoritative for the process.
type Archive struct {
	kv       store.KV
	sessions []GameSession
}

// Load reads the stored history from kv. A missing, malformed, or
// schema-invalid payload yields an empty archive, never an error.
func Load(kv store.KV) *Archive {
	a := &Archive{kv: kv}

	raw, ok := kv.Get(SessionsKey)
	if !ok {
		return a
	}
	if err := validateSessions(raw); err != nil {
		return a
	}
	if err := json.Unmarshal(raw, &a.sessions); err != nil {
		a.sessions = nil
	}
	if len(a.sessions) > MaxSessions {
		a.sessions = a.sessions[:MaxSessions]
	}
	return a
}

// Record inserts a finished session at the head, evicts beyond MaxSessions,
// and writes the archive back.
func (a *Archive) Record(s GameSession) {
	a.sessions = append([]GameSession{s}, a.sessions...)
	if len(a.sessions) > MaxSessions {
		a.sessions = a.sessions[:MaxSessions]
	}
	a.save()
}

// Sessions returns the retained history, newest first.
func (a *Archive) Sessions() []GameSession {
	return a.sessions
}

// Len returns the number of retained sessions.
func (a *Archive) Len() int {
	return len(a.sessions)
}

// Clear drops all history, in memory and in the store.
func (a *Archive) Clear() {
	a.sessions = nil
	_ = a.kv.Delete(SessionsKey)
}

func (a *Archive) save() {
	raw, err := json.Marshal(a.sessions)
	if err != nil {
		return
	}
	_ = a.kv.Set(SessionsKey, raw)
}
