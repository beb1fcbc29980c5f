// Package i18n provides the translation port: the engine looks up labels by
// key and never hardcodes user-facing strings outside the arithmetic text
// itself. The presentation layer can inject alternative packs.
package i18n

// Translator resolves a localization key to display text.
type Translator interface {
	Translate(key string) string
}

// Pack is a map-backed Translator. Unknown keys fall back to the key itself
// so missing strings are visible rather than fatal.
type Pack map[string]string

var _ Translator = Pack{}

func (p Pack) Translate(key string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return key
}

// Default returns the built-in English pack.
func Default() Pack {
	return Pack{
		"toddler.question": "How many dots do you see?",

		"appreciation.streak3":        "Great job! 3 in a row!",
		"appreciation.streak5":        "Fantastic! 5 in a row!",
		"appreciation.streak10":       "Incredible! 10 in a row!",
		"appreciation.streak15":       "Unstoppable! 15 in a row!",
		"appreciation.streak20":       "Champion! 20 in a row!",
		"appreciation.streak_amazing": "Amazing! What a streak!",

		"game.score":      "Score",
		"game.high_score": "High score",
		"game.streak":     "Streak",
		"game.bonus":      "Speed bonus!",
		"game.correct":    "Correct!",
		"game.wrong":      "Not quite, try again!",
		"game.over":       "Time's up!",

		"difficulty.toddler":     "Toddler",
		"difficulty.earlySchool": "Early School",
		"difficulty.olderKids":   "Older Kids",

		"parent.report.share_title":            "My Maths Progress Report",
		"parent.report.generated_on":           "Generated on",
		"parent.report.no_games":               "No games played yet. Play a few rounds and check back!",
		"parent.report.summary_header":         "Summary",
		"parent.report.total_sessions":         "Total sessions",
		"parent.report.total_questions":        "Total questions",
		"parent.report.accuracy":               "Accuracy",
		"parent.report.recent_sessions_header": "Recent sessions",
		"parent.report.duration":               "Duration",
	}
}
