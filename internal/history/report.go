package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/mathsprout/internal/i18n"
)

// reportRecentSessions is how many sessions the report lists individually.
// Aggregates always cover the full retained history.
const reportRecentSessions = 10

// GenerateReport renders the parent-facing progress report: aggregate stats
// over the whole archive followed by the most recent sessions.
func GenerateReport(a *Archive, tr i18n.Translator, now time.Time) string {
	var b strings.Builder

	b.WriteString(tr.Translate("parent.report.share_title") + "\n")
	fmt.Fprintf(&b, "%s: %s\n\n",
		tr.Translate("parent.report.generated_on"),
		now.Format("January 2, 2006 at 3:04 PM"))

	sessions := a.Sessions()
	if len(sessions) == 0 {
		b.WriteString(tr.Translate("parent.report.no_games"))
		return b.String()
	}

	totalSessions := len(sessions)
	totalQuestions := 0
	totalScore := 0
	for _, s := range sessions {
		totalQuestions += s.QuestionsAnswered
		totalScore += s.Score
	}
	var accuracy float64
	if totalQuestions > 0 {
		accuracy = float64(totalScore) / float64(totalQuestions) * 100
	}

	b.WriteString(tr.Translate("parent.report.summary_header") + ":\n")
	fmt.Fprintf(&b, "%s: %d\n", tr.Translate("parent.report.total_sessions"), totalSessions)
	fmt.Fprintf(&b, "%s: %d\n", tr.Translate("parent.report.total_questions"), totalQuestions)
	fmt.Fprintf(&b, "%s: %.1f%%\n\n", tr.Translate("parent.report.accuracy"), accuracy)

	b.WriteString(tr.Translate("parent.report.recent_sessions_header") + ":\n")
	recent := sessions
	if len(recent) > reportRecentSessions {
		recent = recent[:reportRecentSessions]
	}
	for _, s := range recent {
		fmt.Fprintf(&b, "- %s (%s)\n", s.FormattedDate(), s.Difficulty)
		fmt.Fprintf(&b, "  %s: %d/%d (%.0f%%)\n",
			tr.Translate("game.score"), s.Score, s.QuestionsAnswered, s.Accuracy())
		fmt.Fprintf(&b, "  %s: %s\n\n",
			tr.Translate("parent.report.duration"), s.FormattedDuration())
	}

	return b.String()
}
