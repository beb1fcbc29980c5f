package play

import "time"

// countdownTickMsg drives the timed-mode countdown, once per second.
type countdownTickMsg time.Time

// feedbackDoneMsg ends the post-answer feedback window.
type feedbackDoneMsg struct{}
