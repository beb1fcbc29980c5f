// Package question generates arithmetic questions for the three difficulty
// tiers: pregenerated pools of multiple-choice questions with
// plausible-but-wrong distractor options.
package question

import "time"

// Difficulty selects the content and rule profile for a play session.
type Difficulty int

const (
	Toddler Difficulty = iota // counting 1-10, ages 2-4
	EarlySchool               // addition/subtraction within 20, ages 5-7
	OlderKids                 // multiplication/division tables 2-12, ages 8-12
)

// Key returns the stable identifier used for persistence keys.
func (d Difficulty) Key() string {
	switch d {
	case EarlySchool:
		return "earlySchool"
	case OlderKids:
		return "olderKids"
	}
	return "toddler"
}

// DisplayName returns the human-readable tier name used in session records.
func (d Difficulty) DisplayName() string {
	switch d {
	case EarlySchool:
		return "Early School"
	case OlderKids:
		return "Older Kids"
	}
	return "Toddler"
}

// Operation tags a question with its arithmetic operation.
// It is carried for display and analytics; it does not affect scoring.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "×"
	OpDivide   Operation = "÷"
)

// Question is a single multiple-choice arithmetic question.
// Text is either literal arithmetic ("7 + 5") or a localization key
// ("toddler.question") resolved by the presentation layer.
// Options always contains Answer exactly once and has no duplicates.
type Question struct {
	Text    string
	Answer  int
	Options []int
	Op      Operation
}

// strategy bundles the per-tier generation parameters: pool size, option
// count, distractor offset spread, and the speed-bonus threshold.
type strategy struct {
	poolSize    int
	optionCount int

	// offsetSpread is the half-width of the distractor offset range.
	// Zero means distractors are drawn uniformly from [1,10] instead of
	// as offsets from the answer (the counting tier).
	offsetSpread int

	// minOption is the smallest distractor value accepted.
	minOption int

	bonusThreshold time.Duration
}

var strategies = map[Difficulty]strategy{
	Toddler: {
		poolSize:       300,
		optionCount:    3,
		offsetSpread:   0,
		minOption:      1,
		bonusThreshold: 5 * time.Second,
	},
	EarlySchool: {
		poolSize:       400,
		optionCount:    3,
		offsetSpread:   3,
		minOption:      0,
		bonusThreshold: 5 * time.Second,
	},
	OlderKids: {
		poolSize:       400,
		optionCount:    4,
		offsetSpread:   10,
		minOption:      1,
		bonusThreshold: 3 * time.Second,
	},
}

// OptionCount returns the number of answer options shown for the tier.
func (d Difficulty) OptionCount() int {
	return strategies[d].optionCount
}

// PoolSize returns the number of questions pregenerated for the tier.
func (d Difficulty) PoolSize() int {
	return strategies[d].poolSize
}

// BonusThreshold returns the answer time under which a speed bonus is awarded.
func (d Difficulty) BonusThreshold() time.Duration {
	return strategies[d].bonusThreshold
}

// Timed reports whether sessions at this tier run against a countdown.
func (d Difficulty) Timed() bool {
	return d == OlderKids
}
