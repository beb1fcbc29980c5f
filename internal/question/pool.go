package question

import (
	"fmt"
	"math/rand"
)

// ToddlerTextKey is the localization key for counting questions. The
// presentation layer renders answer-many pictures beneath the translated
// prompt; arithmetic tiers carry literal text instead.
const ToddlerTextKey = "toddler.question"

// Pool is a pregenerated batch of questions for one tier, consumed
// cyclically: when the cursor reaches the end it wraps to the start, so a
// finite pool supports indefinite play. Repetition across a long session is
// expected.
type Pool struct {
	Difficulty Difficulty
	Questions  []Question

	cursor int
}

// GeneratePool builds the tier's full question batch.
func GeneratePool(r *rand.Rand, d Difficulty) *Pool {
	st := strategies[d]
	qs := make([]Question, 0, st.poolSize)
	for i := 0; i < st.poolSize; i++ {
		qs = append(qs, newQuestion(r, d))
	}
	return &Pool{Difficulty: d, Questions: qs}
}

// Next returns the question at the cursor and advances it with wraparound.
func (p *Pool) Next() Question {
	q := p.Questions[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.Questions)
	return q
}

// Len returns the number of questions in the pool.
func (p *Pool) Len() int {
	return len(p.Questions)
}

func newQuestion(r *rand.Rand, d Difficulty) Question {
	switch d {
	case EarlySchool:
		return newEarlySchoolQuestion(r)
	case OlderKids:
		return newOlderKidsQuestion(r)
	}
	return newToddlerQuestion(r)
}

// newToddlerQuestion asks the child to count 1-10 pictures. Counting is
// modeled as repeated +1, so the operation tag is addition.
func newToddlerQuestion(r *rand.Rand) Question {
	answer := 1 + r.Intn(10)
	return Question{
		Text:    ToddlerTextKey,
		Answer:  answer,
		Options: GenerateOptions(r, answer, Toddler),
		Op:      OpAdd,
	}
}

// newEarlySchoolQuestion is a coin flip between addition within 20 and
// subtraction with a guaranteed non-negative result.
func newEarlySchoolQuestion(r *rand.Rand) Question {
	if r.Intn(2) == 0 {
		a := 1 + r.Intn(10)
		b := 1 + r.Intn(10)
		answer := a + b
		return Question{
			Text:    fmt.Sprintf("%d + %d", a, b),
			Answer:  answer,
			Options: GenerateOptions(r, answer, EarlySchool),
			Op:      OpAdd,
		}
	}

	a := 2 + r.Intn(19)     // [2,20]
	b := 1 + r.Intn(a-1)    // [1,a-1], keeps the result positive
	answer := a - b
	return Question{
		Text:    fmt.Sprintf("%d - %d", a, b),
		Answer:  answer,
		Options: GenerateOptions(r, answer, EarlySchool),
		Op:      OpSubtract,
	}
}

// newOlderKidsQuestion is a coin flip between times tables 2-12 and exact
// division. Division builds the dividend as divisor × quotient so the answer
// is always a whole number.
func newOlderKidsQuestion(r *rand.Rand) Question {
	if r.Intn(2) == 0 {
		a := 2 + r.Intn(11)
		b := 2 + r.Intn(11)
		answer := a * b
		return Question{
			Text:    fmt.Sprintf("%d × %d", a, b),
			Answer:  answer,
			Options: GenerateOptions(r, answer, OlderKids),
			Op:      OpMultiply,
		}
	}

	divisor := 2 + r.Intn(11)
	quotient := 2 + r.Intn(11)
	dividend := divisor * quotient
	return Question{
		Text:    fmt.Sprintf("%d ÷ %d", dividend, divisor),
		Answer:  quotient,
		Options: GenerateOptions(r, quotient, OlderKids),
		Op:      OpDivide,
	}
}
