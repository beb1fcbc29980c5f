package question

import "math/rand"

// maxDrawAttempts is the number of rejected draws tolerated per missing
// option before the offset spread is widened. Narrow ranges near small
// answers can otherwise retry for a long time.
const maxDrawAttempts = 32

// GenerateOptions produces the tier's option count of unique values
// containing answer, shuffled so the answer's position is unpredictable.
// It always terminates: after repeated rejections the offset spread widens,
// and as a last resort options fill sequentially upward from the answer.
func GenerateOptions(r *rand.Rand, answer int, d Difficulty) []int {
	st := strategies[d]

	seen := map[int]bool{answer: true}
	opts := []int{answer}
	spread := st.offsetSpread
	attempts := 0

	for len(opts) < st.optionCount {
		if attempts >= maxDrawAttempts {
			if spread == 0 || spread > 1<<20 {
				// Give up on random draws entirely.
				opts = fillSequential(opts, seen, st.optionCount, answer)
				break
			}
			spread *= 2
			attempts = 0
		}

		var candidate int
		if st.offsetSpread == 0 {
			candidate = 1 + r.Intn(10)
		} else {
			candidate = answer + r.Intn(2*spread+1) - spread
		}

		if candidate < st.minOption || seen[candidate] {
			attempts++
			continue
		}

		seen[candidate] = true
		opts = append(opts, candidate)
	}

	r.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// fillSequential pads opts to count with the smallest unused values above
// answer. Deterministic fallback when random draws fail to converge.
func fillSequential(opts []int, seen map[int]bool, count, answer int) []int {
	for v := answer + 1; len(opts) < count; v++ {
		if seen[v] {
			continue
		}
		seen[v] = true
		opts = append(opts, v)
	}
	return opts
}
