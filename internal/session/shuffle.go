package session

import (
	"math/rand/v2"

	"github.com/abhisek/quizdeck/internal/bank"
)

// newRand returns a PCG source. A zero seed draws one from the runtime.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Permutation returns a uniformly random ordering of 0..n-1.
func Permutation(rng *rand.Rand, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// Relabel returns a presentation copy of c with its options shuffled and
// relettered A, B, C... by position. The copy's correct label follows the
// originally correct option. Free-text cards come back as plain clones.
func Relabel(rng *rand.Rand, c bank.Card) bank.Card {
	out := c.Clone()
	opts := out.Question.Options
	if len(opts) == 0 {
		return out
	}

	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})

	correct := bank.NoLabel
	for i := range opts {
		if opts[i].Label == c.Answer.Correct {
			correct = bank.LabelAt(i)
		}
		opts[i].Label = bank.LabelAt(i)
	}
	out.Answer.Correct = correct
	return out
}
