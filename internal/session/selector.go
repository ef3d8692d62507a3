package session

import (
	"math/rand/v2"
	"slices"
)

// Selector picks an index in [0, n). Callers never pass n < 1.
type Selector interface {
	Pick(n int) int
}

// RandomSelector picks indices uniformly at random.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector returns a selector seeded from the runtime source.
func NewRandomSelector() *RandomSelector {
	return NewSeededSelector(rand.Uint64())
}

// NewSeededSelector returns a selector with a reproducible stream.
func NewSeededSelector(seed uint64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandomSelector) Pick(n int) int {
	return s.rng.IntN(n)
}

// Draw removes one element of pending chosen by sel and returns it along
// with the remaining elements. pending must not be empty; its backing
// array is reused.
func Draw(pending []int, sel Selector) (int, []int) {
	i := sel.Pick(len(pending))
	id := pending[i]
	return id, slices.Delete(pending, i, i+1)
}
