// Package dice provides the random number sources the game draws from.
package dice

import (
	"fmt"
	"math/rand"
	"time"
)

// Source produces uniformly distributed integers.
type Source interface {
	// Between returns an integer in the inclusive range [min, max].
	// It panics if max < min.
	Between(min, max int) int
}

// Rand is a seeded Source backed by math/rand.
type Rand struct {
	rng  *rand.Rand
	seed int64
}

// New creates a seeded Rand. A seed of 0 seeds from the clock.
// The first draw is discarded.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := &Rand{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
	r.rng.Int63()
	return r
}

// Seed returns the effective seed, useful for replaying a game.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Between returns a uniform integer in [min, max].
func (r *Rand) Between(min, max int) int {
	checkRange(min, max)
	return min + r.rng.Intn(max-min+1)
}

// Sequence is a deterministic Source that replays fixed values in order,
// starting over once exhausted.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence over values. It panics if values is empty.
func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("dice: NewSequence needs at least one value")
	}
	return &Sequence{values: values}
}

// Between returns the next value. It panics if the value is outside [min, max].
func (s *Sequence) Between(min, max int) int {
	checkRange(min, max)
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < min || v > max {
		panic(fmt.Sprintf("dice: sequence value %d outside [%d, %d]", v, min, max))
	}
	return v
}

// Drawn reports how many values have been drawn so far.
func (s *Sequence) Drawn() int {
	return s.next
}

func checkRange(min, max int) {
	if max < min {
		panic(fmt.Sprintf("dice: invalid range [%d, %d]", min, max))
	}
}
