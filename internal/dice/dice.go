// Package dice provides the seedable random source shared by deck shuffles,
// enemy tiebreaks and enemy customization.
package dice

import (
	"math/rand"
	"time"
)

// Source is a seeded random source. It is not safe for concurrent use; each
// battle owns its own Source.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New creates a Source from seed. A zero seed picks one from the clock.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a value in [0, n). Returns 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Int63 returns a non-negative 63-bit value, used to seed other sources.
func (s *Source) Int63() int64 {
	return s.rng.Int63()
}

// Roll rolls n dice with the specified number of sides and returns the total
func (s *Source) Roll(n, sides int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += s.Intn(sides) + 1
	}
	return total
}

// D100 rolls a 100-sided die (1-100), used for percentage checks
func (s *Source) D100() int {
	return s.Intn(100) + 1
}

// Chance returns true with the given percent probability.
func (s *Source) Chance(percent int) bool {
	return s.D100() <= percent
}

// Shuffle performs a uniform Fisher-Yates shuffle over n elements.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// Pick returns a random element of options, or the zero value if empty.
func Pick[T any](s *Source, options []T) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	return options[s.Intn(len(options))]
}

// Derive returns a new Source seeded from this one, so sub-systems can draw
// independently without disturbing each other's sequences.
func (s *Source) Derive() *Source {
	return New(s.rng.Int63() | 1)
}
