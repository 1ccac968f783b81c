package generate

import "math/rand"

// Rand is the random source every generation step draws from. *rand.Rand
// satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. Equal seeds yield equal draw sequences.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Chance reports true with probability p, clamped to [0, 1]. One Float64 is
// always consumed so that draw sequences do not depend on p.
func Chance(rng Rand, p float64) bool {
	return rng.Float64() < Clamp(p)
}

// Clamp limits p to [0, 1].
func Clamp(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Weighted is one option of a weighted draw.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Pick draws one value from choices in proportion to the weights. Options
// with non-positive weight are never drawn. Pick panics when the total
// weight is zero.
func Pick[T any](rng Rand, choices ...Weighted[T]) T {
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		panic("generate: Pick called without positive weights")
	}
	n := rng.Intn(total)
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		if n < c.Weight {
			return c.Value
		}
		n -= c.Weight
	}
	return choices[len(choices)-1].Value
}
