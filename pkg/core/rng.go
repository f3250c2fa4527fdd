package core

import "math/rand"

// RNG is a thread-local uniform float source in [0,1). The renderer
// hands each worker goroutine its own RNG so no lock is needed on the
// hot path.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded independently of any other instance.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float32 returns a uniform sample in [0,1).
func (g *RNG) Float32() float32 {
	return g.r.Float32()
}

// Range returns a uniform sample in [a,b).
func (g *RNG) Range(a, b float32) float32 {
	return a + g.Float32()*(b-a)
}
