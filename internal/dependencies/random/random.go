package random

import (
	"math"
	"sync"

	"lukechampine.com/frand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Float64 returns a value in [0, 1)
	Float64() float64

	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// SeededRandom is a deterministic generator: the same seed always yields the
// same sequence. Calls are serialized so the sequence stays reproducible when
// shared between callers.
type SeededRandom struct {
	mu   sync.Mutex
	seed int64
	next int64
}

// New creates a SeededRandom starting at seed
func New(seed int64) *SeededRandom {
	return &SeededRandom{seed: seed, next: seed}
}

// NewSeed returns a fresh non-zero seed from a cryptographic source
func NewSeed() int64 {
	return int64(frand.Uint64n(math.MaxInt32)) + 1
}

// Seed returns the seed the generator was created with
func (r *SeededRandom) Seed() int64 {
	return r.seed
}

// Float64 returns the fractional part of sin(n)*10000 for successive n
func (r *SeededRandom) Float64() float64 {
	r.mu.Lock()
	n := r.next
	r.next++
	r.mu.Unlock()

	x := math.Sin(float64(n)) * 10000
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}

// Intn returns floor(Float64() * n), or 0 when n <= 0
func (r *SeededRandom) Intn(n int) int {
	return scale(r.Float64(), n)
}

func scale(f float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
