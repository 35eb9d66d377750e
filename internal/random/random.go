// Package random provides the pseudorandom source shared by combat rolls,
// AI decisions and bracket shuffling. The source is injected everywhere it
// is consumed so tests can pin outcomes with a fixed seed or a scripted fake.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source is the subset of math/rand/v2 the game logic consumes.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic Source for the given seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewLocked returns a Source seeded from crypto/rand that is safe for
// concurrent use. This is the production source: request goroutines share it.
func NewLocked() Source {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing is unrecoverable for process startup.
		panic(err)
	}
	seed1 := binary.LittleEndian.Uint64(b[:8])
	seed2 := binary.LittleEndian.Uint64(b[8:])
	return &locked{src: rand.New(rand.NewPCG(seed1, seed2))}
}

type locked struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

func (l *locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.src.Shuffle(n, swap)
}
