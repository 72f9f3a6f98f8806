// Package random provides the uniform sampler behind package fetch chances.
package random

import (
	"math/rand/v2"
	"sync"
)

// Sampler implements ports.Sampler with uniform draws in [0, 1).
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a Sampler backed by the runtime's random source.
func NewSampler() *Sampler {
	return &Sampler{}
}

// NewSeededSampler creates a Sampler that yields a reproducible sequence.
func NewSeededSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Sample returns a uniform value in [0, 1). It is safe for concurrent use.
func (s *Sampler) Sample() float64 {
	if s.rng == nil {
		return rand.Float64()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
