// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps math/rand so the whole game can share one seeded generator.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator with the given seed; 0 means "seed from the clock".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Between returns a number in [min, max).
func (s *PRNGService) Between(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
