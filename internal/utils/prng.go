// internal/utils/prng.go
package utils

import (
	"math/rand"
	"sync"
	"time"
)

// PRNGService wraps a seeded math/rand source so the whole game can share
// one reproducible random stream. Safe for concurrent use.
type PRNGService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed means the current time is used.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n). n <= 0 yields 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// IntRange returns a random integer in [lo, hi]. If hi < lo, lo is returned.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}
