package game

import (
	"math/rand"
	"sync"
	"time"
)

// Random is the source of randomness used for shuffles and word picks
type Random interface {
	Intn(n int) int
}

// LockedRandom is a Random shared by all rooms of an engine
type LockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandom returns a time-seeded, concurrency-safe source
func NewRandom() *LockedRandom {
	return &LockedRandom{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Intn returns a value in [0, n)
func (l *LockedRandom) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
