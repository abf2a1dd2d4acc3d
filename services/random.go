package services

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source used for synthetic data.
type Rand interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a goroutine-safe source seeded with seed.
func NewRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// NewTimeRand seeds from the wall clock.
func NewTimeRand() Rand {
	return NewRand(time.Now().UnixNano())
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// between returns an int in [lo, hi].
func between(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

func pick[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
