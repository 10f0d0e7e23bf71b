package shuffle

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/KirkDiggler/quickburst/internal/shuffle Shuffler

// Shuffler permutes a sequence of n elements in place through swap
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Config for the random shuffler
type Config struct {
	// Optional seed for deterministic ordering
	Seed int64
}

// Random provides shuffling backed by math/rand
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random shuffler
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Shuffle performs a Fisher-Yates shuffle of n elements
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}

	// rand.Rand is not safe for concurrent use
	r.mu.Lock()
	defer r.mu.Unlock()

	r.random.Shuffle(n, swap)
}
