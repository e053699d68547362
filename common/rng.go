package common

import (
	"math/rand"
	"time"
)

// NewRand returns the shared pseudo-random source. A zero seed draws one from
// the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Rand is the slice of math/rand the simulation draws from.
type Rand interface {
	Intn(n int) int
}
