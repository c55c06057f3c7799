package dice

import (
	"math/rand/v2"
	"sync"
)

// randomRoller implements Roller with a PCG source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the runtime's entropy
func NewRandomRoller() Roller {
	return &randomRoller{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSeededRoller creates a roller that replays the same sequence for a seed
func NewSeededRoller(seed uint64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Percent implements Roller.Percent
func (r *randomRoller) Percent() (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Float64() * 100, nil
}
