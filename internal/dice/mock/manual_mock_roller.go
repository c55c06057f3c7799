package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/thalassophobia/internal/dice"
)

var _ dice.Roller = (*ManualMockRoller)(nil)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []float64
	rollIndex int
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller(rolls ...float64) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: rolls,
	}
}

// SetNextRoll queues the next percent roll
func (m *ManualMockRoller) SetNextRoll(roll float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// Used returns how many rolls have been consumed
func (m *ManualMockRoller) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rollIndex
}

// Percent implements dice.Roller.Percent
func (m *ManualMockRoller) Percent() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}
