// Package combat models the host's combatants as seen by content objects:
// bodies with attack stats, an inventory, and the damage reports that flow
// through hit events.
package combat

import (
	"sync"
)

// Stats are the live combat stats of a body
type Stats struct {
	AttackSpeed     float64
	BaseAttackSpeed float64
	// Damage is the body's base damage, the value damage coefficients scale
	Damage    float64
	Health    float64
	MaxHealth float64
}

// Body is one combatant
type Body struct {
	ID        string
	Name      string
	Inventory *Inventory

	mu    sync.RWMutex
	stats Stats
	dead  bool
}

// NewBody creates a living body with an empty inventory
func NewBody(id, name string, stats Stats) *Body {
	if stats.Health == 0 {
		stats.Health = stats.MaxHealth
	}
	return &Body{
		ID:        id,
		Name:      name,
		Inventory: NewInventory(),
		stats:     stats,
	}
}

// Stats returns a snapshot of the body's stats
func (b *Body) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stats
}

// SetAttackSpeed changes the current attack speed, e.g. when a buff lands
func (b *Body) SetAttackSpeed(speed float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stats.AttackSpeed = speed
}

// Alive reports whether the body can still act or be targeted
func (b *Body) Alive() bool {
	if b == nil {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return !b.dead
}

// TakeDamage subtracts health and reports whether this call killed the body
func (b *Body) TakeDamage(amount float64) (remaining float64, died bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.dead {
		return 0, false
	}

	b.stats.Health -= amount
	if b.stats.Health <= 0 {
		b.stats.Health = 0
		b.dead = true
		return 0, true
	}
	return b.stats.Health, false
}

// Kill marks the body dead without dealing damage
func (b *Body) Kill() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dead = true
}
