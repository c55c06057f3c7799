package combat

import (
	"log"
	"sync"
)

// World tracks the bodies that are currently alive in the host
type World struct {
	mu     sync.RWMutex
	bodies map[string]*Body
	deaths []func(victim *Body, killerID string)
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{bodies: make(map[string]*Body)}
}

// Spawn adds a body to the world
func (w *World) Spawn(body *Body) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bodies[body.ID] = body
}

// Body looks up a living body
func (w *World) Body(id string) (*Body, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	body, ok := w.bodies[id]
	if !ok || !body.Alive() {
		return nil, false
	}
	return body, true
}

// Despawn removes a body, e.g. when it leaves the stage
func (w *World) Despawn(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.bodies, id)
}

// OnDeath registers a callback run after a body dies from damage
func (w *World) OnDeath(fn func(victim *Body, killerID string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.deaths = append(w.deaths, fn)
}

// DealDamage applies damage to a living body and runs death callbacks
func (w *World) DealDamage(targetID, attackerID string, amount float64, color DamageColor) {
	target, ok := w.Body(targetID)
	if !ok {
		return
	}

	remaining, died := target.TakeDamage(amount)
	log.Printf("[COMBAT] %s took %.2f %s damage from %s (%.2f left)",
		target.Name, amount, color, attackerID, remaining)
	if !died {
		return
	}

	w.mu.RLock()
	callbacks := make([]func(*Body, string), len(w.deaths))
	copy(callbacks, w.deaths)
	w.mu.RUnlock()

	log.Printf("[COMBAT] %s died", target.Name)
	for _, fn := range callbacks {
		fn(target, attackerID)
	}
}
