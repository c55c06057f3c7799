package hooks

import (
	"github.com/KirkDiggler/thalassophobia/internal/combat"
)

// Context is the mutable payload of one firing. The original and every
// augmentation see the same value.
type Context struct {
	Event    Event
	Damage   *combat.DamageInfo
	Attacker *combat.Body
	Victim   *combat.Body

	values map[string]any
}

// NewHitContext builds the payload of a hit event
func NewHitContext(event Event, damage *combat.DamageInfo, attacker, victim *combat.Body) *Context {
	return &Context{
		Event:    event,
		Damage:   damage,
		Attacker: attacker,
		Victim:   victim,
	}
}

// Set stores an extra value for later augmentations
func (c *Context) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// Get returns an extra value
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Result is what the original produced
type Result struct {
	Value any
	Err   error
}
