package content

import (
	"github.com/KirkDiggler/thalassophobia/internal/combat"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
)

// ItemBase is embedded by items for the state every item keeps once built
type ItemBase struct {
	def *definition.Definition
}

// Definition returns the built definition, nil before initialization
func (b *ItemBase) Definition() *definition.Definition {
	return b.def
}

// SetDefinition stores the built definition
func (b *ItemBase) SetDefinition(def *definition.Definition) {
	b.def = def
}

// Count returns how many of this item a body carries. A missing body,
// inventory or definition counts as zero.
func (b *ItemBase) Count(body *combat.Body) int {
	if body == nil || b.def == nil {
		return 0
	}
	return CountSpecific(body, b.def)
}

// CountSpecific returns how many of another definition a body carries
func CountSpecific(body *combat.Body, def *definition.Definition) int {
	if body == nil || body.Inventory == nil || def == nil {
		return 0
	}
	return body.Inventory.Count(def.Key().String())
}
