package testutils

import (
	"github.com/KirkDiggler/thalassophobia/internal/combat"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
)

// CreateTestBody creates a living body with unit attack speed
func CreateTestBody(id, name string, damage, maxHealth float64) *combat.Body {
	return combat.NewBody(id, name, combat.Stats{
		AttackSpeed:     1,
		BaseAttackSpeed: 1,
		Damage:          damage,
		MaxHealth:       maxHealth,
	})
}

// CreateTestItemAttributes creates complete item attributes
func CreateTestItemAttributes(token, name string, tier definition.Tier) *definition.AttributesBuilder {
	return definition.NewAttributes(definition.KindItem, token, name).
		WithTexts(name+" pickup.", name+" description.", "").
		WithTier(tier).
		WithAssets(definition.AssetRef("Prefabs/" + token)).
		WithTags(definition.TagDamage)
}
