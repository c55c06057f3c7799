package content

import (
	"github.com/KirkDiggler/thalassophobia/internal/definition"
)

// BaseEliteCostMultiplier is the host's director cost multiplier for elites
const BaseEliteCostMultiplier = 6.0

// EliteRules is the spawn rule set the director is choosing elites under
type EliteRules string

const (
	EliteRulesDefault      EliteRules = "default"
	EliteRulesLunar        EliteRules = "lunar"
	EliteRulesArtifactOnly EliteRules = "artifact_only"
)

// RunState is the slice of run progress elite availability depends on
type RunState struct {
	LoopClearCount int
}

// EliteTier is one tier of the director an elite may appear in
type EliteTier struct {
	CostMultiplier float64
	Available      func(run RunState, rules EliteRules) bool
}

// Multipliers scale an elite's stats
type Multipliers struct {
	Health float64
	Damage float64
	Cost   float64
}

// EliteBase is embedded by elite equipment
type EliteBase struct {
	ItemBase

	multipliers Multipliers
	tiers       []EliteTier
}

// SetMultipliers stores the elite's stat multipliers
func (b *EliteBase) SetMultipliers(m Multipliers) {
	b.multipliers = m
}

// Multipliers returns the elite's stat multipliers
func (b *EliteBase) Multipliers() Multipliers {
	return b.multipliers
}

// SetTiers declares the director tiers the elite may appear in
func (b *EliteBase) SetTiers(tiers ...EliteTier) {
	b.tiers = tiers
}

// Tiers returns the director tiers
func (b *EliteBase) Tiers() []EliteTier {
	return b.tiers
}

// CanAppear reports whether any tier allows the elite right now
func (b *EliteBase) CanAppear(run RunState, rules EliteRules) bool {
	for _, tier := range b.tiers {
		if tier.Available != nil && tier.Available(run, rules) {
			return true
		}
	}
	return false
}

// EliteParams copies the multipliers into definition parameters
func EliteParams(attrs *definition.AttributesBuilder, m Multipliers) *definition.AttributesBuilder {
	return attrs.
		WithParam(definition.ParamHealthMultiplier, m.Health).
		WithParam(definition.ParamDamageMultiplier, m.Damage).
		WithParam(definition.ParamCostMultiplier, m.Cost)
}
