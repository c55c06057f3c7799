// Package elites holds the concrete elite equipment.
package elites

import (
	"context"

	"github.com/KirkDiggler/thalassophobia/internal/combat"
	"github.com/KirkDiggler/thalassophobia/internal/config"
	"github.com/KirkDiggler/thalassophobia/internal/content"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
)

const mysteryIcon definition.AssetRef = "Textures/MiscIcons/texMysteryIcon"

// AffixUnstable is Blessing Of The Abyss, the equipment carried by
// Erythrite elites. It has no on-use effect. It is off unless enabled in
// config.
type AffixUnstable struct {
	content.EliteBase
}

// NewAffixUnstable creates the elite equipment
func NewAffixUnstable() *AffixUnstable {
	return &AffixUnstable{}
}

func (e *AffixUnstable) Name() string { return "AffixUnstable" }

func (e *AffixUnstable) Enabled(cfg *config.ContentConfig) bool {
	return cfg != nil && cfg.AffixUnstable.Enabled
}

// Configure reads the multipliers and declares the director tier
func (e *AffixUnstable) Configure(_ context.Context, env *content.Env) error {
	if env == nil || env.Config == nil {
		return dnderr.InvalidArgumentf("%s needs content config", e.Name())
	}

	cfg := env.Config.AffixUnstable
	e.SetMultipliers(content.Multipliers{
		Health: cfg.HealthMultiplier,
		Damage: cfg.DamageMultiplier,
		Cost:   cfg.CostMultiplier,
	})
	e.SetTiers(content.EliteTier{
		CostMultiplier: content.BaseEliteCostMultiplier * cfg.CostMultiplier,
		Available:      availableAfterFirstLoop,
	})
	return nil
}

func (e *AffixUnstable) Attributes() definition.Attributes {
	attrs := definition.NewAttributes(definition.KindEliteEquipment, "AFFIX_UNSTABLE", "Blessing Of The Abyss").
		WithTexts("Become an aspect of the Void.", "", "").
		WithTier(definition.TierNone).
		WithAssets("Prefabs/PickupModels/PickupMystery", mysteryIcon).
		WithEliteModifier("Erythrite")

	return content.EliteParams(attrs, e.Multipliers()).Attributes()
}

func (e *AffixUnstable) AttachHooks(context.Context, *content.Env) error {
	return nil
}

// Activate does nothing; the blessing is passive
func (e *AffixUnstable) Activate(*combat.Body) bool {
	return false
}

// availableAfterFirstLoop lets the elite spawn only once the run has looped,
// under the default rules
func availableAfterFirstLoop(run content.RunState, rules content.EliteRules) bool {
	return run.LoopClearCount > 0 && rules == content.EliteRulesDefault
}
