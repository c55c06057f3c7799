// Package items holds the concrete items.
package items

import (
	"context"
	"fmt"
	"math"

	"github.com/KirkDiggler/thalassophobia/internal/combat"
	"github.com/KirkDiggler/thalassophobia/internal/config"
	"github.com/KirkDiggler/thalassophobia/internal/content"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	"github.com/KirkDiggler/thalassophobia/internal/dot"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/hooks"
)

// AcidDot is the damage-over-time Acidic Rounds inflicts
const AcidDot dot.Kind = "acidic_affliction"

// AcidOnHit is Acidic Rounds: hits may coat the victim in acid that deals a
// share of the attacker's base damage per stack, ticking faster with attack
// speed.
type AcidOnHit struct {
	content.ItemBase

	cfg    config.AcidOnHitConfig
	engine *dot.Engine
}

// NewAcidOnHit creates the item
func NewAcidOnHit() *AcidOnHit {
	return &AcidOnHit{}
}

func (a *AcidOnHit) Name() string { return "AcidOnHit" }

func (a *AcidOnHit) Enabled(*config.ContentConfig) bool { return true }

// Configure reads the tunables and registers the acid effect
func (a *AcidOnHit) Configure(_ context.Context, env *content.Env) error {
	if env == nil || env.Config == nil || env.Dots == nil {
		return dnderr.InvalidArgumentf("%s needs content config and a dot engine", a.Name())
	}

	a.cfg = env.Config.AcidOnHit
	a.engine = env.Dots

	return a.engine.Register(dot.Definition{
		Kind:              AcidDot,
		Buff:              "Acidic Affliction",
		Interval:          a.cfg.Interval,
		Duration:          a.cfg.Duration,
		DamageCoefficient: a.cfg.Damage,
		AttackSpeedScale:  a.cfg.Scale,
		Color:             combat.DamageColorWeakPoint,
	})
}

func (a *AcidOnHit) Attributes() definition.Attributes {
	ticks := int(math.Round(a.cfg.Duration / a.cfg.Interval))
	description := fmt.Sprintf(
		"<style=cIsDamage>%g%%</style> chance to <style=cIsDamage>coat enemies with acid</style> "+
			"doing <style=cIsDamage>%g%%</style> <style=cStack>(+%g%% per stack)</style> base damage "+
			"%d times over %g seconds. The amount of times it deals damage <style=cIsDamage>scales with attack speed</style>.",
		a.cfg.Chance, a.cfg.Damage*100, a.cfg.Damage*100, ticks, a.cfg.Duration)

	return definition.NewAttributes(definition.KindItem, "ACID_ON_HIT", "Acidic Rounds").
		WithTexts("Chance to coat enemies with acid on hit.", description, "").
		WithTier(definition.Tier1).
		WithAssets("AcidRoundModel.prefab", "AcidRoundsIcon.png").
		WithTags(definition.TagDamage).
		WithParam(definition.ParamChance, a.cfg.Chance).
		WithParam(definition.ParamDuration, a.cfg.Duration).
		WithParam(definition.ParamInterval, a.cfg.Interval).
		WithParam(definition.ParamScale, a.cfg.Scale).
		WithParam(definition.ParamDamageCoefficient, a.cfg.Damage).
		Attributes()
}

// AttachHooks runs the acid proc after every hit and again on dice rerolls
func (a *AcidOnHit) AttachHooks(_ context.Context, env *content.Env) error {
	if env == nil || env.Hooks == nil {
		return dnderr.InvalidArgumentf("%s needs a hook chain", a.Name())
	}

	var attached []hooks.Event
	for _, event := range []hooks.Event{hooks.EventOnHitEnemy, hooks.EventDiceReroll} {
		if _, err := env.Hooks.Attach(event, a.Name(), a.onHit); err != nil {
			for _, done := range attached {
				env.Hooks.Detach(done, a.Name())
			}
			return err
		}
		attached = append(attached, event)
	}
	return nil
}

func (a *AcidOnHit) onHit(_ context.Context, hc *hooks.Context, _ hooks.Result) error {
	if hc.Damage == nil || hc.Attacker == nil || !hc.Victim.Alive() {
		return nil
	}

	count := a.Count(hc.Attacker)
	if count == 0 {
		return nil
	}

	procced, err := a.engine.Gate(a.cfg.Chance, hc.Damage.ProcCoefficient, hc.Damage.Rejected)
	if err != nil {
		return fmt.Errorf("acid proc roll: %w", err)
	}
	if !procced {
		return nil
	}

	_, err = a.engine.Apply(dot.Application{
		Kind:     AcidDot,
		SourceID: hc.Attacker.ID,
		TargetID: hc.Victim.ID,
		Stacks:   count,
		Duration: a.cfg.Duration,
	})
	return err
}
