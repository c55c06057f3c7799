package dot

import (
	"github.com/KirkDiggler/thalassophobia/internal/combat"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
)

// Kind names a registered damage-over-time effect
type Kind string

// Definition configures one kind of damage-over-time effect
type Definition struct {
	Kind Kind
	// Buff is the debuff the target visibly carries while afflicted
	Buff string
	// Interval is the configured seconds between ticks before rescaling
	Interval float64
	// Duration is the seconds an application lasts
	Duration float64
	// DamageCoefficient scales the attacker's base damage per stack
	DamageCoefficient float64
	// AttackSpeedScale is how strongly the attacker's bonus attack speed
	// shortens the interval. Zero disables rescaling.
	AttackSpeedScale float64
	// MaxStacks caps the stack count. Zero leaves it unbounded.
	MaxStacks int
	Color     combat.DamageColor
}

func (d *Definition) validate() error {
	switch {
	case d.Kind == "":
		return dnderr.InvalidArgumentf("kind is required")
	case d.Interval <= 0:
		return dnderr.InvalidArgumentf("%s interval must be positive", d.Kind)
	case d.Duration <= 0:
		return dnderr.InvalidArgumentf("%s duration must be positive", d.Kind)
	case d.MaxStacks < 0:
		return dnderr.InvalidArgumentf("%s max stacks cannot be negative", d.Kind)
	}
	return nil
}

// Application is one attempt to inflict an effect
type Application struct {
	Kind     Kind
	SourceID string
	TargetID string
	Stacks   int
	// Duration overrides the definition's duration when positive
	Duration float64
}

// Instance is the state of one effect on one target from one source
type Instance struct {
	Kind      Kind
	SourceID  string
	TargetID  string
	Stacks    int
	Remaining float64
	// Interval is the cached interval last computed at a tick boundary
	Interval float64
	// UntilTick is the time left before the next tick boundary
	UntilTick float64
}

// Outcome is what an application did
type Outcome string

const (
	OutcomeNone    Outcome = "none"
	OutcomeCreated Outcome = "created"
	OutcomeStacked Outcome = "stacked"
)

// Bodies resolves live combatants
type Bodies interface {
	Body(id string) (*combat.Body, bool)
}

// DamageSink receives tick damage
type DamageSink interface {
	DealDamage(targetID, attackerID string, amount float64, color combat.DamageColor)
}
