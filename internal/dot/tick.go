package dot

import (
	"maps"

	"github.com/KirkDiggler/thalassophobia/internal/combat"
	"github.com/KirkDiggler/thalassophobia/internal/metrics"
)

type pendingDamage struct {
	kind     Kind
	targetID string
	sourceID string
	amount   float64
	color    combat.DamageColor
}

// Advance moves every instance forward by dt seconds. Each tick boundary
// recomputes the interval from the source's current attack speed and deals
// coefficient * source base damage * stacks. Damage reaches the sink after
// the target's table is unlocked, so sink callbacks may call back into the
// engine.
func (e *Engine) Advance(dt float64) {
	if dt <= 0 {
		return
	}

	e.defsMu.RLock()
	defs := maps.Clone(e.definitions)
	e.defsMu.RUnlock()

	var pending []pendingDamage
	var failures []error

	e.tables.Range(func(key, value any) bool {
		targetID := key.(string)
		t := value.(*table)

		t.mu.Lock()
		if t.dead {
			t.mu.Unlock()
			return true
		}

		t.prune(e.valid)
		for _, inst := range t.instances {
			def, ok := defs[inst.Kind]
			if !ok {
				inst.Remaining = 0
				continue
			}
			pending, failures = e.advanceInstance(inst, def, dt, pending, failures)
		}
		e.release(targetID, t)
		return true
	})

	for _, err := range failures {
		e.reporter.Report(err)
	}

	for _, p := range pending {
		metrics.DotTicks.WithLabelValues(string(p.kind)).Inc()
		metrics.DotDamage.WithLabelValues(string(p.kind)).Add(p.amount)
		e.sink.DealDamage(p.targetID, p.sourceID, p.amount, p.color)
	}
}

func (e *Engine) advanceInstance(inst *Instance, def Definition, dt float64, pending []pendingDamage, failures []error) ([]pendingDamage, []error) {
	elapsed := dt
	for elapsed > 0 && inst.Remaining > 0 {
		if inst.UntilTick-elapsed > timeEpsilon {
			inst.UntilTick -= elapsed
			inst.Remaining = snapZero(max(inst.Remaining-elapsed, 0))
			break
		}

		// the boundary falls within this step, give or take rounding
		step := inst.UntilTick
		elapsed = snapZero(elapsed - step)
		inst.Remaining = snapZero(inst.Remaining - step)
		if inst.Remaining < 0 {
			// expired before reaching the boundary
			inst.Remaining = 0
			break
		}

		source, ok := e.bodies.Body(inst.SourceID)
		if !ok {
			inst.Remaining = 0
			break
		}
		stats := source.Stats()

		interval, err := EffectiveInterval(def.Kind, def.Interval, stats.AttackSpeed, stats.BaseAttackSpeed, def.AttackSpeedScale)
		if err != nil {
			metrics.DotSkippedTicks.WithLabelValues(string(def.Kind)).Inc()
			failures = append(failures, err)
		} else {
			inst.Interval = interval
			pending = append(pending, pendingDamage{
				kind:     def.Kind,
				targetID: inst.TargetID,
				sourceID: inst.SourceID,
				amount:   def.DamageCoefficient * stats.Damage * float64(inst.Stacks),
				color:    def.Color,
			})
		}
		inst.UntilTick = inst.Interval
	}
	return pending, failures
}

// timeEpsilon absorbs the rounding that builds up when a host splits time into
// steps like 0.1s or 1/60s that floats cannot represent exactly
const timeEpsilon = 1e-9

func snapZero(v float64) float64 {
	if v > -timeEpsilon && v < timeEpsilon {
		return 0
	}
	return v
}
