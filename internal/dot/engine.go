// Package dot runs stacking damage-over-time effects whose tick interval
// rescales with the attacker's attack speed.
package dot

import (
	"cmp"
	"log"
	"slices"
	"sync"

	"github.com/KirkDiggler/thalassophobia/internal/dice"
	"github.com/KirkDiggler/thalassophobia/internal/diagnostics"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/metrics"
)

// Config holds the engine's collaborators
type Config struct {
	Bodies   Bodies
	Sink     DamageSink
	Roller   dice.Roller
	Reporter diagnostics.Reporter
}

// Engine tracks effect instances per target. Each target has its own table
// and lock; there is no engine-wide lock on the hot path.
type Engine struct {
	bodies   Bodies
	sink     DamageSink
	roller   dice.Roller
	reporter diagnostics.Reporter

	defsMu      sync.RWMutex
	definitions map[Kind]Definition

	tables sync.Map // target id -> *table
}

// NewEngine creates an engine
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgumentf("config is required")
	}
	if cfg.Bodies == nil {
		return nil, dnderr.InvalidArgumentf("bodies are required")
	}
	if cfg.Sink == nil {
		return nil, dnderr.InvalidArgumentf("damage sink is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = diagnostics.Default("DOT")
	}

	return &Engine{
		bodies:      cfg.Bodies,
		sink:        cfg.Sink,
		roller:      roller,
		reporter:    reporter,
		definitions: make(map[Kind]Definition),
	}, nil
}

// Register adds a kind of effect
func (e *Engine) Register(def Definition) error {
	if err := def.validate(); err != nil {
		return err
	}

	e.defsMu.Lock()
	defer e.defsMu.Unlock()

	if _, exists := e.definitions[def.Kind]; exists {
		return dnderr.AlreadyExistsf("dot %s is already registered", def.Kind)
	}
	e.definitions[def.Kind] = def

	log.Printf("[DOT] Registered %s (buff %q, interval %.2fs, duration %.2fs, coefficient %.2f)",
		def.Kind, def.Buff, def.Interval, def.Duration, def.DamageCoefficient)
	return nil
}

// Definition returns a registered kind
func (e *Engine) Definition(kind Kind) (Definition, bool) {
	e.defsMu.RLock()
	defer e.defsMu.RUnlock()
	def, ok := e.definitions[kind]
	return def, ok
}

// Gate decides whether a hit procs an effect. Rejected hits never roll;
// otherwise the roll is against chance scaled by the proc coefficient.
func (e *Engine) Gate(chance, procCoefficient float64, rejected bool) (bool, error) {
	if rejected {
		return false, nil
	}
	return dice.CheckRoll(e.roller, chance*procCoefficient)
}

// Apply inflicts an effect. The first application creates the instance with
// the given stacks, full duration and the configured interval. Later
// applications add stacks and reset the duration; the cached interval stays.
// Zero stacks do nothing.
func (e *Engine) Apply(app Application) (Outcome, error) {
	if app.Stacks <= 0 {
		return OutcomeNone, nil
	}

	def, ok := e.Definition(app.Kind)
	if !ok {
		return OutcomeNone, dnderr.NotFoundf("dot %s is not registered", app.Kind)
	}
	if _, ok := e.bodies.Body(app.TargetID); !ok {
		return OutcomeNone, dnderr.NotFoundf("target %s is not alive", app.TargetID)
	}
	if _, ok := e.bodies.Body(app.SourceID); !ok {
		return OutcomeNone, dnderr.NotFoundf("source %s is not alive", app.SourceID)
	}

	duration := def.Duration
	if app.Duration > 0 {
		duration = app.Duration
	}

	t := e.lockTable(app.TargetID)
	defer t.mu.Unlock()

	key := instanceKey{kind: app.Kind, sourceID: app.SourceID}
	inst, exists := t.instances[key]
	if exists && inst.Remaining <= 0 {
		delete(t.instances, key)
		exists = false
	}

	if !exists {
		t.instances[key] = &Instance{
			Kind:      app.Kind,
			SourceID:  app.SourceID,
			TargetID:  app.TargetID,
			Stacks:    capStacks(app.Stacks, def.MaxStacks),
			Remaining: duration,
			Interval:  def.Interval,
			UntilTick: def.Interval,
		}
		metrics.DotApplications.WithLabelValues(string(app.Kind), metrics.OutcomeCreated).Inc()
		return OutcomeCreated, nil
	}

	inst.Stacks = capStacks(inst.Stacks+app.Stacks, def.MaxStacks)
	inst.Remaining = duration
	metrics.DotApplications.WithLabelValues(string(app.Kind), metrics.OutcomeStacked).Inc()
	return OutcomeStacked, nil
}

// lockTable returns the locked, live table of a target, creating it if needed
func (e *Engine) lockTable(targetID string) *table {
	for {
		value, _ := e.tables.LoadOrStore(targetID, newTable())
		t := value.(*table)
		t.mu.Lock()
		if !t.dead {
			return t
		}
		t.mu.Unlock()
	}
}

// observe locks an existing table and prunes it. It returns nil if the
// target has no live table.
func (e *Engine) observe(targetID string) *table {
	value, ok := e.tables.Load(targetID)
	if !ok {
		return nil
	}
	t := value.(*table)
	t.mu.Lock()
	if t.dead {
		t.mu.Unlock()
		return nil
	}
	t.prune(e.valid)
	return t
}

// release unlocks a table, dropping it from the engine first if it is empty
func (e *Engine) release(targetID string, t *table) {
	if len(t.instances) == 0 {
		t.dead = true
		e.tables.CompareAndDelete(targetID, t)
	}
	t.mu.Unlock()
}

func (e *Engine) valid(inst *Instance) bool {
	if _, ok := e.bodies.Body(inst.TargetID); !ok {
		return false
	}
	_, ok := e.bodies.Body(inst.SourceID)
	return ok
}

// Get returns a copy of one instance
func (e *Engine) Get(targetID string, kind Kind, sourceID string) (Instance, bool) {
	t := e.observe(targetID)
	if t == nil {
		return Instance{}, false
	}
	defer e.release(targetID, t)

	inst, ok := t.instances[instanceKey{kind: kind, sourceID: sourceID}]
	if !ok {
		return Instance{}, false
	}
	return *inst, true
}

// Instances returns copies of every instance on a target
func (e *Engine) Instances(targetID string) []Instance {
	t := e.observe(targetID)
	if t == nil {
		return nil
	}
	defer e.release(targetID, t)

	out := make([]Instance, 0, len(t.instances))
	for _, inst := range t.instances {
		out = append(out, *inst)
	}
	slices.SortFunc(out, func(a, b Instance) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return cmp.Compare(a.SourceID, b.SourceID)
	})
	return out
}

// Stacks returns the total stacks of a kind on a target across sources
func (e *Engine) Stacks(targetID string, kind Kind) int {
	total := 0
	for _, inst := range e.Instances(targetID) {
		if inst.Kind == kind {
			total += inst.Stacks
		}
	}
	return total
}

// Tracked counts stored instances without pruning anything
func (e *Engine) Tracked() int {
	n := 0
	e.tables.Range(func(_, value any) bool {
		t := value.(*table)
		t.mu.Lock()
		n += len(t.instances)
		t.mu.Unlock()
		return true
	})
	return n
}

// Cancel ends one instance. It is removed on its next observation.
func (e *Engine) Cancel(targetID string, kind Kind, sourceID string) {
	value, ok := e.tables.Load(targetID)
	if !ok {
		return
	}
	t := value.(*table)
	t.mu.Lock()
	defer t.mu.Unlock()

	if inst, ok := t.instances[instanceKey{kind: kind, sourceID: sourceID}]; ok {
		inst.Remaining = 0
	}
}

// CancelTarget ends every instance on a target, e.g. when it dies
func (e *Engine) CancelTarget(targetID string) {
	value, ok := e.tables.Load(targetID)
	if !ok {
		return
	}
	t := value.(*table)
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, inst := range t.instances {
		inst.Remaining = 0
	}
}

// SetStacks overrides the stack count of an instance, e.g. when the host
// strips stacks. Zero or fewer ends the instance.
func (e *Engine) SetStacks(targetID string, kind Kind, sourceID string, stacks int) error {
	def, ok := e.Definition(kind)
	if !ok {
		return dnderr.NotFoundf("dot %s is not registered", kind)
	}

	value, ok := e.tables.Load(targetID)
	if !ok {
		return dnderr.NotFoundf("no %s on %s from %s", kind, targetID, sourceID)
	}
	t := value.(*table)
	t.mu.Lock()
	defer t.mu.Unlock()

	inst, ok := t.instances[instanceKey{kind: kind, sourceID: sourceID}]
	if !ok || inst.Remaining <= 0 {
		return dnderr.NotFoundf("no %s on %s from %s", kind, targetID, sourceID)
	}

	if stacks <= 0 {
		inst.Remaining = 0
		return nil
	}
	inst.Stacks = capStacks(stacks, def.MaxStacks)
	return nil
}

func capStacks(stacks, maxStacks int) int {
	if maxStacks > 0 && stacks > maxStacks {
		return maxStacks
	}
	return stacks
}
