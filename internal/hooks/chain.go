// Package hooks chains content augmentations onto the host's own event
// behavior. The original runs exactly once per firing and the augmentations
// follow in attachment order.
package hooks

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/KirkDiggler/thalassophobia/internal/diagnostics"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/metrics"
	"github.com/KirkDiggler/thalassophobia/internal/uuid"
)

// OriginalFunc is the host's own behavior for an event
type OriginalFunc func(ctx context.Context, hc *Context) (any, error)

// Augmentation runs after the original with its result. It never receives
// the original and so cannot run it again.
type Augmentation func(ctx context.Context, hc *Context, res Result) error

// Record is one attached augmentation
type Record struct {
	ID    string
	Event Event
	// Owner names the content object that attached the augmentation
	Owner string

	augment Augmentation
}

// Config configures a Chain
type Config struct {
	Reporter      diagnostics.Reporter
	UUIDGenerator uuid.Generator
}

// Chain dispatches host events through their original and augmentations
type Chain struct {
	mu        sync.RWMutex
	originals map[Event]OriginalFunc
	records   map[Event][]*Record

	reporter      diagnostics.Reporter
	uuidGenerator uuid.Generator
}

// NewChain creates an empty chain
func NewChain(cfg *Config) *Chain {
	if cfg == nil {
		cfg = &Config{}
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = diagnostics.Default("HOOKS")
	}
	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return &Chain{
		originals:     make(map[Event]OriginalFunc),
		records:       make(map[Event][]*Record),
		reporter:      reporter,
		uuidGenerator: generator,
	}
}

// SetOriginal installs the host's behavior for an event, replacing any
// previous one
func (c *Chain) SetOriginal(event Event, fn OriginalFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.originals[event] = fn
}

// Attach appends an augmentation to an event. An owner holds at most one
// augmentation per event.
func (c *Chain) Attach(event Event, owner string, augment Augmentation) (*Record, error) {
	if augment == nil {
		return nil, dnderr.InvalidArgumentf("augmentation for %s is required", event)
	}
	if owner == "" {
		return nil, dnderr.InvalidArgumentf("owner is required")
	}

	record := &Record{
		ID:      c.uuidGenerator.New(),
		Event:   event,
		Owner:   owner,
		augment: augment,
	}

	c.mu.Lock()
	if slices.ContainsFunc(c.records[event], func(r *Record) bool { return r.Owner == owner }) {
		c.mu.Unlock()
		return nil, dnderr.AlreadyExistsf("%s is already attached to %s", owner, event)
	}
	c.records[event] = append(c.records[event], record)
	count := len(c.records[event])
	c.mu.Unlock()

	log.Printf("[HOOKS] %s attached to %s (%d augmentations)", owner, event, count)
	return record, nil
}

// Detach removes every augmentation an owner attached to an event
func (c *Chain) Detach(event Event, owner string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.records[event])
	c.records[event] = slices.DeleteFunc(c.records[event], func(r *Record) bool {
		return r.Owner == owner
	})
	removed := before - len(c.records[event])

	if removed > 0 {
		log.Printf("[HOOKS] %s detached from %s", owner, event)
	}
	return removed
}

// Records returns a copy of the records attached to an event, in order
func (c *Chain) Records(event Event) []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Record, 0, len(c.records[event]))
	for _, r := range c.records[event] {
		out = append(out, *r)
	}
	return out
}

// Fire runs the original once and then every augmentation in attachment
// order. A failing augmentation is reported and skipped. The returned error
// is the original's.
func (c *Chain) Fire(ctx context.Context, event Event, hc *Context) (Result, error) {
	if hc == nil {
		hc = &Context{}
	}
	hc.Event = event

	c.mu.RLock()
	original := c.originals[event]
	records := slices.Clone(c.records[event])
	c.mu.RUnlock()

	metrics.HookFirings.WithLabelValues(string(event)).Inc()

	var res Result
	if original != nil {
		res.Value, res.Err = original(ctx, hc)
	}

	for _, record := range records {
		if err := c.run(ctx, record, hc, res); err != nil {
			metrics.AugmentationFailures.WithLabelValues(string(event), record.Owner).Inc()
			c.reporter.Report(dnderr.AugmentationFailure(string(event), record.Owner, err))
		}
	}

	return res, res.Err
}

func (c *Chain) run(ctx context.Context, record *Record, hc *Context, res Result) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return record.augment(ctx, hc, res)
}
