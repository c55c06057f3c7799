// Package plugin drives initialization: it registers every content object,
// runs each through its phases and finishes with the cross-registry passes.
package plugin

import (
	"context"
	"log"

	"github.com/KirkDiggler/thalassophobia/internal/combat"
	"github.com/KirkDiggler/thalassophobia/internal/config"
	"github.com/KirkDiggler/thalassophobia/internal/content"
	"github.com/KirkDiggler/thalassophobia/internal/content/elites"
	"github.com/KirkDiggler/thalassophobia/internal/content/items"
	"github.com/KirkDiggler/thalassophobia/internal/correlate"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	"github.com/KirkDiggler/thalassophobia/internal/diagnostics"
	"github.com/KirkDiggler/thalassophobia/internal/dot"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/hooks"
	"github.com/KirkDiggler/thalassophobia/internal/registry"
)

// Config holds the collaborators initialization wires content into
type Config struct {
	Content    *config.ContentConfig
	Registry   *registry.Registry
	Builder    *definition.Builder
	Hooks      *hooks.Chain
	Dots       *dot.Engine
	World      *combat.World
	Correlator *correlate.Correlator
	Reporter   diagnostics.Reporter
}

// Plugin initializes content
type Plugin struct {
	registry   *registry.Registry
	builder    *definition.Builder
	correlator *correlate.Correlator
	reporter   diagnostics.Reporter
	env        *content.Env
}

// Summary describes what one Load did
type Summary struct {
	Initialized []string
	Disabled    []string
	// Failed maps content names to the error that stopped them
	Failed        map[string]error
	Correlation   *correlate.Report
	TiersAssigned int
}

// DefaultContent returns every content object this plugin ships
func DefaultContent() []content.Content {
	return []content.Content{
		items.NewAcidOnHit(),
		elites.NewAffixUnstable(),
	}
}

// New creates a plugin
func New(cfg *Config) (*Plugin, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgumentf("config is required")
	}
	if cfg.Content == nil {
		return nil, dnderr.InvalidArgumentf("content config is required")
	}
	if cfg.Registry == nil || cfg.Builder == nil || cfg.Correlator == nil {
		return nil, dnderr.InvalidArgumentf("registry, builder and correlator are required")
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = diagnostics.Default("PLUGIN")
	}

	return &Plugin{
		registry:   cfg.Registry,
		builder:    cfg.Builder,
		correlator: cfg.Correlator,
		reporter:   reporter,
		env: &content.Env{
			Config: cfg.Content,
			Hooks:  cfg.Hooks,
			Dots:   cfg.Dots,
			World:  cfg.World,
		},
	}, nil
}

// Load registers and initializes the given content. A duplicate content type
// aborts loading. Any other failure is isolated to the object that caused it.
func (p *Plugin) Load(ctx context.Context, contents ...content.Content) (*Summary, error) {
	type registered struct {
		content content.Content
		entry   *registry.Entry
	}

	pending := make([]registered, 0, len(contents))
	for _, c := range contents {
		entry, err := registry.Register(p.registry, c)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to register %s", c.Name())
		}
		pending = append(pending, registered{content: c, entry: entry})
	}

	summary := &Summary{Failed: make(map[string]error)}
	for _, r := range pending {
		name := r.content.Name()
		if !r.content.Enabled(p.env.Config) {
			log.Printf("[PLUGIN] %s is disabled", name)
			summary.Disabled = append(summary.Disabled, name)
			continue
		}

		if err := p.initialize(ctx, r.content, r.entry); err != nil {
			p.reporter.Report(err)
			summary.Failed[name] = err
			continue
		}
		summary.Initialized = append(summary.Initialized, name)
	}

	snap := p.registry.Snapshot()

	report, err := p.correlator.Run(ctx, snap)
	if err != nil {
		return summary, err
	}
	summary.Correlation = report

	assigned, err := p.correlator.AssignTiers(ctx, snap)
	if err != nil {
		return summary, err
	}
	summary.TiersAssigned = assigned

	log.Printf("[PLUGIN] Loaded %d content objects (%d disabled, %d failed, %d pairs)",
		len(summary.Initialized), len(summary.Disabled), len(summary.Failed), len(report.Pairs))
	return summary, nil
}

func (p *Plugin) initialize(ctx context.Context, c content.Content, entry *registry.Entry) error {
	if err := c.Configure(ctx, p.env); err != nil {
		return dnderr.Wrapf(err, "failed to configure %s", c.Name())
	}

	def, err := p.builder.Build(ctx, c.Attributes())
	if err != nil {
		return dnderr.Wrapf(err, "failed to build %s", c.Name())
	}
	if err := entry.Bind(def); err != nil {
		return dnderr.Wrapf(err, "failed to bind %s", c.Name())
	}
	c.SetDefinition(def)

	if err := c.AttachHooks(ctx, p.env); err != nil {
		return dnderr.Wrapf(err, "failed to attach hooks for %s", c.Name())
	}
	return nil
}
