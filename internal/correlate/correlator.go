// Package correlate links definitions that name each other once every
// content object has been built.
package correlate

import (
	"context"
	"log"

	"github.com/KirkDiggler/thalassophobia/internal/catalog"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	"github.com/KirkDiggler/thalassophobia/internal/diagnostics"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/registry"
)

// Config holds the correlator's collaborators
type Config struct {
	Catalog  catalog.Service
	Reporter diagnostics.Reporter
}

// Correlator resolves cross-reference tokens into catalog relationships
type Correlator struct {
	catalog  catalog.Service
	reporter diagnostics.Reporter
}

// Report summarizes one correlation pass
type Report struct {
	Pairs []catalog.Pair
	// Unresolved lists the tokens that matched no definition
	Unresolved []string
	// Skipped counts declared cross-references outside the void tiers
	Skipped int
}

// New creates a correlator
func New(cfg *Config) (*Correlator, error) {
	if cfg == nil || cfg.Catalog == nil {
		return nil, dnderr.InvalidArgumentf("catalog is required")
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = diagnostics.Default("CORRELATE")
	}

	return &Correlator{
		catalog:  cfg.Catalog,
		reporter: reporter,
	}, nil
}

// Run pairs every void-tier definition that declares the item it corrupts
// with that item. Tokens match a definition's name token or its lang token.
// An unresolved token is reported and the pass moves on.
func (c *Correlator) Run(ctx context.Context, snap *registry.Snapshot) (*Report, error) {
	if snap == nil {
		return nil, dnderr.InvalidArgumentf("snapshot is required")
	}

	index := make(map[string]*definition.Definition)
	for _, def := range snap.Definitions() {
		index[def.NameToken()] = def
		if _, taken := index[def.Token()]; !taken {
			index[def.Token()] = def
		}
	}

	report := &Report{}
	for entry, def := range snap.Definitions() {
		token := def.Corrupts()
		if token == "" {
			continue
		}
		if !def.Tier().IsVoid() {
			report.Skipped++
			log.Printf("[CORRELATE] %s declares %q but tier %s is not a void tier", def.Name(), token, def.Tier())
			continue
		}

		target, ok := index[token]
		if !ok || target == def {
			report.Unresolved = append(report.Unresolved, token)
			c.reporter.Report(dnderr.UnresolvedCorrelation(string(entry.Key()), token))
			continue
		}

		pair := catalog.Pair{
			Type:            catalog.RelationshipContagious,
			Replaced:        target.Handle(),
			ReplacedName:    target.Name(),
			Replacement:     def.Handle(),
			ReplacementName: def.Name(),
		}
		if err := c.catalog.RegisterRelationship(ctx, pair); err != nil {
			return report, dnderr.Wrapf(err, "failed to pair %s with %s", def.Name(), target.Name())
		}
		report.Pairs = append(report.Pairs, pair)
		log.Printf("[CORRELATE] %s corrupts %s", def.Name(), target.Name())
	}

	return report, nil
}

// AssignTiers re-asserts every definition's tier once the host's tier
// catalog is ready. TierNone clears the tier.
func (c *Correlator) AssignTiers(ctx context.Context, snap *registry.Snapshot) (int, error) {
	if snap == nil {
		return 0, dnderr.InvalidArgumentf("snapshot is required")
	}

	assigned := 0
	for _, def := range snap.Definitions() {
		if err := c.catalog.SetTier(ctx, def.Handle(), def.Tier()); err != nil {
			return assigned, dnderr.Wrapf(err, "failed to assign tier %s to %s", def.Tier(), def.Name())
		}
		assigned++
		log.Printf("[CORRELATE] %s is assigned to tier %s", def.Name(), def.Tier())
	}
	return assigned, nil
}
