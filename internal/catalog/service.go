// Package catalog is the host's content catalog: it issues opaque handles for
// definitions, records relationships between them and tracks their tiers.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=mockcatalog -source=service.go

import (
	"context"

	"github.com/KirkDiggler/thalassophobia/internal/definition"
)

// RelationshipType names a kind of relationship between two definitions
type RelationshipType string

const (
	// RelationshipContagious pairs an item with the void item that replaces it
	RelationshipContagious RelationshipType = "contagious_item"
)

// Pair relates a replaced definition to its replacement
type Pair struct {
	Type            RelationshipType  `json:"type"`
	Replaced        definition.Handle `json:"replaced"`
	ReplacedName    string            `json:"replaced_name"`
	Replacement     definition.Handle `json:"replacement"`
	ReplacementName string            `json:"replacement_name"`
}

// Service is the catalog collaborator content registers with
type Service interface {
	// CreateHandle issues the handle for a definition. Calling it again for a
	// definition with the same identifier, e.g. ITEM_ACID_ON_HIT, returns the
	// same handle. Display names play no part.
	CreateHandle(ctx context.Context, def *definition.Definition) (definition.Handle, error)

	// RegisterRelationship records a relationship pair. Recording the same
	// pair again is a no-op.
	RegisterRelationship(ctx context.Context, pair Pair) error

	// Relationships lists recorded pairs of a type in registration order
	Relationships(ctx context.Context, relType RelationshipType) ([]Pair, error)

	// SetTier reassigns the tier of a handle. TierNone clears it.
	SetTier(ctx context.Context, handle definition.Handle, tier definition.Tier) error

	// Tier returns the tier of a handle, TierNone if it has none
	Tier(ctx context.Context, handle definition.Handle) (definition.Tier, error)
}
