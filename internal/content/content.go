// Package content holds the base abstractions shared by every item and elite
// equipment: the phases they initialize through and the state they keep once
// built.
package content

import (
	"context"

	"github.com/KirkDiggler/thalassophobia/internal/combat"
	"github.com/KirkDiggler/thalassophobia/internal/config"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	"github.com/KirkDiggler/thalassophobia/internal/dot"
	"github.com/KirkDiggler/thalassophobia/internal/hooks"
)

// Env is everything a content object may touch while initializing
type Env struct {
	Config *config.ContentConfig
	Hooks  *hooks.Chain
	Dots   *dot.Engine
	World  *combat.World
}

// Content is one registrable content object. Initialization runs its phases
// in order: Configure, then Attributes are built into a definition handed
// back through SetDefinition, then AttachHooks.
type Content interface {
	// Name identifies the object in logs and hook records
	Name() string

	// Enabled reports whether the object takes part in initialization
	Enabled(cfg *config.ContentConfig) bool

	// Configure reads tunables and registers supporting host objects
	Configure(ctx context.Context, env *Env) error

	// Attributes declares the raw attributes to build
	Attributes() definition.Attributes

	// SetDefinition stores the built definition
	SetDefinition(def *definition.Definition)

	// AttachHooks augments host events
	AttachHooks(ctx context.Context, env *Env) error
}

// Equipment is content the holder can activate
type Equipment interface {
	Content

	// Activate runs the equipment's on-use effect and reports whether it
	// went off
	Activate(user *combat.Body) bool
}
