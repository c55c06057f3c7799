package definition

//go:generate mockgen -destination=mock/mock_handle_issuer.go -package=mockdefinition github.com/KirkDiggler/thalassophobia/internal/definition HandleIssuer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/lang"
)

// HandleIssuer issues the opaque catalog handle for a built definition
type HandleIssuer interface {
	CreateHandle(ctx context.Context, def *Definition) (Handle, error)
}

// BuilderConfig holds the collaborators a Builder registers definitions with
type BuilderConfig struct {
	Catalog  HandleIssuer
	Lang     lang.Table
	Language language.Tag
}

// Builder validates attributes and turns them into cataloged, localized
// definitions
type Builder struct {
	catalog  HandleIssuer
	lang     lang.Table
	language language.Tag
	validate *validator.Validate
}

// NewBuilder creates a definition builder
func NewBuilder(cfg *BuilderConfig) (*Builder, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgumentf("config is required")
	}
	if cfg.Catalog == nil {
		return nil, dnderr.InvalidArgumentf("catalog is required")
	}
	if cfg.Lang == nil {
		return nil, dnderr.InvalidArgumentf("lang table is required")
	}

	tag := cfg.Language
	if tag == language.Und {
		tag = language.English
	}

	return &Builder{
		catalog:  cfg.Catalog,
		lang:     cfg.Lang,
		language: tag,
		validate: validator.New(),
	}, nil
}

// Build validates the attributes, obtains the definition's catalog handle and
// registers its strings
func (b *Builder) Build(ctx context.Context, attrs Attributes) (*Definition, error) {
	if missing := b.missingFields(attrs); len(missing) > 0 {
		return nil, dnderr.IncompleteDefinition(attrs.Name, missing)
	}

	def := &Definition{
		kind:          attrs.Kind,
		name:          attrs.Name,
		token:         attrs.Token,
		pickup:        attrs.Pickup,
		description:   attrs.Description,
		lore:          attrs.Lore,
		eliteModifier: attrs.EliteModifier,
		tier:          attrs.Tier,
		assets:        slices.Clone(attrs.Assets),
		tags:          augmentTags(attrs.Tags, attrs.AIBlacklisted),
		params:        maps.Clone(attrs.Params),
		corrupts:      attrs.Corrupts,
		canRemove:     !attrs.Unremovable,
		hidden:        attrs.Hidden,
	}
	if def.params == nil {
		def.params = make(map[Param]float64)
	}

	// handles are idempotent per identifier
	handle, err := b.catalog.CreateHandle(ctx, def)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to create catalog handle for %s", def.name)
	}
	def.handle = handle

	if err := b.localize(ctx, def); err != nil {
		return nil, dnderr.Wrapf(err, "failed to localize %s", def.name)
	}

	log.Printf("[DEFINITION] Built %s %q (%s) tier=%s handle=%s", def.kind, def.name, def.Key(), def.tier, handle)
	return def, nil
}

func (b *Builder) missingFields(attrs Attributes) []string {
	err := b.validate.Struct(attrs)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if !slices.Contains(missing, field) {
			missing = append(missing, field)
		}
	}
	return missing
}

func (b *Builder) localize(ctx context.Context, def *Definition) error {
	key := def.Key()
	texts := map[lang.Field]string{
		lang.FieldName:        def.name,
		lang.FieldPickup:      def.pickup,
		lang.FieldDescription: def.description,
		lang.FieldLore:        def.lore,
	}

	for _, field := range lang.Fields {
		if err := b.lang.Put(ctx, b.language, key.WithField(field), texts[field]); err != nil {
			return fmt.Errorf("put %s: %w", key.WithField(field), err)
		}
	}

	if def.eliteModifier != "" {
		modKey := lang.Key{Prefix: lang.PrefixEliteModifier, Token: def.token}
		if err := b.lang.Put(ctx, b.language, modKey, def.eliteModifier); err != nil {
			return fmt.Errorf("put %s: %w", modKey, err)
		}
	}

	return nil
}

// augmentTags dedupes the declared tags and appends the AI exclusion tag once
func augmentTags(declared []Tag, aiBlacklisted bool) []Tag {
	tags := make([]Tag, 0, len(declared)+1)
	for _, tag := range declared {
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	if aiBlacklisted && !slices.Contains(tags, TagAIBlacklist) {
		tags = append(tags, TagAIBlacklist)
	}
	return tags
}
