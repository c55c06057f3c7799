package definition

// Attributes are the raw attributes a content object declares
type Attributes struct {
	Kind        Kind   `validate:"required"`
	Name        string `validate:"required"`
	Token       string `validate:"required"`
	Pickup      string `validate:"required"`
	Description string
	Lore        string
	Tier        Tier       `validate:"required"`
	Assets      []AssetRef `validate:"min=1,dive,required"`
	Tags        []Tag
	Params      map[Param]float64
	// AIBlacklisted adds TagAIBlacklist when built
	AIBlacklisted bool
	// Corrupts is the name token of the definition this one replaces
	Corrupts      string
	EliteModifier string
	Unremovable   bool
	Hidden        bool
}

// AttributesBuilder helps content objects declare their attributes
type AttributesBuilder struct {
	attrs Attributes
}

// NewAttributes starts attributes for a kind of content
func NewAttributes(kind Kind, token, name string) *AttributesBuilder {
	return &AttributesBuilder{
		attrs: Attributes{
			Kind:   kind,
			Token:  token,
			Name:   name,
			Params: make(map[Param]float64),
		},
	}
}

// WithTexts sets the pickup text, full description and lore
func (b *AttributesBuilder) WithTexts(pickup, description, lore string) *AttributesBuilder {
	b.attrs.Pickup = pickup
	b.attrs.Description = description
	b.attrs.Lore = lore
	return b
}

// WithTier sets the tier
func (b *AttributesBuilder) WithTier(tier Tier) *AttributesBuilder {
	b.attrs.Tier = tier
	return b
}

// WithAssets adds visual references
func (b *AttributesBuilder) WithAssets(assets ...AssetRef) *AttributesBuilder {
	b.attrs.Assets = append(b.attrs.Assets, assets...)
	return b
}

// WithTags adds capability tags
func (b *AttributesBuilder) WithTags(tags ...Tag) *AttributesBuilder {
	b.attrs.Tags = append(b.attrs.Tags, tags...)
	return b
}

// WithParam sets a tunable parameter
func (b *AttributesBuilder) WithParam(p Param, value float64) *AttributesBuilder {
	b.attrs.Params[p] = value
	return b
}

// AIBlacklisted excludes the content from AI-controlled actors
func (b *AttributesBuilder) AIBlacklisted() *AttributesBuilder {
	b.attrs.AIBlacklisted = true
	return b
}

// Corrupts declares the name token of the definition this one replaces
func (b *AttributesBuilder) Corrupts(nameToken string) *AttributesBuilder {
	b.attrs.Corrupts = nameToken
	return b
}

// WithEliteModifier sets the word prefixed to elite names, e.g. "Erythrite"
func (b *AttributesBuilder) WithEliteModifier(modifier string) *AttributesBuilder {
	b.attrs.EliteModifier = modifier
	return b
}

// Unremovable marks content that cannot be taken out of an inventory
func (b *AttributesBuilder) Unremovable() *AttributesBuilder {
	b.attrs.Unremovable = true
	return b
}

// Hidden hides the content from logbook and pickup displays
func (b *AttributesBuilder) Hidden() *AttributesBuilder {
	b.attrs.Hidden = true
	return b
}

// Attributes returns the declared attributes
func (b *AttributesBuilder) Attributes() Attributes {
	return b.attrs
}
