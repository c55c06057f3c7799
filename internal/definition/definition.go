// Package definition turns the attributes a content object declares into an
// immutable definition the host catalogs and localizes.
package definition

import (
	"slices"

	"github.com/KirkDiggler/thalassophobia/internal/lang"
)

// Definition describes one registrable kind of content. It is immutable once
// built; accessors return copies.
type Definition struct {
	kind          Kind
	name          string
	token         string
	pickup        string
	description   string
	lore          string
	eliteModifier string
	tier          Tier
	assets        []AssetRef
	tags          []Tag
	params        map[Param]float64
	corrupts      string
	canRemove     bool
	hidden        bool
	handle        Handle
}

func (d *Definition) Kind() Kind            { return d.kind }
func (d *Definition) Name() string          { return d.name }
func (d *Definition) Token() string         { return d.token }
func (d *Definition) Pickup() string        { return d.pickup }
func (d *Definition) Description() string   { return d.description }
func (d *Definition) Lore() string          { return d.lore }
func (d *Definition) EliteModifier() string { return d.eliteModifier }
func (d *Definition) Tier() Tier            { return d.tier }
func (d *Definition) Corrupts() string      { return d.corrupts }
func (d *Definition) CanRemove() bool       { return d.canRemove }
func (d *Definition) Hidden() bool          { return d.hidden }
func (d *Definition) Handle() Handle        { return d.handle }
func (d *Definition) Assets() []AssetRef    { return slices.Clone(d.assets) }
func (d *Definition) Tags() []Tag           { return slices.Clone(d.tags) }
func (d *Definition) HasTag(tag Tag) bool   { return slices.Contains(d.tags, tag) }
func (d *Definition) Param(p Param) (float64, bool) {
	v, ok := d.params[p]
	return v, ok
}

// Key is the localization key of the definition itself, e.g. ITEM_ACID_ON_HIT.
// It doubles as the item key inventories count by.
func (d *Definition) Key() lang.Key {
	return lang.Key{Prefix: prefixFor(d.kind), Token: d.token}
}

// NameToken is the localization key of the display name, the identifier
// cross-references point at
func (d *Definition) NameToken() string {
	return d.Key().WithField(lang.FieldName).String()
}

func prefixFor(kind Kind) lang.Prefix {
	if kind == KindItem {
		return lang.PrefixItem
	}
	return lang.PrefixEquipment
}
