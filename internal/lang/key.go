// Package lang registers the display strings of content definitions with the
// host's localization table.
package lang

import (
	"strings"

	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
)

// Prefix names the kind of content a key belongs to
type Prefix string

const (
	PrefixItem          Prefix = "ITEM"
	PrefixEquipment     Prefix = "EQUIPMENT"
	PrefixEliteModifier Prefix = "ELITE_MODIFIER"
)

// Field is one localized field of a definition
type Field string

const (
	// FieldNone addresses the definition itself, e.g. ITEM_ACID_ON_HIT
	FieldNone        Field = ""
	FieldName        Field = "NAME"
	FieldPickup      Field = "PICKUP"
	FieldDescription Field = "DESCRIPTION"
	FieldLore        Field = "LORE"
)

// Key is a structured localization key
type Key struct {
	Prefix Prefix
	Token  string
	Field  Field
}

// String renders the key the way the host expects it
func (k Key) String() string {
	parts := make([]string, 0, 3)
	parts = append(parts, string(k.Prefix), k.Token)
	if k.Field != FieldNone {
		parts = append(parts, string(k.Field))
	}
	return strings.Join(parts, "_")
}

// WithField returns the same key addressing another field
func (k Key) WithField(field Field) Key {
	k.Field = field
	return k
}

// Fields are the text fields every definition registers, in order
var Fields = []Field{FieldName, FieldPickup, FieldDescription, FieldLore}

// Validate rejects keys whose rendered form could belong to another key. A
// token may not end in a field suffix: ACID_NAME with no field would render
// the same as ACID with FieldName.
func (k Key) Validate() error {
	if k.Prefix == "" || k.Token == "" {
		return dnderr.InvalidArgumentf("key %q needs a prefix and a token", k.String())
	}
	for _, field := range Fields {
		if strings.HasSuffix(k.Token, "_"+string(field)) {
			return dnderr.InvalidArgumentf("token %q ends in field suffix %s", k.Token, field)
		}
	}
	return nil
}
