package definition

// Kind is the kind of content a definition describes
type Kind string

const (
	KindItem           Kind = "item"
	KindEquipment      Kind = "equipment"
	KindEliteEquipment Kind = "elite_equipment"
)

// Tier is the rarity classification the host sorts content into
type Tier string

const (
	TierNone      Tier = "no_tier"
	Tier1         Tier = "tier1"
	Tier2         Tier = "tier2"
	Tier3         Tier = "tier3"
	TierLunar     Tier = "lunar"
	TierBoss      Tier = "boss"
	TierVoidTier1 Tier = "void_tier1"
	TierVoidTier2 Tier = "void_tier2"
	TierVoidTier3 Tier = "void_tier3"
	TierVoidBoss  Tier = "void_boss"
)

// IsVoid reports whether the tier holds corrupted replacements of other items
func (t Tier) IsVoid() bool {
	switch t {
	case TierVoidTier1, TierVoidTier2, TierVoidTier3, TierVoidBoss:
		return true
	}
	return false
}

// Tag is a capability tag the host uses to filter content
type Tag string

const (
	TagDamage           Tag = "damage"
	TagHealing          Tag = "healing"
	TagUtility          Tag = "utility"
	TagOnKillEffect     Tag = "on_kill_effect"
	TagEquipmentRelated Tag = "equipment_related"
	// TagAIBlacklist excludes content from AI-controlled actors
	TagAIBlacklist Tag = "ai_blacklist"
)

// Param names a tunable numeric parameter
type Param string

const (
	ParamChance            Param = "chance"
	ParamDuration          Param = "duration"
	ParamInterval          Param = "interval"
	ParamScale             Param = "scale"
	ParamDamageCoefficient Param = "damage_coefficient"
	ParamHealthMultiplier  Param = "health_multiplier"
	ParamDamageMultiplier  Param = "damage_multiplier"
	ParamCostMultiplier    Param = "cost_multiplier"
)

// AssetRef is an opaque reference to a model, icon or sprite owned by the host
type AssetRef string

// Handle is the opaque catalog handle issued by the host
type Handle string
