package hooks

// Event names a host event content can augment
type Event string

const (
	// EventOnHitEnemy fires after a hit lands on an enemy
	EventOnHitEnemy Event = "on_hit_enemy"

	// EventDiceReroll fires when a hit is rerolled and its on-hit effects
	// get a second chance
	EventDiceReroll Event = "dice_reroll"

	EventOnCharacterDeath       Event = "on_character_death"
	EventOnBodyInventoryChanged Event = "on_body_inventory_changed"
	EventServerDamageDealt      Event = "server_damage_dealt"
)

// Events lists every event the chain knows about
var Events = []Event{
	EventOnHitEnemy,
	EventDiceReroll,
	EventOnCharacterDeath,
	EventOnBodyInventoryChanged,
	EventServerDamageDealt,
}
