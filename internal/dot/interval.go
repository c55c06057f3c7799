package dot

import (
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
)

// EffectiveInterval rescales the configured interval by the attacker's bonus
// attack speed: configured / (1 + ((speed-base)/base) * scale).
// A non-positive result is an error and the caller keeps its previous interval.
func EffectiveInterval(kind Kind, configured, attackSpeed, baseAttackSpeed, scale float64) (float64, error) {
	if baseAttackSpeed <= 0 {
		return 0, dnderr.NonPositiveInterval(string(kind), 0).
			WithMeta("base_attack_speed", baseAttackSpeed)
	}

	bonus := 1 + ((attackSpeed-baseAttackSpeed)/baseAttackSpeed)*scale
	if bonus == 0 {
		return 0, dnderr.NonPositiveInterval(string(kind), 0).
			WithMeta("attack_speed", attackSpeed)
	}

	interval := configured / bonus
	if interval <= 0 {
		return 0, dnderr.NonPositiveInterval(string(kind), interval)
	}
	return interval, nil
}
