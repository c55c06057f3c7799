package combat

// DamageColor tints damage numbers on the host
type DamageColor string

const (
	DamageColorDefault   DamageColor = "default"
	DamageColorWeakPoint DamageColor = "weak_point"
)

// DamageInfo describes one hit as reported by the host
type DamageInfo struct {
	// AttackerID is empty for environmental damage
	AttackerID string
	Damage     float64
	// ProcCoefficient in [0,1] scales the chance of on-hit effects
	ProcCoefficient float64
	// Rejected is set by the host when the hit was blocked or ignored
	Rejected bool
	Crit     bool
	Color    DamageColor
}
