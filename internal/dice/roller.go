package dice

// Roller provides the randomness behind proc chance checks.
// This allows us to inject predetermined results for testing.
type Roller interface {
	// Percent returns a uniformly distributed value in [0, 100)
	Percent() (float64, error)
}

// CheckRoll reports whether a roll succeeds against a percent chance.
// Chances at or below 0 never succeed and never consume a roll; chances at
// or above 100 always succeed.
func CheckRoll(r Roller, percentChance float64) (bool, error) {
	if percentChance <= 0 {
		return false, nil
	}
	if percentChance >= 100 {
		return true, nil
	}

	roll, err := r.Percent()
	if err != nil {
		return false, err
	}

	return roll < percentChance, nil
}
