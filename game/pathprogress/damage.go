package pathprogress

const (
	// wPerLevel is the per-level flat damage bonus a warrior adds.
	wPerLevel = 2.5

	// mysticPowerMultiplier is applied to the whole damage total when a
	// mystic's mana is at or above manaThreshold.
	mysticPowerMultiplier = 1.5
	manaThreshold         = 10

	// backstabMultiplier is applied when a stealth attack lands while
	// stealth_state.hidden is true.
	backstabMultiplier = 2.0
)

// DamageInput carries the path-specific context calculate_damage needs
// beyond the weapon's base figures.
type DamageInput struct {
	Path   PathType
	Level  int
	Mana   int
	Hidden bool
}

// CalculateDamage implements the path-specific damage formula:
// warrior adds a flat per-level bonus, mystic multiplies the total when
// mana clears a threshold, stealth applies a backstab multiplier while
// hidden. A path with no selection (PathType("")) behaves as a no-bonus
// baseline.
func CalculateDamage(base, weaponDamage int, in DamageInput) int {
	total := float64(base + weaponDamage)

	switch in.Path {
	case Warrior:
		total += float64(in.Level) * wPerLevel
	case Mystic:
		if in.Mana >= manaThreshold {
			total *= mysticPowerMultiplier
		}
	case Stealth:
		if in.Hidden {
			total *= backstabMultiplier
		}
	}

	return int(total)
}
