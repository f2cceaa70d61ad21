package resources

// baseRatePerMinute is the linear growth rate of each scalar absent any
// modifier, chosen so an untouched scalar reaches 1.0 over an 8 hour (480
// minute) stretch of play.
const baseRatePerMinute = 1.0 / 480.0

const (
	hungerCombatModifier        = 1.5 // hunger grows 50% faster during recent combat
	fatigueNightModifier        = 1.3 // fatigue grows 30% faster at night
	mentalStrainAbilityModifier = 1.8 // mental strain grows 80% faster on ability use

	penaltyThreshold = 0.5
)

// Depletion holds the three bounded resource-drain scalars for a player.
// Each is clamped to [0,1].
type Depletion struct {
	Hunger       float64 `json:"hunger"`
	Fatigue      float64 `json:"fatigue"`
	MentalStrain float64 `json:"mental_strain"`
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Conditions summarizes the situational modifiers in effect while the
// clock advances : whether combat happened recently, whether it is
// night, and whether an ability was used during this tick.
type Conditions struct {
	RecentCombat bool
	IsNight      bool
	AbilityUsed  bool
}

// Advance grows all three scalars by n elapsed minutes, applying the
// situational modifiers from cond.
func (d *Depletion) Advance(minutes int, cond Conditions) {
	if minutes <= 0 {
		return
	}
	elapsed := float64(minutes)

	hungerRate := baseRatePerMinute
	if cond.RecentCombat {
		hungerRate *= hungerCombatModifier
	}
	d.Hunger = clamp01(d.Hunger + hungerRate*elapsed)

	fatigueRate := baseRatePerMinute
	if cond.IsNight {
		fatigueRate *= fatigueNightModifier
	}
	d.Fatigue = clamp01(d.Fatigue + fatigueRate*elapsed)

	strainRate := baseRatePerMinute
	if cond.AbilityUsed {
		strainRate *= mentalStrainAbilityModifier
	}
	d.MentalStrain = clamp01(d.MentalStrain + strainRate*elapsed)
}

// penalty linearly ramps from 0 at the threshold to maxPenalty at 1.0.
func penalty(value, maxPenalty float64) float64 {
	if value <= penaltyThreshold {
		return 0
	}
	frac := (value - penaltyThreshold) / (1 - penaltyThreshold)
	return maxPenalty * frac
}

// StaminaRegenPenalty returns hunger's penalty on stamina regeneration,
// linear up to 0.90 at hunger 1.0.
func (d Depletion) StaminaRegenPenalty() float64 {
	return penalty(d.Hunger, 0.90)
}

// HealthRegenPenalty returns fatigue's penalty on health regeneration,
// linear up to 0.80 at fatigue 1.0.
func (d Depletion) HealthRegenPenalty() float64 {
	return penalty(d.Fatigue, 0.80)
}

// ManaRegenPenalty returns mental_strain's penalty on mana regeneration,
// linear up to 0.85 at mental_strain 1.0.
func (d Depletion) ManaRegenPenalty() float64 {
	return penalty(d.MentalStrain, 0.85)
}

// ApplyRegen scales a base regen amount by (1 - penalty), floored at zero.
func ApplyRegen(baseAmount int, penaltyFrac float64) int {
	scaled := float64(baseAmount) * (1 - penaltyFrac)
	if scaled < 0 {
		return 0
	}
	return int(scaled)
}

// Eat reduces hunger by amount, clamped to [0,1]. Food items are the
// recovery path for hunger.
func (d *Depletion) Eat(amount float64) {
	d.Hunger = clamp01(d.Hunger - amount)
}

// Rest reduces fatigue by amount, clamped to [0,1]. REST or a long sleep
// is the recovery path for fatigue.
func (d *Depletion) Rest(amount float64) {
	d.Fatigue = clamp01(d.Fatigue - amount)
}

// Meditate reduces mental_strain by amount, clamped to [0,1]. MEDITATE is
// the recovery path for mental strain.
func (d *Depletion) Meditate(amount float64) {
	d.MentalStrain = clamp01(d.MentalStrain - amount)
}
