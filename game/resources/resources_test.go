package resources

import "testing"

func TestAdvanceClampsToOne(t *testing.T) {
	d := Depletion{}
	d.Advance(100000, Conditions{})
	if d.Hunger != 1 || d.Fatigue != 1 || d.MentalStrain != 1 {
		t.Fatalf("expected all scalars clamped to 1, got %+v", d)
	}
}

func TestCombatModifierIncreasesHungerFaster(t *testing.T) {
	base := Depletion{}
	base.Advance(60, Conditions{})

	withCombat := Depletion{}
	withCombat.Advance(60, Conditions{RecentCombat: true})

	if withCombat.Hunger <= base.Hunger {
		t.Fatalf("expected combat to accelerate hunger: base=%v combat=%v", base.Hunger, withCombat.Hunger)
	}
}

func TestNoPenaltyBelowThreshold(t *testing.T) {
	d := Depletion{Hunger: 0.4, Fatigue: 0.5, MentalStrain: 0.1}
	if d.StaminaRegenPenalty() != 0 {
		t.Fatalf("expected zero penalty below threshold, got %v", d.StaminaRegenPenalty())
	}
	if d.HealthRegenPenalty() != 0 {
		t.Fatalf("expected zero penalty at threshold, got %v", d.HealthRegenPenalty())
	}
}

func TestPenaltyCapsAtMaxAtFullScalar(t *testing.T) {
	d := Depletion{Hunger: 1.0, Fatigue: 1.0, MentalStrain: 1.0}
	if got := d.StaminaRegenPenalty(); got != 0.90 {
		t.Fatalf("expected hunger penalty 0.90 at max, got %v", got)
	}
	if got := d.HealthRegenPenalty(); got != 0.80 {
		t.Fatalf("expected fatigue penalty 0.80 at max, got %v", got)
	}
	if got := d.ManaRegenPenalty(); got != 0.85 {
		t.Fatalf("expected mental_strain penalty 0.85 at max, got %v", got)
	}
}

func TestApplyRegenScalesDown(t *testing.T) {
	if got := ApplyRegen(10, 0.5); got != 5 {
		t.Fatalf("expected halved regen, got %d", got)
	}
	if got := ApplyRegen(10, 1.0); got != 0 {
		t.Fatalf("expected zero regen at full penalty, got %d", got)
	}
}

func TestRecoveryMethodsClamp(t *testing.T) {
	d := Depletion{Hunger: 0.2, Fatigue: 0.1, MentalStrain: 0.05}
	d.Eat(0.5)
	d.Rest(0.5)
	d.Meditate(0.5)
	if d.Hunger != 0 || d.Fatigue != 0 || d.MentalStrain != 0 {
		t.Fatalf("expected recovery to clamp at zero, got %+v", d)
	}
}
