package pathprogress

import "testing"

func TestSuggestedPathHighestAffinity(t *testing.T) {
	tr := NewTracker()
	tr.Apply(ActionAttack)
	tr.Apply(ActionAttack)
	tr.Apply(ActionExamineRune)

	if got := tr.SuggestedPath(); got != Warrior {
		t.Fatalf("expected warrior suggested, got %s", got)
	}
}

func TestSelectIsIrrevocable(t *testing.T) {
	tr := NewTracker()
	if !tr.Select(Mystic) {
		t.Fatal("expected first selection to succeed")
	}
	if tr.Select(Warrior) {
		t.Fatal("expected second selection to fail")
	}
	if *tr.Selected != Mystic {
		t.Fatalf("expected mystic to remain selected, got %s", *tr.Selected)
	}
}

func TestAddXPLevelsUpAndUnlocksAbilities(t *testing.T) {
	tr := NewTracker()
	tr.Select(Warrior)

	unlocked := tr.AddXP(Warrior, 100)
	if tr.Progress[Warrior].Level != 2 {
		t.Fatalf("expected level 2 after 100 xp, got %d", tr.Progress[Warrior].Level)
	}
	if len(unlocked) != 1 || unlocked[0] != "power_strike" {
		t.Fatalf("expected power_strike unlocked, got %v", unlocked)
	}
	if !tr.HasAbility(Warrior, "power_strike") {
		t.Fatal("expected HasAbility true after unlock")
	}
}

func TestAddXPMultiLevelJump(t *testing.T) {
	tr := NewTracker()
	unlocked := tr.AddXP(Mystic, 500)
	if tr.Progress[Mystic].Level != 4 {
		t.Fatalf("expected level 4 after 500 xp, got %d", tr.Progress[Mystic].Level)
	}
	want := map[string]bool{"minor_ward": true, "arcane_bolt": true}
	if len(unlocked) != len(want) {
		t.Fatalf("expected 2 unlocks, got %v", unlocked)
	}
	for _, a := range unlocked {
		if !want[a] {
			t.Fatalf("unexpected unlock %q", a)
		}
	}
}

func TestCalculateDamageWarriorScenario(t *testing.T) {
	// level 2 warrior, base=10, weapon=5 => 15 + 2*wPerLevel.
	got := CalculateDamage(10, 5, DamageInput{Path: Warrior, Level: 2})
	want := int(15 + 2*wPerLevel)
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestCalculateDamageMysticThreshold(t *testing.T) {
	below := CalculateDamage(10, 5, DamageInput{Path: Mystic, Mana: manaThreshold - 1})
	atThreshold := CalculateDamage(10, 5, DamageInput{Path: Mystic, Mana: manaThreshold})
	if below >= atThreshold {
		t.Fatalf("expected mystic multiplier only at/above threshold: below=%d at=%d", below, atThreshold)
	}
}

func TestCalculateDamageStealthBackstab(t *testing.T) {
	hidden := CalculateDamage(10, 5, DamageInput{Path: Stealth, Hidden: true})
	visible := CalculateDamage(10, 5, DamageInput{Path: Stealth, Hidden: false})
	if hidden != visible*2 {
		t.Fatalf("expected backstab to double damage: hidden=%d visible=%d", hidden, visible)
	}
}

func TestStealthStateLifecycle(t *testing.T) {
	var s StealthState
	if s.TryEnter(false) {
		t.Fatal("expected entry to fail when check fails")
	}
	if !s.TryEnter(true) {
		t.Fatal("expected entry to succeed when check passes")
	}
	if !s.Hidden {
		t.Fatal("expected hidden true after successful entry")
	}
	s.ExitOnAttack()
	if s.Hidden {
		t.Fatal("expected attack to exit hidden state")
	}
}

func TestStealthStateTimeLapse(t *testing.T) {
	var s StealthState
	s.TryEnter(true)
	s.AdvanceTime(stealthTimeLimitMinutes + 1)
	if s.Hidden {
		t.Fatal("expected hidden to lapse after the time threshold")
	}
}
