package combat

import (
	"math/rand"
	"testing"

	"github.com/lastcentaur/engine/game/catalog"
)

func TestAggressiveEnemyAlwaysAttacks(t *testing.T) {
	e := catalog.Enemy{CombatStyle: catalog.Aggressive, Damage: 5, Health: 20}
	s := NewState(e.Health)
	rng := rand.New(rand.NewSource(1))

	res := Resolve(rng, e, s, Defend, 0, 1.0)
	if res.EnemyDamageDealt != 5 {
		t.Fatalf("expected aggressive enemy to attack for 5, got %d", res.EnemyDamageDealt)
	}
}

func TestDefensiveEnemyOnlyCountersOnPlayerAttack(t *testing.T) {
	e := catalog.Enemy{CombatStyle: catalog.Defensive, Damage: 5, Health: 20}
	s := NewState(e.Health)
	rng := rand.New(rand.NewSource(1))

	res := Resolve(rng, e, s, Defend, 0, 1.0)
	if res.EnemyDamageDealt != 0 {
		t.Fatalf("expected defensive enemy to hold fire, got %d", res.EnemyDamageDealt)
	}

	s2 := NewState(e.Health)
	res2 := Resolve(rng, e, s2, Attack, 8, 1.0)
	if res2.EnemyDamageDealt != 5 {
		t.Fatalf("expected defensive enemy to counter after player attacks, got %d", res2.EnemyDamageDealt)
	}
}

func TestEnemyDefeatEndsEncounterImmediately(t *testing.T) {
	e := catalog.Enemy{CombatStyle: catalog.Aggressive, Damage: 5, Health: 10}
	s := NewState(e.Health)
	rng := rand.New(rand.NewSource(1))

	res := Resolve(rng, e, s, Attack, 15, 1.0)
	if !res.EnemyDefeated {
		t.Fatal("expected enemy defeated when damage exceeds health")
	}
	if res.EnemyDamageDealt != 0 {
		t.Fatal("expected no enemy counter-damage once defeated mid-turn")
	}
}

func TestMagicalEnemyUsesAbilityWhenAvailable(t *testing.T) {
	e := catalog.Enemy{
		CombatStyle: catalog.Magical, Damage: 5, Health: 40,
		Abilities: []catalog.Ability{{Name: "bolt", Damage: 12, CooldownTurns: 2}},
	}
	s := NewState(e.Health)
	rng := rand.New(rand.NewSource(1))

	res := Resolve(rng, e, s, Defend, 0, 1.0)
	if res.EnemyAbilityUsed != "bolt" {
		t.Fatalf("expected bolt ability used, got %q", res.EnemyAbilityUsed)
	}
	if res.EnemyDamageDealt != 12 {
		t.Fatalf("expected ability damage 12, got %d", res.EnemyDamageDealt)
	}

	res2 := Resolve(rng, e, s, Defend, 0, 1.0)
	if res2.EnemyAbilityUsed == "bolt" {
		t.Fatal("expected bolt on cooldown for the next turn")
	}
}

func TestAccuracyModifierScalesBothSides(t *testing.T) {
	e := catalog.Enemy{CombatStyle: catalog.Aggressive, Damage: 10, Health: 40}
	s := NewState(e.Health)
	rng := rand.New(rand.NewSource(1))

	res := Resolve(rng, e, s, Attack, 10, 0.5)
	if res.PlayerDamageDealt != 5 {
		t.Fatalf("expected player damage halved, got %d", res.PlayerDamageDealt)
	}
	if res.EnemyDamageDealt != 5 {
		t.Fatalf("expected enemy damage halved, got %d", res.EnemyDamageDealt)
	}
}

func TestStealthEnemySurpriseOnlyOnFirstTurn(t *testing.T) {
	e := catalog.Enemy{CombatStyle: catalog.Stealth, Damage: 10, Health: 40}
	s := NewState(e.Health)
	rng := rand.New(rand.NewSource(42))

	Resolve(rng, e, s, Defend, 0, 1.0)
	if !s.SurpriseResolved {
		t.Fatal("expected surprise to be resolved after the first turn")
	}
	res2 := Resolve(rng, e, s, Defend, 0, 1.0)
	if res2.SurpriseTriggered {
		t.Fatal("expected surprise only possible on the first turn")
	}
}
