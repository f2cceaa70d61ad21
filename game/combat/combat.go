package combat

import (
	"math/rand"

	"github.com/lastcentaur/engine/game/catalog"
)

// applyAccuracy scales a raw damage figure by the shared weather/time
// accuracy modifier, applied multiplicatively to both sides.
func applyAccuracy(raw int, accuracyModifier float64) int {
	scaled := float64(raw) * accuracyModifier
	if scaled < 0 {
		return 0
	}
	return int(scaled)
}

// tickCooldowns advances every ability's cooldown by one turn; cooldowns
// tick in turns, not minutes.
func (s *State) tickCooldowns() {
	for name, remaining := range s.AbilityCooldowns {
		if remaining > 0 {
			s.AbilityCooldowns[name] = remaining - 1
		}
	}
}

// enemyAbilityOffCooldown returns the enemy's first ability that is ready
// to use, or nil if none are.
func enemyAbilityOffCooldown(e catalog.Enemy, cooldowns map[string]int) *catalog.Ability {
	for i := range e.Abilities {
		ab := &e.Abilities[i]
		if cooldowns[ab.Name] <= 0 {
			return ab
		}
	}
	return nil
}

// Resolve advances one turn of the encounter in s against enemy, given the
// player's chosen action, the damage the player's attack would deal (the
// caller has already folded in CalculateDamage's path modifiers), and the
// shared accuracy modifier from current weather/time, applied
// multiplicatively to both sides. rng must be instance-scoped.
func Resolve(rng *rand.Rand, e catalog.Enemy, s *State, playerAction PlayerAction, playerAttackDamage int, accuracyModifier float64) TurnResult {
	s.TurnNumber++
	var result TurnResult

	playerAttacked := playerAction == Attack
	if playerAttacked {
		dealt := applyAccuracy(playerAttackDamage, accuracyModifier)
		s.EnemyHealth -= dealt
		result.PlayerDamageDealt = dealt
		if s.EnemyHealth <= 0 {
			result.EnemyDefeated = true
			return result
		}
	}

	enemyAttacks, abilityUsed := enemyTurn(rng, e, s, playerAttacked)
	if abilityUsed != nil {
		result.EnemyAbilityUsed = abilityUsed.Name
	}

	if enemyAttacks {
		base := e.Damage
		if abilityUsed != nil {
			base = abilityUsed.Damage
		}

		if e.CombatStyle == catalog.Stealth && s.TurnNumber == 1 && !s.SurpriseResolved {
			s.SurpriseResolved = true
			if rng.Float64() < SurpriseChance {
				base = int(float64(base) * SurpriseMultiplier)
				result.SurpriseTriggered = true
			}
		}

		result.EnemyDamageDealt = applyAccuracy(base, accuracyModifier)
	}

	s.tickCooldowns()
	return result
}

// enemyTurn decides whether the enemy attacks this turn and, if it uses an
// ability, which one, following the enemy's combat style.
func enemyTurn(rng *rand.Rand, e catalog.Enemy, s *State, playerAttacked bool) (attacks bool, ability *catalog.Ability) {
	switch e.CombatStyle {
	case catalog.Aggressive:
		return true, nil

	case catalog.Defensive:
		return playerAttacked, nil

	case catalog.Tactical:
		if s.TurnNumber%2 == 0 {
			if ab := enemyAbilityOffCooldown(e, s.AbilityCooldowns); ab != nil {
				s.AbilityCooldowns[ab.Name] = ab.CooldownTurns
				return true, ab
			}
		}
		return true, nil

	case catalog.Magical:
		if ab := enemyAbilityOffCooldown(e, s.AbilityCooldowns); ab != nil {
			s.AbilityCooldowns[ab.Name] = ab.CooldownTurns
			return true, ab
		}
		return true, nil

	case catalog.Stealth:
		return true, nil

	default:
		return true, nil
	}
}
