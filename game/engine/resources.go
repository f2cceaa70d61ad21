package engine

import "github.com/lastcentaur/engine/game/resources"

// resourcesConditions builds the situational modifiers for one tick of
// resource drain from the engine's current state.
func resourcesConditions(e *GameEngine, abilityUsed bool) resources.Conditions {
	return resources.Conditions{
		RecentCombat: e.recentCombatTicks > 0,
		IsNight:      e.Time.IsNight(),
		AbilityUsed:  abilityUsed,
	}
}

// regenBaseStamina, regenBaseHealth, and regenBaseMana are the flat
// per-command regeneration amounts before depletion penalties scale them
// down, applied once after each successful move.
const (
	regenBaseStamina = 2
	regenBaseHealth  = 1
	regenBaseMana    = 1
)

// applyPassiveRegen nudges stamina, health, and mana back toward their
// maximums, each penalised by its paired depletion scalar per the
// hunger/fatigue/mental_strain table.
func (e *GameEngine) applyPassiveRegen() {
	e.Player.AdjustStamina(resources.ApplyRegen(regenBaseStamina, e.Resources.StaminaRegenPenalty()))
	e.Player.AdjustHealth(resources.ApplyRegen(regenBaseHealth, e.Resources.HealthRegenPenalty()))
	e.Player.AdjustMana(resources.ApplyRegen(regenBaseMana, e.Resources.ManaRegenPenalty()))
}
