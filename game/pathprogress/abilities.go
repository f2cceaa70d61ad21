package pathprogress

import "github.com/lastcentaur/engine/game/catalog"

// abilityData holds the combat-facing numbers for every ability a path
// can unlock via abilityUnlocks. Cooldowns tick in turns, matching
// game/combat's enemy-ability convention.
var abilityData = map[string]catalog.Ability{
	"power_strike":     {Name: "Power Strike", Description: "A heavy two-handed blow.", Damage: 14, CooldownTurns: 2},
	"shield_wall":      {Name: "Shield Wall", Description: "Braces for the next attack.", Damage: 0, CooldownTurns: 3},
	"whirlwind":        {Name: "Whirlwind", Description: "A spinning strike against everything nearby.", Damage: 18, CooldownTurns: 4},
	"minor_ward":       {Name: "Minor Ward", Description: "A flicker of protective magic.", Damage: 4, CooldownTurns: 2},
	"arcane_bolt":      {Name: "Arcane Bolt", Description: "A bolt of raw mystic force.", Damage: 16, CooldownTurns: 2},
	"mana_surge":       {Name: "Mana Surge", Description: "Channels accumulated mana into a burst.", Damage: 22, CooldownTurns: 4},
	"silent_step":      {Name: "Silent Step", Description: "A near-silent repositioning strike.", Damage: 10, CooldownTurns: 1},
	"backstab_mastery": {Name: "Backstab Mastery", Description: "A precise strike from the blind side.", Damage: 20, CooldownTurns: 3},
	"smoke_veil":       {Name: "Smoke Veil", Description: "A blinding burst that opens a killing strike.", Damage: 24, CooldownTurns: 4},
}

// AbilityByName looks up an unlocked ability's combat data.
func AbilityByName(name string) (catalog.Ability, bool) {
	a, ok := abilityData[name]
	return a, ok
}
