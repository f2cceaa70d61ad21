package pathprogress

// xpForLevel maps a level to the total XP required to reach it, index 0
// unused so xpForLevel[n] reads naturally for level n. The table goes to
// level 10; beyond that, AddXP keeps the player at the final level without
// further leveling.
var xpForLevel = []int{
	0,   // unused
	0,   // level 1 (starting level)
	100,
	250,
	450,
	700,
	1000,
	1350,
	1750,
	2200,
	2700,
}

// abilityUnlocks is the static table of abilities granted on reaching a
// given (path, level) pair.
var abilityUnlocks = map[PathType]map[int][]string{
	Warrior: {
		2: {"power_strike"},
		4: {"shield_wall"},
		6: {"whirlwind"},
	},
	Mystic: {
		2: {"minor_ward"},
		4: {"arcane_bolt"},
		6: {"mana_surge"},
	},
	Stealth: {
		2: {"silent_step"},
		4: {"backstab_mastery"},
		6: {"smoke_veil"},
	},
}

// AddXP adds xp to the given path's progress, leveling up as many times
// as the xp table allows and returning the abilities newly unlocked, if
// any, in level order. AddXP does not check whether path is the selected
// one; it is a no-op only for an unknown path or a non-positive xp.
func (t *Tracker) AddXP(path PathType, xp int) []string {
	prog, ok := t.Progress[path]
	if !ok || xp <= 0 {
		return nil
	}
	prog.XP += xp

	var unlocked []string
	for prog.Level < len(xpForLevel)-1 && prog.XP >= xpForLevel[prog.Level+1] {
		prog.Level++
		for _, ability := range abilityUnlocks[path][prog.Level] {
			if !prog.UnlockedAbilities[ability] {
				prog.UnlockedAbilities[ability] = true
				unlocked = append(unlocked, ability)
			}
		}
	}
	return unlocked
}

// HasAbility reports whether path has unlocked the named ability.
func (t *Tracker) HasAbility(path PathType, ability string) bool {
	prog, ok := t.Progress[path]
	if !ok {
		return false
	}
	return prog.UnlockedAbilities[ability]
}
