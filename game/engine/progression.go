package engine

// abilityTierAchievement maps a just-unlocked ability to the path-tier
// achievement it also grants, feeding the adept/master titles in
// game/catalog. The warrior/stealth mid-tier achievements
// (warrior_honorable_victory, stealth_unseen) are granted by the combat
// action itself rather than by level, since they describe how a kill
// happened, not how strong the player has grown; a path's final ability
// (level 6) always grants its capstone achievement.
var abilityTierAchievement = map[string]string{
	"minor_ward": "mystic_spell_master",
	"whirlwind":  "warrior_champion",
	"mana_surge": "mystic_enlightened",
	"smoke_veil": "stealth_shadow_master",
}

// unlockTierAchievements checks each newly-unlocked ability against
// abilityTierAchievement, unlocking the matching path-tier achievement, if
// any, and returns every newly unlocked title id across all of them.
func (e *GameEngine) unlockTierAchievements(unlockedAbilities []string) []string {
	var titles []string
	for _, ability := range unlockedAbilities {
		if achID, ok := abilityTierAchievement[ability]; ok {
			titles = append(titles, e.Achieve.Unlock(achID)...)
		}
	}
	return titles
}

// markExplored records a distinct visited tile toward the explorer
// achievement, unlocking it the first time the player has stood on 10
// different tiles.
func (e *GameEngine) markExplored() []string {
	visited := map[string]bool{}
	for _, pos := range e.MoveHistory {
		visited[pos.String()] = true
	}
	if len(visited) >= 10 {
		return e.Achieve.Unlock("explorer")
	}
	return nil
}
