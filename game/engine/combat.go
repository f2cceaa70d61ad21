package engine

import (
	"fmt"

	"github.com/lastcentaur/engine/game/catalog"
	"github.com/lastcentaur/engine/game/combat"
	"github.com/lastcentaur/engine/game/command"
	"github.com/lastcentaur/engine/game/gerr"
	"github.com/lastcentaur/engine/game/pathprogress"
)

// startOrContinueEncounter resolves target against the current tile's
// enemies and either opens a new encounter or returns the one already in
// progress; a target naming a different enemy than the active encounter
// is rejected as a conflict.
func (e *GameEngine) startOrContinueEncounter(target string) (*encounter, error) {
	tile := e.currentTile()

	if e.Encounter != nil {
		if target == "" {
			return e.Encounter, nil
		}
		if id, ok := matchID(target, []string{e.Encounter.enemyID}); ok && id == e.Encounter.enemyID {
			return e.Encounter, nil
		}
		return nil, gerr.New(gerr.Conflict, "you are already fighting %s", e.Encounter.enemy.Name)
	}

	id, ok := matchID(target, tile.Enemies)
	if !ok {
		return nil, gerr.New(gerr.NotFound, "there is nothing here to fight")
	}
	enemy, _ := catalog.EnemyByID(id)
	enc := &encounter{
		enemyID:     id,
		enemy:       enemy,
		state:       combat.NewState(enemy.Health),
		hiddenStart: e.Paths.Stealth.Hidden,
	}
	e.Encounter = enc
	return enc, nil
}

// weaponDamage returns the base damage of the first weapon in the
// player's inventory, or 0 if unarmed.
func (e *GameEngine) weaponDamage() int {
	for _, id := range e.Player.Inventory {
		it, ok := catalog.ItemByID(id)
		if !ok || it.Type != catalog.Weapon {
			continue
		}
		if dmg, ok := it.Properties["damage"].(int); ok {
			return dmg
		}
	}
	return 0
}

// playerAttackDamage folds base damage, the equipped weapon, and the
// selected path's modifier together via pathprogress.CalculateDamage.
func (e *GameEngine) playerAttackDamage(base int) int {
	var path pathprogress.PathType
	if e.Paths.Selected != nil {
		path = *e.Paths.Selected
	}
	level := 1
	if path != "" {
		level = e.Paths.Progress[path].Level
	}
	return pathprogress.CalculateDamage(base, e.weaponDamage(), pathprogress.DamageInput{
		Path: path, Level: level, Mana: e.Player.Stats.Mana, Hidden: e.Paths.Stealth.Hidden,
	})
}

const playerBaseDamage = 8

// runTurn resolves one turn of an active encounter for the given player
// action, applying enemy damage to the player and handling both victory
// and defeat, then returns the narration and effects for that turn.
func (e *GameEngine) runTurn(enc *encounter, action combat.PlayerAction, abilityDamage int) Result {
	accuracy := e.Weather.Modifiers().CombatAccuracy

	dmg := 0
	switch action {
	case combat.Attack:
		dmg = e.playerAttackDamage(playerBaseDamage)
	case combat.Ability:
		dmg = e.playerAttackDamage(abilityDamage)
	}

	res := combat.Resolve(e.rng, enc.enemy, enc.state, action, dmg, accuracy)

	effects := command.EffectsRecord{}
	text := ""

	if action == combat.Attack || action == combat.Ability {
		e.Paths.Apply(pathprogress.ActionAttack)
		effects = effects.Add(command.Effect{Kind: command.StatDelta, Stat: "enemy_health", Delta: -res.PlayerDamageDealt})
		text += fmt.Sprintf("You strike %s for %d damage. ", enc.enemy.Name, res.PlayerDamageDealt)
	} else if action == combat.Defend {
		e.Paths.Apply(pathprogress.ActionDefend)
		text += "You raise your guard. "
	} else {
		text += "You slip aside. "
	}

	if res.EnemyDefeated {
		return e.resolveVictory(enc, effects, text)
	}

	if res.EnemyDamageDealt > 0 {
		e.Player.AdjustHealth(-res.EnemyDamageDealt)
		effects = effects.Add(command.Effect{Kind: command.StatDelta, Stat: "health", Delta: -res.EnemyDamageDealt})
		if res.EnemyAbilityUsed != "" {
			text += fmt.Sprintf("%s uses %s for %d damage. ", enc.enemy.Name, res.EnemyAbilityUsed, res.EnemyDamageDealt)
		} else if res.SurpriseTriggered {
			text += fmt.Sprintf("%s catches you by surprise for %d damage! ", enc.enemy.Name, res.EnemyDamageDealt)
		} else {
			text += fmt.Sprintf("%s strikes back for %d damage. ", enc.enemy.Name, res.EnemyDamageDealt)
		}
	}

	if action != combat.Defend {
		e.Paths.Stealth.ExitOnAttack()
	}

	if e.Player.IsDefeated() {
		text += "You collapse, defeated."
		effects = effects.Add(command.Effect{Kind: command.FlagSet, Flag: "player_defeated"})
		e.Encounter = nil
		return Result{Text: text, Effects: effects}
	}

	return Result{Text: text, Effects: effects}
}

// resolveVictory applies every consequence of defeating enc's enemy: tile
// cleanup, blocked-path clearing, drops, time advance, XP, and
// achievement/quest checks.
func (e *GameEngine) resolveVictory(enc *encounter, effects command.EffectsRecord, text string) Result {
	tile := e.currentTile()
	tile.RemoveEnemy(enc.enemyID)
	for dir := range e.Player.BlockedPaths[e.Player.Position] {
		e.Player.UnblockDirection(e.Player.Position, dir)
	}
	for _, item := range enc.enemy.Drops {
		tile.Items = append(tile.Items, item)
		effects = effects.Add(command.Effect{Kind: command.ItemAdded, ItemID: item})
	}

	if enc.hiddenStart {
		e.Paths.Apply(pathprogress.ActionStealthKill)
	}
	e.markRecentCombat()
	events := e.advanceTime(combat.CombatMinutes, false)

	var path pathprogress.PathType
	var unlockedTitles []string
	if e.Paths.Selected != nil {
		path = *e.Paths.Selected
		if unlocked := e.Paths.AddXP(path, killXP); len(unlocked) > 0 {
			for _, a := range unlocked {
				effects = effects.Add(command.Effect{Kind: command.FlagSet, Flag: "ability_unlocked:" + a})
			}
			unlockedTitles = append(unlockedTitles, e.unlockTierAchievements(unlocked)...)
		}
	}

	unlockedTitles = append(unlockedTitles, e.Achieve.Unlock("first_blood")...)
	if path == pathprogress.Warrior && !enc.hiddenStart {
		unlockedTitles = append(unlockedTitles, e.Achieve.Unlock("warrior_honorable_victory")...)
	}
	if path == pathprogress.Stealth && enc.hiddenStart {
		unlockedTitles = append(unlockedTitles, e.Achieve.Unlock("stealth_unseen")...)
	}
	effects = e.appendUnlockEffects(effects, unlockedTitles)

	text += fmt.Sprintf("You have defeated %s!", enc.enemy.Name)
	for _, ev := range events {
		text += " " + ev
	}

	if enc.enemyID == questBossID && e.ActiveQuests[questID] {
		text += " " + e.completeQuest(questID)
	}

	e.Encounter = nil
	return Result{Text: text, Effects: effects}
}

// handleAttack, handleDefend, and handleDodge implement the player's
// three direct combat actions; handleAbility (path.go) is the fourth.
func (e *GameEngine) handleAttack(target string) Result {
	enc, err := e.startOrContinueEncounter(target)
	if err != nil {
		return e.errResult(err)
	}
	return e.runTurn(enc, combat.Attack, 0)
}

func (e *GameEngine) handleDefend() Result {
	if e.Encounter == nil {
		return e.errResult(gerr.New(gerr.Conflict, "there is nothing to defend against"))
	}
	return e.runTurn(e.Encounter, combat.Defend, 0)
}

func (e *GameEngine) handleDodge() Result {
	if e.Encounter == nil {
		return e.errResult(gerr.New(gerr.Conflict, "there is nothing to dodge"))
	}
	return e.runTurn(e.Encounter, combat.Dodge, 0)
}
