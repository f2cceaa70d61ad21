package engine

import (
	"fmt"

	"github.com/lastcentaur/engine/game/combat"
	"github.com/lastcentaur/engine/game/command"
	"github.com/lastcentaur/engine/game/gerr"
	"github.com/lastcentaur/engine/game/pathprogress"
)

// handlePathSelect implements PATH_SELECT(path): selection is irrevocable
// within the instance, so a repeat attempt is a Conflict, not a silent
// overwrite.
func (e *GameEngine) handlePathSelect(pathWord string) Result {
	path := pathprogress.PathType(pathWord)
	valid := false
	for _, p := range pathprogress.AllPaths {
		if p == path {
			valid = true
			break
		}
	}
	if !valid {
		return e.errResult(gerr.New(gerr.UnknownCommand, "%q is not a known path", pathWord))
	}
	if !e.Paths.Select(path) {
		return e.errResult(gerr.New(gerr.Conflict, "your path is already chosen"))
	}

	unlocked := e.Achieve.Unlock("path_chosen")
	unlocked = append(unlocked, e.Achieve.Unlock(string(path)+"_path_chosen")...)
	effects := e.appendUnlockEffects(command.EffectsRecord{}, unlocked)
	effects = effects.Add(command.Effect{Kind: command.FlagSet, Flag: "path_selected:" + string(path)})

	return Result{Text: fmt.Sprintf("You commit yourself to the path of the %s.", path), Effects: effects}
}

// handleAbility implements ABILITY(id, args): the ability must be
// unlocked on the selected path, and using one counts as the player's
// combat turn when an encounter is active; outside combat it is simply a
// mana-and-time-consuming action (mystic wards, stealth repositioning).
func (e *GameEngine) handleAbility(abilityID string) Result {
	if e.Paths.Selected == nil {
		return e.errResult(gerr.New(gerr.Conflict, "you have not chosen a path"))
	}
	path := *e.Paths.Selected
	if !e.Paths.HasAbility(path, abilityID) {
		return e.errResult(gerr.New(gerr.NotFound, "you have not learned %q", abilityID))
	}
	ability, ok := pathprogress.AbilityByName(abilityID)
	if !ok {
		return e.errResult(gerr.New(gerr.Invariant, "ability %q has no combat data", abilityID))
	}

	const abilityManaCost = 5
	if e.Player.Stats.Mana < abilityManaCost {
		return e.errResult(gerr.New(gerr.InsufficientResource, "not enough mana to cast %s", ability.Name))
	}
	e.Player.AdjustMana(-abilityManaCost)
	e.Paths.Apply(pathprogress.ActionCastAbility)

	if e.Encounter != nil {
		result := e.runTurn(e.Encounter, combat.Ability, ability.Damage)
		result.Text = fmt.Sprintf("You channel %s. ", ability.Name) + result.Text
		result.Effects = result.Effects.Add(command.Effect{Kind: command.StatDelta, Stat: "mana", Delta: -abilityManaCost})
		return result
	}

	events := e.advanceTime(5, true)
	text := fmt.Sprintf("You channel %s. Nothing here resists it, but the attempt steadies your resolve.", ability.Name)
	for _, ev := range events {
		text += " " + ev
	}
	effects := command.EffectsRecord{command.Effect{Kind: command.StatDelta, Stat: "mana", Delta: -abilityManaCost}}
	return Result{Text: text, Effects: effects}
}
