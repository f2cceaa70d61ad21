package engine

import (
	"fmt"

	"github.com/lastcentaur/engine/game/catalog"
	"github.com/lastcentaur/engine/game/command"
	"github.com/lastcentaur/engine/game/discovery"
	"github.com/lastcentaur/engine/game/pathprogress"
)

// handleInteract implements INTERACT(kind, text). Consumable items in the
// player's inventory are checked first — this is the one recovery path
// for hunger/fatigue/mental_strain the design calls for ("eating food
// items") that has no dedicated top-level intent — then the request falls
// through to the discovery engine, matching §4.5 exactly.
func (e *GameEngine) handleInteract(kind, text string) Result {
	if text == "" {
		return Result{}
	}

	if kind == "custom" {
		if id, ok := matchID(text, e.Player.Inventory); ok {
			if it, found := catalog.ItemByID(id); found && it.Type == catalog.Consumable {
				return e.consumeItem(id, it)
			}
		}
	}

	tile := e.currentTile()
	ctx := discovery.Context{
		Terrain:   string(tile.Terrain),
		Weather:   string(e.Weather.Current),
		TimeOfDay: string(e.Time.TimeOfDay()),
		Kind:      kind,
		Text:      text,
	}

	outcome, canned := discovery.Attempt(e.rng, ctx, e.Found)
	if outcome == nil {
		return Result{Text: canned}
	}

	e.Found[outcome.Discovery.ID] = true
	if err := e.World.ApplyChange(e.Player.Position, outcome.Change); err != nil {
		return e.errResult(err)
	}

	effects := command.EffectsRecord{}
	if outcome.Discovery.ItemReward != "" {
		if err := e.Player.AddItem(outcome.Discovery.ItemReward); err == nil {
			effects = effects.Add(command.Effect{Kind: command.ItemAdded, ItemID: outcome.Discovery.ItemReward})
		}
	}
	for stat, delta := range outcome.SpecialEffect {
		e.applySpecialEffect(stat, delta)
		effects = effects.Add(command.Effect{Kind: command.StatDelta, Stat: stat, Delta: int(delta)})
	}

	e.Paths.Apply(pathprogress.ActionDiscovery)
	unlocked := e.Achieve.Unlock("discoverer")
	effects = e.appendUnlockEffects(effects, unlocked)

	if path := e.Paths.Selected; path != nil {
		if levels := e.Paths.AddXP(*path, discoveryXP); len(levels) > 0 {
			for _, a := range levels {
				effects = effects.Add(command.Effect{Kind: command.FlagSet, Flag: "ability_unlocked:" + a})
			}
			effects = e.appendUnlockEffects(effects, e.unlockTierAchievements(levels))
		}
	}

	return Result{Text: outcome.Discovery.DiscoveryText, Effects: effects}
}

// applySpecialEffect interprets a discovery's special_effect map. Names
// matching "<path>_affinity" feed pathprogress.Tracker.Apply's rubric
// indirectly by nudging affinity directly (a discovery's affinity nudge is
// a flat bonus, not a rubric-keyed action); anything else is treated as a
// stat delta on the player's pools.
func (e *GameEngine) applySpecialEffect(stat string, delta float64) {
	switch stat {
	case "warrior_affinity":
		e.Paths.Progress[pathprogress.Warrior].Affinity += delta
	case "mystic_affinity":
		e.Paths.Progress[pathprogress.Mystic].Affinity += delta
	case "stealth_affinity":
		e.Paths.Progress[pathprogress.Stealth].Affinity += delta
	case "health":
		e.Player.AdjustHealth(int(delta))
	case "stamina":
		e.Player.AdjustStamina(int(delta))
	case "mana":
		e.Player.AdjustMana(int(delta))
	}
}

// consumeItem applies a consumable's resource-restore properties and
// removes it from the inventory.
func (e *GameEngine) consumeItem(id string, it catalog.Item) Result {
	if err := e.Player.RemoveItem(id); err != nil {
		return e.errResult(err)
	}

	restored := []string{}
	if v, ok := it.Properties["hunger_restore"].(float64); ok {
		e.Resources.Eat(v)
		restored = append(restored, "hunger")
	}
	if v, ok := it.Properties["fatigue_restore"].(float64); ok {
		e.Resources.Rest(v)
		restored = append(restored, "fatigue")
	}
	if v, ok := it.Properties["mental_strain_restore"].(float64); ok {
		e.Resources.Meditate(v)
		restored = append(restored, "mental strain")
	}

	effects := command.EffectsRecord{command.Effect{Kind: command.ItemRemoved, ItemID: id}}
	text := fmt.Sprintf("You consume the %s.", it.Name)
	if len(restored) > 0 {
		text += " It eases your " + joinWithAnd(restored) + "."
	}
	return Result{Text: text, Effects: effects}
}

func joinWithAnd(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	default:
		out := words[0]
		for _, w := range words[1 : len(words)-1] {
			out += ", " + w
		}
		return out + " and " + words[len(words)-1]
	}
}
