package engine

import (
	"fmt"

	"github.com/lastcentaur/engine/game/command"
	"github.com/lastcentaur/engine/game/gerr"
	"github.com/lastcentaur/engine/game/world"
)

// directionFromWord resolves a parser-produced direction string ("north",
// "south", ...) to world.Direction.
func directionFromWord(word string) (world.Direction, bool) {
	switch word {
	case "north":
		return world.North, true
	case "south":
		return world.South, true
	case "east":
		return world.East, true
	case "west":
		return world.West, true
	default:
		return "", false
	}
}

// handleMove implements MOVE(dir): all four preconditions in §4.3 must
// hold before position, stamina, or the clock change. On any failure the
// engine's state is left exactly as it was.
func (e *GameEngine) handleMove(dirWord string) Result {
	dir, ok := directionFromWord(dirWord)
	if !ok {
		return e.errResult(gerr.New(gerr.UnknownCommand, "unrecognized direction %q", dirWord))
	}

	tile := e.currentTile()
	if !tile.HasExit(dir) {
		return e.errResult(gerr.New(gerr.OutOfBounds, "no path %s from here", dir))
	}
	if e.Player.IsBlocked(e.Player.Position, dir) {
		return e.errResult(gerr.New(gerr.Blocked, "the way %s is blocked", dir))
	}
	if e.Player.Stats.Stamina < MoveCost {
		return e.errResult(gerr.New(gerr.InsufficientResource, "too tired to move"))
	}

	next, err := e.World.Neighbor(e.Player.Position, dir)
	if err != nil {
		return e.errResult(err)
	}

	wasFirstMove := len(e.MoveHistory) == 0 && e.Player.Position == world.SpawnPosition

	e.Player.AdjustStamina(-MoveCost)
	e.Player.Position = next
	e.MoveHistory = append(e.MoveHistory, next)

	nextTile, _ := e.World.TileAt(next)
	firstVisit := !e.Player.HasVisited(next)
	e.Player.MarkVisited(next)
	e.World.MarkVisited(next)
	e.Player.CurrentArea = nextTile.Area

	litArea := nextTile.Terrain != world.ShadowDomain && nextTile.Terrain != world.Cave
	e.Paths.Stealth.ExitOnLitMovement(litArea)

	if len(nextTile.Enemies) > 0 {
		for _, d := range []world.Direction{world.North, world.South, world.East, world.West} {
			if nextTile.HasExit(d) {
				e.Player.BlockDirection(next, d)
			}
		}
	}

	events := e.advanceTime(MoveMinutes, false)
	e.applyPassiveRegen()

	var unlocked []string
	if wasFirstMove {
		unlocked = e.Achieve.Unlock("first_steps")
	}
	unlocked = append(unlocked, e.markExplored()...)

	effects := command.EffectsRecord{}
	effects = effects.Add(command.Effect{Kind: command.StatDelta, Stat: "stamina", Delta: -MoveCost})
	if firstVisit {
		effects = effects.Add(command.Effect{Kind: command.FlagSet, Flag: "first_visit:" + next.String()})
	}
	effects = e.appendUnlockEffects(effects, unlocked)

	text := fmt.Sprintf("You travel %s into %s.", dir, nextTile.Terrain)
	text += " " + e.describeTile(nextTile, firstVisit)
	for _, ev := range events {
		text += " " + ev
	}
	return Result{Text: text, Effects: effects}
}

// appendUnlockEffects renders every newly unlocked title as a FlagSet
// effect, keeping the achievement/title bookkeeping visible to callers
// that inspect the effects record instead of text.
func (e *GameEngine) appendUnlockEffects(effects command.EffectsRecord, titles []string) command.EffectsRecord {
	for _, t := range titles {
		effects = effects.Add(command.Effect{Kind: command.FlagSet, Flag: "title_unlocked:" + t})
	}
	return effects
}

// possibleExits lists the directions currently open from pos, honoring
// blocked_paths, for MAP/HINT rendering.
func (e *GameEngine) possibleExits() []world.Direction {
	return e.World.PossibleExits(e.Player.Position, e.Player.BlockedPaths[e.Player.Position])
}
