package engine

import (
	"fmt"
	"strings"

	"github.com/lastcentaur/engine/game/command"
	"github.com/lastcentaur/engine/game/gerr"
	"github.com/lastcentaur/engine/game/world"
)

// errResult renders any engine error as narrative text plus an
// ErrorOccurred effect carrying the machine-readable kind, per §7: no
// failure may cross the engine boundary as anything but narration.
func (e *GameEngine) errResult(err error) Result {
	kind := gerr.KindOf(err)
	text := narrateError(kind, err)
	effects := command.EffectsRecord{command.Effect{Kind: command.ErrorOccurred, ErrorCode: string(kind)}}
	return Result{Text: text, Effects: effects}
}

func narrateError(kind gerr.Kind, err error) string {
	switch kind {
	case gerr.OutOfBounds:
		return "A shimmering, magical barrier bars the way. You cannot go there."
	case gerr.Blocked:
		return "Something blocks your path. " + causeText(err)
	case gerr.InsufficientResource:
		return "You lack the strength for that right now. " + causeText(err)
	case gerr.NotFound:
		return causeText(err)
	case gerr.Conflict:
		return causeText(err)
	case gerr.UnknownCommand:
		return "You're not sure how to do that."
	case gerr.Unavailable:
		return "Something falters, but the world continues around you."
	default:
		return "Something has gone wrong in a way the world itself cannot explain."
	}
}

// causeText surfaces an *gerr.Error's message as a lowercase clause; any
// other error type yields nothing extra.
func causeText(err error) string {
	var ge *gerr.Error
	if e, ok := err.(*gerr.Error); ok {
		ge = e
	}
	if ge == nil {
		return ""
	}
	return ge.Message + "."
}

// describeTile renders a tile's enriched description, its visible
// contents, and its open exits. enteringFirstTime does not change the
// rendered text.
func (e *GameEngine) describeTile(t *world.Tile, enteringFirstTime bool) string {
	var b strings.Builder
	b.WriteString(t.Description())

	if len(t.Items) > 0 {
		b.WriteString(" You notice: " + strings.Join(t.Items, ", ") + ".")
	}
	if len(t.Enemies) > 0 {
		b.WriteString(" " + strings.Join(t.Enemies, ", ") + " stands in your way.")
	}

	exits := e.possibleExitsFor(t.Position)
	if len(exits) > 0 {
		names := make([]string, len(exits))
		for i, d := range exits {
			names[i] = string(d)
		}
		b.WriteString(" Exits: " + strings.Join(names, ", ") + ".")
	}
	return b.String()
}

func (e *GameEngine) possibleExitsFor(pos world.Position) []world.Direction {
	return e.World.PossibleExits(pos, e.Player.BlockedPaths[pos])
}

// handleLook implements LOOK: re-describe the current tile without
// advancing time.
func (e *GameEngine) handleLook() Result {
	tile := e.currentTile()
	return Result{Text: e.describeTile(tile, false)}
}

// handleExamine implements EXAMINE(target). An empty target re-describes
// the tile; otherwise it resolves target against the tile's items,
// enemies, and the player's inventory, in that order.
func (e *GameEngine) handleExamine(target string) Result {
	if target == "" {
		return e.handleLook()
	}
	tile := e.currentTile()

	if id, ok := matchID(target, tile.Items); ok {
		if it, found := itemByID(id); found {
			return Result{Text: it.Description}
		}
	}
	if id, ok := matchID(target, tile.Enemies); ok {
		if en, found := enemyByID(id); found {
			return Result{Text: fmt.Sprintf("%s: a %s enemy, fighting %s.", en.Name, en.Type, en.CombatStyle)}
		}
	}
	if id, ok := matchID(target, e.Player.Inventory); ok {
		if it, found := itemByID(id); found {
			return Result{Text: it.Description}
		}
	}

	return e.errResult(gerr.New(gerr.NotFound, "no %q here to examine", target))
}
