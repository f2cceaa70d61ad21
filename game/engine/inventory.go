package engine

import (
	"fmt"
	"strings"

	"github.com/lastcentaur/engine/game/catalog"
	"github.com/lastcentaur/engine/game/command"
	"github.com/lastcentaur/engine/game/gerr"
)

// handleTake implements TAKE(item): the item must be present on the
// current tile and pickable, and the player's inventory must have room.
func (e *GameEngine) handleTake(target string) Result {
	tile := e.currentTile()
	id, ok := matchID(target, tile.Items)
	if !ok {
		return e.errResult(gerr.New(gerr.NotFound, "there is no %q here", target))
	}
	if it, found := catalog.ItemByID(id); found && !it.CanBePickedUp {
		return e.errResult(gerr.New(gerr.Conflict, "%s cannot be picked up", it.Name))
	}

	if err := e.Player.AddItem(id); err != nil {
		return e.errResult(err)
	}
	tile.RemoveItem(id)

	effects := command.EffectsRecord{command.Effect{Kind: command.ItemAdded, ItemID: id}}
	return Result{Text: fmt.Sprintf("You take the %s.", displayName(id)), Effects: effects}
}

// handleDrop implements DROP(item): the item must be in the player's
// inventory; it is then placed on the current tile.
func (e *GameEngine) handleDrop(target string) Result {
	id, ok := matchID(target, e.Player.Inventory)
	if !ok {
		return e.errResult(gerr.New(gerr.NotFound, "you are not carrying %q", target))
	}
	if err := e.Player.RemoveItem(id); err != nil {
		return e.errResult(err)
	}
	tile := e.currentTile()
	tile.Items = append(tile.Items, id)

	effects := command.EffectsRecord{command.Effect{Kind: command.ItemRemoved, ItemID: id}}
	return Result{Text: fmt.Sprintf("You set down the %s.", displayName(id)), Effects: effects}
}

// handleInventory implements INVENTORY: list what the player carries.
func (e *GameEngine) handleInventory() Result {
	if len(e.Player.Inventory) == 0 {
		return Result{Text: "You carry nothing."}
	}
	names := make([]string, len(e.Player.Inventory))
	for i, id := range e.Player.Inventory {
		names[i] = displayName(id)
	}
	return Result{Text: "You carry: " + strings.Join(names, ", ") + "."}
}

// displayName resolves an item id to its catalog display name, falling
// back to the raw id for items absent from the catalog (should not
// happen for anything the engine itself placed on a tile).
func displayName(id string) string {
	if it, ok := catalog.ItemByID(id); ok {
		return it.Name
	}
	return id
}
