package engine

import (
	"strings"

	"github.com/lastcentaur/engine/game/command"
)

// ProcessCommand is the engine's single entry point, implementing the
// per-command data flow: parse, dispatch by intent, mutate, narrate. It
// performs no I/O; persistence is the caller's responsibility after this
// returns.
func (e *GameEngine) ProcessCommand(raw string) Result {
	intent := command.Parse(raw)

	switch intent.Kind {
	case command.Move:
		return e.handleMove(intent.Direction)
	case command.Look:
		return e.handleLook()
	case command.Examine:
		return e.handleExamine(intent.Target)
	case command.Take:
		return e.handleTake(intent.Target)
	case command.Drop:
		return e.handleDrop(intent.Target)
	case command.Inventory:
		return e.handleInventory()
	case command.AttackIntent:
		return e.handleAttack(intent.Target)
	case command.Defend:
		return e.handleDefend()
	case command.Dodge:
		return e.handleDodge()
	case command.Rest:
		return e.handleRest()
	case command.Meditate:
		return e.handleMeditate(intent.Minutes)
	case command.Status:
		return e.handleStatus()
	case command.Map:
		return e.handleMap()
	case command.Help:
		return e.handleHelp(intent.Topic)
	case command.Hint:
		return e.handleHint()
	case command.Save:
		return e.handleSave()
	case command.Titles:
		return e.handleTitles()
	case command.Leaderboard:
		return e.handleLeaderboard(intent.Category)
	case command.Interact:
		return e.handleInteract(intent.InteractKind, intent.InteractText)
	case command.PathSelect:
		return e.handlePathSelect(intent.Path)
	case command.AbilityUse:
		return e.handleAbility(intent.AbilityID)
	case command.Quit:
		return e.handleQuit()
	default:
		return e.handleUnknown(intent)
	}
}

// handleUnknown implements the Unknown fallback: the dispatcher computes
// up to three vocabulary suggestions close to the raw input.
func (e *GameEngine) handleUnknown(intent command.Intent) Result {
	suggestions := command.Suggest(intent.RawInput)
	text := "You're not sure how to do that."
	if len(suggestions) > 0 {
		text += " Did you mean: " + strings.Join(suggestions, ", ") + "?"
	}
	effects := command.EffectsRecord{command.Effect{Kind: command.ErrorOccurred, ErrorCode: "unknown_command"}}
	return Result{Text: text, Effects: effects}
}
