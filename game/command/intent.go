package command

// Kind is one of the finite intents the parser can classify input into
//.
type Kind string

const (
	Move         Kind = "move"
	Look         Kind = "look"
	Examine      Kind = "examine"
	Take         Kind = "take"
	Drop         Kind = "drop"
	Inventory    Kind = "inventory"
	AttackIntent Kind = "attack"
	Defend       Kind = "defend"
	Dodge        Kind = "dodge"
	Rest         Kind = "rest"
	Meditate     Kind = "meditate"
	Status       Kind = "status"
	Map          Kind = "map"
	Help         Kind = "help"
	Hint         Kind = "hint"
	Save         Kind = "save"
	Titles       Kind = "titles"
	Leaderboard  Kind = "leaderboard"
	Interact     Kind = "interact"
	PathSelect   Kind = "path_select"
	AbilityUse   Kind = "ability"
	Quit         Kind = "quit"
	Unknown      Kind = "unknown"
)

// Intent is the parser's classification of one line of player input
//  Only the fields relevant to Kind are populated; the rest are
// left at their zero value.
type Intent struct {
	Kind Kind

	Direction string // MOVE
	Target    string // EXAMINE, TAKE, DROP, ATTACK
	Minutes   int    // MEDITATE
	Topic     string // HELP
	Category  string // LEADERBOARD

	InteractKind string // INTERACT
	InteractText string // INTERACT

	Path string // PATH_SELECT

	AbilityID   string   // ABILITY
	AbilityArgs []string // ABILITY

	RawInput string // the original, pre-cleaning input, kept for Unknown suggestions
}
