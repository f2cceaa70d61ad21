package command

// EffectKind tags a single entry in an EffectsRecord, a small tagged
// union standing in for dynamic field access on an ad hoc result object.
type EffectKind string

const (
	ItemAdded    EffectKind = "item_added"
	ItemRemoved  EffectKind = "item_removed"
	StatDelta    EffectKind = "stat_delta"
	FlagSet      EffectKind = "flag_set"
	ErrorOccurred EffectKind = "error"
)

// Effect is one entry in an EffectsRecord. Only the fields relevant to
// Kind are populated.
type Effect struct {
	Kind EffectKind

	ItemID string // ItemAdded, ItemRemoved

	Stat  string // StatDelta
	Delta int    // StatDelta

	Flag string // FlagSet

	ErrorCode string // ErrorOccurred
}

// EffectsRecord is the machine-readable list of state deltas a handler
// produces alongside its narrative response text.
type EffectsRecord []Effect

// Add appends an effect and returns the updated record, letting handlers
// chain builds inline.
func (r EffectsRecord) Add(e Effect) EffectsRecord {
	return append(r, e)
}
