// Package command classifies raw player input into a finite set of
// intents and, on a parse failure, offers spelling-corrected suggestions
// drawn from the intent vocabulary  Dispatching an intent to a
// handler and producing an EffectsRecord is game/engine's job; this
// package is pure and holds no game state.
package command
