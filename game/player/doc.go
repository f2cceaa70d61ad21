// Package player holds the Player aggregate: identity, position, stats,
// inventory, and the per-player bookkeeping (visited tiles, blocked paths,
// rest count) that command handlers mutate as a game instance runs.
// A Player is owned by exactly one game instance and is never mutated from
// outside the engine.
package player
