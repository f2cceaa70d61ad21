// Package combat resolves a single turn-based encounter between the
// player and a catalog enemy  Resolution is synchronous: each call
// to Resolve advances exactly one turn and returns the damage exchanged
// and whether the encounter has ended. Tile-level consequences of a
// finished encounter (dropping items, clearing blocked paths, advancing
// the clock) are applied by game/engine, which is the only caller wired
// to both combat and the world/player packages.
package combat
