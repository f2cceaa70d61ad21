// Package worldtime tracks the in-game clock and weather for a single game
// instance  Time advances only as a side effect of command
// handlers; there is no wall-clock ticker. Callers supply their own
// *rand.Rand for weather rolls so each game instance gets an independently
// seeded stream rather than sharing the global generator.
package worldtime
