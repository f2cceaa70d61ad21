// Package achievement tracks a player's unlocked achievement set and
// derives titles from it, auto-activating a newly unlocked title when the
// player has none active yet.
package achievement
