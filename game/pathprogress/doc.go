// Package pathprogress implements the warrior/mystic/stealth affinity,
// leveling, ability-unlock, and damage-calculation rules. Affinity
// increments are centralized in a single rubric table (rubric.go) rather
// than scattered across command handlers.
package pathprogress
