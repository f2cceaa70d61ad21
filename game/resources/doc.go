// Package resources tracks the three depletion scalars — hunger, fatigue,
// and mental_strain — that grow as a game instance's clock advances and
// penalize stat regeneration once past their threshold.
package resources
