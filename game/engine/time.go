package engine

import "fmt"

// advanceTime is the only path by which the clock moves: every handler
// that consumes in-game minutes routes through here so weather
// re-evaluation and resource drain stay in lockstep with the clock, per
// the "time only advances via handler-driven advance_time" rule.
func (e *GameEngine) advanceTime(minutes int, abilityUsed bool) []string {
	if minutes <= 0 {
		return nil
	}

	dayChanged, todChanged := e.Time.Advance(minutes)

	e.Weather.Tick(minutes)
	e.sinceWeatherEval += minutes
	if e.Weather.DurationRemainingMinutes <= 0 || e.sinceWeatherEval >= weatherReevalMinutes {
		e.Weather.Reevaluate(e.rng, e.Time.TimeOfDay(), areaKind(e.Player.CurrentArea))
		e.sinceWeatherEval = 0
	}

	e.Resources.Advance(minutes, resourcesConditions(e, abilityUsed))
	e.Paths.Stealth.AdvanceTime(minutes)

	if e.recentCombatTicks > 0 {
		e.recentCombatTicks -= minutes
		if e.recentCombatTicks < 0 {
			e.recentCombatTicks = 0
		}
	}

	var events []string
	if dayChanged {
		events = append(events, fmt.Sprintf("A new day dawns: %s.", e.Time.String()))
	}
	if todChanged {
		events = append(events, fmt.Sprintf("It is now %s.", e.Time.TimeOfDay()))
	}
	return events
}

// markRecentCombat flags the next several minutes of resource drain as
// post-combat, boosting hunger growth per the design's resource table.
func (e *GameEngine) markRecentCombat() {
	e.recentCombatTicks = 30
}
