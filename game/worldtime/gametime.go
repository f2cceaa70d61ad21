package worldtime

import "fmt"

// TimeOfDay is the coarse daypart derived from the current hour.
type TimeOfDay string

const (
	Dawn      TimeOfDay = "dawn"
	Morning   TimeOfDay = "morning"
	Noon      TimeOfDay = "noon"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

const minutesPerDay = 24 * 60

// GameTime is the in-game clock, advanced only by handler side effects.
// Day 1 begins at 00:00.
type GameTime struct {
	Days         int `json:"days"`
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	TotalMinutes int `json:"total_minutes"`
}

// NewGameTime returns the clock at Day 1, 06:00, a new player's fixed
// start of day.
func NewGameTime() GameTime {
	gt := GameTime{Days: 1, Hours: 6}
	gt.TotalMinutes = 6 * 60
	return gt
}

// Advance moves the clock forward by n minutes, normalizing the carry into
// hours and days, and reports whether a day boundary or time-of-day
// boundary was crossed so callers can emit threshold events.
func (gt *GameTime) Advance(n int) (dayChanged bool, timeOfDayChanged bool) {
	if n <= 0 {
		return false, false
	}
	before := gt.TimeOfDay()
	beforeDay := gt.Days

	gt.TotalMinutes += n
	gt.Days = 1 + gt.TotalMinutes/minutesPerDay
	rem := gt.TotalMinutes % minutesPerDay
	gt.Hours = rem / 60
	gt.Minutes = rem % 60

	return gt.Days != beforeDay, gt.TimeOfDay() != before
}

// TimeOfDay derives the daypart from the current hour using fixed
// boundaries: dawn [5,7), morning [7,12), noon [12,14), afternoon
// [14,17), evening [17,20), night otherwise.
func (gt GameTime) TimeOfDay() TimeOfDay {
	switch {
	case gt.Hours >= 5 && gt.Hours < 7:
		return Dawn
	case gt.Hours >= 7 && gt.Hours < 12:
		return Morning
	case gt.Hours >= 12 && gt.Hours < 14:
		return Noon
	case gt.Hours >= 14 && gt.Hours < 17:
		return Afternoon
	case gt.Hours >= 17 && gt.Hours < 20:
		return Evening
	default:
		return Night
	}
}

// String renders the clock as "Day D, HH:MM", the form used in leaderboard
// completion times.
func (gt GameTime) String() string {
	return fmt.Sprintf("Day %d, %02d:%02d", gt.Days, gt.Hours, gt.Minutes)
}

// IsNight reports whether the clock currently falls within NIGHT.
func (gt GameTime) IsNight() bool {
	return gt.TimeOfDay() == Night
}
