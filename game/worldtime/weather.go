package worldtime

import "math/rand"

// WeatherType enumerates the kinds of weather a game instance can be in.
type WeatherType string

const (
	Clear       WeatherType = "clear"
	Cloudy      WeatherType = "cloudy"
	Rain        WeatherType = "rain"
	Fog         WeatherType = "fog"
	Storm       WeatherType = "storm"
	BloodMoon   WeatherType = "blood_moon"
	MagicalStorm WeatherType = "magical_storm"
	ShadowMist  WeatherType = "shadow_mist"
)

// AreaKind classifies the narrative flavor of the player's current area for
// the purposes of special-weather selection. It is a small,
// worldtime-local alphabet so this package does not need to depend on
// game/world's richer StoryArea enum.
type AreaKind string

const (
	AreaNeutral AreaKind = "neutral"
	AreaMystic  AreaKind = "mystic"
	AreaShadow  AreaKind = "shadow"
)

const (
	// pBloodMoon is the per-reevaluation chance of a forced blood moon at
	// night.
	pBloodMoon = 0.01
	// pSpecial is the per-reevaluation chance of an area-special weather
	// when not already rolling a blood moon.
	pSpecial = 0.05
)

// Weather is the current weather state for a game instance, re-evaluated
// every 30 game-minutes or when its duration expires.
type Weather struct {
	Current                  WeatherType `json:"current"`
	DurationRemainingMinutes int         `json:"duration_remaining_minutes"`
	Intensity                float64     `json:"intensity"`
}

// NewWeather returns a clear starting weather.
func NewWeather() Weather {
	return Weather{Current: Clear, DurationRemainingMinutes: 60, Intensity: 0.2}
}

// Tick counts the weather's remaining duration down by n minutes, floored
// at zero. It does not re-evaluate; the caller calls Reevaluate once
// duration_remaining reaches zero or 30 minutes have accumulated since the
// last evaluation.
func (w *Weather) Tick(n int) {
	w.DurationRemainingMinutes -= n
	if w.DurationRemainingMinutes < 0 {
		w.DurationRemainingMinutes = 0
	}
}

// markovTable holds the fixed base transition weights keyed by current
// weather, before the time-of-day re-weighting below.
var markovTable = map[WeatherType]map[WeatherType]float64{
	Clear:  {Clear: 0.5, Cloudy: 0.3, Rain: 0.1, Fog: 0.1},
	Cloudy: {Clear: 0.3, Cloudy: 0.4, Rain: 0.2, Fog: 0.1},
	Rain:   {Cloudy: 0.4, Rain: 0.4, Storm: 0.1, Clear: 0.1},
	Fog:    {Fog: 0.4, Cloudy: 0.3, Clear: 0.3},
	Storm:  {Rain: 0.5, Cloudy: 0.3, Clear: 0.2},
}

// nightFogBias amplifies fog and cloud weight at night and during dawn/dusk.
func nightFogBias(tod TimeOfDay, wt WeatherType) float64 {
	if wt != Fog && wt != Cloudy {
		return 1.0
	}
	switch tod {
	case Night, Dawn, Evening:
		return 2.0
	default:
		return 1.0
	}
}

// Reevaluate rolls the next weather via a three-step procedure:
// a rare forced blood moon at night, else a rare area-special weather, else
// a time-of-day-reweighted sample from the Markov table. The caller's rng
// must be instance-scoped, never the package-global generator.
func (w *Weather) Reevaluate(rng *rand.Rand, tod TimeOfDay, area AreaKind) {
	if tod == Night && rng.Float64() < pBloodMoon {
		w.Current = BloodMoon
		w.DurationRemainingMinutes = 120 + rng.Intn(121)
		w.Intensity = 0.7 + rng.Float64()*0.3
		return
	}

	if rng.Float64() < pSpecial {
		switch area {
		case AreaMystic:
			w.Current = MagicalStorm
			w.DurationRemainingMinutes = 60 + rng.Intn(61)
			w.Intensity = 0.5 + rng.Float64()*0.5
			return
		case AreaShadow:
			w.Current = ShadowMist
			w.DurationRemainingMinutes = 60 + rng.Intn(61)
			w.Intensity = 0.5 + rng.Float64()*0.5
			return
		}
	}

	weights := markovTable[w.Current]
	if weights == nil {
		weights = markovTable[Clear]
	}

	total := 0.0
	biased := make(map[WeatherType]float64, len(weights))
	for wt, base := range weights {
		b := base * nightFogBias(tod, wt)
		biased[wt] = b
		total += b
	}

	roll := rng.Float64() * total
	var chosen WeatherType
	for wt, b := range biased {
		roll -= b
		chosen = wt
		if roll <= 0 {
			break
		}
	}
	if chosen == "" {
		chosen = Clear
	}

	w.Current = chosen
	w.DurationRemainingMinutes = 30 + rng.Intn(61)
	w.Intensity = 0.2 + rng.Float64()*0.5
}

// Modifiers are the multiplicative effects the current weather applies,
// scaled by intensity.
type Modifiers struct {
	CombatAccuracy    float64
	StealthDetection  float64
	MysticPower       float64
	MovementPenalty   float64
	VisibilityReduction float64
	ResourceDrain     float64
}

// Modifiers computes the weather's effect multipliers at its current
// intensity. At zero intensity every field has no effect (1.0, except
// VisibilityReduction at 0.0) and each moves
// toward its weather-specific extreme as intensity rises toward 1.0.
func (w Weather) Modifiers() Modifiers {
	m := Modifiers{
		CombatAccuracy: 1.0, StealthDetection: 1.0, MysticPower: 1.0,
		MovementPenalty: 1.0, VisibilityReduction: 0.0, ResourceDrain: 1.0,
	}
	i := w.Intensity

	switch w.Current {
	case Rain, Storm:
		m.CombatAccuracy -= 0.2 * i
		m.MovementPenalty += 0.3 * i
		m.VisibilityReduction += 0.3 * i
		m.ResourceDrain += 0.1 * i
	case Fog:
		m.StealthDetection -= 0.4 * i
		m.VisibilityReduction += 0.5 * i
	case Cloudy:
		m.MysticPower += 0.1 * i
	case BloodMoon:
		m.CombatAccuracy += 0.15 * i
		m.StealthDetection -= 0.3 * i
		m.ResourceDrain += 0.3 * i
	case MagicalStorm:
		m.MysticPower += 0.5 * i
		m.CombatAccuracy -= 0.1 * i
	case ShadowMist:
		m.StealthDetection -= 0.5 * i
		m.VisibilityReduction += 0.4 * i
	}
	return m
}
