package worldtime

import (
	"math/rand"
	"testing"
)

func TestAdvanceNormalizesCarry(t *testing.T) {
	gt := NewGameTime()
	gt.Hours = 23
	gt.Minutes = 50
	gt.TotalMinutes = (gt.Days-1)*minutesPerDay + 23*60 + 50

	dayChanged, _ := gt.Advance(20)
	if !dayChanged {
		t.Fatal("expected day change crossing midnight")
	}
	if gt.Hours != 0 || gt.Minutes != 10 {
		t.Fatalf("expected 00:10 after carry, got %02d:%02d", gt.Hours, gt.Minutes)
	}
}

func TestTimeOfDayBoundaries(t *testing.T) {
	cases := []struct {
		hour int
		want TimeOfDay
	}{
		{4, Night}, {5, Dawn}, {6, Dawn}, {7, Morning}, {11, Morning},
		{12, Noon}, {13, Noon}, {14, Afternoon}, {16, Afternoon},
		{17, Evening}, {19, Evening}, {20, Night}, {23, Night},
	}
	for _, c := range cases {
		gt := GameTime{Hours: c.hour}
		if got := gt.TimeOfDay(); got != c.want {
			t.Fatalf("hour %d: got %s, want %s", c.hour, got, c.want)
		}
	}
}

func TestGameTimeString(t *testing.T) {
	gt := GameTime{Days: 2, Hours: 9, Minutes: 5}
	if got, want := gt.String(), "Day 2, 09:05"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReevaluateBloodMoonForced(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := NewWeather()

	found := false
	for i := 0; i < 2000; i++ {
		w.Reevaluate(rng, Night, AreaNeutral)
		if w.Current == BloodMoon {
			found = true
			if w.DurationRemainingMinutes < 120 || w.DurationRemainingMinutes > 240 {
				t.Fatalf("blood moon duration out of range: %d", w.DurationRemainingMinutes)
			}
			if w.Intensity < 0.7 || w.Intensity > 1.0 {
				t.Fatalf("blood moon intensity out of range: %v", w.Intensity)
			}
			break
		}
	}
	if !found {
		t.Fatal("expected at least one blood moon over 2000 night reevaluations")
	}
}

func TestReevaluateAreaSpecial(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	w := NewWeather()

	sawMysticStorm := false
	for i := 0; i < 2000; i++ {
		w.Reevaluate(rng, Morning, AreaMystic)
		if w.Current == MagicalStorm {
			sawMysticStorm = true
			break
		}
	}
	if !sawMysticStorm {
		t.Fatal("expected at least one magical storm over 2000 mystic-area reevaluations")
	}
}

func TestModifiersNeutralAtZeroIntensity(t *testing.T) {
	w := Weather{Current: Rain, Intensity: 0}
	m := w.Modifiers()
	if m.CombatAccuracy != 1.0 || m.MovementPenalty != 1.0 {
		t.Fatalf("expected neutral modifiers at zero intensity, got %+v", m)
	}
}

func TestModifiersScaleWithIntensity(t *testing.T) {
	w := Weather{Current: Fog, Intensity: 1.0}
	m := w.Modifiers()
	if m.StealthDetection >= 1.0 {
		t.Fatalf("expected fog to reduce stealth detection, got %v", m.StealthDetection)
	}
	if m.VisibilityReduction <= 0 {
		t.Fatalf("expected fog to raise visibility reduction, got %v", m.VisibilityReduction)
	}
}
