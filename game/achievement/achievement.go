package achievement

import "github.com/lastcentaur/engine/game/catalog"

// Tracker holds a single player's unlocked achievements and title state
//  Unlocking an achievement is idempotent; titles are recomputed
// from the held achievement set whenever one unlocks.
type Tracker struct {
	Unlocked     map[string]bool `json:"unlocked"`
	ActiveTitle  string          `json:"active_title,omitempty"`
	UnlockedTitles map[string]bool `json:"unlocked_titles"`
}

// NewTracker returns an empty achievement/title tracker.
func NewTracker() *Tracker {
	return &Tracker{Unlocked: map[string]bool{}, UnlockedTitles: map[string]bool{}}
}

// Unlock marks achievementID as held, idempotently, then recomputes
// titles and auto-activates a newly unlocked one if the player has no
// active title yet  It returns the newly unlocked title ids, if
// any.
func (t *Tracker) Unlock(achievementID string) []string {
	if t.Unlocked[achievementID] {
		return nil
	}
	t.Unlocked[achievementID] = true

	var newTitles []string
	for _, title := range catalog.TitlesForAchievements(t.Unlocked) {
		if t.UnlockedTitles[title.ID] {
			continue
		}
		t.UnlockedTitles[title.ID] = true
		newTitles = append(newTitles, title.ID)
		if t.ActiveTitle == "" {
			t.ActiveTitle = title.ID
		}
	}
	return newTitles
}

// HasAchievement reports whether achievementID has been unlocked.
func (t *Tracker) HasAchievement(achievementID string) bool {
	return t.Unlocked[achievementID]
}

// SetActiveTitle sets the player's displayed title, failing if titleID
// has not been unlocked.
func (t *Tracker) SetActiveTitle(titleID string) bool {
	if !t.UnlockedTitles[titleID] {
		return false
	}
	t.ActiveTitle = titleID
	return true
}

// TotalPoints sums the point value of every unlocked achievement.
func (t *Tracker) TotalPoints() int {
	total := 0
	for id := range t.Unlocked {
		if a, ok := catalog.AchievementByID(id); ok {
			total += a.Points
		}
	}
	return total
}
