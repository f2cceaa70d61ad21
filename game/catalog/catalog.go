package catalog

// ItemByID looks up a static item by id.
func ItemByID(id string) (Item, bool) {
	it, ok := Items[id]
	return it, ok
}

// EnemyByID looks up a static enemy by id.
func EnemyByID(id string) (Enemy, bool) {
	e, ok := Enemies[id]
	return e, ok
}

// AchievementByID looks up a static achievement by id.
func AchievementByID(id string) (Achievement, bool) {
	a, ok := Achievements[id]
	return a, ok
}

// TitleByID looks up a static title by id.
func TitleByID(id string) (Title, bool) {
	t, ok := Titles[id]
	return t, ok
}

// AllDiscoveries returns the discovery table in its stable definition
// order. Callers must not mutate the returned slice.
func AllDiscoveries() []Discovery {
	return Discoveries
}

// DiscoveryByID looks up a static discovery by id.
func DiscoveryByID(id string) (Discovery, bool) {
	for _, d := range Discoveries {
		if d.ID == id {
			return d, true
		}
	}
	return Discovery{}, false
}

// TitlesForAchievements returns every title whose required achievement set
// is a subset of held  Order follows Titles' iteration and is
// not guaranteed stable; callers that need a stable order should sort the
// result.
func TitlesForAchievements(held map[string]bool) []Title {
	var out []Title
	for _, t := range Titles {
		if titleQualifies(t, held) {
			out = append(out, t)
		}
	}
	return out
}

func titleQualifies(t Title, held map[string]bool) bool {
	for _, req := range t.RequiredAchievements {
		if !held[req] {
			return false
		}
	}
	return true
}
