package session

import "github.com/lastcentaur/engine/game/world"

// TileOverride captures the fields of a tile that can diverge from the
// static map after play: its contents and its change log. Terrain, area,
// exits, and descriptions never change, so they are never persisted.
type TileOverride struct {
	Items     []string                     `json:"items,omitempty"`
	Enemies   []string                     `json:"enemies,omitempty"`
	ChangeLog []world.EnvironmentalChange  `json:"change_log,omitempty"`
}

// PathProgressSnapshot mirrors pathprogress.Progress for one path.
type PathProgressSnapshot struct {
	Affinity          float64         `json:"affinity"`
	Level             int             `json:"level"`
	XP                int             `json:"xp"`
	UnlockedAbilities map[string]bool `json:"unlocked_abilities"`
}

// PathProgressBlock is the path_progress object: one block per path plus
// the selection and stealth sub-state.
type PathProgressBlock struct {
	Warrior PathProgressSnapshot `json:"warrior"`
	Mystic  PathProgressSnapshot `json:"mystic"`
	Stealth PathProgressSnapshot `json:"stealth"`
	Selected string              `json:"selected,omitempty"`

	StealthHidden              bool `json:"stealth_hidden"`
	StealthMinutesSinceEntered int  `json:"stealth_minutes_since_entered"`
}

// WeatherSnapshot mirrors worldtime.Weather.
type WeatherSnapshot struct {
	Current  string  `json:"current"`
	Duration int     `json:"duration"`
	Intensity float64 `json:"intensity"`
}

// ResourcesSnapshot mirrors resources.Depletion.
type ResourcesSnapshot struct {
	Hunger       float64 `json:"hunger"`
	Fatigue      float64 `json:"fatigue"`
	MentalStrain float64 `json:"mental_strain"`
}

// StatsSnapshot mirrors player.Stats.
type StatsSnapshot struct {
	Health                 int `json:"health"`
	MaxHealth              int `json:"max_health"`
	Stamina                int `json:"stamina"`
	MaxStamina             int `json:"max_stamina"`
	Mana                   int `json:"mana"`
	MaxMana                int `json:"max_mana"`
	InventoryCapacity      int `json:"inventory_capacity"`
	CurrentInventoryWeight int `json:"current_inventory_weight"`
}

// Snapshot is the opaque persisted record for one game instance, the exact
// shape the design's persistence adapter fixes. Every field round-trips:
// FromSnapshot(ToSnapshot(e)) reproduces e's observable state exactly.
type Snapshot struct {
	InstanceID   string     `json:"instance_id"`
	PlayerID     string     `json:"player_id"`
	PlayerName   string     `json:"player_name"`
	PlayerPosition [2]int   `json:"player_position"`
	PlayerArea   string     `json:"player_area"`
	Inventory    []string   `json:"inventory"`
	VisitedTiles [][2]int   `json:"visited_tiles"`
	BlockedPaths map[string][]string `json:"blocked_paths,omitempty"`
	PlayerStats  StatsSnapshot `json:"player_stats"`
	RestCount    int        `json:"rest_count"`

	GameTime string `json:"game_time"`
	GameTimeTotalMinutes int `json:"game_time_total_minutes"`

	ActiveQuests    []string `json:"active_quests"`
	CompletedQuests []string `json:"completed_quests"`

	TileOverrides map[string]TileOverride `json:"tile_overrides"`

	PathProgress PathProgressBlock `json:"path_progress"`

	Weather   WeatherSnapshot   `json:"weather"`
	Resources ResourcesSnapshot `json:"resources"`

	Achievements []string `json:"achievements"`
	ActiveTitle  string   `json:"active_title,omitempty"`
	Titles       []string `json:"titles"`

	Found map[string]bool `json:"found,omitempty"`

	GameOver bool `json:"game_over"`
	Victory  bool `json:"victory"`
}
