package session

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lastcentaur/engine/game/achievement"
	"github.com/lastcentaur/engine/game/engine"
	"github.com/lastcentaur/engine/game/gerr"
	"github.com/lastcentaur/engine/game/leaderboard"
	"github.com/lastcentaur/engine/game/pathprogress"
	"github.com/lastcentaur/engine/game/player"
	"github.com/lastcentaur/engine/game/resources"
	"github.com/lastcentaur/engine/game/world"
	"github.com/lastcentaur/engine/game/worldtime"
)

// ToSnapshot serializes e's mutable slice to the persisted record shape.
// Tile state is stored as a diff against a freshly constructed classic
// map, not a full world dump, per the design's restore contract.
func ToSnapshot(e *engine.GameEngine) Snapshot {
	p := e.Player

	visited := make([][2]int, 0, len(p.VisitedTiles))
	for pos := range p.VisitedTiles {
		visited = append(visited, [2]int{pos.X, pos.Y})
	}
	sort.Slice(visited, func(i, j int) bool {
		if visited[i][0] != visited[j][0] {
			return visited[i][0] < visited[j][0]
		}
		return visited[i][1] < visited[j][1]
	})

	blocked := map[string][]string{}
	for pos, dirs := range p.BlockedPaths {
		var ds []string
		for d, on := range dirs {
			if on {
				ds = append(ds, string(d))
			}
		}
		if len(ds) == 0 {
			continue
		}
		sort.Strings(ds)
		blocked[pos.String()] = ds
	}

	activeQuests := sortedKeys(e.ActiveQuests)
	completedQuests := sortedKeys(e.CompletedQuests)
	achievements := sortedKeys(e.Achieve.Unlocked)
	titles := sortedKeys(e.Achieve.UnlockedTitles)

	selected := ""
	if e.Paths.Selected != nil {
		selected = string(*e.Paths.Selected)
	}

	snap := Snapshot{
		InstanceID:     e.InstanceID,
		PlayerID:       p.ID,
		PlayerName:     p.Name,
		PlayerPosition: [2]int{p.Position.X, p.Position.Y},
		PlayerArea:     string(p.CurrentArea),
		Inventory:      append([]string{}, p.Inventory...),
		VisitedTiles:   visited,
		BlockedPaths:   blocked,
		PlayerStats:    toStatsSnapshot(p.Stats),
		RestCount:      p.RestCount,

		GameTime:             e.Time.String(),
		GameTimeTotalMinutes: e.Time.TotalMinutes,

		ActiveQuests:    activeQuests,
		CompletedQuests: completedQuests,

		TileOverrides: diffTiles(e.World),

		PathProgress: PathProgressBlock{
			Warrior:                    toProgressSnapshot(e.Paths.Progress[pathprogress.Warrior]),
			Mystic:                     toProgressSnapshot(e.Paths.Progress[pathprogress.Mystic]),
			Stealth:                    toProgressSnapshot(e.Paths.Progress[pathprogress.Stealth]),
			Selected:                   selected,
			StealthHidden:              e.Paths.Stealth.Hidden,
			StealthMinutesSinceEntered: e.Paths.Stealth.MinutesSinceEntered,
		},

		Weather: WeatherSnapshot{
			Current:   string(e.Weather.Current),
			Duration:  e.Weather.DurationRemainingMinutes,
			Intensity: e.Weather.Intensity,
		},
		Resources: ResourcesSnapshot{
			Hunger:       e.Resources.Hunger,
			Fatigue:      e.Resources.Fatigue,
			MentalStrain: e.Resources.MentalStrain,
		},

		Achievements: achievements,
		ActiveTitle:  e.Achieve.ActiveTitle,
		Titles:       titles,

		Found: copyBoolMap(e.Found),

		GameOver: e.GameOver,
		Victory:  e.Victory,
	}
	return snap
}

// FromSnapshot rebuilds a game instance from a persisted record: a fresh
// classic map with tile_overrides re-applied, and every other field
// restored verbatim.
func FromSnapshot(snap Snapshot, board *leaderboard.Board) (*engine.GameEngine, error) {
	e := engine.New(snap.InstanceID, snap.PlayerName, board)

	if err := applyTileOverrides(e.World, snap.TileOverrides); err != nil {
		return nil, gerr.Wrap(gerr.Invariant, err, "restoring tile overrides")
	}

	p := player.New(snap.PlayerID, snap.PlayerName,
		world.Position{X: snap.PlayerPosition[0], Y: snap.PlayerPosition[1]},
		world.StoryArea(snap.PlayerArea))
	p.Inventory = append([]string{}, snap.Inventory...)
	p.Stats = fromStatsSnapshot(snap.PlayerStats)
	p.RestCount = snap.RestCount

	p.VisitedTiles = map[world.Position]bool{}
	for _, xy := range snap.VisitedTiles {
		p.VisitedTiles[world.Position{X: xy[0], Y: xy[1]}] = true
	}
	p.BlockedPaths = map[world.Position]map[world.Direction]bool{}
	for key, dirs := range snap.BlockedPaths {
		pos, err := parsePosKey(key)
		if err != nil {
			return nil, err
		}
		set := map[world.Direction]bool{}
		for _, d := range dirs {
			set[world.Direction(d)] = true
		}
		p.BlockedPaths[pos] = set
	}
	e.Player = p

	gt := worldtime.NewGameTime()
	gt.Advance(snap.GameTimeTotalMinutes - gt.TotalMinutes)
	e.Time = gt

	e.Weather = worldtime.Weather{
		Current:                  worldtime.WeatherType(snap.Weather.Current),
		DurationRemainingMinutes: snap.Weather.Duration,
		Intensity:                snap.Weather.Intensity,
	}
	e.Resources = resources.Depletion{
		Hunger:       snap.Resources.Hunger,
		Fatigue:      snap.Resources.Fatigue,
		MentalStrain: snap.Resources.MentalStrain,
	}

	e.Paths = pathprogress.NewTracker()
	*e.Paths.Progress[pathprogress.Warrior] = fromProgressSnapshot(snap.PathProgress.Warrior)
	*e.Paths.Progress[pathprogress.Mystic] = fromProgressSnapshot(snap.PathProgress.Mystic)
	*e.Paths.Progress[pathprogress.Stealth] = fromProgressSnapshot(snap.PathProgress.Stealth)
	if snap.PathProgress.Selected != "" {
		sel := pathprogress.PathType(snap.PathProgress.Selected)
		e.Paths.Selected = &sel
	}
	e.Paths.Stealth = pathprogress.StealthState{
		Hidden:              snap.PathProgress.StealthHidden,
		MinutesSinceEntered: snap.PathProgress.StealthMinutesSinceEntered,
	}

	e.Achieve = &achievement.Tracker{
		Unlocked:       toBoolSet(snap.Achievements),
		ActiveTitle:    snap.ActiveTitle,
		UnlockedTitles: toBoolSet(snap.Titles),
	}

	e.ActiveQuests = toBoolSet(snap.ActiveQuests)
	e.CompletedQuests = toBoolSet(snap.CompletedQuests)
	e.Found = copyBoolMap(snap.Found)

	e.GameOver = snap.GameOver
	e.Victory = snap.Victory

	return e, nil
}

func toStatsSnapshot(s player.Stats) StatsSnapshot {
	return StatsSnapshot{
		Health: s.Health, MaxHealth: s.MaxHealth,
		Stamina: s.Stamina, MaxStamina: s.MaxStamina,
		Mana: s.Mana, MaxMana: s.MaxMana,
		InventoryCapacity:      s.InventoryCapacity,
		CurrentInventoryWeight: s.CurrentInventoryWeight,
	}
}

func fromStatsSnapshot(s StatsSnapshot) player.Stats {
	return player.Stats{
		Health: s.Health, MaxHealth: s.MaxHealth,
		Stamina: s.Stamina, MaxStamina: s.MaxStamina,
		Mana: s.Mana, MaxMana: s.MaxMana,
		InventoryCapacity:      s.InventoryCapacity,
		CurrentInventoryWeight: s.CurrentInventoryWeight,
	}
}

func toProgressSnapshot(p *pathprogress.Progress) PathProgressSnapshot {
	return PathProgressSnapshot{
		Affinity:          p.Affinity,
		Level:             p.Level,
		XP:                p.XP,
		UnlockedAbilities: copyBoolMap(p.UnlockedAbilities),
	}
}

func fromProgressSnapshot(s PathProgressSnapshot) pathprogress.Progress {
	return pathprogress.Progress{
		Affinity:          s.Affinity,
		Level:             s.Level,
		XP:                s.XP,
		UnlockedAbilities: copyBoolMap(s.UnlockedAbilities),
	}
}

// diffTiles walks every tile of the live map and records only the tiles
// whose contents or change log diverge from a freshly constructed classic
// map, keyed by the "x,y" string form the design's snapshot shape fixes.
func diffTiles(m *world.Map) map[string]TileOverride {
	base := world.NewClassicMap()
	out := map[string]TileOverride{}

	for y := 0; y < world.GridHeight; y++ {
		for x := 0; x < world.GridWidth; x++ {
			pos := world.Position{X: x, Y: y}
			live, _ := m.TileAt(pos)
			orig, _ := base.TileAt(pos)

			if stringSliceEqual(live.Items, orig.Items) &&
				stringSliceEqual(live.Enemies, orig.Enemies) &&
				len(live.ChangeLog) == len(orig.ChangeLog) {
				continue
			}
			out[pos.String()] = TileOverride{
				Items:     append([]string{}, live.Items...),
				Enemies:   append([]string{}, live.Enemies...),
				ChangeLog: append([]world.EnvironmentalChange{}, live.ChangeLog...),
			}
		}
	}
	return out
}

// applyTileOverrides replaces the contents of every tile named in
// overrides on top of a freshly constructed classic map.
func applyTileOverrides(m *world.Map, overrides map[string]TileOverride) error {
	for key, ov := range overrides {
		pos, err := parsePosKey(key)
		if err != nil {
			return err
		}
		tile, err := m.TileAt(pos)
		if err != nil {
			return err
		}
		tile.Items = append([]string{}, ov.Items...)
		tile.Enemies = append([]string{}, ov.Enemies...)
		tile.ChangeLog = append([]world.EnvironmentalChange{}, ov.ChangeLog...)
	}
	return nil
}

func parsePosKey(key string) (world.Position, error) {
	parts := strings.SplitN(key, ",", 2)
	if len(parts) != 2 {
		return world.Position{}, gerr.New(gerr.Invariant, "malformed tile key %q", key)
	}
	x, err1 := strconv.Atoi(parts[0])
	y, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return world.Position{}, gerr.New(gerr.Invariant, "malformed tile key %q", key)
	}
	return world.Position{X: x, Y: y}, nil
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func toBoolSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
