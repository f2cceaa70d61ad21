package world

import "fmt"

const (
	// GridWidth and GridHeight fix the map at 10x10 per the design.
	GridWidth  = 10
	GridHeight = 10
)

// TerrainType enumerates the kinds of ground a tile can have.
type TerrainType string

const (
	Forest          TerrainType = "forest"
	Clearing        TerrainType = "clearing"
	Mountain        TerrainType = "mountain"
	Ruins           TerrainType = "ruins"
	Grass           TerrainType = "grass"
	Cave            TerrainType = "cave"
	Desert          TerrainType = "desert"
	Valley          TerrainType = "valley"
	ShadowDomain    TerrainType = "shadow_domain"
	ForgottenGrove  TerrainType = "forgotten_grove"
	TwilightGlade   TerrainType = "twilight_glade"
	EnchantedValley TerrainType = "enchanted_valley"
	AncientRuins    TerrainType = "ancient_ruins"
	AncientForest   TerrainType = "ancient_forest"
)

// StoryArea enumerates the narrative regions a tile belongs to.
type StoryArea string

const (
	AwakeningWoods StoryArea = "awakening_woods"
	MysticValley   StoryArea = "mystic_valley"
	AncientRuinsA  StoryArea = "ancient_ruins_area"
	ForgottenPeaks StoryArea = "forgotten_peaks"
	ShadowReaches  StoryArea = "shadow_reaches"
	TwilightGlen   StoryArea = "twilight_glen"
)

// Direction is one of the four cardinal directions.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// vector returns the (dx, dy) unit displacement for a direction.
func (d Direction) vector() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction, used when narrating a blocked exit.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Position is a grid coordinate in [0,9]x[0,9].
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the position as "x,y", the form persisted snapshots use.
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// InBounds reports whether the position lies on the fixed grid.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// EnvironmentalChange is a permanent or transient record of something that
// happened on a tile: a discovery, a battle, a weather scar.
type EnvironmentalChange struct {
	Description         string `json:"description"`
	Timestamp           int64  `json:"timestamp"`
	IsPermanent         bool   `json:"is_permanent"`
	AffectsDescription  bool   `json:"affects_description"`
	HiddenItemRevealed  string `json:"hidden_item_revealed,omitempty"`
}

// Tile is a single 1x1 cell of the grid.
type Tile struct {
	Position        Position               `json:"position"`
	Terrain         TerrainType            `json:"terrain"`
	Area            StoryArea              `json:"area"`
	BaseDescription string                 `json:"base_description"`
	Exits           map[Direction]bool     `json:"exits"`
	Items           []string               `json:"items"`
	Enemies         []string               `json:"enemies"`
	NPCs            []string               `json:"npcs"`
	Requirements    map[string]any         `json:"requirements,omitempty"`
	Visited         bool                   `json:"visited"`
	ChangeLog       []EnvironmentalChange  `json:"change_log,omitempty"`
}

// HasExit reports whether the tile permits an attempted move in dir. It does
// not account for blockers layered on top by the player's blocked_paths map;
// that gating lives in game/player.
func (t *Tile) HasExit(dir Direction) bool {
	return t.Exits[dir]
}

// RemoveItem deletes the first occurrence of itemID from the tile's items,
// reporting whether anything was removed.
func (t *Tile) RemoveItem(itemID string) bool {
	for i, id := range t.Items {
		if id == itemID {
			t.Items = append(t.Items[:i], t.Items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveEnemy deletes the first occurrence of enemyID from the tile.
func (t *Tile) RemoveEnemy(enemyID string) bool {
	for i, id := range t.Enemies {
		if id == enemyID {
			t.Enemies = append(t.Enemies[:i], t.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// Description renders the base description enriched with any permanent,
// description-affecting environmental changes recorded for the tile.
func (t *Tile) Description() string {
	desc := t.BaseDescription
	for _, change := range t.ChangeLog {
		if !change.AffectsDescription {
			continue
		}
		desc += " " + rewriteChangeForDisplay(change.Description)
	}
	return desc
}

// rewriteChangeForDisplay turns a stored "Discovery: Name - text" change log
// entry into the player-facing "You previously found Name here. text" form.
func rewriteChangeForDisplay(raw string) string {
	const prefix = "Discovery: "
	if len(raw) <= len(prefix) || raw[:len(prefix)] != prefix {
		return raw
	}
	rest := raw[len(prefix):]
	name, text := rest, ""
	for i := 0; i+3 <= len(rest); i++ {
		if rest[i] == ' ' && rest[i+1] == '-' && rest[i+2] == ' ' {
			name = rest[:i]
			text = rest[i+3:]
			break
		}
	}
	return fmt.Sprintf("You previously found %s here. %s", name, text)
}
