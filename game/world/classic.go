package world

// terrainPlan and areaPlan describe the fixed 10x10 layout for the one
// shipped world instance. Row 0 is y=0 (north edge, where the player
// spawns); each string is read left-to-right as x=0..9.
var terrainPlan = [GridHeight]string{
	"GGGSGGGRRR",
	"GFFFGGRRRR",
	"FFFFGGRRMM",
	"AFFFGGCRMM",
	"FFFVVVCRMM",
	"FFFVVVCCMM",
	"RRRVVVCCDD",
	"RRRRRCCDDD",
	"RRRRRCCDDD",
	"RRRRRRRDDD",
}

// terrainLegend maps a layout character to a terrain type.
var terrainLegend = map[byte]TerrainType{
	'G': Grass,
	'F': Forest,
	'S': Clearing,
	'R': Ruins,
	'M': Mountain,
	'A': AncientForest,
	'V': EnchantedValley,
	'C': Cave,
	'D': Desert,
}

// areaForTile assigns a StoryArea by quadrant; it is a narrative grouping
// independent of terrain.
func areaForTile(pos Position) StoryArea {
	switch {
	case pos.Y <= 2:
		return AwakeningWoods
	case pos.Y <= 4 && pos.X <= 5:
		return MysticValley
	case pos.Y <= 4:
		return ForgottenPeaks
	case pos.Y <= 6:
		return ShadowReaches
	default:
		return TwilightGlen
	}
}

var terrainDescriptions = map[TerrainType]string{
	Grass:           "A wide stretch of grass ripples in the wind.",
	Forest:          "Tall trees press close, their canopy dimming the light.",
	Clearing:        "A sunlit clearing opens among the trees.",
	Ruins:           "Broken stone foundations hint at a settlement long gone.",
	Mountain:        "Jagged rock rises sharply underfoot.",
	AncientForest:   "Trees older than memory loom in silence here.",
	EnchantedValley: "The air shimmers faintly over this low valley.",
	Cave:            "Cold stone walls close in around a narrow passage.",
	Desert:          "Dry cracked earth stretches toward the horizon.",
	ShadowDomain:    "A cold weight presses down, as if the shadows themselves watch.",
	ForgottenGrove:  "Moss-choked trees stand in a grove nobody remembers.",
	TwilightGlade:   "Perpetual dusk lingers over this glade.",
	AncientRuins:    "Weathered carvings cover stones older than any kingdom.",
}

// NewClassicMap builds the single shipped world instance: a fully
// connected 10x10 grid (every in-bounds neighbor is reachable by exit),
// terrain and area assigned per terrainPlan/areaForTile, with one fixed
// item (shadow_essence_fragment at 3,1) and one fixed enemy
// (phantom_assassin at 0,3); no exits are blocked.
func NewClassicMap() *Map {
	m := &Map{}

	for y := 0; y < GridHeight; y++ {
		row := terrainPlan[y]
		for x := 0; x < GridWidth; x++ {
			pos := Position{X: x, Y: y}
			terrain := terrainLegend[row[x]]

			exits := map[Direction]bool{}
			for _, dir := range []Direction{North, South, East, West} {
				if _, err := m.Neighbor(pos, dir); err == nil {
					exits[dir] = true
				}
			}

			m.setTile(Tile{
				Position:        pos,
				Terrain:         terrain,
				Area:            areaForTile(pos),
				BaseDescription: terrainDescriptions[terrain],
				Exits:           exits,
				Requirements:    map[string]any{},
			})
		}
	}

	// Scenario fixtures.
	frag, _ := m.TileAt(Position{X: 3, Y: 1})
	frag.Items = append(frag.Items, "shadow_essence_fragment")

	guard, _ := m.TileAt(Position{X: 0, Y: 3})
	guard.Enemies = append(guard.Enemies, "phantom_assassin")

	return m
}
