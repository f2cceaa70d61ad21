package world

import (
	"github.com/lastcentaur/engine/game/gerr"
)

// SpawnPosition is the fixed starting tile for every new player.
var SpawnPosition = Position{X: 5, Y: 0}

// Map is an immutable-geometry, mutable-contents grid. Only
// TileAt/Neighbor geometry is fixed; Tile.Items, .Enemies,
// .NPCs, .Visited, and .ChangeLog mutate through ApplyChange and direct
// tile mutators exposed to the movement/combat/discovery subsystems.
type Map struct {
	tiles [GridHeight][GridWidth]Tile
}

// TileAt returns a pointer to the tile at pos, constant time, or an
// OutOfBounds error if pos lies outside the fixed grid.
func (m *Map) TileAt(pos Position) (*Tile, error) {
	if !pos.InBounds() {
		return nil, gerr.New(gerr.OutOfBounds, "position %s is outside the map", pos)
	}
	return &m.tiles[pos.Y][pos.X], nil
}

// Neighbor returns the position one step from pos in dir, or an
// OutOfBounds error if that step leaves the grid. An exit existing does
// not guarantee the move succeeds — blockers are checked by the caller.
func (m *Map) Neighbor(pos Position, dir Direction) (Position, error) {
	dx, dy := dir.vector()
	next := Position{X: pos.X + dx, Y: pos.Y + dy}
	if !next.InBounds() {
		return Position{}, gerr.New(gerr.OutOfBounds, "moving %s from %s leaves the map", dir, pos)
	}
	return next, nil
}

// ApplyChange appends change to the tile's change log and, if the change
// reveals a hidden item, adds that item to the tile's contents.
func (m *Map) ApplyChange(pos Position, change EnvironmentalChange) error {
	tile, err := m.TileAt(pos)
	if err != nil {
		return err
	}
	tile.ChangeLog = append(tile.ChangeLog, change)
	if change.HiddenItemRevealed != "" {
		tile.Items = append(tile.Items, change.HiddenItemRevealed)
	}
	return nil
}

// MarkVisited flips a tile's Visited flag to true. It is a no-op if the
// tile is already visited — Visited is monotonically false->true.
func (m *Map) MarkVisited(pos Position) error {
	tile, err := m.TileAt(pos)
	if err != nil {
		return err
	}
	tile.Visited = true
	return nil
}

// setTile installs a fully-formed tile at its own position. Used only by
// map construction (NewClassicMap and tests), never by command handlers.
func (m *Map) setTile(t Tile) {
	m.tiles[t.Position.Y][t.Position.X] = t
}

// PossibleExits returns the exits from pos that are not presently gated in
// blocked.
func (m *Map) PossibleExits(pos Position, blocked map[Direction]bool) []Direction {
	tile, err := m.TileAt(pos)
	if err != nil {
		return nil
	}
	var out []Direction
	for _, dir := range []Direction{North, South, East, West} {
		if !tile.HasExit(dir) {
			continue
		}
		if blocked[dir] {
			continue
		}
		if _, err := m.Neighbor(pos, dir); err != nil {
			continue
		}
		out = append(out, dir)
	}
	return out
}
