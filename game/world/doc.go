// Package world provides the tiled map model for The Last Centaur.
//
// The world is a fixed 10x10 grid of Tile values. Each tile carries its
// terrain, narrative area, exits, and the mutable contents (items, enemies,
// npcs, and a change log) that command handlers read and modify. Geometry
// is immutable once built; only per-tile contents and visited state change.
//
// Usage:
//
//	m := world.NewClassicMap()
//	tile, err := m.TileAt(world.Position{X: 5, Y: 0})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	next, err := m.Neighbor(tile.Position, world.North)
package world
