// Command validate is a small CLI that checks the static game data for
// internal consistency. It checks:
//   - every enemy drop, discovery item reward, and tile item/enemy id
//     resolves to a real catalog entry
//   - every title's required achievements resolve to real achievements
//   - the classic map's fixed exits are reciprocal (an exit in one
//     direction implies the neighbor has the opposite exit back)
//   - every tile on the 10x10 grid is reachable from the spawn tile
package main

import (
	"fmt"
	"os"

	"github.com/lastcentaur/engine/game/catalog"
	"github.com/lastcentaur/engine/game/world"
)

// Result captures the outcome of one validation pass.
type Result struct {
	Name   string
	Valid  bool
	Errors []string
}

func main() {
	results := []Result{
		validateCatalogReferences(),
		validateMapExits(),
		validateMapReachability(),
	}

	exitCode := 0
	for _, r := range results {
		status := "OK"
		if !r.Valid {
			status = "FAIL"
			exitCode = 1
		}
		fmt.Printf("[%s] %s\n", status, r.Name)
		for _, e := range r.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
	os.Exit(exitCode)
}

// validateCatalogReferences checks that every id referenced by one
// catalog entry resolves to another real entry: enemy drops, discovery
// item rewards, and title required-achievement lists.
func validateCatalogReferences() Result {
	r := Result{Name: "catalog references", Valid: true}

	for _, d := range catalog.AllDiscoveries() {
		if d.ItemReward == "" {
			continue
		}
		if _, ok := catalog.ItemByID(d.ItemReward); !ok {
			r.Valid = false
			r.Errors = append(r.Errors, fmt.Sprintf("discovery %s rewards unknown item %s", d.ID, d.ItemReward))
		}
	}

	m := world.NewClassicMap()
	for y := 0; y < world.GridHeight; y++ {
		for x := 0; x < world.GridWidth; x++ {
			pos := world.Position{X: x, Y: y}
			tile, _ := m.TileAt(pos)
			for _, id := range tile.Items {
				if _, ok := catalog.ItemByID(id); !ok {
					r.Valid = false
					r.Errors = append(r.Errors, fmt.Sprintf("tile %s has unknown item %s", pos, id))
				}
			}
			for _, id := range tile.Enemies {
				enemy, ok := catalog.EnemyByID(id)
				if !ok {
					r.Valid = false
					r.Errors = append(r.Errors, fmt.Sprintf("tile %s has unknown enemy %s", pos, id))
					continue
				}
				for _, drop := range enemy.Drops {
					if _, ok := catalog.ItemByID(drop); !ok {
						r.Valid = false
						r.Errors = append(r.Errors, fmt.Sprintf("enemy %s drops unknown item %s", id, drop))
					}
				}
			}
		}
	}

	for id, t := range catalog.Titles {
		for _, req := range t.RequiredAchievements {
			if _, ok := catalog.AchievementByID(req); !ok {
				r.Valid = false
				r.Errors = append(r.Errors, fmt.Sprintf("title %s requires unknown achievement %s", id, req))
			}
		}
	}

	return r
}

// validateMapExits checks that the classic map's fixed exits are
// reciprocal: if tile A has an exit toward tile B, B must have the
// opposite exit back toward A.
func validateMapExits() Result {
	r := Result{Name: "map exit reciprocity", Valid: true}
	m := world.NewClassicMap()

	dirs := []world.Direction{world.North, world.South, world.East, world.West}
	for y := 0; y < world.GridHeight; y++ {
		for x := 0; x < world.GridWidth; x++ {
			pos := world.Position{X: x, Y: y}
			tile, _ := m.TileAt(pos)
			for _, d := range dirs {
				if !tile.HasExit(d) {
					continue
				}
				neighborPos, err := m.Neighbor(pos, d)
				if err != nil {
					r.Valid = false
					r.Errors = append(r.Errors, fmt.Sprintf("tile %s has exit %s leaving the grid", pos, d))
					continue
				}
				neighbor, _ := m.TileAt(neighborPos)
				if !neighbor.HasExit(d.Opposite()) {
					r.Valid = false
					r.Errors = append(r.Errors, fmt.Sprintf("tile %s exits %s to %s, but %s has no exit back", pos, d, neighborPos, neighborPos))
				}
			}
		}
	}
	return r
}

// validateMapReachability checks that every tile on the grid is reachable
// from the fixed spawn position via a breadth-first walk over fixed
// exits, ignoring blocked_paths (which are per-player, not geometric).
func validateMapReachability() Result {
	r := Result{Name: "map reachability", Valid: true}
	m := world.NewClassicMap()

	visited := map[world.Position]bool{world.SpawnPosition: true}
	queue := []world.Position{world.SpawnPosition}
	dirs := []world.Direction{world.North, world.South, world.East, world.West}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		tile, _ := m.TileAt(pos)
		for _, d := range dirs {
			if !tile.HasExit(d) {
				continue
			}
			next, err := m.Neighbor(pos, d)
			if err != nil || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	for y := 0; y < world.GridHeight; y++ {
		for x := 0; x < world.GridWidth; x++ {
			pos := world.Position{X: x, Y: y}
			if !visited[pos] {
				r.Valid = false
				r.Errors = append(r.Errors, fmt.Sprintf("tile %s is unreachable from spawn", pos))
			}
		}
	}
	return r
}
