package session

import (
	"encoding/json"
	"testing"

	"github.com/lastcentaur/engine/game/engine"
	"github.com/lastcentaur/engine/game/leaderboard"
	"github.com/lastcentaur/engine/game/world"
)

func newEngineForTest(t *testing.T, board *leaderboard.Board) *engine.GameEngine {
	t.Helper()
	return engine.New("test-instance", "Rin", board)
}

func TestSnapshotRoundTrip(t *testing.T) {
	board := leaderboard.NewBoard()
	e := newEngineForTest(t, board)

	// Mutate state across a few subsystems so the round trip is exercised
	// on more than a fresh instance's defaults.
	e.Player.Inventory = append(e.Player.Inventory, "waterskin")
	e.Achieve.Unlocked["first_blood"] = true
	e.ActiveQuests["side_quest"] = true
	e.Time.Advance(90)
	e.World.ApplyChange(e.Player.Position, world.EnvironmentalChange{
		Description: "a scorch mark spreads across the grass",
		Timestamp:   e.Time.TotalMinutes,
	})

	snap := ToSnapshot(e)

	restored, err := FromSnapshot(snap, board)
	if err != nil {
		t.Fatalf("from snapshot: %v", err)
	}
	reSnap := ToSnapshot(restored)

	a, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snap: %v", err)
	}
	b, err := json.Marshal(reSnap)
	if err != nil {
		t.Fatalf("marshal reSnap: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("expected restore(snapshot(s)) == s\nsnap:   %s\nreSnap: %s", a, b)
	}
}

func TestDiffTilesOnlyIncludesChangedTiles(t *testing.T) {
	board := leaderboard.NewBoard()
	e := newEngineForTest(t, board)

	before := diffTiles(e.World)
	if len(before) != 0 {
		t.Fatalf("expected no tile overrides on a fresh instance, got %d", len(before))
	}

	tile, err := e.World.TileAt(e.Player.Position)
	if err != nil {
		t.Fatalf("tile at: %v", err)
	}
	tile.Items = append(tile.Items, "torch")

	after := diffTiles(e.World)
	if len(after) != 1 {
		t.Fatalf("expected exactly one overridden tile, got %d", len(after))
	}
}
