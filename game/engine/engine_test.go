package engine

import (
	"strings"
	"testing"

	"github.com/lastcentaur/engine/game/leaderboard"
	"github.com/lastcentaur/engine/game/world"
)

func newTestEngine(t *testing.T) *GameEngine {
	t.Helper()
	return New("test-instance", "Rin", leaderboard.NewBoard())
}

func TestMoveAcrossAFullyConnectedGrid(t *testing.T) {
	e := newTestEngine(t)
	before := e.Player.Position

	result := e.ProcessCommand("south")
	if strings.Contains(strings.ToLower(result.Text), "no path") {
		t.Fatalf("expected south to be a valid move from spawn, got: %s", result.Text)
	}
	after := e.Player.Position
	if after == before {
		t.Error("expected player position to change after a successful move")
	}
	if after.Y != before.Y+1 {
		t.Errorf("expected to move one tile south, went from %s to %s", before, after)
	}
}

func TestMoveRejectsUnknownDirection(t *testing.T) {
	e := newTestEngine(t)
	before := e.Player.Position

	e.ProcessCommand("sideways")
	if e.Player.Position != before {
		t.Error("expected an unrecognized direction to leave position unchanged")
	}
}

func TestTakeAndDropRoundTrip(t *testing.T) {
	e := newTestEngine(t)

	// The classic map seeds a pickable item at (3,1); walk there directly
	// by placing the player rather than threading moves through terrain.
	e.Player.Position = world.Position{X: 3, Y: 1}

	result := e.ProcessCommand("take shadow essence fragment")
	if !strings.Contains(strings.ToLower(result.Text), "take") {
		t.Fatalf("expected a successful take, got: %s", result.Text)
	}
	if len(e.Player.Inventory) != 1 {
		t.Fatalf("expected one item in inventory after take, got %d", len(e.Player.Inventory))
	}

	dropped := e.Player.Inventory[0]
	e.ProcessCommand("drop " + dropped)
	if len(e.Player.Inventory) != 0 {
		t.Errorf("expected inventory to be empty after drop, got %v", e.Player.Inventory)
	}
}

func TestTakeMissingItemFails(t *testing.T) {
	e := newTestEngine(t)
	result := e.ProcessCommand("take nonexistent_trinket")
	if len(e.Player.Inventory) != 0 {
		t.Error("expected inventory unchanged after a failed take")
	}
	if result.Text == "" {
		t.Error("expected narration explaining the failure")
	}
}

func TestRestAdvancesTimeAndRelievesFatigue(t *testing.T) {
	e := newTestEngine(t)
	e.Resources.Fatigue = 0.8
	beforeMinutes := e.Time.TotalMinutes

	e.ProcessCommand("rest")

	if e.Time.TotalMinutes <= beforeMinutes {
		t.Error("expected rest to advance the game clock")
	}
	if e.Resources.Fatigue >= 0.8 {
		t.Error("expected rest to relieve fatigue")
	}
}

func TestCombatAgainstFixtureEnemyResolves(t *testing.T) {
	e := newTestEngine(t)
	e.Player.Position = world.Position{X: 0, Y: 3}

	var last Result
	for i := 0; i < 50 && !e.GameOver; i++ {
		last = e.ProcessCommand("attack phantom assassin")
		if strings.Contains(strings.ToLower(last.Text), "there is nothing here") {
			t.Fatalf("expected an enemy to be present at the fixture tile, got: %s", last.Text)
		}
		if e.Encounter == nil {
			break
		}
	}

	if e.Encounter != nil {
		t.Error("expected the encounter to resolve within 50 attacks")
	}
}

func TestPathSelectIsIrrevocable(t *testing.T) {
	e := newTestEngine(t)

	first := e.ProcessCommand("path select warrior")
	if strings.Contains(strings.ToLower(first.Text), "already chosen") {
		t.Fatalf("expected the first path selection to succeed, got: %s", first.Text)
	}

	second := e.ProcessCommand("path select mystic")
	if !strings.Contains(strings.ToLower(second.Text), "already chosen") {
		t.Errorf("expected a second path selection to be rejected, got: %s", second.Text)
	}
	if e.Paths.Selected == nil || *e.Paths.Selected != "warrior" {
		t.Error("expected the path to remain warrior after a rejected reselection")
	}
}

func TestUnknownCommandIsNarrated(t *testing.T) {
	e := newTestEngine(t)
	result := e.ProcessCommand("frobnicate the wibblewonk")
	if result.Text == "" {
		t.Error("expected narration for an unrecognized command")
	}
}

func TestSaveRequestSetsFlagEffect(t *testing.T) {
	e := newTestEngine(t)
	result := e.ProcessCommand("save")

	found := false
	for _, eff := range result.Effects {
		if eff.Flag == "save_requested" {
			found = true
		}
	}
	if !found {
		t.Error("expected a save_requested flag effect from the SAVE command")
	}
}
