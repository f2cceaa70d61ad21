package player

import (
	"testing"

	"github.com/lastcentaur/engine/game/gerr"
	"github.com/lastcentaur/engine/game/world"
)

func TestNewPlayerStartsAtSpawn(t *testing.T) {
	spawn := world.Position{X: 5, Y: 0}
	p := New("p1", "Aric", spawn, world.AwakeningWoods)

	if p.Position != spawn {
		t.Fatalf("expected spawn position, got %v", p.Position)
	}
	if !p.HasVisited(spawn) {
		t.Fatal("expected spawn tile to be marked visited at creation")
	}
	if p.Stats.Health != p.Stats.MaxHealth {
		t.Fatal("expected full health at creation")
	}
}

func TestAddItemRespectsCapacity(t *testing.T) {
	p := New("p1", "Aric", world.Position{}, world.AwakeningWoods)
	p.Stats.InventoryCapacity = 3

	if err := p.AddItem("rusty_sword"); err != nil {
		t.Fatalf("unexpected error adding first item: %v", err)
	}
	if err := p.AddItem("ancient_key"); err == nil {
		t.Fatal("expected capacity error adding a second, overweight item")
	} else if gerr.KindOf(err) != gerr.InsufficientResource {
		t.Fatalf("expected InsufficientResource, got %v", err)
	}
}

func TestRemoveItemNotPresent(t *testing.T) {
	p := New("p1", "Aric", world.Position{}, world.AwakeningWoods)
	if err := p.RemoveItem("nonexistent"); err == nil {
		t.Fatal("expected NotFound error removing absent item")
	} else if gerr.KindOf(err) != gerr.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestAddRemoveItemRoundTrip(t *testing.T) {
	p := New("p1", "Aric", world.Position{}, world.AwakeningWoods)
	if err := p.AddItem("waterskin"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if !p.HasItem("waterskin") {
		t.Fatal("expected waterskin in inventory")
	}
	weightAfterAdd := p.Stats.CurrentInventoryWeight
	if weightAfterAdd == 0 {
		t.Fatal("expected nonzero inventory weight after add")
	}
	if err := p.RemoveItem("waterskin"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if p.HasItem("waterskin") {
		t.Fatal("expected waterskin removed from inventory")
	}
	if p.Stats.CurrentInventoryWeight != 0 {
		t.Fatalf("expected weight back to zero, got %d", p.Stats.CurrentInventoryWeight)
	}
}

func TestAdjustHealthClamps(t *testing.T) {
	p := New("p1", "Aric", world.Position{}, world.AwakeningWoods)
	p.AdjustHealth(1000)
	if p.Stats.Health != p.Stats.MaxHealth {
		t.Fatalf("expected health clamped to max, got %d", p.Stats.Health)
	}
	p.AdjustHealth(-1000)
	if p.Stats.Health != 0 {
		t.Fatalf("expected health clamped to zero, got %d", p.Stats.Health)
	}
	if !p.IsDefeated() {
		t.Fatal("expected player defeated at zero health")
	}
}

func TestBlockedPaths(t *testing.T) {
	p := New("p1", "Aric", world.Position{}, world.AwakeningWoods)
	pos := world.Position{X: 1, Y: 1}

	if p.IsBlocked(pos, world.North) {
		t.Fatal("expected no block by default")
	}
	p.BlockDirection(pos, world.North)
	if !p.IsBlocked(pos, world.North) {
		t.Fatal("expected direction to be blocked after BlockDirection")
	}
	p.UnblockDirection(pos, world.North)
	if p.IsBlocked(pos, world.North) {
		t.Fatal("expected direction unblocked after UnblockDirection")
	}
}
