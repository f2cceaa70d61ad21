package world

import "testing"

func TestTileAtOutOfBounds(t *testing.T) {
	m := NewClassicMap()
	if _, err := m.TileAt(Position{X: -1, Y: 0}); err == nil {
		t.Fatal("expected OutOfBounds error for negative x")
	}
	if _, err := m.TileAt(Position{X: 10, Y: 0}); err == nil {
		t.Fatal("expected OutOfBounds error for x beyond grid")
	}
}

func TestNeighborVectors(t *testing.T) {
	m := NewClassicMap()
	pos := Position{X: 5, Y: 5}

	cases := []struct {
		dir  Direction
		want Position
	}{
		{North, Position{X: 5, Y: 4}},
		{South, Position{X: 5, Y: 6}},
		{East, Position{X: 6, Y: 5}},
		{West, Position{X: 4, Y: 5}},
	}
	for _, c := range cases {
		got, err := m.Neighbor(pos, c.dir)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.dir, err)
		}
		if got != c.want {
			t.Fatalf("%s: got %v, want %v", c.dir, got, c.want)
		}
	}
}

func TestNeighborOutOfBounds(t *testing.T) {
	m := NewClassicMap()
	if _, err := m.Neighbor(Position{X: 0, Y: 0}, West); err == nil {
		t.Fatal("expected OutOfBounds moving west off the west edge")
	}
	if _, err := m.Neighbor(Position{X: 9, Y: 9}, East); err == nil {
		t.Fatal("expected OutOfBounds moving east off the east edge")
	}
}

func TestApplyChangeRevealsHiddenItem(t *testing.T) {
	m := NewClassicMap()
	pos := Position{X: 4, Y: 4}

	err := m.ApplyChange(pos, EnvironmentalChange{
		Description:        "Discovery: Berries - hidden in the bush",
		IsPermanent:        true,
		AffectsDescription: true,
		HiddenItemRevealed: "test_berries",
	})
	if err != nil {
		t.Fatalf("ApplyChange: %v", err)
	}

	tile, _ := m.TileAt(pos)
	if len(tile.ChangeLog) != 1 {
		t.Fatalf("expected 1 change log entry, got %d", len(tile.ChangeLog))
	}
	found := false
	for _, id := range tile.Items {
		if id == "test_berries" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected hidden item to be added to tile items")
	}
}

func TestDescriptionEnrichment(t *testing.T) {
	m := NewClassicMap()
	pos := Position{X: 4, Y: 4}
	tile, _ := m.TileAt(pos)
	base := tile.Description()

	m.ApplyChange(pos, EnvironmentalChange{
		Description:        "Discovery: Berries - hidden in the bush",
		IsPermanent:        true,
		AffectsDescription: true,
	})

	enriched := tile.Description()
	if enriched == base {
		t.Fatal("expected description to change after a description-affecting change")
	}
	if want := "You previously found Berries here. hidden in the bush"; enriched != base+" "+want {
		t.Fatalf("got %q", enriched)
	}
}

func TestMarkVisitedMonotonic(t *testing.T) {
	m := NewClassicMap()
	pos := Position{X: 1, Y: 1}
	tile, _ := m.TileAt(pos)
	if tile.Visited {
		t.Fatal("tile should start unvisited")
	}
	if err := m.MarkVisited(pos); err != nil {
		t.Fatalf("MarkVisited: %v", err)
	}
	if !tile.Visited {
		t.Fatal("tile should be visited after MarkVisited")
	}
}

func TestPossibleExitsExcludesBlocked(t *testing.T) {
	m := NewClassicMap()
	pos := Position{X: 5, Y: 5}
	blocked := map[Direction]bool{North: true}

	exits := m.PossibleExits(pos, blocked)
	for _, d := range exits {
		if d == North {
			t.Fatal("blocked direction should be excluded")
		}
	}
}

func TestScenarioFixturesPresent(t *testing.T) {
	m := NewClassicMap()

	frag, _ := m.TileAt(Position{X: 3, Y: 1})
	if !containsStr(frag.Items, "shadow_essence_fragment") {
		t.Fatal("expected shadow_essence_fragment fixture item")
	}

	guard, _ := m.TileAt(Position{X: 0, Y: 3})
	if !containsStr(guard.Enemies, "phantom_assassin") {
		t.Fatal("expected phantom_assassin fixture enemy")
	}
}

func containsStr(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
