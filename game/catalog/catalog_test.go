package catalog

import "testing"

func TestItemByID(t *testing.T) {
	it, ok := ItemByID("shadow_essence_fragment")
	if !ok {
		t.Fatal("expected shadow_essence_fragment to exist")
	}
	if it.Type != QuestItem || !it.IsQuestItem {
		t.Fatalf("expected quest item flags, got %+v", it)
	}

	if _, ok := ItemByID("does_not_exist"); ok {
		t.Fatal("expected lookup miss for unknown item")
	}
}

func TestEnemyByIDFixture(t *testing.T) {
	e, ok := EnemyByID("phantom_assassin")
	if !ok {
		t.Fatal("expected phantom_assassin to exist")
	}
	if e.CombatStyle != Stealth {
		t.Fatalf("expected stealth combat style, got %v", e.CombatStyle)
	}
	if len(e.Abilities) == 0 {
		t.Fatal("expected phantom_assassin to have at least one ability")
	}
}

func TestDiscoveryByIDAndOrder(t *testing.T) {
	all := AllDiscoveries()
	if len(all) == 0 {
		t.Fatal("expected non-empty discovery table")
	}
	if all[0].ID != "test_berries" {
		t.Fatalf("expected test_berries first in definition order, got %s", all[0].ID)
	}

	d, ok := DiscoveryByID("test_berries")
	if !ok {
		t.Fatal("expected test_berries discovery")
	}
	if d.ChanceToFind != 1.0 {
		t.Fatalf("expected chance_to_find 1.0, got %v", d.ChanceToFind)
	}
	if d.RequiredInteraction != "gather" {
		t.Fatalf("expected gather interaction, got %s", d.RequiredInteraction)
	}
	want := map[string]bool{"berries": true, "bush": true}
	if len(d.RequiredKeywords) != len(want) {
		t.Fatalf("expected 2 required keywords, got %v", d.RequiredKeywords)
	}
	for _, kw := range d.RequiredKeywords {
		if !want[kw] {
			t.Fatalf("unexpected required keyword %q", kw)
		}
	}
}

func TestTitlesForAchievements(t *testing.T) {
	held := map[string]bool{"first_steps": true}
	titles := TitlesForAchievements(held)
	if len(titles) != 1 || titles[0].ID != "wanderer" {
		t.Fatalf("expected only wanderer title, got %+v", titles)
	}

	held["first_blood"] = true
	held["path_chosen"] = true
	held["discoverer"] = true
	held["game_complete"] = true
	titles = TitlesForAchievements(held)

	found := false
	for _, tt := range titles {
		if tt.ID == "centaur_legend" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected centaur_legend title once all its requirements are held")
	}
}

func TestAchievementAndTitleByID(t *testing.T) {
	if _, ok := AchievementByID("first_blood"); !ok {
		t.Fatal("expected first_blood achievement")
	}
	if _, ok := TitleByID("bloodied"); !ok {
		t.Fatal("expected bloodied title")
	}
}
