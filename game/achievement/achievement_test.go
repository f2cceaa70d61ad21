package achievement

import "testing"

func TestUnlockIsIdempotent(t *testing.T) {
	tr := NewTracker()
	tr.Unlock("first_steps")
	if !tr.HasAchievement("first_steps") {
		t.Fatal("expected first_steps unlocked")
	}
	newTitles := tr.Unlock("first_steps")
	if len(newTitles) != 0 {
		t.Fatalf("expected no new titles from a repeat unlock, got %v", newTitles)
	}
}

func TestUnlockAutoActivatesFirstTitle(t *testing.T) {
	tr := NewTracker()
	newTitles := tr.Unlock("first_steps")
	if len(newTitles) != 1 || newTitles[0] != "wanderer" {
		t.Fatalf("expected wanderer unlocked, got %v", newTitles)
	}
	if tr.ActiveTitle != "wanderer" {
		t.Fatalf("expected wanderer auto-activated, got %q", tr.ActiveTitle)
	}
}

func TestSecondTitleDoesNotReplaceActive(t *testing.T) {
	tr := NewTracker()
	tr.Unlock("first_steps")
	tr.Unlock("first_blood")
	if tr.ActiveTitle != "wanderer" {
		t.Fatalf("expected wanderer to remain active, got %q", tr.ActiveTitle)
	}
	if !tr.UnlockedTitles["bloodied"] {
		t.Fatal("expected bloodied title unlocked even though not active")
	}
}

func TestSetActiveTitleRequiresUnlock(t *testing.T) {
	tr := NewTracker()
	if tr.SetActiveTitle("bloodied") {
		t.Fatal("expected SetActiveTitle to fail before the title is unlocked")
	}
	tr.Unlock("first_blood")
	if !tr.SetActiveTitle("bloodied") {
		t.Fatal("expected SetActiveTitle to succeed once unlocked")
	}
}

func TestTotalPoints(t *testing.T) {
	tr := NewTracker()
	tr.Unlock("first_steps")
	tr.Unlock("first_blood")
	if got := tr.TotalPoints(); got != 15 {
		t.Fatalf("expected 15 total points, got %d", got)
	}
}
