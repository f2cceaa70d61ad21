package discovery

import (
	"math/rand"
	"testing"
)

func TestAttemptMatchesGuaranteedDiscovery(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ctx := Context{Terrain: "forest", Kind: "gather", Text: "gather berries from the bush"}

	outcome, canned := Attempt(rng, ctx, map[string]bool{})
	if outcome == nil {
		t.Fatal("expected a discovery match")
	}
	if canned != "" {
		t.Fatalf("expected empty canned response on match, got %q", canned)
	}
	if outcome.Discovery.ID != "test_berries" {
		t.Fatalf("expected test_berries, got %s", outcome.Discovery.ID)
	}
	if outcome.Change.HiddenItemRevealed != "test_berries" {
		t.Fatalf("expected hidden item revealed, got %q", outcome.Change.HiddenItemRevealed)
	}
	if outcome.Change.Description != "Discovery: Forest Berries - a bush heavy with ripe berries" {
		t.Fatalf("unexpected change description: %q", outcome.Change.Description)
	}
}

func TestAttemptUniqueDiscoveryOnlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ctx := Context{Terrain: "forest", Kind: "gather", Text: "gather berries from the bush"}

	found := map[string]bool{"test_berries": true}
	outcome, _ := Attempt(rng, ctx, found)
	if outcome != nil {
		t.Fatal("expected no match once a unique discovery is already found")
	}
}

func TestAttemptMissingKeywordFallsThroughToCanned(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ctx := Context{Terrain: "forest", Kind: "gather", Text: "gather some pebbles"}

	outcome, canned := Attempt(rng, ctx, map[string]bool{})
	if outcome != nil {
		t.Fatal("expected no match without required keywords")
	}
	if canned == "" {
		t.Fatal("expected a non-empty canned response")
	}
}

func TestAttemptEmptyTextYieldsEmptyResponse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ctx := Context{Terrain: "forest", Kind: "gather", Text: ""}

	outcome, canned := Attempt(rng, ctx, map[string]bool{})
	if outcome != nil || canned != "" {
		t.Fatalf("expected empty outcome and response for empty text, got outcome=%v canned=%q", outcome, canned)
	}
}

func TestAttemptUnknownKindYieldsEmptyResponse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ctx := Context{Terrain: "forest", Kind: "frobnicate", Text: "something"}

	outcome, canned := Attempt(rng, ctx, map[string]bool{})
	if outcome != nil || canned != "" {
		t.Fatalf("expected empty outcome and response for unknown kind, got outcome=%v canned=%q", outcome, canned)
	}
}

func TestAttemptWrongTerrainNeverMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ctx := Context{Terrain: "desert", Kind: "gather", Text: "gather berries from the bush"}

	outcome, _ := Attempt(rng, ctx, map[string]bool{})
	if outcome != nil {
		t.Fatal("expected no match when terrain does not qualify")
	}
}
