package command

import "testing"

func TestParseDirectionShortcut(t *testing.T) {
	cases := []struct{ in, want string }{
		{"n", "north"}, {"north", "north"}, {"s", "south"}, {"e", "east"}, {"w", "west"},
	}
	for _, c := range cases {
		in := Parse(c.in)
		if in.Kind != Move || in.Direction != c.want {
			t.Fatalf("%q: got kind=%s dir=%s", c.in, in.Kind, in.Direction)
		}
	}
}

func TestParseStripsArticlesAndFillers(t *testing.T) {
	in := Parse("take the rusty sword please")
	if in.Kind != Take {
		t.Fatalf("expected Take, got %s", in.Kind)
	}
	if in.Target != "rusty sword" {
		t.Fatalf("expected target %q, got %q", "rusty sword", in.Target)
	}
}

func TestParseExamineWithAliases(t *testing.T) {
	for _, verb := range []string{"examine", "look at", "inspect", "study", "observe"} {
		in := Parse(verb + " an altar")
		if in.Kind != Examine {
			t.Fatalf("%q: expected Examine, got %s", verb, in.Kind)
		}
		if in.Target != "altar" {
			t.Fatalf("%q: expected target altar, got %q", verb, in.Target)
		}
	}
}

func TestParseAttackWithTarget(t *testing.T) {
	in := Parse("attack phantom_assassin")
	if in.Kind != AttackIntent || in.Target != "phantom_assassin" {
		t.Fatalf("got kind=%s target=%q", in.Kind, in.Target)
	}
}

func TestParseInteractGather(t *testing.T) {
	in := Parse("gather berries from the bush")
	if in.Kind != Interact {
		t.Fatalf("expected Interact, got %s", in.Kind)
	}
	if in.InteractKind != "gather" {
		t.Fatalf("expected gather kind, got %q", in.InteractKind)
	}
	if in.InteractText != "berries from bush" {
		t.Fatalf("expected cleaned text, got %q", in.InteractText)
	}
}

func TestParseMeditateWithMinutes(t *testing.T) {
	in := Parse("meditate 15")
	if in.Kind != Meditate || in.Minutes != 15 {
		t.Fatalf("got kind=%s minutes=%d", in.Kind, in.Minutes)
	}
}

func TestParsePathSelect(t *testing.T) {
	in := Parse("select path warrior")
	if in.Kind != PathSelect || in.Path != "warrior" {
		t.Fatalf("got kind=%s path=%q", in.Kind, in.Path)
	}
}

func TestParseAbilityWithArgs(t *testing.T) {
	in := Parse("cast power_strike enemy1")
	if in.Kind != AbilityUse || in.AbilityID != "power_strike" {
		t.Fatalf("got kind=%s ability=%q", in.Kind, in.AbilityID)
	}
	if len(in.AbilityArgs) != 1 || in.AbilityArgs[0] != "enemy1" {
		t.Fatalf("expected one arg, got %v", in.AbilityArgs)
	}
}

func TestParseUnknownOnGibberish(t *testing.T) {
	in := Parse("xyzzyplughfrobnicate")
	if in.Kind != Unknown {
		t.Fatalf("expected Unknown, got %s", in.Kind)
	}
}

func TestParseUnknownOnEmpty(t *testing.T) {
	in := Parse("   ")
	if in.Kind != Unknown {
		t.Fatalf("expected Unknown for blank input, got %s", in.Kind)
	}
}
