package session

import (
	"testing"

	"github.com/lastcentaur/engine/game/leaderboard"
)

func TestManagerCreate(t *testing.T) {
	t.Run("create with custom instance id", func(t *testing.T) {
		m := NewManager(leaderboard.NewBoard())
		e, err := m.Create("inst-1", "Rin")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if e.InstanceID != "inst-1" {
			t.Errorf("expected instance id inst-1, got %s", e.InstanceID)
		}
	})

	t.Run("create with auto-generated instance id", func(t *testing.T) {
		m := NewManager(leaderboard.NewBoard())
		e, err := m.Create("", "Rin")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if e.InstanceID == "" {
			t.Error("expected a generated instance id")
		}
	})

	t.Run("duplicate instance id", func(t *testing.T) {
		m := NewManager(leaderboard.NewBoard())
		if _, err := m.Create("dup", "Rin"); err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := m.Create("dup", "Someone Else"); err != ErrAlreadyExists {
			t.Errorf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func TestManagerGet(t *testing.T) {
	m := NewManager(leaderboard.NewBoard())
	created, err := m.Create("get-test", "Rin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("get existing instance", func(t *testing.T) {
		e, err := m.Get("get-test")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if e != created {
			t.Error("expected the same in-memory instance back")
		}
	})

	t.Run("get missing instance", func(t *testing.T) {
		if _, err := m.Get("missing"); err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestManagerGetOrCreate(t *testing.T) {
	m := NewManager(leaderboard.NewBoard())

	e1, err := m.GetOrCreate("gc-test", "Rin")
	if err != nil {
		t.Fatalf("get-or-create: %v", err)
	}
	e2, err := m.GetOrCreate("gc-test", "ignored name")
	if err != nil {
		t.Fatalf("get-or-create second call: %v", err)
	}
	if e1 != e2 {
		t.Error("expected GetOrCreate to return the existing instance on the second call")
	}
}

func TestManagerDelete(t *testing.T) {
	m := NewManager(leaderboard.NewBoard())
	if _, err := m.Create("del-test", "Rin"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := m.Delete("del-test"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get("del-test"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestManagerSaveWithoutStoreIsNoop(t *testing.T) {
	m := NewManager(leaderboard.NewBoard())
	if _, err := m.Create("save-test", "Rin"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := m.Save("save-test"); err != nil {
		t.Errorf("expected a no-op save with no backing store, got %v", err)
	}
}

func TestManagerCount(t *testing.T) {
	m := NewManager(leaderboard.NewBoard())
	if m.Count() != 0 {
		t.Fatalf("expected empty manager, got count %d", m.Count())
	}
	if _, err := m.Create("a", "Rin"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create("b", "Kai"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.Count() != 2 {
		t.Errorf("expected count 2, got %d", m.Count())
	}
}
