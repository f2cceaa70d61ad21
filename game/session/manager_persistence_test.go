package session

import (
	"os"
	"testing"

	"github.com/lastcentaur/engine/game/leaderboard"
)

func TestManagerWithStoreSaveAndReload(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "manager_persistence_test_*")
	if err != nil {
		t.Fatalf("mkdtemp: %v", err)
	}
	defer os.RemoveAll(tempDir)

	store, err := NewFilePersistence(tempDir)
	if err != nil {
		t.Fatalf("new file persistence: %v", err)
	}

	board := leaderboard.NewBoard()
	manager := NewManagerWithStore(board, store)

	e, err := manager.Create("save1", "Rin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	e.Player.Inventory = append(e.Player.Inventory, "flint_and_steel")

	t.Run("save writes to the backing store", func(t *testing.T) {
		if err := manager.Save("save1"); err != nil {
			t.Fatalf("save: %v", err)
		}
		_, found, err := store.Get("save1")
		if err != nil {
			t.Fatalf("store get: %v", err)
		}
		if !found {
			t.Error("expected snapshot file to exist after save")
		}
	})

	t.Run("a fresh manager loads from the store on Get", func(t *testing.T) {
		manager2 := NewManagerWithStore(board, store)
		loaded, err := manager2.Get("save1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if loaded.InstanceID != "save1" {
			t.Errorf("expected instance id save1, got %s", loaded.InstanceID)
		}
		if len(loaded.Player.Inventory) != 1 || loaded.Player.Inventory[0] != "flint_and_steel" {
			t.Errorf("expected restored inventory to contain flint_and_steel, got %v", loaded.Player.Inventory)
		}
	})

	t.Run("LoadAllFromStore pulls every persisted id into memory", func(t *testing.T) {
		if _, err := manager.Create("save2", "Kai"); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := manager.SaveAll(); err != nil {
			t.Fatalf("save all: %v", err)
		}

		manager3 := NewManagerWithStore(board, store)
		if err := manager3.LoadAllFromStore(); err != nil {
			t.Fatalf("load all: %v", err)
		}
		if manager3.Count() < 2 {
			t.Errorf("expected at least 2 instances loaded, got %d", manager3.Count())
		}
	})

	t.Run("delete removes the store file too", func(t *testing.T) {
		if err := manager.Delete("save1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, found, err := store.Get("save1"); err != nil || found {
			t.Errorf("expected save1 gone from the store, found=%v err=%v", found, err)
		}
	})
}
