package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilePersistence(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "file_persistence_test_*")
	if err != nil {
		t.Fatalf("mkdtemp: %v", err)
	}
	defer os.RemoveAll(tempDir)

	fp, err := NewFilePersistence(filepath.Join(tempDir, "sessions"))
	if err != nil {
		t.Fatalf("new file persistence: %v", err)
	}

	t.Run("get on an empty store reports not found", func(t *testing.T) {
		_, found, err := fp.Get("nope")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if found {
			t.Error("expected found=false for a missing instance")
		}
	})

	t.Run("put then get round-trips the bytes", func(t *testing.T) {
		if err := fp.Put("inst-1", []byte(`{"instance_id":"inst-1"}`)); err != nil {
			t.Fatalf("put: %v", err)
		}
		data, found, err := fp.Get("inst-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !found {
			t.Fatal("expected found=true after put")
		}
		if string(data) != `{"instance_id":"inst-1"}` {
			t.Errorf("unexpected data: %s", data)
		}
	})

	t.Run("list all returns every put instance id", func(t *testing.T) {
		if err := fp.Put("inst-2", []byte(`{}`)); err != nil {
			t.Fatalf("put: %v", err)
		}
		ids, err := fp.ListAll()
		if err != nil {
			t.Fatalf("list all: %v", err)
		}
		seen := map[string]bool{}
		for _, id := range ids {
			seen[id] = true
		}
		if !seen["inst-1"] || !seen["inst-2"] {
			t.Errorf("expected inst-1 and inst-2 in list, got %v", ids)
		}
	})

	t.Run("delete removes the file", func(t *testing.T) {
		if err := fp.Delete("inst-1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		_, found, err := fp.Get("inst-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if found {
			t.Error("expected inst-1 gone after delete")
		}
	})

	t.Run("delete is tolerant of an already-missing file", func(t *testing.T) {
		if err := fp.Delete("never-existed"); err != nil {
			t.Errorf("expected no error deleting a missing instance, got %v", err)
		}
	})
}
