package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStore_SetGetRoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitloop.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if err := store.Set("user", `{"name":"Sam","premium":true}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Overwrite must replace, not duplicate
	if err := store.Set("user", `{"name":"Alex","premium":false}`); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	value, ok, err := store.Get("user")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != `{"name":"Alex","premium":false}` {
		t.Errorf("expected overwritten value, got %q (ok=%t)", value, ok)
	}
}

func TestSQLiteStore_AbsentKey(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitloop.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	_, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expected absent key to report ok=false")
	}
}

func TestSQLiteStore_LoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))

	if err := store.Load(); err == nil {
		t.Error("expected Load to fail for uninitialized storage")
	}
}
