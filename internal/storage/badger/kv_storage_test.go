package badger

import (
	"context"
	"testing"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
)

func TestKVStorage_SetAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	kv := NewKVStorage(db, common.NewSilentLogger())
	ctx := context.Background()

	if err := kv.Set(ctx, "settings.theme", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, err := kv.Get(ctx, "settings.theme")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "dark" {
		t.Errorf("expected dark, got %s", val)
	}
}

func TestKVStorage_GetNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	kv := NewKVStorage(db, common.NewSilentLogger())

	_, err := kv.Get(context.Background(), "nonexistent-key")
	if err == nil {
		t.Error("expected error for nonexistent key, got nil")
	}
}

func TestKVStorage_Upsert(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	kv := NewKVStorage(db, common.NewSilentLogger())
	ctx := context.Background()

	if err := kv.Set(ctx, "key", "value1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set(ctx, "key", "value2"); err != nil {
		t.Fatalf("Set (upsert) failed: %v", err)
	}

	val, err := kv.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "value2" {
		t.Errorf("expected value2 after upsert, got %s", val)
	}
}

func TestKVStorage_DeleteAndGetAll(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	kv := NewKVStorage(db, common.NewSilentLogger())
	ctx := context.Background()

	if err := kv.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set(ctx, "b", "2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := kv.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	// Deleting a missing key is not an error.
	if err := kv.Delete(ctx, "a"); err != nil {
		t.Errorf("second Delete should be no-op: %v", err)
	}

	all, err := kv.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 1 || all["b"] != "2" {
		t.Errorf("unexpected GetAll result: %v", all)
	}
}
