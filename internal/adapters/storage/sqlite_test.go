package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xvierd/pomodomate/internal/domain"
)

func TestNewMemory(t *testing.T) {
	store, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	if store == nil {
		t.Error("NewMemory() returned nil store")
	}
}

func TestStore_GetMissing(t *testing.T) {
	store, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	_, err = store.Get(context.Background(), "coins")
	if err != domain.ErrKeyNotFound {
		t.Errorf("Get() error = %v, want ErrKeyNotFound", err)
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store, _ := NewMemory()
	defer func() { _ = store.Close() }()

	ctx := context.Background()

	t.Run("insert", func(t *testing.T) {
		if err := store.Put(ctx, "coins", []byte("3")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := store.Get(ctx, "coins")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != "3" {
			t.Errorf("Get() = %q, want %q", got, "3")
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := store.Put(ctx, "coins", []byte("4")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, _ := store.Get(ctx, "coins")
		if string(got) != "4" {
			t.Errorf("Get() = %q, want %q", got, "4")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		settings := `{"work":30,"shortBreak":5,"longBreak":15}`
		if err := store.Put(ctx, "settings", []byte(settings)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, _ := store.Get(ctx, "settings")
		if string(got) != settings {
			t.Errorf("Get(settings) = %q, want %q", got, settings)
		}
		coins, _ := store.Get(ctx, "coins")
		if string(coins) != "4" {
			t.Errorf("Get(coins) = %q, want %q", coins, "4")
		}
	})
}

func TestStore_Clear(t *testing.T) {
	store, _ := NewMemory()
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	_ = store.Put(ctx, "coins", []byte("9"))
	_ = store.Put(ctx, "streakDays", []byte("2"))

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	for _, key := range []string{"coins", "streakDays"} {
		if _, err := store.Get(ctx, key); err != domain.ErrKeyNotFound {
			t.Errorf("Get(%q) after Clear() error = %v, want ErrKeyNotFound", key, err)
		}
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomodomate.db")
	ctx := context.Background()

	store, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := store.Put(ctx, "lastCompletionDate", []byte(`"2026-03-10"`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	_ = store.Close()

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("New() reopen error = %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "lastCompletionDate")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `"2026-03-10"` {
		t.Errorf("Get() = %q, want %q", got, `"2026-03-10"`)
	}
}

func TestStore_ClosedReturnsError(t *testing.T) {
	store, _ := NewMemory()
	_ = store.Close()

	if err := store.Put(context.Background(), "coins", []byte("1")); err == nil {
		t.Error("Put() on closed store should return an error")
	}
}
