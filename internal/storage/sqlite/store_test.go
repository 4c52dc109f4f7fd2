package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "flowdeck.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNotFoundSentinel(t *testing.T) {
	store := newTestStore(t)

	t.Run("task", func(t *testing.T) {
		if _, err := store.GetTask("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetTask: expected ErrNotFound, got %v", err)
		}
		if err := store.DeleteTask("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteTask: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("category", func(t *testing.T) {
		if err := store.DeleteCategory("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteCategory: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("preset", func(t *testing.T) {
		if _, err := store.GetPreset("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetPreset: expected ErrNotFound, got %v", err)
		}
		if err := store.DeletePreset("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeletePreset: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("session", func(t *testing.T) {
		if _, err := store.GetSession("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetSession: expected ErrNotFound, got %v", err)
		}
		if err := store.DeleteSession("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteSession: expected ErrNotFound, got %v", err)
		}
	})
}

func TestTaskRoundTrip(t *testing.T) {
	store := newTestStore(t)

	task := models.Task{
		ID:       "t1",
		Title:    "write report",
		Datetime: time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC),
		Priority: models.PriorityHigh,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	got, err := store.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Title != task.Title || !got.Datetime.Equal(task.Datetime) || got.Priority != task.Priority {
		t.Errorf("GetTask returned %+v, want %+v", got, task)
	}

	if err := store.DeleteTask("t1"); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := store.GetTask("t1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
