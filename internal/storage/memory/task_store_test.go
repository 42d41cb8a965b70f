package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"batcave.app/batcave/internal/constants"
	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

func seedTask(t *testing.T, store *TaskStore, id, userID string) *model.Task {
	t.Helper()
	now := time.Now().UTC()
	task := &model.Task{
		ID:             id,
		UserID:         userID,
		Title:          "Patrol",
		Domain:         constants.DomainFitness,
		Priority:       constants.PriorityHigh,
		EstimatedHours: 2,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := store.Create(context.Background(), task); err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}

func TestCompleteIsConditional(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()
	task := seedTask(t, store, "t1", "bruce")

	hours := 2.0
	now := time.Now().UTC()
	task.ActualHours = &hours
	task.CompletedAt = &now
	task.XPReward = 50
	task.EUReward = 50

	if err := store.Complete(ctx, task); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}

	// The pending-row predicate must reject the second attempt.
	err := store.Complete(ctx, task)
	if !errors.Is(err, storage.ErrCompletionConflict) {
		t.Fatalf("expected ErrCompletionConflict, got %v", err)
	}

	stored, _ := store.FindByID(ctx, "bruce", "t1")
	if stored.XPReward != 50 || !stored.IsCompleted {
		t.Errorf("completion state corrupted: %+v", stored)
	}
}

func TestUpdateNeverTouchesCompletionFields(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()
	task := seedTask(t, store, "t1", "bruce")

	hours := 2.0
	now := time.Now().UTC()
	completed := *task
	completed.ActualHours = &hours
	completed.CompletedAt = &now
	completed.XPReward = 50
	completed.EUReward = 50
	if err := store.Complete(ctx, &completed); err != nil {
		t.Fatalf("completion failed: %v", err)
	}

	// A stale update carrying pending-state fields must not regress the row.
	stale := *task
	stale.Title = "Patrol, extended"
	if err := store.Update(ctx, &stale); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, _ := store.FindByID(ctx, "bruce", "t1")
	if stored.Title != "Patrol, extended" {
		t.Errorf("title not updated: %q", stored.Title)
	}
	if !stored.IsCompleted || stored.XPReward != 50 || stored.CompletedAt == nil {
		t.Errorf("update regressed completion fields: %+v", stored)
	}
}

func TestFindScopedByOwner(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()
	seedTask(t, store, "t1", "bruce")

	if _, err := store.FindByID(ctx, "joker", "t1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign owner, got %v", err)
	}

	deleted, err := store.Delete(ctx, "joker", "t1")
	if err != nil || deleted {
		t.Errorf("foreign delete must be a no-op, got deleted=%v err=%v", deleted, err)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()

	older := seedTask(t, store, "t1", "bruce")
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	_ = store.Create(ctx, older)
	seedTask(t, store, "t2", "bruce")

	tasks, err := store.List(ctx, "bruce")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "t2" {
		t.Errorf("expected newest first, got %+v", tasks)
	}
}
