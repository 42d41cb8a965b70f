package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"batcave.app/batcave/internal/constants"
	apperrors "batcave.app/batcave/internal/errors"
	model "batcave.app/batcave/internal/models"
	repository "batcave.app/batcave/internal/repositories"
	"batcave.app/batcave/internal/storage/memory"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Task{}, &model.Goal{}, &model.Objective{}, &model.Vision{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTaskService(t *testing.T) *TaskService {
	return NewTaskService(repository.NewTaskRepository(setupTestDB(t)))
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }

func priorityPtr(v constants.TaskPriority) *constants.TaskPriority { return &v }

func TestCreateTaskDefaults(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:  "Patrol the narrows",
		Domain: constants.DomainFitness,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if task.ID == "" {
		t.Error("expected task ID to be set")
	}
	if task.Priority != constants.PriorityMedium {
		t.Errorf("expected default priority medium, got %s", task.Priority)
	}
	if task.EstimatedHours != 1.0 {
		t.Errorf("expected default estimated hours 1.0, got %v", task.EstimatedHours)
	}
	if task.IsCompleted {
		t.Error("new task must be pending")
	}
	if task.XPReward != 0 || task.EUReward != 0 {
		t.Errorf("new task must carry zero rewards, got xp=%d eu=%d", task.XPReward, task.EUReward)
	}
	if task.CompletedAt != nil {
		t.Error("new task must have no completion timestamp")
	}
}

func TestCreateThenReadBack(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	due := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	created, err := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:          "Write thesis chapter",
		Description:    "Chapter 3, methods",
		Domain:         constants.DomainAcademic,
		Priority:       constants.PriorityHigh,
		EstimatedHours: floatPtr(2.5),
		DueDate:        &due,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	fetched, err := service.GetTask(ctx, "bruce", created.ID)
	if err != nil {
		t.Fatalf("failed to read task back: %v", err)
	}

	if fetched.Title != created.Title ||
		fetched.Description != created.Description ||
		fetched.Domain != created.Domain ||
		fetched.Priority != created.Priority ||
		fetched.EstimatedHours != created.EstimatedHours {
		t.Errorf("read-back fields differ: got %+v, want %+v", fetched, created)
	}
	if fetched.DueDate == nil || !fetched.DueDate.Equal(due) {
		t.Errorf("due date mismatch: got %v, want %v", fetched.DueDate, due)
	}
	if fetched.XPReward != 0 || fetched.EUReward != 0 {
		t.Error("read-back task must carry zero rewards")
	}
}

func TestCompleteWithActualHours(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:          "Interval training",
		Domain:         constants.DomainFitness,
		Priority:       constants.PriorityHigh,
		EstimatedHours: floatPtr(1.0),
	})

	updated, err := service.UpdateTask(ctx, "bruce", task.ID, TaskPatch{
		IsCompleted: boolPtr(true),
		ActualHours: floatPtr(2.0),
	})
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	if !updated.IsCompleted {
		t.Fatal("task should be completed")
	}
	if updated.XPReward != 50 {
		t.Errorf("expected xp 50, got %d", updated.XPReward)
	}
	if updated.EUReward != 50 {
		t.Errorf("expected eu 50, got %d", updated.EUReward)
	}
	if updated.ActualHours == nil || *updated.ActualHours != 2.0 {
		t.Errorf("expected actual hours 2.0, got %v", updated.ActualHours)
	}
	if updated.CompletedAt == nil {
		t.Error("expected completion timestamp")
	}
}

func TestCompleteFallsBackToEstimatedHours(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:          "Grant proposal",
		Domain:         constants.DomainAcademic,
		Priority:       constants.PriorityUrgent,
		EstimatedHours: floatPtr(3.0),
	})

	updated, err := service.UpdateTask(ctx, "bruce", task.ID, TaskPatch{
		IsCompleted: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	if updated.ActualHours == nil || *updated.ActualHours != 3.0 {
		t.Errorf("expected actual hours to fall back to estimate 3.0, got %v", updated.ActualHours)
	}
	if updated.XPReward != 120 {
		t.Errorf("expected xp 120, got %d", updated.XPReward)
	}
	if updated.EUReward != 30 {
		t.Errorf("expected eu 30, got %d", updated.EUReward)
	}
}

func TestCompletionScoresStoredFields(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:          "File the patent",
		Domain:         constants.DomainAcademic,
		Priority:       constants.PriorityLow,
		EstimatedHours: floatPtr(1.0),
	})

	// Bumping priority and estimate in the same request as the completion
	// must not inflate the score: rewards come from the stored low/1.0.
	updated, err := service.UpdateTask(ctx, "bruce", task.ID, TaskPatch{
		Priority:       priorityPtr(constants.PriorityUrgent),
		EstimatedHours: floatPtr(10.0),
		IsCompleted:    boolPtr(true),
	})
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	if updated.XPReward != 10 {
		t.Errorf("expected xp 10 from stored priority and estimate, got %d", updated.XPReward)
	}
	if updated.EUReward != 10 {
		t.Errorf("expected eu 10 from stored domain and estimate, got %d", updated.EUReward)
	}
	if updated.ActualHours == nil || *updated.ActualHours != 1.0 {
		t.Errorf("expected actual hours from stored estimate 1.0, got %v", updated.ActualHours)
	}

	// The patched fields themselves still land.
	if updated.Priority != constants.PriorityUrgent || updated.EstimatedHours != 10.0 {
		t.Errorf("patched fields not applied: %+v", updated)
	}
}

func TestUncompleteRejected(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:  "Service the grapnel",
		Domain: constants.DomainMaintenance,
	})
	completed, err := service.UpdateTask(ctx, "bruce", task.ID, TaskPatch{IsCompleted: boolPtr(true)})
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	_, err = service.UpdateTask(ctx, "bruce", task.ID, TaskPatch{
		IsCompleted: boolPtr(false),
		Title:       strPtr("should not be applied"),
	})
	if !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// The failed update must leave the stored task untouched.
	stored, _ := service.GetTask(ctx, "bruce", task.ID)
	if stored.Title != task.Title {
		t.Errorf("title changed despite rejected transition: %q", stored.Title)
	}
	if !stored.IsCompleted || stored.XPReward != completed.XPReward {
		t.Error("completion state changed despite rejected transition")
	}
}

func TestSecondCompletionKeepsRewards(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:          "Sketch practice",
		Domain:         constants.DomainCreative,
		Priority:       constants.PriorityLow,
		EstimatedHours: floatPtr(2.0),
	})
	first, err := service.UpdateTask(ctx, "bruce", task.ID, TaskPatch{IsCompleted: boolPtr(true)})
	if err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	second, err := service.UpdateTask(ctx, "bruce", task.ID, TaskPatch{IsCompleted: boolPtr(true)})
	if err != nil {
		t.Fatalf("second completion should be accepted: %v", err)
	}

	if second.XPReward != first.XPReward || second.EUReward != first.EUReward {
		t.Errorf("rewards recomputed: first xp=%d eu=%d, second xp=%d eu=%d",
			first.XPReward, first.EUReward, second.XPReward, second.EUReward)
	}
	if second.CompletedAt == nil || !second.CompletedAt.Equal(*first.CompletedAt) {
		t.Errorf("completion timestamp changed: first %v, second %v", first.CompletedAt, second.CompletedAt)
	}
}

func TestUpdateAfterCompletionKeepsRewards(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:    "Call Lucius",
		Domain:   constants.DomainSocial,
		Priority: constants.PriorityMedium,
	})
	first, _ := service.UpdateTask(ctx, "bruce", task.ID, TaskPatch{IsCompleted: boolPtr(true)})

	updated, err := service.UpdateTask(ctx, "bruce", task.ID, TaskPatch{
		Title: strPtr("Call Lucius about the prototype"),
	})
	if err != nil {
		t.Fatalf("field update on completed task should succeed: %v", err)
	}
	if updated.Title != "Call Lucius about the prototype" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.XPReward != first.XPReward || updated.EUReward != first.EUReward {
		t.Error("rewards changed on a non-transition update")
	}
	if !updated.IsCompleted {
		t.Error("task must stay completed")
	}
}

// staleReadTaskStore serves one stale snapshot on the first read and the live
// row afterwards, reproducing the window between a completion's read and its
// conditional write.
type staleReadTaskStore struct {
	*memory.TaskStore
	stale  *model.Task
	served bool
}

func (s *staleReadTaskStore) FindByID(ctx context.Context, userID, id string) (*model.Task, error) {
	if !s.served && s.stale != nil && s.stale.ID == id {
		s.served = true
		out := *s.stale
		return &out, nil
	}
	return s.TaskStore.FindByID(ctx, userID, id)
}

func TestConcurrentCompletionKeepsWinnerRecord(t *testing.T) {
	inner := memory.NewTaskStore()
	ctx := context.Background()

	now := time.Now().UTC()
	pending := &model.Task{
		ID:             "t1",
		UserID:         "bruce",
		Title:          "Patrol",
		Domain:         constants.DomainFitness,
		Priority:       constants.PriorityHigh,
		EstimatedHours: 1.0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := inner.Create(ctx, pending); err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	stale := *pending

	// The winning request completes with actual hours 2.0.
	winnerHours := 2.0
	completedAt := now
	winner := *pending
	winner.ActualHours = &winnerHours
	winner.CompletedAt = &completedAt
	winner.XPReward = 50
	winner.EUReward = 50
	if err := inner.Complete(ctx, &winner); err != nil {
		t.Fatalf("failed to complete as winner: %v", err)
	}

	// The losing request read the task while it was still pending and
	// completes with no actual hours of its own.
	service := NewTaskService(&staleReadTaskStore{TaskStore: inner, stale: &stale})
	updated, err := service.UpdateTask(ctx, "bruce", "t1", TaskPatch{
		IsCompleted: boolPtr(true),
		Description: strPtr("swept the docks"),
	})
	if err != nil {
		t.Fatalf("losing completion must still apply its field changes: %v", err)
	}

	if updated.ActualHours == nil || *updated.ActualHours != 2.0 {
		t.Errorf("winner's actual hours clobbered: got %v, want 2.0", updated.ActualHours)
	}
	if updated.XPReward != 50 || updated.EUReward != 50 {
		t.Errorf("winner's rewards changed: xp=%d eu=%d", updated.XPReward, updated.EUReward)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(completedAt) {
		t.Errorf("winner's completion timestamp changed: %v", updated.CompletedAt)
	}
	if !updated.IsCompleted {
		t.Error("task must stay completed")
	}
	if updated.Description != "swept the docks" {
		t.Errorf("loser's field change lost: %q", updated.Description)
	}

	// The stored row agrees with the response.
	stored, _ := inner.FindByID(ctx, "bruce", "t1")
	if stored.ActualHours == nil || *stored.ActualHours != 2.0 || stored.XPReward != 50 {
		t.Errorf("stored completion record corrupted: %+v", stored)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:  "Secret project",
		Domain: constants.DomainCreative,
	})

	if _, err := service.GetTask(ctx, "joker", task.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign read, got %v", err)
	}

	_, err := service.UpdateTask(ctx, "joker", task.ID, TaskPatch{Title: strPtr("hijacked")})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign update, got %v", err)
	}

	deleted, err := service.DeleteTask(ctx, "joker", task.ID)
	if err != nil {
		t.Fatalf("foreign delete errored: %v", err)
	}
	if deleted {
		t.Error("foreign delete must not remove the task")
	}

	stored, err := service.GetTask(ctx, "bruce", task.ID)
	if err != nil || stored.Title != "Secret project" {
		t.Errorf("task leaked or changed: %v, %+v", err, stored)
	}
}

func TestDeleteSignaling(t *testing.T) {
	service := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:  "Inventory batarangs",
		Domain: constants.DomainMaintenance,
	})

	deleted, err := service.DeleteTask(ctx, "bruce", task.ID)
	if err != nil || !deleted {
		t.Fatalf("expected successful delete, got deleted=%v err=%v", deleted, err)
	}

	if _, err := service.GetTask(ctx, "bruce", task.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	deleted, err = service.DeleteTask(ctx, "bruce", task.ID)
	if err != nil {
		t.Fatalf("repeat delete errored: %v", err)
	}
	if deleted {
		t.Error("repeat delete must report false, not error")
	}

	deleted, err = service.DeleteTask(ctx, "bruce", "no-such-id")
	if err != nil || deleted {
		t.Errorf("deleting unknown id must report false without error, got deleted=%v err=%v", deleted, err)
	}
}
