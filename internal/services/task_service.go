package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"batcave.app/batcave/internal/constants"
	apperrors "batcave.app/batcave/internal/errors"
	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/rewards"
	"batcave.app/batcave/internal/storage"
)

// TaskService owns the task lifecycle: Pending on create, Completed exactly
// once, never back. Rewards are computed at the Pending->Completed transition
// and are not client-settable.
type TaskService struct {
	store storage.TaskStore
}

func NewTaskService(store storage.TaskStore) *TaskService {
	return &TaskService{store: store}
}

type CreateTaskInput struct {
	Title          string
	Description    string
	Domain         constants.TaskDomain
	Priority       constants.TaskPriority
	EstimatedHours *float64
	ActualHours    *float64
	DueDate        *time.Time
}

// TaskPatch carries partial updates; nil means "leave unchanged".
type TaskPatch struct {
	Title          *string
	Description    *string
	Domain         *constants.TaskDomain
	Priority       *constants.TaskPriority
	EstimatedHours *float64
	ActualHours    *float64
	DueDate        *time.Time
	IsCompleted    *bool
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, in CreateTaskInput) (*model.Task, error) {
	now := time.Now().UTC()

	priority := in.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}
	estimated := 1.0
	if in.EstimatedHours != nil {
		estimated = *in.EstimatedHours
	}

	task := &model.Task{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          in.Title,
		Description:    in.Description,
		Domain:         in.Domain,
		Priority:       priority,
		EstimatedHours: estimated,
		ActualHours:    in.ActualHours,
		DueDate:        in.DueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, id string) (*model.Task, error) {
	task, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.store.List(ctx, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, id string, patch TaskPatch) (*model.Task, error) {
	task, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	// The un-complete guard comes before anything else is applied.
	if patch.IsCompleted != nil && !*patch.IsCompleted && task.IsCompleted {
		return nil, apperrors.ErrInvalidTransition
	}

	// Rewards are a function of the task as it was stored, not of whatever
	// the same patch happens to change: a request that bumps priority while
	// completing still scores at the old priority.
	storedPriority := task.Priority
	storedDomain := task.Domain
	storedEstimate := task.EstimatedHours

	applyTaskPatch(task, patch)

	if patch.IsCompleted != nil && *patch.IsCompleted && !task.IsCompleted {
		hours := storedEstimate
		if patch.ActualHours != nil {
			hours = *patch.ActualHours
		}
		now := time.Now().UTC()

		task.IsCompleted = true
		task.CompletedAt = &now
		task.ActualHours = &hours
		task.XPReward = rewards.XP(storedPriority, hours)
		task.EUReward = rewards.EU(storedDomain, hours)

		err := s.store.Complete(ctx, task)
		switch {
		case err == nil:
			return s.GetTask(ctx, userID, id)
		case errors.Is(err, storage.ErrCompletionConflict):
			// A concurrent request won the transition. The winner's
			// completion record stands untouched: re-read the stored row and
			// reapply only this patch's own field changes, so none of the
			// locally-derived completion values reach the store.
			current, ferr := s.store.FindByID(ctx, userID, id)
			if ferr != nil {
				return nil, mapStoreErr(ferr)
			}
			task = current
			applyTaskPatch(task, patch)
		default:
			return nil, err
		}
	}

	if err := s.store.Update(ctx, task); err != nil {
		return nil, mapStoreErr(err)
	}

	// Re-read so the caller sees the stored row, completion fields included.
	updated, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, id string) (bool, error) {
	return s.store.Delete(ctx, userID, id)
}

// applyTaskPatch applies the non-completion, non-reward fields.
func applyTaskPatch(task *model.Task, patch TaskPatch) {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Domain != nil {
		task.Domain = *patch.Domain
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.EstimatedHours != nil {
		task.EstimatedHours = *patch.EstimatedHours
	}
	if patch.ActualHours != nil {
		task.ActualHours = patch.ActualHours
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
}

func mapStoreErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
