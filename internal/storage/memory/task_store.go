// Package memory holds in-memory arenas implementing the storage interfaces.
// They back tests and local development; the relational implementations in
// internal/repositories are used in production.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type TaskStore struct {
	mu    sync.Mutex
	tasks map[string]model.Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[string]model.Task)}
}

var _ storage.TaskStore = (*TaskStore)(nil)

func (s *TaskStore) Create(ctx context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *task
	return nil
}

func (s *TaskStore) FindByID(ctx context.Context, userID, id string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return nil, storage.ErrNotFound
	}
	out := task
	return &out, nil
}

func (s *TaskStore) List(ctx context.Context, userID string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Task
	for _, task := range s.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *TaskStore) Update(ctx context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return storage.ErrNotFound
	}

	// Mutable fields only; completion and rewards change through Complete.
	existing.Title = task.Title
	existing.Description = task.Description
	existing.Domain = task.Domain
	existing.Priority = task.Priority
	existing.EstimatedHours = task.EstimatedHours
	existing.ActualHours = task.ActualHours
	existing.DueDate = task.DueDate
	existing.UpdatedAt = time.Now().UTC()

	s.tasks[task.ID] = existing
	return nil
}

func (s *TaskStore) Complete(ctx context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tasks[task.ID]
	if !ok || existing.UserID != task.UserID || existing.IsCompleted {
		return storage.ErrCompletionConflict
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Domain = task.Domain
	existing.Priority = task.Priority
	existing.EstimatedHours = task.EstimatedHours
	existing.ActualHours = task.ActualHours
	existing.DueDate = task.DueDate
	existing.IsCompleted = true
	existing.CompletedAt = task.CompletedAt
	existing.XPReward = task.XPReward
	existing.EUReward = task.EUReward
	existing.UpdatedAt = time.Now().UTC()

	s.tasks[task.ID] = existing
	return nil
}

func (s *TaskStore) Delete(ctx context.Context, userID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return false, nil
	}
	delete(s.tasks, id)
	return true, nil
}
