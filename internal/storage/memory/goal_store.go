package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type GoalStore struct {
	mu    sync.Mutex
	goals map[string]model.Goal
}

func NewGoalStore() *GoalStore {
	return &GoalStore{goals: make(map[string]model.Goal)}
}

var _ storage.GoalStore = (*GoalStore)(nil)

func (s *GoalStore) Create(ctx context.Context, goal *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[goal.ID] = *goal
	return nil
}

func (s *GoalStore) FindByID(ctx context.Context, userID, id string) (*model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal, ok := s.goals[id]
	if !ok || goal.UserID != userID {
		return nil, storage.ErrNotFound
	}
	out := goal
	return &out, nil
}

func (s *GoalStore) List(ctx context.Context, userID string) ([]model.Goal, error) {
	return s.listWhere(userID, func(model.Goal) bool { return true })
}

func (s *GoalStore) ListByMonth(ctx context.Context, userID string, month, year int) ([]model.Goal, error) {
	return s.listWhere(userID, func(g model.Goal) bool { return g.Month == month && g.Year == year })
}

func (s *GoalStore) listWhere(userID string, keep func(model.Goal) bool) ([]model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Goal
	for _, goal := range s.goals {
		if goal.UserID == userID && keep(goal) {
			out = append(out, goal)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *GoalStore) Update(ctx context.Context, goal *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.goals[goal.ID]
	if !ok || existing.UserID != goal.UserID {
		return storage.ErrNotFound
	}

	updated := *goal
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	s.goals[goal.ID] = updated
	return nil
}

func (s *GoalStore) Delete(ctx context.Context, userID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal, ok := s.goals[id]
	if !ok || goal.UserID != userID {
		return false, nil
	}
	delete(s.goals, id)
	return true, nil
}
