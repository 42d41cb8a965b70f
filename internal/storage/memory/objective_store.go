package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type ObjectiveStore struct {
	mu         sync.Mutex
	objectives map[string]model.Objective
}

func NewObjectiveStore() *ObjectiveStore {
	return &ObjectiveStore{objectives: make(map[string]model.Objective)}
}

var _ storage.ObjectiveStore = (*ObjectiveStore)(nil)

func (s *ObjectiveStore) Create(ctx context.Context, objective *model.Objective) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objectives[objective.ID] = *objective
	return nil
}

func (s *ObjectiveStore) FindByID(ctx context.Context, userID, id string) (*model.Objective, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	objective, ok := s.objectives[id]
	if !ok || objective.UserID != userID {
		return nil, storage.ErrNotFound
	}
	out := objective
	return &out, nil
}

func (s *ObjectiveStore) List(ctx context.Context, userID string) ([]model.Objective, error) {
	return s.listWhere(userID, func(model.Objective) bool { return true })
}

func (s *ObjectiveStore) ListByQuarter(ctx context.Context, userID string, quarter, year int) ([]model.Objective, error) {
	return s.listWhere(userID, func(o model.Objective) bool { return o.Quarter == quarter && o.Year == year })
}

func (s *ObjectiveStore) listWhere(userID string, keep func(model.Objective) bool) ([]model.Objective, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Objective
	for _, objective := range s.objectives {
		if objective.UserID == userID && keep(objective) {
			out = append(out, objective)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *ObjectiveStore) Update(ctx context.Context, objective *model.Objective) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.objectives[objective.ID]
	if !ok || existing.UserID != objective.UserID {
		return storage.ErrNotFound
	}

	updated := *objective
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	s.objectives[objective.ID] = updated
	return nil
}

func (s *ObjectiveStore) Delete(ctx context.Context, userID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	objective, ok := s.objectives[id]
	if !ok || objective.UserID != userID {
		return false, nil
	}
	delete(s.objectives, id)
	return true, nil
}
