package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type VisionStore struct {
	mu      sync.Mutex
	visions map[string]model.Vision
}

func NewVisionStore() *VisionStore {
	return &VisionStore{visions: make(map[string]model.Vision)}
}

var _ storage.VisionStore = (*VisionStore)(nil)

func (s *VisionStore) Create(ctx context.Context, vision *model.Vision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visions[vision.ID] = *vision
	return nil
}

func (s *VisionStore) FindByID(ctx context.Context, userID, id string) (*model.Vision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vision, ok := s.visions[id]
	if !ok || vision.UserID != userID {
		return nil, storage.ErrNotFound
	}
	out := vision
	return &out, nil
}

func (s *VisionStore) List(ctx context.Context, userID string) ([]model.Vision, error) {
	return s.listWhere(userID, func(model.Vision) bool { return true })
}

func (s *VisionStore) ListByYear(ctx context.Context, userID string, year int) ([]model.Vision, error) {
	return s.listWhere(userID, func(v model.Vision) bool { return v.Year == year })
}

func (s *VisionStore) listWhere(userID string, keep func(model.Vision) bool) ([]model.Vision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Vision
	for _, vision := range s.visions {
		if vision.UserID == userID && keep(vision) {
			out = append(out, vision)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *VisionStore) Update(ctx context.Context, vision *model.Vision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.visions[vision.ID]
	if !ok || existing.UserID != vision.UserID {
		return storage.ErrNotFound
	}

	updated := *vision
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	s.visions[vision.ID] = updated
	return nil
}

func (s *VisionStore) Delete(ctx context.Context, userID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vision, ok := s.visions[id]
	if !ok || vision.UserID != userID {
		return false, nil
	}
	delete(s.visions, id)
	return true, nil
}
