package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type VisionService struct {
	store storage.VisionStore
}

func NewVisionService(store storage.VisionStore) *VisionService {
	return &VisionService{store: store}
}

type CreateVisionInput struct {
	Title        string
	Description  string
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Year         int
}

type VisionPatch struct {
	Title        *string
	Description  *string
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	Year         *int
	IsCompleted  *bool
}

func (s *VisionService) CreateVision(ctx context.Context, userID string, in CreateVisionInput) (*model.Vision, error) {
	now := time.Now().UTC()
	vision := &model.Vision{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		CurrentValue: in.CurrentValue,
		TargetValue:  in.TargetValue,
		Unit:         in.Unit,
		Year:         in.Year,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, vision); err != nil {
		return nil, err
	}
	return vision, nil
}

func (s *VisionService) GetVision(ctx context.Context, userID, id string) (*model.Vision, error) {
	vision, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return vision, nil
}

func (s *VisionService) ListVisions(ctx context.Context, userID string, year *int) ([]model.Vision, error) {
	if year != nil {
		return s.store.ListByYear(ctx, userID, *year)
	}
	return s.store.List(ctx, userID)
}

func (s *VisionService) UpdateVision(ctx context.Context, userID, id string, patch VisionPatch) (*model.Vision, error) {
	vision, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if patch.Title != nil {
		vision.Title = *patch.Title
	}
	if patch.Description != nil {
		vision.Description = *patch.Description
	}
	if patch.TargetValue != nil {
		vision.TargetValue = *patch.TargetValue
	}
	if patch.CurrentValue != nil {
		vision.CurrentValue = *patch.CurrentValue
	}
	if patch.Unit != nil {
		vision.Unit = *patch.Unit
	}
	if patch.Year != nil {
		vision.Year = *patch.Year
	}
	if patch.IsCompleted != nil {
		applyProgressCompletion(&vision.IsCompleted, &vision.CompletedAt, *patch.IsCompleted)
	}

	if err := s.store.Update(ctx, vision); err != nil {
		return nil, mapStoreErr(err)
	}
	return s.GetVision(ctx, userID, id)
}

func (s *VisionService) DeleteVision(ctx context.Context, userID, id string) (bool, error) {
	return s.store.Delete(ctx, userID, id)
}
