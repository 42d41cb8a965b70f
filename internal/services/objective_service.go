package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type ObjectiveService struct {
	store storage.ObjectiveStore
}

func NewObjectiveService(store storage.ObjectiveStore) *ObjectiveService {
	return &ObjectiveService{store: store}
}

type CreateObjectiveInput struct {
	Title        string
	Description  string
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Quarter      int
	Year         int
}

type ObjectivePatch struct {
	Title        *string
	Description  *string
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	Quarter      *int
	Year         *int
	IsCompleted  *bool
}

func (s *ObjectiveService) CreateObjective(ctx context.Context, userID string, in CreateObjectiveInput) (*model.Objective, error) {
	now := time.Now().UTC()
	objective := &model.Objective{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		CurrentValue: in.CurrentValue,
		TargetValue:  in.TargetValue,
		Unit:         in.Unit,
		Quarter:      in.Quarter,
		Year:         in.Year,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, objective); err != nil {
		return nil, err
	}
	return objective, nil
}

func (s *ObjectiveService) GetObjective(ctx context.Context, userID, id string) (*model.Objective, error) {
	objective, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return objective, nil
}

func (s *ObjectiveService) ListObjectives(ctx context.Context, userID string, quarter, year *int) ([]model.Objective, error) {
	if quarter != nil && year != nil {
		return s.store.ListByQuarter(ctx, userID, *quarter, *year)
	}
	return s.store.List(ctx, userID)
}

func (s *ObjectiveService) UpdateObjective(ctx context.Context, userID, id string, patch ObjectivePatch) (*model.Objective, error) {
	objective, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if patch.Title != nil {
		objective.Title = *patch.Title
	}
	if patch.Description != nil {
		objective.Description = *patch.Description
	}
	if patch.TargetValue != nil {
		objective.TargetValue = *patch.TargetValue
	}
	if patch.CurrentValue != nil {
		objective.CurrentValue = *patch.CurrentValue
	}
	if patch.Unit != nil {
		objective.Unit = *patch.Unit
	}
	if patch.Quarter != nil {
		objective.Quarter = *patch.Quarter
	}
	if patch.Year != nil {
		objective.Year = *patch.Year
	}
	if patch.IsCompleted != nil {
		applyProgressCompletion(&objective.IsCompleted, &objective.CompletedAt, *patch.IsCompleted)
	}

	if err := s.store.Update(ctx, objective); err != nil {
		return nil, mapStoreErr(err)
	}
	return s.GetObjective(ctx, userID, id)
}

func (s *ObjectiveService) DeleteObjective(ctx context.Context, userID, id string) (bool, error) {
	return s.store.Delete(ctx, userID, id)
}
