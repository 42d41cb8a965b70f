package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

// GoalService is plain CRUD over monthly goals. Progress is tracked by
// direct value updates and, unlike tasks, the completion flag may be
// toggled in both directions.
type GoalService struct {
	store storage.GoalStore
}

func NewGoalService(store storage.GoalStore) *GoalService {
	return &GoalService{store: store}
}

type CreateGoalInput struct {
	Title        string
	Description  string
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Month        int
	Year         int
}

type GoalPatch struct {
	Title        *string
	Description  *string
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	Month        *int
	Year         *int
	IsCompleted  *bool
}

func (s *GoalService) CreateGoal(ctx context.Context, userID string, in CreateGoalInput) (*model.Goal, error) {
	now := time.Now().UTC()
	goal := &model.Goal{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		CurrentValue: in.CurrentValue,
		TargetValue:  in.TargetValue,
		Unit:         in.Unit,
		Month:        in.Month,
		Year:         in.Year,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) GetGoal(ctx context.Context, userID, id string) (*model.Goal, error) {
	goal, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return goal, nil
}

// ListGoals returns all goals, or only the given month's when month and year
// are both set.
func (s *GoalService) ListGoals(ctx context.Context, userID string, month, year *int) ([]model.Goal, error) {
	if month != nil && year != nil {
		return s.store.ListByMonth(ctx, userID, *month, *year)
	}
	return s.store.List(ctx, userID)
}

func (s *GoalService) UpdateGoal(ctx context.Context, userID, id string, patch GoalPatch) (*model.Goal, error) {
	goal, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if patch.Title != nil {
		goal.Title = *patch.Title
	}
	if patch.Description != nil {
		goal.Description = *patch.Description
	}
	if patch.TargetValue != nil {
		goal.TargetValue = *patch.TargetValue
	}
	if patch.CurrentValue != nil {
		goal.CurrentValue = *patch.CurrentValue
	}
	if patch.Unit != nil {
		goal.Unit = *patch.Unit
	}
	if patch.Month != nil {
		goal.Month = *patch.Month
	}
	if patch.Year != nil {
		goal.Year = *patch.Year
	}
	if patch.IsCompleted != nil {
		applyProgressCompletion(&goal.IsCompleted, &goal.CompletedAt, *patch.IsCompleted)
	}

	if err := s.store.Update(ctx, goal); err != nil {
		return nil, mapStoreErr(err)
	}
	return s.GetGoal(ctx, userID, id)
}

func (s *GoalService) DeleteGoal(ctx context.Context, userID, id string) (bool, error) {
	return s.store.Delete(ctx, userID, id)
}

// applyProgressCompletion toggles a goal/objective/vision completion pair.
// Completing stamps the timestamp once; reopening clears it.
func applyProgressCompletion(isCompleted *bool, completedAt **time.Time, want bool) {
	if want && !*isCompleted {
		now := time.Now().UTC()
		*completedAt = &now
	}
	if !want {
		*completedAt = nil
	}
	*isCompleted = want
}
