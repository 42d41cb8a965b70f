package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *GoalRepository) FindByID(ctx context.Context, userID, id string) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.WithContext(ctx).
		First(&goal, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) List(ctx context.Context, userID string) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) ListByMonth(ctx context.Context, userID string, month, year int) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("created_at desc").
		Find(&goals).Error
	return goals, err
}

// Update writes all mutable fields, the completion pair included. Unlike
// tasks, goals may be toggled back to incomplete.
func (r *GoalRepository) Update(ctx context.Context, goal *model.Goal) error {
	res := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Updates(map[string]interface{}{
			"title":         goal.Title,
			"description":   goal.Description,
			"current_value": goal.CurrentValue,
			"target_value":  goal.TargetValue,
			"unit":          goal.Unit,
			"month":         goal.Month,
			"year":          goal.Year,
			"is_completed":  goal.IsCompleted,
			"completed_at":  goal.CompletedAt,
			"updated_at":    time.Now().UTC(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Goal{})
	return res.RowsAffected > 0, res.Error
}
