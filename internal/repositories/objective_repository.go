package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type ObjectiveRepository struct {
	db *gorm.DB
}

func NewObjectiveRepository(db *gorm.DB) *ObjectiveRepository {
	return &ObjectiveRepository{db: db}
}

func (r *ObjectiveRepository) Create(ctx context.Context, objective *model.Objective) error {
	return r.db.WithContext(ctx).Create(objective).Error
}

func (r *ObjectiveRepository) FindByID(ctx context.Context, userID, id string) (*model.Objective, error) {
	var objective model.Objective
	err := r.db.WithContext(ctx).
		First(&objective, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &objective, nil
}

func (r *ObjectiveRepository) List(ctx context.Context, userID string) ([]model.Objective, error) {
	var objectives []model.Objective
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&objectives).Error
	return objectives, err
}

func (r *ObjectiveRepository) ListByQuarter(ctx context.Context, userID string, quarter, year int) ([]model.Objective, error) {
	var objectives []model.Objective
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND quarter = ? AND year = ?", userID, quarter, year).
		Order("created_at desc").
		Find(&objectives).Error
	return objectives, err
}

func (r *ObjectiveRepository) Update(ctx context.Context, objective *model.Objective) error {
	res := r.db.WithContext(ctx).Model(&model.Objective{}).
		Where("id = ? AND user_id = ?", objective.ID, objective.UserID).
		Updates(map[string]interface{}{
			"title":         objective.Title,
			"description":   objective.Description,
			"current_value": objective.CurrentValue,
			"target_value":  objective.TargetValue,
			"unit":          objective.Unit,
			"quarter":       objective.Quarter,
			"year":          objective.Year,
			"is_completed":  objective.IsCompleted,
			"completed_at":  objective.CompletedAt,
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

func (r *ObjectiveRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Objective{})
	return res.RowsAffected > 0, res.Error
}
