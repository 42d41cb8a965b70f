package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type VisionRepository struct {
	db *gorm.DB
}

func NewVisionRepository(db *gorm.DB) *VisionRepository {
	return &VisionRepository{db: db}
}

func (r *VisionRepository) Create(ctx context.Context, vision *model.Vision) error {
	return r.db.WithContext(ctx).Create(vision).Error
}

func (r *VisionRepository) FindByID(ctx context.Context, userID, id string) (*model.Vision, error) {
	var vision model.Vision
	err := r.db.WithContext(ctx).
		First(&vision, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &vision, nil
}

func (r *VisionRepository) List(ctx context.Context, userID string) ([]model.Vision, error) {
	var visions []model.Vision
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&visions).Error
	return visions, err
}

func (r *VisionRepository) ListByYear(ctx context.Context, userID string, year int) ([]model.Vision, error) {
	var visions []model.Vision
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ?", userID, year).
		Order("created_at desc").
		Find(&visions).Error
	return visions, err
}

func (r *VisionRepository) Update(ctx context.Context, vision *model.Vision) error {
	res := r.db.WithContext(ctx).Model(&model.Vision{}).
		Where("id = ? AND user_id = ?", vision.ID, vision.UserID).
		Updates(map[string]interface{}{
			"title":         vision.Title,
			"description":   vision.Description,
			"current_value": vision.CurrentValue,
			"target_value":  vision.TargetValue,
			"unit":          vision.Unit,
			"year":          vision.Year,
			"is_completed":  vision.IsCompleted,
			"completed_at":  vision.CompletedAt,
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

func (r *VisionRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Vision{})
	return res.RowsAffected > 0, res.Error
}
