package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	model "batcave.app/batcave/internal/models"
	"batcave.app/batcave/internal/storage"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		First(&task, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

// Update writes mutable fields only. Completion and reward columns are out of
// reach here; they change through Complete.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"title":           task.Title,
			"description":     task.Description,
			"domain":          task.Domain,
			"priority":        task.Priority,
			"estimated_hours": task.EstimatedHours,
			"actual_hours":    task.ActualHours,
			"due_date":        task.DueDate,
			"updated_at":      time.Now().UTC(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Complete performs the pending-to-completed transition as one conditional
// update. The is_completed predicate closes the race between two concurrent
// completion requests: exactly one of them matches the pending row.
func (r *TaskRepository) Complete(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ? AND is_completed = ?", task.ID, task.UserID, false).
		Updates(map[string]interface{}{
			"title":           task.Title,
			"description":     task.Description,
			"domain":          task.Domain,
			"priority":        task.Priority,
			"estimated_hours": task.EstimatedHours,
			"actual_hours":    task.ActualHours,
			"due_date":        task.DueDate,
			"is_completed":    true,
			"completed_at":    task.CompletedAt,
			"xp_reward":       task.XPReward,
			"eu_reward":       task.EUReward,
			"updated_at":      time.Now().UTC(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrCompletionConflict
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{})
	return res.RowsAffected > 0, res.Error
}
