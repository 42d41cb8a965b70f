package model

import (
	"time"

	"batcave.app/batcave/internal/constants"
)

type Task struct {
	ID             string                 `gorm:"primaryKey;size:36" json:"id"`
	UserID         string                 `gorm:"index;size:64;not null" json:"user_id"`
	Title          string                 `gorm:"not null" json:"title"`
	Description    string                 `json:"description,omitempty"`
	Domain         constants.TaskDomain   `gorm:"type:varchar(20);not null" json:"domain"`
	Priority       constants.TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	EstimatedHours float64                `gorm:"not null" json:"estimated_hours"`
	ActualHours    *float64               `json:"actual_hours,omitempty"`
	IsCompleted    bool                   `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt    *time.Time             `json:"completed_at,omitempty"`
	DueDate        *time.Time             `json:"due_date,omitempty"`
	XPReward       int                    `gorm:"not null;default:0" json:"xp_reward"`
	EUReward       int                    `gorm:"not null;default:0" json:"eu_reward"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
