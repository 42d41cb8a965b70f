package model

import "time"

// Objective is a quarterly target tracked by direct progress updates.
type Objective struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	UserID       string     `gorm:"index;size:64;not null" json:"user_id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description,omitempty"`
	CurrentValue float64    `gorm:"not null;default:0" json:"current_value"`
	TargetValue  float64    `gorm:"not null" json:"target_value"`
	Unit         string     `gorm:"size:32" json:"unit"`
	Quarter      int        `gorm:"not null" json:"quarter"`
	Year         int        `gorm:"not null" json:"year"`
	IsCompleted  bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
