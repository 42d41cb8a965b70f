// Package dto holds the HTTP request bodies. Reward and completion-timestamp
// fields are deliberately absent from these structs: the server computes them
// and client input can never reach them.
package dto

import "time"

type CreateTaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Domain         string     `json:"domain"`
	Priority       string     `json:"priority"`
	EstimatedHours *float64   `json:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours"`
	DueDate        *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Domain         *string    `json:"domain"`
	Priority       *string    `json:"priority"`
	EstimatedHours *float64   `json:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours"`
	DueDate        *time.Time `json:"due_date"`
	IsCompleted    *bool      `json:"is_completed"`
}
