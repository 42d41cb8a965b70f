package validators

import (
	"math"

	"batcave.app/batcave/internal/constants"
	dto "batcave.app/batcave/internal/data_models"
	apperrors "batcave.app/batcave/internal/errors"
)

const (
	minEstimatedHours = 0.5
	maxEstimatedHours = 24
	estimatedStep     = 0.5

	minActualHours = 0.1
	maxActualHours = 100
	actualStep     = 0.1
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return apperrors.Validation("title", "title is required")
	}
	if !constants.TaskDomain(r.Domain).Valid() {
		return apperrors.Validation("domain", "domain must be one of academic, fitness, creative, social, maintenance")
	}
	if r.Priority != "" && !constants.TaskPriority(r.Priority).Valid() {
		return apperrors.Validation("priority", "priority must be one of low, medium, high, urgent")
	}
	if r.EstimatedHours != nil {
		if err := validateEstimatedHours(*r.EstimatedHours); err != nil {
			return err
		}
	}
	if r.ActualHours != nil {
		if err := validateActualHours(*r.ActualHours); err != nil {
			return err
		}
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title != nil && *r.Title == "" {
		return apperrors.Validation("title", "title must not be empty")
	}
	if r.Domain != nil && !constants.TaskDomain(*r.Domain).Valid() {
		return apperrors.Validation("domain", "domain must be one of academic, fitness, creative, social, maintenance")
	}
	if r.Priority != nil && !constants.TaskPriority(*r.Priority).Valid() {
		return apperrors.Validation("priority", "priority must be one of low, medium, high, urgent")
	}
	if r.EstimatedHours != nil {
		if err := validateEstimatedHours(*r.EstimatedHours); err != nil {
			return err
		}
	}
	if r.ActualHours != nil {
		if err := validateActualHours(*r.ActualHours); err != nil {
			return err
		}
	}
	return nil
}

func validateEstimatedHours(v float64) error {
	if v < minEstimatedHours || v > maxEstimatedHours || !multipleOf(v, estimatedStep) {
		return apperrors.Validation("estimated_hours", "estimated_hours must be between 0.5 and 24 in half-hour steps")
	}
	return nil
}

func validateActualHours(v float64) error {
	if v < minActualHours || v > maxActualHours || !multipleOf(v, actualStep) {
		return apperrors.Validation("actual_hours", "actual_hours must be between 0.1 and 100 in tenth-hour steps")
	}
	return nil
}

// multipleOf tolerates float noise around the step grid.
func multipleOf(v, step float64) bool {
	ratio := v / step
	return math.Abs(ratio-math.Round(ratio)) < 1e-6
}
