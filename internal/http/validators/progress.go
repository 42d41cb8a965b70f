package validators

import (
	dto "batcave.app/batcave/internal/data_models"
	apperrors "batcave.app/batcave/internal/errors"
)

func ValidateCreateGoalRequest(r *dto.CreateGoalRequest) error {
	if r.Title == "" {
		return apperrors.Validation("title", "title is required")
	}
	if r.TargetValue < 0 {
		return apperrors.Validation("target_value", "target_value must not be negative")
	}
	if r.CurrentValue != nil && *r.CurrentValue < 0 {
		return apperrors.Validation("current_value", "current_value must not be negative")
	}
	if r.Month < 1 || r.Month > 12 {
		return apperrors.Validation("month", "month must be between 1 and 12")
	}
	if r.Year < 1 {
		return apperrors.Validation("year", "year is required")
	}
	return nil
}

func ValidateUpdateGoalRequest(r *dto.UpdateGoalRequest) error {
	if r.Title != nil && *r.Title == "" {
		return apperrors.Validation("title", "title must not be empty")
	}
	if r.TargetValue != nil && *r.TargetValue < 0 {
		return apperrors.Validation("target_value", "target_value must not be negative")
	}
	if r.CurrentValue != nil && *r.CurrentValue < 0 {
		return apperrors.Validation("current_value", "current_value must not be negative")
	}
	if r.Month != nil && (*r.Month < 1 || *r.Month > 12) {
		return apperrors.Validation("month", "month must be between 1 and 12")
	}
	return nil
}

func ValidateCreateObjectiveRequest(r *dto.CreateObjectiveRequest) error {
	if r.Title == "" {
		return apperrors.Validation("title", "title is required")
	}
	if r.TargetValue < 0 {
		return apperrors.Validation("target_value", "target_value must not be negative")
	}
	if r.CurrentValue != nil && *r.CurrentValue < 0 {
		return apperrors.Validation("current_value", "current_value must not be negative")
	}
	if r.Quarter < 1 || r.Quarter > 4 {
		return apperrors.Validation("quarter", "quarter must be between 1 and 4")
	}
	if r.Year < 1 {
		return apperrors.Validation("year", "year is required")
	}
	return nil
}

func ValidateUpdateObjectiveRequest(r *dto.UpdateObjectiveRequest) error {
	if r.Title != nil && *r.Title == "" {
		return apperrors.Validation("title", "title must not be empty")
	}
	if r.TargetValue != nil && *r.TargetValue < 0 {
		return apperrors.Validation("target_value", "target_value must not be negative")
	}
	if r.CurrentValue != nil && *r.CurrentValue < 0 {
		return apperrors.Validation("current_value", "current_value must not be negative")
	}
	if r.Quarter != nil && (*r.Quarter < 1 || *r.Quarter > 4) {
		return apperrors.Validation("quarter", "quarter must be between 1 and 4")
	}
	return nil
}

func ValidateCreateVisionRequest(r *dto.CreateVisionRequest) error {
	if r.Title == "" {
		return apperrors.Validation("title", "title is required")
	}
	if r.TargetValue < 0 {
		return apperrors.Validation("target_value", "target_value must not be negative")
	}
	if r.CurrentValue != nil && *r.CurrentValue < 0 {
		return apperrors.Validation("current_value", "current_value must not be negative")
	}
	if r.Year < 1 {
		return apperrors.Validation("year", "year is required")
	}
	return nil
}

func ValidateUpdateVisionRequest(r *dto.UpdateVisionRequest) error {
	if r.Title != nil && *r.Title == "" {
		return apperrors.Validation("title", "title must not be empty")
	}
	if r.TargetValue != nil && *r.TargetValue < 0 {
		return apperrors.Validation("target_value", "target_value must not be negative")
	}
	if r.CurrentValue != nil && *r.CurrentValue < 0 {
		return apperrors.Validation("current_value", "current_value must not be negative")
	}
	return nil
}
