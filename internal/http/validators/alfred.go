package validators

import (
	dto "batcave.app/batcave/internal/data_models"
	apperrors "batcave.app/batcave/internal/errors"
)

func ValidateChatRequest(r *dto.ChatRequest) error {
	if r.Message == "" {
		return apperrors.Validation("message", "message is required")
	}
	return nil
}
