package validators

import (
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func ValidateAssignUserRequest(r *dto.AssignUserRequest) error {
	if r.UserID == "" {
		return apperrors.NewValidation([]string{"userId is required"})
	}
	return nil
}
