package validators

import (
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func ValidateLoginRequest(r *dto.LoginRequest) error {
	var failures []string

	if !validEmail(r.Email) {
		failures = append(failures, "email must be a valid email address")
	}
	if r.Password == "" {
		failures = append(failures, "password is required")
	}

	if len(failures) > 0 {
		return apperrors.NewValidation(failures)
	}
	return nil
}
