package validators

import (
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) error {
	var failures []string

	if r.Name == "" {
		failures = append(failures, "name is required")
	}
	if r.Description == "" {
		failures = append(failures, "description is required")
	}
	if r.User == "" {
		failures = append(failures, "user id is required")
	}

	if len(failures) > 0 {
		return apperrors.NewValidation(failures)
	}
	return nil
}
