package validators

import (
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func ValidateUpdateProjectRequest(r *dto.UpdateProjectRequest) error {
	var failures []string

	if r.Name != nil && *r.Name == "" {
		failures = append(failures, "name must not be empty")
	}
	if r.Description != nil && *r.Description == "" {
		failures = append(failures, "description must not be empty")
	}

	if len(failures) > 0 {
		return apperrors.NewValidation(failures)
	}
	return nil
}
