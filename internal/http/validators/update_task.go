package validators

import (
	"taskhub.com/taskhub/internal/constants"
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	var failures []string

	if r.Name != nil && *r.Name == "" {
		failures = append(failures, "name must not be empty")
	}
	if r.Status != nil && !constants.TaskStatus(*r.Status).Valid() {
		failures = append(failures, "status must be one of: pending, in-progress, completed")
	}
	if r.DueDate != nil {
		if _, err := dto.ParseDate(*r.DueDate); err != nil {
			failures = append(failures, "dueDate must be a valid ISO 8601 date")
		}
	}

	if len(failures) > 0 {
		return apperrors.NewValidation(failures)
	}
	return nil
}
