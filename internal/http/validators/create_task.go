package validators

import (
	"taskhub.com/taskhub/internal/constants"
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	var failures []string

	if r.Name == "" {
		failures = append(failures, "name is required")
	}
	if r.ProjectID == "" {
		failures = append(failures, "projectId is required")
	}
	if r.Status != "" && !constants.TaskStatus(r.Status).Valid() {
		failures = append(failures, "status must be one of: pending, in-progress, completed")
	}
	if r.DueDate != "" {
		if _, err := dto.ParseDate(r.DueDate); err != nil {
			failures = append(failures, "dueDate must be a valid ISO 8601 date")
		}
	}

	if len(failures) > 0 {
		return apperrors.NewValidation(failures)
	}
	return nil
}
