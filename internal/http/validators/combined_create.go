package validators

import (
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func ValidateCombinedCreateRequest(r *dto.CombinedCreateRequest) error {
	var failures []string

	if r.User.Name == "" {
		failures = append(failures, "user.name is required")
	}
	if !validEmail(r.User.Email) {
		failures = append(failures, "user.email must be a valid email address")
	}
	failures = append(failures, prefixAll("user.", passwordFailures(r.User.Password))...)

	if r.Task.Name == "" {
		failures = append(failures, "task.name is required")
	}
	if r.Task.Project == "" {
		failures = append(failures, "task.project is required")
	}

	if len(failures) > 0 {
		return apperrors.NewValidation(failures)
	}
	return nil
}

func prefixAll(prefix string, failures []string) []string {
	out := make([]string, 0, len(failures))
	for _, f := range failures {
		out = append(out, prefix+f)
	}
	return out
}
