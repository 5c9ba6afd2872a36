package validators

import (
	"net/mail"
	"unicode"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func passwordFailures(password string) []string {
	var failures []string

	if password == "" {
		return append(failures, "password is required")
	}
	if len(password) < 6 {
		failures = append(failures, "password must be at least 6 characters")
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		failures = append(failures, "password must contain at least one uppercase letter and one number")
	}

	return failures
}

func ValidateRegisterUserRequest(r *dto.RegisterUserRequest) error {
	var failures []string

	if r.Name == "" {
		failures = append(failures, "name is required")
	}
	if !validEmail(r.Email) {
		failures = append(failures, "email must be a valid email address")
	}
	failures = append(failures, passwordFailures(r.Password)...)

	if len(failures) > 0 {
		return apperrors.NewValidation(failures)
	}
	return nil
}
