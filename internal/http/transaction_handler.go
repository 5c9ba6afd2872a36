package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	"taskhub.com/taskhub/internal/http/validators"
)

// CreateUserAndTask exposes the transactional combined create. Failures are
// reported as {"error": ...} with the classified status; the duplicate-email
// race surfaces as a conflict, never a generic server error.
func (h *Handler) CreateUserAndTask(c echo.Context) error {
	var req dto.CombinedCreateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateCombinedCreateRequest(&req); err != nil {
		return err
	}

	_, _, err := h.transactionService.CreateUserAndTask(c.Request().Context(), req)
	if err != nil {
		var appErr *apperrors.Exception
		if errors.As(err, &appErr) {
			return c.JSON(appErr.StatusCode, echo.Map{"error": appErr.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user and task"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "user and task created successfully"})
}
