package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "taskhub.com/taskhub/internal/errors"
	"taskhub.com/taskhub/internal/services"
)

type Handler struct {
	userService        *services.UserService
	projectService     *services.ProjectService
	taskService        *services.TaskService
	transactionService *services.TransactionService
}

func NewHandler(
	userService *services.UserService,
	projectService *services.ProjectService,
	taskService *services.TaskService,
	transactionService *services.TransactionService,
) *Handler {
	return &Handler{
		userService:        userService,
		projectService:     projectService,
		taskService:        taskService,
		transactionService: transactionService,
	}
}

// pageParam defaults to 1 for an absent or non-numeric page parameter.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}

// ErrorHandler maps domain exceptions to their status and message, and hides
// everything else behind a logged generic server error.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *apperrors.Exception
		if errors.As(err, &appErr) {
			_ = c.JSON(appErr.StatusCode, echo.Map{"message": appErr.Message})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, echo.Map{"message": httpErr.Message})
			return
		}

		logger.Error("unhandled error",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
}
