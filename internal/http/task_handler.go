package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	"taskhub.com/taskhub/internal/http/validators"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	page, err := h.taskService.ListTasks(c.Request().Context(), pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("taskId"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("taskId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted successfully"})
}

func (h *Handler) SearchTasks(c echo.Context) error {
	tasks, err := h.taskService.SearchTasks(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) FilterTasks(c echo.Context) error {
	tasks, err := h.taskService.FilterTasks(
		c.Request().Context(),
		c.QueryParam("status"),
		c.QueryParam("dueDate"),
		c.QueryParam("user"),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}
