package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	"taskhub.com/taskhub/internal/http/validators"
)

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateCreateProjectRequest(&req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "project created successfully",
		"project": project,
	})
}

func (h *Handler) ListProjects(c echo.Context) error {
	page, err := h.projectService.ListProjects(c.Request().Context(), pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	var req dto.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateUpdateProjectRequest(&req); err != nil {
		return err
	}

	project, err := h.projectService.UpdateProject(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	if err := h.projectService.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "project deleted successfully"})
}

func (h *Handler) AssignUserToProject(c echo.Context) error {
	var req dto.AssignUserRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateAssignUserRequest(&req); err != nil {
		return err
	}

	if err := h.projectService.AssignUser(c.Request().Context(), c.Param("id"), req.UserID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "user assigned to project successfully"})
}
