package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	"taskhub.com/taskhub/internal/http/validators"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateRegisterUserRequest(&req); err != nil {
		return err
	}

	token, err := h.userService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "user registered successfully",
		Token:   token,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	token, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "login successful",
		Token:   token,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	token, _ := c.Get("token").(string)
	if token == "" {
		return apperrors.ErrUnauthorized
	}

	if err := h.userService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "logout successful"})
}

func (h *Handler) ListUsers(c echo.Context) error {
	page, err := h.userService.ListUsers(c.Request().Context(), pageParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}
