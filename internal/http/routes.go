package http

import (
	"github.com/labstack/echo/v4"

	middleware "taskhub.com/taskhub/internal/http/middlewares"
	"taskhub.com/taskhub/internal/sessions"
)

func Register(e *echo.Echo, h *Handler, jwtSecret []byte, denylist sessions.TokenDenylist, rateLimitPerSecond int) {
	e.Use(middleware.RateLimiter(rateLimitPerSecond))

	authRequired := middleware.Auth(jwtSecret, denylist)

	e.POST("/users/register", h.Register)
	e.POST("/users/login", h.Login)
	e.POST("/users/logout", h.Logout, authRequired)
	e.GET("/users", h.ListUsers, authRequired)

	e.POST("/projects", h.CreateProject)
	e.GET("/projects", h.ListProjects)
	e.PUT("/projects/:id", h.UpdateProject)
	e.DELETE("/projects/:id", h.DeleteProject)
	e.POST("/projects/:id/assign", h.AssignUserToProject)

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/search", h.SearchTasks)
	e.GET("/tasks/filter", h.FilterTasks)
	e.PUT("/tasks/:taskId", h.UpdateTask)
	e.DELETE("/tasks/:taskId", h.DeleteTask)

	e.POST("/transactions/create-user-and-task", h.CreateUserAndTask)
}
