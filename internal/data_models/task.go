package dto

import (
	"time"

	"taskhub.com/taskhub/internal/constants"
	model "taskhub.com/taskhub/internal/models"
)

type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
	UserID      string `json:"userId"`
	ProjectID   string `json:"projectId"`
}

// UpdateTaskRequest carries a sparse patch: only non-nil fields are applied.
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
}

// TaskFilter combines the optional filter keys with logical AND.
// DueBefore is the inclusive end-of-day bound derived from the dueDate param.
type TaskFilter struct {
	Status    *constants.TaskStatus
	DueBefore *time.Time
	UserID    *string
}

func (f TaskFilter) Empty() bool {
	return f.Status == nil && f.DueBefore == nil && f.UserID == nil
}

type PagedTasksResponse struct {
	Tasks       []model.Task `json:"tasks"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	TotalTasks  int64        `json:"totalTasks"`
}
