package dto

import model "taskhub.com/taskhub/internal/models"

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	User        string `json:"user"`
}

// UpdateProjectRequest carries a sparse patch: only non-nil fields are applied.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type AssignUserRequest struct {
	UserID string `json:"userId"`
}

type PagedProjectsResponse struct {
	Projects      []model.Project `json:"projects"`
	CurrentPage   int             `json:"currentPage"`
	TotalPages    int             `json:"totalPages"`
	TotalProjects int64           `json:"totalProjects"`
}
