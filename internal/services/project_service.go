package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	"taskhub.com/taskhub/internal/pagination"
	repository "taskhub.com/taskhub/internal/repositories"
)

type ProjectService struct {
	repo  *repository.ProjectRepository
	users *repository.UserRepository
}

func NewProjectService(repo *repository.ProjectRepository, users *repository.UserRepository) *ProjectService {
	return &ProjectService{repo: repo, users: users}
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*model.Project, error) {
	return s.repo.Create(ctx, req.Name, req.Description, req.User)
}

func (s *ProjectService) ListProjects(ctx context.Context, page int) (*dto.PagedProjectsResponse, error) {
	projects, total, err := s.repo.ListPaged(ctx, page)
	if err != nil {
		return nil, err
	}

	return &dto.PagedProjectsResponse{
		Projects:      projects,
		CurrentPage:   pagination.Normalize(page),
		TotalPages:    pagination.TotalPages(total, pagination.DefaultPageSize),
		TotalProjects: total,
	}, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, patch dto.UpdateProjectRequest) (*model.Project, error) {
	project, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return err
	}
	return nil
}

// AssignUser reassigns the owning user; the new user must exist.
func (s *ProjectService) AssignUser(ctx context.Context, id, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.repo.AssignUser(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return err
	}
	return nil
}
