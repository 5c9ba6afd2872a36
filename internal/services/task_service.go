package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskhub.com/taskhub/internal/constants"
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	"taskhub.com/taskhub/internal/pagination"
	repository "taskhub.com/taskhub/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		Name:        req.Name,
		Description: req.Description,
		ProjectID:   req.ProjectID,
	}

	if req.Status != "" {
		task.Status = constants.TaskStatus(req.Status)
	}
	if req.UserID != "" {
		userID := req.UserID
		task.UserID = &userID
	}
	if req.DueDate != "" {
		due, err := dto.ParseDate(req.DueDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDueDate
		}
		task.DueDate = &due
	}

	return s.repo.Create(ctx, task)
}

func (s *TaskService) ListTasks(ctx context.Context, page int) (*dto.PagedTasksResponse, error) {
	tasks, total, err := s.repo.ListPaged(ctx, page)
	if err != nil {
		return nil, err
	}

	return &dto.PagedTasksResponse{
		Tasks:       tasks,
		CurrentPage: pagination.Normalize(page),
		TotalPages:  pagination.TotalPages(total, pagination.DefaultPageSize),
		TotalTasks:  total,
	}, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, patch dto.UpdateTaskRequest) (*model.Task, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		updates["status"] = constants.TaskStatus(*patch.Status)
	}
	if patch.DueDate != nil {
		due, err := dto.ParseDate(*patch.DueDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDueDate
		}
		updates["due_date"] = due
	}

	task, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return err
	}
	return nil
}

// SearchTasks reports zero matches as a not-found condition.
func (s *TaskService) SearchTasks(ctx context.Context, term string) ([]model.Task, error) {
	if strings.TrimSpace(term) == "" {
		return nil, apperrors.ErrSearchQueryRequired
	}

	tasks, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, apperrors.ErrNoSearchMatches
	}

	return tasks, nil
}

// FilterTasks builds the AND-combined predicate from the raw query parameters.
// The dueDate bound is inclusive of the whole given calendar day.
func (s *TaskService) FilterTasks(ctx context.Context, status, dueDate, userID string) ([]model.Task, error) {
	var filter dto.TaskFilter

	if status != "" {
		st := constants.TaskStatus(status)
		filter.Status = &st
	}
	if dueDate != "" {
		day, err := dto.ParseDate(dueDate)
		if err != nil {
			return nil, apperrors.ErrInvalidDueDate
		}
		bound := dto.EndOfDay(day)
		filter.DueBefore = &bound
	}
	if userID != "" {
		filter.UserID = &userID
	}

	if filter.Empty() {
		return nil, apperrors.ErrFilterRequired
	}

	tasks, err := s.repo.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, apperrors.ErrNoFilterMatches
	}

	return tasks, nil
}
