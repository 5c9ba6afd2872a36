package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"taskhub.com/taskhub/internal/constants"
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	repository "taskhub.com/taskhub/internal/repositories"
)

func seedUserAndProject(t *testing.T, db *gorm.DB) (*model.User, *model.Project) {
	t.Helper()
	ctx := context.Background()

	user, err := repository.NewUserRepository(db).Create(ctx, "Seed User", "seed@example.com", "hash")
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	project, err := repository.NewProjectRepository(db).Create(ctx, "Seed Project", "Seeded", user.ID)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	return user, project
}

func TestTaskService_CreateDefaultsToPending(t *testing.T) {
	db := setupTestDB(t)
	_, project := seedUserAndProject(t, db)
	service := NewTaskService(repository.NewTaskRepository(db))

	task, err := service.CreateTask(context.Background(), dto.CreateTaskRequest{
		Name:      "New Task",
		ProjectID: project.ID,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if task.Status != constants.StatusPending {
		t.Errorf("expected status %s, got %s", constants.StatusPending, task.Status)
	}
	if task.ID == "" {
		t.Error("expected task ID to be set")
	}
}

func TestTaskService_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	user, project := seedUserAndProject(t, db)
	service := NewTaskService(repository.NewTaskRepository(db))
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		_, err := service.CreateTask(ctx, dto.CreateTaskRequest{
			Name:      fmt.Sprintf("Task %d", i),
			ProjectID: project.ID,
			UserID:    user.ID,
		})
		if err != nil {
			t.Fatalf("failed to create task %d: %v", i, err)
		}
	}

	page, err := service.ListTasks(ctx, 1)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(page.Tasks) != 5 {
		t.Errorf("expected 5 tasks on page 1, got %d", len(page.Tasks))
	}
	if page.TotalPages != 2 || page.TotalTasks != 6 {
		t.Errorf("expected 2 pages of 6 tasks, got %d pages of %d", page.TotalPages, page.TotalTasks)
	}

	first := page.Tasks[0]
	if first.User == nil || first.User.Email != "seed@example.com" {
		t.Error("expected the assigned user to be dereferenced")
	}
	if first.Project == nil || first.Project.Name != "Seed Project" {
		t.Error("expected the owning project to be dereferenced")
	}

	page, err = service.ListTasks(ctx, 2)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(page.Tasks) != 1 {
		t.Errorf("expected 1 task on page 2, got %d", len(page.Tasks))
	}

	page, err = service.ListTasks(ctx, 3)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(page.Tasks) != 0 {
		t.Errorf("expected no tasks past the last page, got %d", len(page.Tasks))
	}
}

func TestTaskService_SearchCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	_, project := seedUserAndProject(t, db)
	service := NewTaskService(repository.NewTaskRepository(db))
	ctx := context.Background()

	_, err := service.CreateTask(ctx, dto.CreateTaskRequest{
		Name:        "Complete Project",
		Description: "Wrap up the deliverables",
		ProjectID:   project.ID,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	tasks, err := service.SearchTasks(ctx, "complete")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Complete Project" {
		t.Errorf("expected the task to match case-insensitively, got %v", tasks)
	}

	// Substring match against the description as well.
	tasks, err = service.SearchTasks(ctx, "DELIVER")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected a description match, got %d tasks", len(tasks))
	}

	if _, err := service.SearchTasks(ctx, "nonexistent"); !errors.Is(err, apperrors.ErrNoSearchMatches) {
		t.Errorf("expected no-matches error, got %v", err)
	}
	if _, err := service.SearchTasks(ctx, ""); !errors.Is(err, apperrors.ErrSearchQueryRequired) {
		t.Errorf("expected query-required error, got %v", err)
	}
}

func TestTaskService_FilterAndSemantics(t *testing.T) {
	db := setupTestDB(t)
	user, project := seedUserAndProject(t, db)
	service := NewTaskService(repository.NewTaskRepository(db))
	ctx := context.Background()

	otherUser, err := repository.NewUserRepository(db).Create(ctx, "Other", "other@example.com", "hash")
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	seed := []dto.CreateTaskRequest{
		{Name: "A", ProjectID: project.ID, UserID: user.ID, Status: "pending"},
		{Name: "B", ProjectID: project.ID, UserID: user.ID, Status: "completed"},
		{Name: "C", ProjectID: project.ID, UserID: otherUser.ID, Status: "pending"},
	}
	for _, req := range seed {
		if _, err := service.CreateTask(ctx, req); err != nil {
			t.Fatalf("failed to create task %s: %v", req.Name, err)
		}
	}

	tasks, err := service.FilterTasks(ctx, "pending", "", "")
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 pending tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Status != constants.StatusPending {
			t.Errorf("expected only pending tasks, got %s", task.Status)
		}
	}

	tasks, err = service.FilterTasks(ctx, "pending", "", user.ID)
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "A" {
		t.Errorf("expected only the task matching both filters, got %v", tasks)
	}

	if _, err := service.FilterTasks(ctx, "", "", ""); !errors.Is(err, apperrors.ErrFilterRequired) {
		t.Errorf("expected filter-required error, got %v", err)
	}
	if _, err := service.FilterTasks(ctx, "", "not-a-date", ""); !errors.Is(err, apperrors.ErrInvalidDueDate) {
		t.Errorf("expected invalid-date error, got %v", err)
	}
	if _, err := service.FilterTasks(ctx, "in-progress", "", ""); !errors.Is(err, apperrors.ErrNoFilterMatches) {
		t.Errorf("expected no-matches error, got %v", err)
	}
}

func TestTaskService_FilterDueDateCeiling(t *testing.T) {
	db := setupTestDB(t)
	_, project := seedUserAndProject(t, db)
	service := NewTaskService(repository.NewTaskRepository(db))
	ctx := context.Background()

	seed := []dto.CreateTaskRequest{
		{Name: "due on the day", ProjectID: project.ID, DueDate: "2024-12-25"},
		{Name: "due earlier", ProjectID: project.ID, DueDate: "2024-12-20"},
		{Name: "due later", ProjectID: project.ID, DueDate: "2024-12-26"},
	}
	for _, req := range seed {
		if _, err := service.CreateTask(ctx, req); err != nil {
			t.Fatalf("failed to create task %q: %v", req.Name, err)
		}
	}

	tasks, err := service.FilterTasks(ctx, "", "2024-12-25", "")
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected tasks due on or before the day, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Name == "due later" {
			t.Error("a task due after the given day must be excluded")
		}
	}
}

func TestTaskService_UpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	_, project := seedUserAndProject(t, db)
	service := NewTaskService(repository.NewTaskRepository(db))
	ctx := context.Background()

	created, err := service.CreateTask(ctx, dto.CreateTaskRequest{
		Name:        "Original",
		Description: "Original description",
		ProjectID:   project.ID,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	status := "in-progress"
	updated, err := service.UpdateTask(ctx, created.ID, dto.UpdateTaskRequest{Status: &status})
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}
	if updated.Status != constants.StatusInProgress {
		t.Errorf("expected status to be updated, got %s", updated.Status)
	}
	if updated.Name != "Original" || updated.Description != "Original description" {
		t.Error("expected unnamed fields to be untouched")
	}

	_, err = service.UpdateTask(ctx, "missing-id", dto.UpdateTaskRequest{Status: &status})
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected task-not-found error, got %v", err)
	}
}

func TestTaskService_Delete(t *testing.T) {
	db := setupTestDB(t)
	_, project := seedUserAndProject(t, db)
	service := NewTaskService(repository.NewTaskRepository(db))
	ctx := context.Background()

	created, err := service.CreateTask(ctx, dto.CreateTaskRequest{
		Name:      "Disposable",
		ProjectID: project.ID,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := service.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if err := service.DeleteTask(ctx, created.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected task-not-found error on second delete, got %v", err)
	}
}
