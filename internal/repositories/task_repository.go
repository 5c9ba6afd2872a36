package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub.com/taskhub/internal/constants"
	dto "taskhub.com/taskhub/internal/data_models"
	model "taskhub.com/taskhub/internal/models"
	"taskhub.com/taskhub/internal/pagination"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// WithTx rebinds the repository to a transaction handle.
func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = constants.StatusPending
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListPaged dereferences the assigned user and the owning project on each
// page slice. Count and slice are two independent reads.
func (r *TaskRepository) ListPaged(ctx context.Context, page int) ([]model.Task, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Project").
		Order("created_at asc").
		Offset(pagination.Offset(page, pagination.DefaultPageSize)).
		Limit(pagination.DefaultPageSize).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Search matches the term case-insensitively against name or description.
func (r *TaskRepository) Search(ctx context.Context, term string) ([]model.Task, error) {
	needle := "%" + strings.ToLower(term) + "%"

	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Project").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", needle, needle).
		Order("created_at asc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// Filter combines the provided keys with logical AND.
func (r *TaskRepository) Filter(ctx context.Context, filter dto.TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Project")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DueBefore != nil {
		query = query.Where("due_date <= ?", *filter.DueBefore)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var tasks []model.Task
	if err := query.Order("created_at asc").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update applies only the fields present in the patch.
func (r *TaskRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Task, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Task{}).
			Where("id = ?", id).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
