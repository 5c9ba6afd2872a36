package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "taskhub.com/taskhub/internal/data_models"
	model "taskhub.com/taskhub/internal/models"
	"taskhub.com/taskhub/internal/pagination"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx rebinds the repository to a transaction handle.
func (r *ProjectRepository) WithTx(tx *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

func (r *ProjectRepository) Create(ctx context.Context, name, description, userID string) (*model.Project, error) {
	project := &model.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListPaged dereferences the owning user on each page slice.
func (r *ProjectRepository) ListPaged(ctx context.Context, page int) ([]model.Project, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at asc").
		Offset(pagination.Offset(page, pagination.DefaultPageSize)).
		Limit(pagination.DefaultPageSize).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update applies only the fields present in the patch.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch dto.UpdateProjectRequest) (*model.Project, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Project{}).
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

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProjectRepository) AssignUser(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Update("user_id", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
