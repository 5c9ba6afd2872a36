package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	model "taskhub.com/taskhub/internal/models"
	repository "taskhub.com/taskhub/internal/repositories"
)

// TransactionService performs the all-or-nothing creation of a user and a
// dependent task. Both inserts run in one store transaction: either both are
// visible afterwards or neither is.
type TransactionService struct {
	db       *gorm.DB
	users    *repository.UserRepository
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
	logger   *zap.Logger
}

func NewTransactionService(
	db *gorm.DB,
	users *repository.UserRepository,
	projects *repository.ProjectRepository,
	tasks *repository.TaskRepository,
	logger *zap.Logger,
) *TransactionService {
	return &TransactionService{
		db:       db,
		users:    users,
		projects: projects,
		tasks:    tasks,
		logger:   logger,
	}
}

// CreateUserAndTask inserts the user, then the dependent task referencing it.
// Any failure aborts the transaction; gorm commits or rolls back and releases
// the handle on every exit path of the closure.
func (s *TransactionService) CreateUserAndTask(ctx context.Context, req dto.CombinedCreateRequest) (*model.User, *model.Task, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	var (
		user *model.User
		task *model.Task
	)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error

		user, txErr = s.users.WithTx(tx).Create(ctx, req.User.Name, req.User.Email, string(hashed))
		if txErr != nil {
			return txErr
		}

		// Referential check inside the transaction: a dangling project
		// reference must abort the user insert too.
		if _, txErr = s.projects.WithTx(tx).FindByID(ctx, req.Task.Project); txErr != nil {
			if errors.Is(txErr, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return txErr
		}

		task, txErr = s.tasks.WithTx(tx).Create(ctx, &model.Task{
			Name:        req.Task.Name,
			Description: req.Task.Description,
			ProjectID:   req.Task.Project,
			UserID:      &user.ID,
		})
		return txErr
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperrors.ErrEmailInUse
		}
		s.logger.Error("combined create aborted", zap.Error(err))
		return nil, nil, err
	}

	return user, task, nil
}
