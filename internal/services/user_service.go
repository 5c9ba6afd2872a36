package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskhub.com/taskhub/internal/auth"
	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
	"taskhub.com/taskhub/internal/pagination"
	repository "taskhub.com/taskhub/internal/repositories"
	"taskhub.com/taskhub/internal/sessions"
)

type UserService struct {
	repo          *repository.UserRepository
	denylist      sessions.TokenDenylist
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewUserService(
	repo *repository.UserRepository,
	denylist sessions.TokenDenylist,
	jwtSecret []byte,
	tokenValidity time.Duration,
) *UserService {
	return &UserService{
		repo:          repo,
		denylist:      denylist,
		jwtSecret:     jwtSecret,
		tokenValidity: tokenValidity,
	}
}

// Register creates a user with a hashed credential and returns a signed token.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", apperrors.ErrEmailInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user, err := s.repo.Create(ctx, name, email, string(hashed))
	if err != nil {
		// A concurrent register with the same email loses at the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperrors.ErrEmailInUse
		}
		return "", err
	}

	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
}

// Logout revokes the token until its natural expiry.
func (s *UserService) Logout(ctx context.Context, token string) error {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return apperrors.ErrUnauthorized
	}

	ttl := s.tokenValidity
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	return s.denylist.Revoke(ctx, token, ttl)
}

func (s *UserService) ListUsers(ctx context.Context, page int) (*dto.PagedUsersResponse, error) {
	users, total, err := s.repo.ListPaged(ctx, page)
	if err != nil {
		return nil, err
	}

	return &dto.PagedUsersResponse{
		Users:       users,
		CurrentPage: pagination.Normalize(page),
		TotalPages:  pagination.TotalPages(total, pagination.DefaultPageSize),
		TotalUsers:  total,
	}, nil
}
