package dto

import model "taskhub.com/taskhub/internal/models"

type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type PagedUsersResponse struct {
	Users       []model.User `json:"users"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	TotalUsers  int64        `json:"totalUsers"`
}
