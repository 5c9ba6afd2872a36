package model

import (
	"time"

	"taskhub.com/taskhub/internal/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Name        string               `gorm:"not null;index" json:"name"`
	Description string               `json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	DueDate     *time.Time           `gorm:"index" json:"due_date,omitempty"`
	UserID      *string              `gorm:"size:36;index" json:"user_id,omitempty"`
	User        *User                `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProjectID   string               `gorm:"size:36;not null;index" json:"project_id"`
	Project     *Project             `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}
