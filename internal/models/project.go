package model

import "time"

type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null;index" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	UserID      string    `gorm:"size:36;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
