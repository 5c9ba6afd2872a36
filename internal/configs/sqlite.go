package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "taskhub.com/taskhub/internal/models"
)

// NewDatabaseClient opens the store and migrates the three collections.
// TranslateError lets unique-index violations surface as gorm.ErrDuplicatedKey.
func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Project{}, &model.Task{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
