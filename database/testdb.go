package database

import (
	"eduapi/models"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectTestDb opens an in-memory SQLite database and migrates the schema.
// Handler tests use this so they do not need a running PostgreSQL instance.
func ConnectTestDb() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to open in-memory database: %v", err)
	}

	runMigrations(db)

	Database = DbInstance{Db: db}
}

// ResetTestDb drops all rows between test cases.
func ResetTestDb() {
	for _, model := range []interface{}{
		&models.AnswerLike{},
		&models.Answer{},
		&models.Discussion{},
		&models.Lesson{},
		&models.Subject{},
		&models.User{},
	} {
		db := Database.Db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
		if err := db.Delete(model).Error; err != nil {
			log.Fatalf("Failed to reset test database: %v", err)
		}
	}
}
