package database

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teamly-app/teamly-backend/internal/models"
)

func testDB(t *testing.T) *Database {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// single connection keeps concurrent sqlite writers serialized
	sqlDB.SetMaxOpenConns(1)
	return NewDatabase(db)
}

func testUser(t *testing.T, d *Database, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:               "user " + email,
		Email:              email,
		PasswordHash:       "x",
		SecurityQuestion:   "q",
		SecurityAnswerHash: "x",
	}
	if err := d.SaveUser(user); err != nil {
		t.Fatalf("save user %s: %v", email, err)
	}
	return user
}
