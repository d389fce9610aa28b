package repositories

import (
	"testing"

	"smarthome-server/db"
	"smarthome-server/entities"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) db.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	// A pooled second connection would see its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(
		&entities.User{},
		&entities.Device{},
		&entities.SecurityEvent{},
		&entities.Feedback{},
		&entities.DeviceUsage{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &db.GormDatabase{DB: gdb}
}

func mustCreate(t *testing.T, database db.Database, value any) {
	t.Helper()
	if err := database.GetDB().Create(value).Error; err != nil {
		t.Fatalf("failed to seed %T: %v", value, err)
	}
}
