package services

import (
	"testing"

	"github.com/Monika2004-sys/Smart-Health-Tracker/config"
	"github.com/Monika2004-sys/Smart-Health-Tracker/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) func() {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.DailyTracking{},
		&models.Meal{},
		&models.Medication{},
		&models.MedicationLog{},
		&models.UserDevice{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	config.DB = gdb

	return func() {
		_ = gdb.Migrator().DropTable(
			&models.User{},
			&models.Profile{},
			&models.DailyTracking{},
			&models.Meal{},
			&models.Medication{},
			&models.MedicationLog{},
			&models.UserDevice{},
		)
		sqlDB, _ := gdb.DB()
		_ = sqlDB.Close()
	}
}
