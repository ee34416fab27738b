package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Monika2004-sys/Smart-Health-Tracker/config"
	"github.com/Monika2004-sys/Smart-Health-Tracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) func() {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

// authedJSONContext builds a gin test context carrying the authenticated user
// the way the auth middleware would.
func authedJSONContext(t *testing.T, userID uint, method, target string, payload any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("userID", userID)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
