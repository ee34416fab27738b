package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyTracking is the single per-day record shared by the step, water, sleep
// and mood trackers. Each tracker owns its own columns and writes them through
// a partial upsert keyed by (user_id, date), so siblings are never clobbered.
type DailyTracking struct {
	gorm.Model
	UserID         uint      `gorm:"uniqueIndex:idx_tracking_user_date;not null" json:"user_id"`
	Date           time.Time `gorm:"uniqueIndex:idx_tracking_user_date;not null" json:"date"` // truncated to local midnight
	Steps          int       `json:"steps"`
	CaloriesBurned int       `json:"calories_burned"`
	WaterIntakeML  int       `json:"water_intake_ml"`
	SleepHours     float64   `json:"sleep_hours"`
	Mood           string    `gorm:"size:30" json:"mood"`
}
