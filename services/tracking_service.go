package services

import (
	"errors"
	"math"
	"time"

	"github.com/Monika2004-sys/Smart-Health-Tracker/config"
	"github.com/Monika2004-sys/Smart-Health-Tracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Rough estimate: 0.04 calories per step.
const caloriesPerStep = 0.04

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// upsertDailyTracking writes only the named columns into the (user_id, date)
// row. On conflict the other columns keep their stored values, so each tracker
// can submit its own slice of the day without clobbering siblings.
func upsertDailyTracking(rec *models.DailyTracking, cols ...string) error {
	return config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(rec).Error
}

// GetDailyTracking returns the record for the given day, or a zeroed record
// when nothing has been tracked yet.
func GetDailyTracking(userID uint, date time.Time) (models.DailyTracking, error) {
	start := dayStartLocal(date)

	var rec models.DailyTracking
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DailyTracking{UserID: userID, Date: start}, nil
		}
		return rec, err
	}
	return rec, nil
}

// AddSteps adds a step delta onto today's cumulative count and derives
// calories burned from the new total. Both columns go through the same upsert
// so they stay consistent with each other.
func AddSteps(userID uint, delta int) (models.DailyTracking, error) {
	cur, err := GetDailyTracking(userID, time.Now())
	if err != nil {
		return cur, err
	}

	newSteps := cur.Steps + delta
	burned := int(math.Round(float64(newSteps) * caloriesPerStep))

	rec := models.DailyTracking{
		UserID:         userID,
		Date:           cur.Date,
		Steps:          newSteps,
		CaloriesBurned: burned,
	}
	if err := upsertDailyTracking(&rec, "steps", "calories_burned"); err != nil {
		return cur, err
	}
	return GetDailyTracking(userID, time.Now())
}

// AddWater adds a water amount (ml) onto today's intake.
func AddWater(userID uint, amountML int) (models.DailyTracking, error) {
	cur, err := GetDailyTracking(userID, time.Now())
	if err != nil {
		return cur, err
	}

	rec := models.DailyTracking{
		UserID:        userID,
		Date:          cur.Date,
		WaterIntakeML: cur.WaterIntakeML + amountML,
	}
	if err := upsertDailyTracking(&rec, "water_intake_ml"); err != nil {
		return cur, err
	}
	return GetDailyTracking(userID, time.Now())
}

// LogSleep records last night's sleep as an absolute value, not cumulative.
func LogSleep(userID uint, hours float64) (models.DailyTracking, error) {
	rec := models.DailyTracking{
		UserID:     userID,
		Date:       dayStartLocal(time.Now()),
		SleepHours: hours,
	}
	if err := upsertDailyTracking(&rec, "sleep_hours"); err != nil {
		return rec, err
	}
	return GetDailyTracking(userID, time.Now())
}

func SetMood(userID uint, mood string) (models.DailyTracking, error) {
	rec := models.DailyTracking{
		UserID: userID,
		Date:   dayStartLocal(time.Now()),
		Mood:   mood,
	}
	if err := upsertDailyTracking(&rec, "mood"); err != nil {
		return rec, err
	}
	return GetDailyTracking(userID, time.Now())
}

func GetTrackingHistory(userID uint) ([]models.DailyTracking, error) {
	var recs []models.DailyTracking
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&recs).Error
	return recs, err
}
