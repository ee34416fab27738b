package services

import (
	"errors"
	"time"

	"github.com/Monika2004-sys/Smart-Health-Tracker/models"
	"github.com/Monika2004-sys/Smart-Health-Tracker/utils"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// Fixed daily goals shown on the dashboard.
const (
	StepGoal       = 10000
	WaterGoalML    = 2000
	SleepGoalHours = 8.0
)

type DashboardSummary struct {
	Profile          models.Profile       `json:"profile"`
	BMI              float64              `json:"bmi"`
	BMICategory      string               `json:"bmi_category"`
	CalorieTarget    int                  `json:"calorie_target"`
	Today            models.DailyTracking `json:"today"`
	ConsumedCalories int                  `json:"consumed_calories"`
	StepGoal         int                  `json:"step_goal"`
	WaterGoalML      int                  `json:"water_goal_ml"`
	SleepGoalHours   float64              `json:"sleep_goal_hours"`
	Tips             []string             `json:"tips"`
}

// GetDashboard composes the profile, today's record and the derived metrics
// into one summary. Trackers mutate independently; the client re-fetches this
// after any of them reports a change.
func GetDashboard(userID uint) (*DashboardSummary, error) {
	profile, err := GetProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	bmi, err := utils.CalculateBMI(profile.WeightKg, profile.HeightCm)
	if err != nil {
		return nil, err
	}
	category := utils.BMICategory(bmi)
	target := utils.CalculateCalorieTarget(
		profile.WeightKg, profile.HeightCm, profile.Age,
		profile.Gender, profile.ActivityLevel,
	)

	today, err := GetDailyTracking(userID, time.Now())
	if err != nil {
		return nil, err
	}

	consumed, err := TotalCaloriesByDate(userID, time.Now())
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Profile:          *profile,
		BMI:              bmi,
		BMICategory:      category,
		CalorieTarget:    target,
		Today:            today,
		ConsumedCalories: consumed,
		StepGoal:         StepGoal,
		WaterGoalML:      WaterGoalML,
		SleepGoalHours:   SleepGoalHours,
		Tips:             utils.HealthTips(category, today.Steps),
	}, nil
}
