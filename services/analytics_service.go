package services

import (
	"context"
	"math"
	"time"

	"github.com/Monika2004-sys/Smart-Health-Tracker/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

type MetricAvg struct {
	Average float64 `json:"average"`
	Goal    float64 `json:"goal,omitempty"`
	Percent float64 `json:"percent,omitempty"`
}

type WeeklySummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Steps          MetricAvg `json:"steps"`
	CaloriesBurned MetricAvg `json:"calories_burned"`
	Water          MetricAvg `json:"water_intake_ml"`
	Sleep          MetricAvg `json:"sleep_hours"`

	DaysTracked int `json:"days_tracked"`
}

// WeeklySummary averages the tracked days in the week starting at weekStart
// (local midnight). Untracked days are excluded from the averages.
func (s *AnalyticsService) WeeklySummary(ctx context.Context, userID uint, weekStart time.Time) (*WeeklySummary, error) {
	from := dayStartLocal(weekStart)
	to := from.AddDate(0, 0, 7)

	var rows []models.DailyTracking
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := &WeeklySummary{DaysTracked: len(rows)}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.AddDate(0, 0, -1).Format("2006-01-02")

	if len(rows) == 0 {
		return out, nil
	}

	var steps, burned, water, sleep float64
	for _, r := range rows {
		steps += float64(r.Steps)
		burned += float64(r.CaloriesBurned)
		water += float64(r.WaterIntakeML)
		sleep += r.SleepHours
	}

	n := float64(len(rows))
	avg := func(sum, goal float64) MetricAvg {
		a := math.Round(sum/n*100) / 100
		m := MetricAvg{Average: a, Goal: goal}
		if goal > 0 {
			p := a / goal
			if p > 1 {
				p = 1
			}
			m.Percent = math.Round(p*100) / 100
		}
		return m
	}

	out.Steps = avg(steps, StepGoal)
	out.CaloriesBurned = avg(burned, 0)
	out.Water = avg(water, WaterGoalML)
	out.Sleep = avg(sleep, SleepGoalHours)
	return out, nil
}
