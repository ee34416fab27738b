package utils

import (
	"errors"
	"math"
)

// CalculateBMI expects weight in kilograms and height in centimeters.
// The result is rounded to two decimal places.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*100) / 100, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25.0:
		return "normal"
	case bmi < 30.0:
		return "overweight"
	default:
		return "obese"
	}
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculateCalorieTarget estimates a daily calorie target from the
// Mifflin-St Jeor basal rate scaled by the activity multiplier. An
// unrecognized activity level falls back to moderate (1.55).
func CalculateCalorieTarget(weightKg, heightCm float64, age int, gender, activityLevel string) int {
	var bmr float64
	switch gender {
	case "male":
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	case "female":
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	default:
		// average of the male/female offsets
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 78
	}

	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = 1.55
	}
	return int(math.Round(bmr * multiplier))
}

var bmiTips = map[string][]string{
	"underweight": {
		"Add more nutritious, calorie-dense meals to your diet.",
		"Consider strength training to build muscle mass.",
	},
	"normal": {
		"Great job! Maintain your healthy lifestyle.",
		"Continue balanced eating and regular exercise.",
	},
	"overweight": {
		"Try 20 minutes of morning yoga or stretching.",
		"Increase your daily walking by 2,000 steps.",
	},
	"obese": {
		"Start with low-impact exercises like swimming or cycling.",
		"Consider consulting a healthcare professional for guidance.",
	},
}

// HealthTips returns the tip list in a fixed order: two BMI-category tips
// (none when the category is unrecognized), one step-count tip, then the two
// general wellness tips.
func HealthTips(category string, steps int) []string {
	var tips []string

	tips = append(tips, bmiTips[category]...)

	switch {
	case steps < 5000:
		tips = append(tips, "Take short 5-minute walking breaks every hour.")
	case steps < 8000:
		tips = append(tips, "You're doing well! Aim for 10,000 steps daily.")
	default:
		tips = append(tips, "Excellent activity level! Keep up the great work.")
	}

	tips = append(tips,
		"Remember to drink 8 glasses of water daily.",
		"Aim for 7-9 hours of quality sleep each night.",
	)

	return tips
}
