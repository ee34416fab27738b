package services

import (
	"time"

	"github.com/Monika2004-sys/Smart-Health-Tracker/config"
	"github.com/Monika2004-sys/Smart-Health-Tracker/models"

	"gorm.io/gorm"
)

func AddMeal(userID uint, mealType, foodName string, calories int) (*models.Meal, error) {
	meal := &models.Meal{
		UserID:   userID,
		Date:     dayStartLocal(time.Now()),
		MealType: mealType,
		FoodName: foodName,
		Calories: calories,
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func ListMealsByDate(userID uint, date time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, dayStartLocal(date)).
		Order("created_at asc").
		Find(&meals).Error
	return meals, err
}

func DeleteMeal(userID, mealID uint) error {
	result := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func TotalCaloriesByDate(userID uint, date time.Time) (int, error) {
	meals, err := ListMealsByDate(userID, date)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total, nil
}
