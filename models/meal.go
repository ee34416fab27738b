package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal rows are independent entries, many per day. Created on add, removed on
// delete, never edited.
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Date     time.Time `gorm:"index;not null" json:"date"`        // truncated to local midnight
	MealType string    `gorm:"size:20;not null" json:"meal_type"` // "breakfast" | "lunch" | "dinner" | "snack"
	FoodName string    `gorm:"not null" json:"food_name"`
	Calories int       `json:"calories"`
}
