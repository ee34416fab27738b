package models

import (
	"gorm.io/gorm"
)

// Profile holds the health attributes the derived metrics are computed from.
// One row per user, fully replaced on every save.
type Profile struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null"`
	Name          string  `gorm:"not null"`
	Age           int     `gorm:"not null"`
	Gender        string  `gorm:"size:10;not null"` // "male" | "female" | "other"
	HeightCm      float64 `gorm:"not null"`
	WeightKg      float64 `gorm:"not null"`
	Goal          string  `gorm:"size:20;not null"` // "lose_weight" | "maintain" | "gain_weight" | "build_muscle"
	ActivityLevel string  `gorm:"size:20;not null"` // "sedentary" | "light" | "moderate" | "active" | "very_active"
	PictureURL    string
}
