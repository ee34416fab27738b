package models

import (
	"time"

	"gorm.io/gorm"
)

// Medication is soft-deleted (Active=false) so intake history stays intact.
// TimesOfDay stores the scheduled HH:MM times comma-separated.
type Medication struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	Name       string `gorm:"not null" json:"name"`
	Dosage     string `gorm:"not null" json:"dosage"`
	Frequency  string `gorm:"size:20" json:"frequency"`
	TimesOfDay string `json:"times_of_day"`
	Active     bool   `gorm:"default:true" json:"active"`
}

// MedicationLog is append-only. Whether a medication was taken today is
// derived from the existence of a log row dated today, never stored.
type MedicationLog struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	MedicationID uint      `gorm:"index;not null" json:"medication_id"`
	TakenAt      time.Time `gorm:"not null" json:"taken_at"`
}
