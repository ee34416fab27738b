package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Monika2004-sys/Smart-Health-Tracker/config"
	"github.com/Monika2004-sys/Smart-Health-Tracker/models"

	"gorm.io/gorm"
)

// MedicationStatus pairs a medication with its derived taken-today flag. The
// flag is computed from today's log rows and never stored.
type MedicationStatus struct {
	models.Medication
	TakenToday bool `json:"taken_today"`
}

func validTimeOfDay(t string) bool {
	_, err := time.Parse("15:04", t)
	return err == nil
}

func AddMedication(userID uint, name, dosage, frequency string, times []string) (*models.Medication, error) {
	if name == "" || dosage == "" {
		return nil, errors.New("name and dosage are required")
	}
	if len(times) == 0 {
		return nil, errors.New("at least one time of day is required")
	}
	for _, t := range times {
		if !validTimeOfDay(t) {
			return nil, errors.New("times must be HH:MM")
		}
	}

	med := &models.Medication{
		UserID:     userID,
		Name:       name,
		Dosage:     dosage,
		Frequency:  frequency,
		TimesOfDay: strings.Join(times, ","),
		Active:     true,
	}
	if err := config.DB.Create(med).Error; err != nil {
		return nil, err
	}
	return med, nil
}

func ListActiveMedications(userID uint) ([]models.Medication, error) {
	var meds []models.Medication
	err := config.DB.
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at asc").
		Find(&meds).Error
	return meds, err
}

// DeactivateMedication soft-deletes: the row stays so the intake history
// keeps pointing at it.
func DeactivateMedication(userID, medID uint) error {
	result := config.DB.Model(&models.Medication{}).
		Where("id = ? AND user_id = ?", medID, userID).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LogMedicationIntake appends a log row marking the medication taken now.
func LogMedicationIntake(userID, medID uint) (*models.MedicationLog, error) {
	var med models.Medication
	err := config.DB.
		Where("id = ? AND user_id = ? AND active = ?", medID, userID, true).
		First(&med).Error
	if err != nil {
		return nil, err
	}

	entry := &models.MedicationLog{
		UserID:       userID,
		MedicationID: medID,
		TakenAt:      time.Now(),
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// TakenToday reports whether any log row exists for the medication today.
// Multiple logs still count as taken.
func TakenToday(userID, medID uint) (bool, error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)

	var count int64
	err := config.DB.Model(&models.MedicationLog{}).
		Where("user_id = ? AND medication_id = ? AND taken_at >= ? AND taken_at < ?",
			userID, medID, start, end).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func ListMedicationsWithStatus(userID uint) ([]MedicationStatus, error) {
	meds, err := ListActiveMedications(userID)
	if err != nil {
		return nil, err
	}

	out := make([]MedicationStatus, 0, len(meds))
	for _, m := range meds {
		taken, err := TakenToday(userID, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, MedicationStatus{Medication: m, TakenToday: taken})
	}
	return out, nil
}

// MedicationTimes splits the stored comma-joined HH:MM list.
func MedicationTimes(med models.Medication) []string {
	if med.TimesOfDay == "" {
		return nil
	}
	parts := strings.Split(med.TimesOfDay, ",")
	times := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			times = append(times, p)
		}
	}
	return times
}
