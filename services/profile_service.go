package services

import (
	"errors"
	"fmt"

	"github.com/Monika2004-sys/Smart-Health-Tracker/config"
	"github.com/Monika2004-sys/Smart-Health-Tracker/models"
	"github.com/Monika2004-sys/Smart-Health-Tracker/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Name          string
	Age           int
	Gender        string
	HeightCm      float64
	WeightKg      float64
	Goal          string
	ActivityLevel string
	Picture       string // optional base64 data URL
}

// GetProfile returns gorm.ErrRecordNotFound when the user has not onboarded
// yet; callers use that to send the client to onboarding.
func GetProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates the profile on first onboarding submission and fully
// replaces it thereafter.
func UpsertProfile(userID uint, input ProfileInput) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile.UserID = userID
	profile.Name = input.Name
	profile.Age = input.Age
	profile.Gender = input.Gender
	profile.HeightCm = input.HeightCm
	profile.WeightKg = input.WeightKg
	profile.Goal = input.Goal
	profile.ActivityLevel = input.ActivityLevel

	if input.Picture != "" {
		url, upErr := utils.UploadBase64ImageToS3(input.Picture, fmt.Sprintf("user-%d", userID))
		if upErr != nil {
			return nil, fmt.Errorf("failed to upload profile picture: %w", upErr)
		}
		profile.PictureURL = url
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := config.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
