package controllers

import (
	"errors"
	"net/http"

	"github.com/Monika2004-sys/Smart-Health-Tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileInput struct {
	Name          string  `json:"name" binding:"required"`
	Age           int     `json:"age" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required,oneof=male female other"`
	HeightCm      float64 `json:"height_cm" binding:"required,gt=0"`
	WeightKg      float64 `json:"weight_kg" binding:"required,gt=0"`
	Goal          string  `json:"goal" binding:"required,oneof=lose_weight maintain gain_weight build_muscle"`
	ActivityLevel string  `json:"activity_level" binding:"required,oneof=sedentary light moderate active very_active"`
	Picture       string  `json:"picture"`
}

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := services.GetProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles both first onboarding and later edits; the profile is
// replaced as a whole either way.
func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpsertProfile(userID, services.ProfileInput{
		Name:          input.Name,
		Age:           input.Age,
		Gender:        input.Gender,
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		Goal:          input.Goal,
		ActivityLevel: input.ActivityLevel,
		Picture:       input.Picture,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
