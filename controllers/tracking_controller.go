package controllers

import (
	"net/http"
	"time"

	"github.com/Monika2004-sys/Smart-Health-Tracker/services"

	"github.com/gin-gonic/gin"
)

type AddStepsInput struct {
	Steps *int `json:"steps" binding:"required,gte=0"`
}

// AddSteps adds a delta onto today's cumulative count. Calories burned are
// derived server-side from the new total.
func AddSteps(c *gin.Context) {
	userID := c.GetUint("userID")

	var input AddStepsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := services.AddSteps(userID, *input.Steps)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

type AddWaterInput struct {
	AmountML int `json:"amount_ml" binding:"required,gt=0"`
}

func AddWater(c *gin.Context) {
	userID := c.GetUint("userID")

	var input AddWaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := services.AddWater(userID, input.AmountML)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

type LogSleepInput struct {
	Hours float64 `json:"hours" binding:"required,gt=0"`
}

func LogSleep(c *gin.Context) {
	userID := c.GetUint("userID")

	var input LogSleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := services.LogSleep(userID, input.Hours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

type SetMoodInput struct {
	Mood string `json:"mood" binding:"required"`
}

func SetMood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input SetMoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := services.SetMood(userID, input.Mood)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func GetTodayTracking(c *gin.Context) {
	userID := c.GetUint("userID")

	rec, err := services.GetDailyTracking(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func GetTrackingHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	history, err := services.GetTrackingHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
