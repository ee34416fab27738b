package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Monika2004-sys/Smart-Health-Tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddMedicationInput struct {
	Name      string   `json:"name" binding:"required"`
	Dosage    string   `json:"dosage" binding:"required"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times" binding:"required,min=1"`
}

func AddMedication(c *gin.Context) {
	userID := c.GetUint("userID")

	var input AddMedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frequency := input.Frequency
	if frequency == "" {
		frequency = "daily"
	}

	med, err := services.AddMedication(userID, input.Name, input.Dosage, frequency, input.Times)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, med)
}

// ListMedications returns active medications with the derived taken-today
// flag.
func ListMedications(c *gin.Context) {
	userID := c.GetUint("userID")

	meds, err := services.ListMedicationsWithStatus(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meds)
}

func LogMedication(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication id"})
		return
	}

	entry, err := services.LogMedicationIntake(userID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func DeleteMedication(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication id"})
		return
	}

	if err := services.DeactivateMedication(userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
