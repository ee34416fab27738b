package controllers

import (
	"errors"
	"net/http"

	"github.com/Monika2004-sys/Smart-Health-Tracker/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the aggregated health summary. A missing profile is a
// 404 so the client can send the user to onboarding instead of showing an
// error.
func GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	summary, err := services.GetDashboard(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
