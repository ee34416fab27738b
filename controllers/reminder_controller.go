package controllers

import (
	"net/http"

	"github.com/Monika2004-sys/Smart-Health-Tracker/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Sched *services.ReminderScheduler
}

func NewReminderController(sched *services.ReminderScheduler) *ReminderController {
	return &ReminderController{Sched: sched}
}

type reminderToggleReq struct {
	Enabled         bool                    `json:"enabled"`
	Times           []services.ReminderTime `json:"times"`
	IntervalMinutes int                     `json:"interval_minutes"`
}

// Toggle enables or disables reminders for one tracker. Configuration is held
// in memory only; it resets when the server restarts.
func (rc *ReminderController) Toggle(c *gin.Context) {
	userID := c.GetUint("userID")
	tracker := c.Param("tracker")

	var req reminderToggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Enabled {
		rc.Sched.Stop(userID, tracker)
		c.Status(http.StatusNoContent)
		return
	}

	cfg := services.ReminderConfig{
		Tracker:         tracker,
		Times:           req.Times,
		IntervalMinutes: req.IntervalMinutes,
	}
	if err := rc.Sched.Set(userID, cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (rc *ReminderController) List(c *gin.Context) {
	userID := c.GetUint("userID")
	c.JSON(http.StatusOK, gin.H{"reminders": rc.Sched.Configs(userID)})
}
