package routes

import (
	"github.com/Monika2004-sys/Smart-Health-Tracker/config"
	"github.com/Monika2004-sys/Smart-Health-Tracker/controllers"
	"github.com/Monika2004-sys/Smart-Health-Tracker/middlewares"
	"github.com/Monika2004-sys/Smart-Health-Tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService, sched *services.ReminderScheduler) *gin.Engine {
	r := gin.Default()

	rtc := controllers.NewRealtimeController(hub)
	dvc := controllers.NewDeviceController(push)
	rmc := controllers.NewReminderController(sched)
	anc := controllers.NewAnalyticsController(services.NewAnalyticsService(config.DB))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.GET("/dashboard", controllers.GetDashboard)

		user.GET("/tracking/today", controllers.GetTodayTracking)
		user.GET("/tracking/history", controllers.GetTrackingHistory)
		user.POST("/tracking/steps", controllers.AddSteps)
		user.POST("/tracking/water", controllers.AddWater)
		user.POST("/tracking/sleep", controllers.LogSleep)
		user.POST("/tracking/mood", controllers.SetMood)

		user.GET("/meals", controllers.ListMeals)
		user.POST("/meals", controllers.AddMeal)
		user.DELETE("/meals/:id", controllers.DeleteMeal)

		user.GET("/medications", controllers.ListMedications)
		user.POST("/medications", controllers.AddMedication)
		user.POST("/medications/:id/log", controllers.LogMedication)
		user.DELETE("/medications/:id", controllers.DeleteMedication)

		user.GET("/reminders", rmc.List)
		user.PUT("/reminders/:tracker", rmc.Toggle)

		user.GET("/analytics/weekly", anc.GetWeeklySummary)

		user.POST("/devices", dvc.Register)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.GET("/ws/reminders", rtc.RemindersWS)
	}

	return r
}
