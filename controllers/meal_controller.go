package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Monika2004-sys/Smart-Health-Tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddMealInput struct {
	MealType string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	FoodName string `json:"food_name" binding:"required"`
	Calories int    `json:"calories" binding:"gte=0"`
}

func AddMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.AddMeal(userID, input.MealType, input.FoodName, input.Calories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// ListMeals returns the meals for the given date (default today) together
// with their calorie total.
func ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	meals, err := services.ListMealsByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total := 0
	for _, m := range meals {
		total += m.Calories
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals, "total_calories": total})
}

func DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := services.DeleteMeal(userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
