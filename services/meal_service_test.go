package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func TestAddAndListMeals(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := AddMeal(1, "breakfast", "Oatmeal", 320); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if _, err := AddMeal(1, "lunch", "Chicken salad", 450); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if _, err := AddMeal(2, "lunch", "Pizza", 800); err != nil {
		t.Fatalf("add meal: %v", err)
	}

	meals, err := ListMealsByDate(1, time.Now())
	if err != nil {
		t.Fatalf("list meals: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals for user 1, got %d", len(meals))
	}

	total, err := TotalCaloriesByDate(1, time.Now())
	if err != nil {
		t.Fatalf("total calories: %v", err)
	}
	if total != 770 {
		t.Errorf("total calories = %d, want 770", total)
	}
}

func TestDeleteMeal(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	meal, err := AddMeal(1, "snack", "Apple", 95)
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}

	if err := DeleteMeal(1, meal.ID); err != nil {
		t.Fatalf("delete meal: %v", err)
	}

	meals, err := ListMealsByDate(1, time.Now())
	if err != nil {
		t.Fatalf("list meals: %v", err)
	}
	if len(meals) != 0 {
		t.Errorf("meal still listed after delete: %v", meals)
	}
}

func TestDeleteMealScopedToOwner(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	meal, err := AddMeal(1, "dinner", "Pasta", 600)
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}

	err = DeleteMeal(2, meal.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not-found deleting another user's meal, got %v", err)
	}

	meals, _ := ListMealsByDate(1, time.Now())
	if len(meals) != 1 {
		t.Error("owner's meal should survive a foreign delete attempt")
	}
}
