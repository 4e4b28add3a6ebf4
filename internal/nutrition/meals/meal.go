package meals

import (
	"time"
)

type Meal struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Name          string    `json:"name"`
	MealTime      time.Time `json:"mealTime"`
	TotalCalories int       `json:"totalCalories"`
}
