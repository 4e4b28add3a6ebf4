package goals

import (
	"errors"
	"time"
)

var (
	ErrGoalNotFound     = errors.New("nutrition goal not found")
	ErrProgressNotFound = errors.New("goal progress not found")
	ErrNoProgressData   = errors.New("no progress data for period")
)

// Goal is a calorie target active between StartDate and EndDate.
// An open-ended goal has no EndDate. When several goals cover the same
// day, the most recently created one wins.
type Goal struct {
	ID            string     `json:"goalId"`
	UserID        int        `json:"userId"`
	GoalType      string     `json:"goalType"`
	CalorieTarget int        `json:"calorieTarget"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Progress is the stored per-day snapshot of consumed and remaining
// calories against the goal active on that day.
type Progress struct {
	ID                string    `json:"progressId"`
	GoalID            string    `json:"goalId"`
	UserID            int       `json:"userId"`
	Date              time.Time `json:"date"`
	CaloriesConsumed  int       `json:"caloriesConsumed"`
	CaloriesRemaining int       `json:"caloriesRemaining"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// DailyProgress is the client-facing view of a single day.
type DailyProgress struct {
	Goal              Goal      `json:"goal"`
	Date              string    `json:"date"`
	CaloriesConsumed  int       `json:"caloriesConsumed"`
	CaloriesRemaining int       `json:"caloriesRemaining"`
	CaloriesPercent   float64   `json:"caloriesPercent"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type DayEntry struct {
	Date              string    `json:"date"`
	GoalID            string    `json:"goalId"`
	CaloriesConsumed  int       `json:"caloriesConsumed"`
	CaloriesRemaining int       `json:"caloriesRemaining"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type WeeklyAverages struct {
	CaloriesConsumed  float64 `json:"caloriesConsumed"`
	CaloriesRemaining float64 `json:"caloriesRemaining"`
}

// WeeklyProgress aggregates the per-day snapshots of the trailing
// window. CurrentGoal and CaloriesPercent are omitted when the user
// has no goal active today.
type WeeklyProgress struct {
	Days            []DayEntry     `json:"dailyProgress"`
	Averages        WeeklyAverages `json:"averages"`
	CurrentGoal     *Goal          `json:"currentGoal,omitempty"`
	CaloriesPercent *float64       `json:"caloriesPercent,omitempty"`
}

// caloriesPercent clamps the consumed/target ratio to [0, 100].
// A goal with a non-positive target always reports zero.
func caloriesPercent(consumed, target int) float64 {
	if target <= 0 {
		return 0
	}
	percent := float64(consumed) / float64(target) * 100
	if percent > 100 {
		return 100
	}
	return percent
}
