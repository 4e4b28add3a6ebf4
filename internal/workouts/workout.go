package workouts

import (
	"time"
)

type Workout struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	DistanceKm     float64   `json:"distanceKm"`
	Steps          int       `json:"steps"`
	CaloriesBurned int       `json:"caloriesBurned"`
	StartLocation  string    `json:"startLocation,omitempty"`
	EndLocation    string    `json:"endLocation,omitempty"`
}

// Streak holds consecutive-workout-day counters.
// Current is zero when the most recent workout is older than yesterday.
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type Stats struct {
	CurrentStreak int      `json:"currentStreak"`
	LongestStreak int      `json:"longestStreak"`
	Badges        []string `json:"badgeList"`
	TotalWorkouts int      `json:"totalWorkouts"`
}
