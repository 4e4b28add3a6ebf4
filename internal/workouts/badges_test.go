package workouts_test

import (
	"testing"
	"time"

	"github.com/fitpulse/fitpulse/internal/workouts"

	"github.com/stretchr/testify/assert"
)

func TestBadges_NoHistory(t *testing.T) {
	badges := workouts.Badges(nil, workouts.Streak{})
	assert.Empty(t, badges)
}

func TestBadges_Streaks(t *testing.T) {
	badges := workouts.Badges(nil, workouts.Streak{Current: 3, Longest: 3})
	assert.Equal(t, []string{"3-Day Streak"}, badges)

	badges = workouts.Badges(nil, workouts.Streak{Current: 7, Longest: 7})
	assert.Equal(t, []string{"3-Day Streak", "7-Day Streak"}, badges)

	// longest streak counts for the warrior badge even when the current one is broken
	badges = workouts.Badges(nil, workouts.Streak{Current: 0, Longest: 14})
	assert.Equal(t, []string{"14-Day Warrior"}, badges)
}

func TestBadges_WorkoutCountsAndSteps(t *testing.T) {
	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	history := make([]workouts.Workout, 0, 50)
	for i := 0; i < 50; i++ {
		history = append(history, workouts.Workout{
			UserID:    1,
			StartTime: day.AddDate(0, 0, -i),
			Steps:     1200,
		})
	}

	// 50 workouts, 60000 lifetime steps, 10-day streak
	badges := workouts.Badges(history, workouts.Streak{Current: 10, Longest: 10})
	assert.Equal(t, []string{
		"3-Day Streak",
		"7-Day Streak",
		"10 Workouts Complete",
		"50 Workouts Legend",
		"Walked a 5k",
		"Walked a 10k",
		"Walked a 15k",
		"Walked a Half-Marathon",
		"Walked a Marathon",
	}, badges)
}

func TestBadges_StepsJustBelowThreshold(t *testing.T) {
	history := []workouts.Workout{
		{UserID: 1, Steps: 6999},
	}
	badges := workouts.Badges(history, workouts.Streak{Current: 1, Longest: 1})
	assert.Empty(t, badges)
}
