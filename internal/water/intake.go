package water

import (
	"time"
)

// RecommendedDailyMl is the daily intake the summary percentage is
// measured against.
const RecommendedDailyMl = 2000

type Intake struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	AmountMl   int       `json:"amountMl"`
	IntakeTime time.Time `json:"intakeTime"`
}

type DailySummary struct {
	Date    string `json:"date"`
	TotalMl int    `json:"totalMl"`
	Percent int    `json:"percent"`
}

type DayTotal struct {
	Date    string `json:"date"`
	TotalMl int    `json:"totalMl"`
}

type WeeklySummary struct {
	Days []DayTotal `json:"days"`
}

// percentOfRecommended clamps to 100, a day can not be more than done.
func percentOfRecommended(totalMl int) int {
	percent := totalMl * 100 / RecommendedDailyMl
	if percent > 100 {
		return 100
	}
	return percent
}
