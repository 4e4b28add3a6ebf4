package workouts

import (
	"sort"
	"time"
)

// CalculateStreak counts consecutive workout days. Multiple workouts on the
// same day count as one day. The streak survives until a full calendar day
// passes with no workout, so a last workout yesterday still keeps the
// current streak alive.
func CalculateStreak(workouts []Workout, today time.Time) Streak {
	if len(workouts) == 0 {
		return Streak{}
	}

	daysSet := make(map[time.Time]struct{})
	for _, w := range workouts {
		daysSet[dayOf(w.StartTime)] = struct{}{}
	}

	days := make([]time.Time, 0, len(daysSet))
	for day := range daysSet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	streak := 1
	longest := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			streak++
		} else {
			streak = 1
		}
		if streak > longest {
			longest = streak
		}
	}

	current := 0
	lastDay := days[len(days)-1]
	daysAgo := dayOf(today).Sub(lastDay) / (24 * time.Hour)
	if daysAgo == 0 || daysAgo == 1 {
		current = streak
	}

	return Streak{
		Current: current,
		Longest: longest,
	}
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
