package goals

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// WeeklyProgress aggregates the trailing window of `days` days ending
// today. Days with no stored snapshot get one computed on the fly when
// a goal covered them; days with no goal at all are left out of the
// aggregate instead of being counted as zero.
func (t *Tracker) WeeklyProgress(ctx context.Context, userID, days int) (_ *WeeklyProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.nutritiongoals.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.Int("days", days))

	if days < 1 {
		return nil, errors.New("days must be greater than 0")
	}

	today := dayOf(t.Now())
	start := today.AddDate(0, 0, -(days - 1))

	stored, err := t.repo.ListProgress(ctx, userID, start, today)
	if err != nil {
		return nil, err
	}

	date2entry := make(map[string]DayEntry, len(stored))
	for _, p := range stored {
		dateStr := dayOf(p.Date).Format(time.DateOnly)
		date2entry[dateStr] = DayEntry{
			Date:              dateStr,
			GoalID:            p.GoalID,
			CaloriesConsumed:  p.CaloriesConsumed,
			CaloriesRemaining: p.CaloriesRemaining,
			UpdatedAt:         p.UpdatedAt,
		}
	}

	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(time.DateOnly)
		if _, ok := date2entry[dateStr]; ok {
			continue
		}

		dp, err := t.DailyProgress(ctx, userID, day)
		if err != nil {
			if errors.Is(err, ErrGoalNotFound) {
				// no goal covered this day, leave it out
				continue
			}
			log.Errorf("failed to get daily progress for user %d on %s: %s", userID, dateStr, err)
			continue
		}

		date2entry[dateStr] = DayEntry{
			Date:              dateStr,
			GoalID:            dp.Goal.ID,
			CaloriesConsumed:  dp.CaloriesConsumed,
			CaloriesRemaining: dp.CaloriesRemaining,
			UpdatedAt:         dp.UpdatedAt,
		}
	}

	if len(date2entry) == 0 {
		return nil, ErrNoProgressData
	}

	dayEntries := make([]DayEntry, 0, len(date2entry))
	for _, entry := range date2entry {
		dayEntries = append(dayEntries, entry)
	}
	sort.Slice(dayEntries, func(i, j int) bool {
		return dayEntries[i].Date < dayEntries[j].Date
	})

	var sumConsumed, sumRemaining int
	for _, entry := range dayEntries {
		sumConsumed += entry.CaloriesConsumed
		sumRemaining += entry.CaloriesRemaining
	}

	weekly := &WeeklyProgress{
		Days: dayEntries,
		Averages: WeeklyAverages{
			CaloriesConsumed:  float64(sumConsumed) / float64(len(dayEntries)),
			CaloriesRemaining: float64(sumRemaining) / float64(len(dayEntries)),
		},
	}

	// the weekly percentage is measured against the goal active today
	currentGoal, err := t.repo.ActiveGoal(ctx, userID, today)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			return weekly, nil
		}
		return nil, err
	}

	percent := 0.0
	if currentGoal.CalorieTarget > 0 {
		percent = weekly.Averages.CaloriesConsumed / float64(currentGoal.CalorieTarget) * 100
		if percent > 100 {
			percent = 100
		}
	}
	weekly.CurrentGoal = currentGoal
	weekly.CaloriesPercent = &percent

	return weekly, nil
}
