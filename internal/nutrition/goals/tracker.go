package goals

import (
	"context"
	"errors"
	"time"

	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"
	"github.com/fitpulse/fitpulse/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	AddGoal(ctx context.Context, goal Goal) (*Goal, error)
	ActiveGoal(ctx context.Context, userID int, date time.Time) (*Goal, error)
	GetProgress(ctx context.Context, userID int, date time.Time) (*Progress, error)
	InsertProgress(ctx context.Context, progress Progress) error
	UpdateProgress(ctx context.Context, progressID string, consumed, remaining int, updatedAt time.Time) error
	ListProgress(ctx context.Context, userID int, from, to time.Time) ([]Progress, error)
}

// caloriesSource provides the calories a user consumed on a given day,
// summed over the logged meals.
type caloriesSource interface {
	ConsumedCalories(ctx context.Context, userID int, date time.Time) (int, error)
}

type Tracker struct {
	repo     goalsRepo
	calories caloriesSource
	// Now and NewID are swapped out in tests
	Now   func() time.Time
	NewID func() string
}

func NewTracker(repo goalsRepo, calories caloriesSource) *Tracker {
	return &Tracker{
		repo:     repo,
		calories: calories,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// DailyProgress returns the progress of a user for a single day. An
// existing snapshot for that day is served as stored, without
// recomputing from meals. When no snapshot exists yet, one is computed
// from the logged meals and persisted.
func (t *Tracker) DailyProgress(ctx context.Context, userID int, date time.Time) (_ *DailyProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.nutritiongoals.daily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	day := dayOf(date)
	goal, err := t.repo.ActiveGoal(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	progress, err := t.repo.GetProgress(ctx, userID, day)
	if err == nil {
		return &DailyProgress{
			Goal:              *goal,
			Date:              day.Format(time.DateOnly),
			CaloriesConsumed:  progress.CaloriesConsumed,
			CaloriesRemaining: progress.CaloriesRemaining,
			CaloriesPercent:   caloriesPercent(progress.CaloriesConsumed, goal.CalorieTarget),
			UpdatedAt:         progress.UpdatedAt,
		}, nil
	}
	if !errors.Is(err, ErrProgressNotFound) {
		return nil, err
	}

	consumed, err := t.calories.ConsumedCalories(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	remaining := goal.CalorieTarget - consumed
	if remaining < 0 {
		remaining = 0
	}

	now := t.Now()
	newProgress := Progress{
		ID:                t.NewID(),
		GoalID:            goal.ID,
		UserID:            userID,
		Date:              day,
		CaloriesConsumed:  consumed,
		CaloriesRemaining: remaining,
		UpdatedAt:         now,
	}
	if err := t.repo.InsertProgress(ctx, newProgress); err != nil {
		// the snapshot is an optimization, still serve the computed values
		log.Errorf("failed to store progress snapshot for user %d on %s: %s", userID, day.Format(time.DateOnly), err)
	}

	return &DailyProgress{
		Goal:              *goal,
		Date:              day.Format(time.DateOnly),
		CaloriesConsumed:  consumed,
		CaloriesRemaining: remaining,
		CaloriesPercent:   caloriesPercent(consumed, goal.CalorieTarget),
		UpdatedAt:         now,
	}, nil
}

// UpdateProgress recomputes and persists the progress snapshot of a
// user for a day. When consumed is nil the calories are summed from
// the logged meals. The operation is an upsert and thus idempotent.
func (t *Tracker) UpdateProgress(ctx context.Context, userID int, date time.Time, consumed *int) (_ *DailyProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.nutritiongoals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	day := dayOf(date)
	goal, err := t.repo.ActiveGoal(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	var caloriesConsumed int
	if consumed != nil {
		caloriesConsumed = *consumed
	} else {
		caloriesConsumed, err = t.calories.ConsumedCalories(ctx, userID, day)
		if err != nil {
			return nil, err
		}
	}

	remaining := goal.CalorieTarget - caloriesConsumed
	if remaining < 0 {
		remaining = 0
	}

	now := t.Now()
	existing, err := t.repo.GetProgress(ctx, userID, day)
	switch {
	case err == nil:
		if err := t.repo.UpdateProgress(ctx, existing.ID, caloriesConsumed, remaining, now); err != nil {
			return nil, err
		}
	case errors.Is(err, ErrProgressNotFound):
		insertErr := t.repo.InsertProgress(ctx, Progress{
			ID:                t.NewID(),
			GoalID:            goal.ID,
			UserID:            userID,
			Date:              day,
			CaloriesConsumed:  caloriesConsumed,
			CaloriesRemaining: remaining,
			UpdatedAt:         now,
		})
		if pkg.IsUniqueViolationError(insertErr) {
			// a concurrent writer inserted the row first, update it instead
			existing, err := t.repo.GetProgress(ctx, userID, day)
			if err != nil {
				return nil, err
			}
			if err := t.repo.UpdateProgress(ctx, existing.ID, caloriesConsumed, remaining, now); err != nil {
				return nil, err
			}
		} else if insertErr != nil {
			return nil, insertErr
		}
	default:
		return nil, err
	}

	return &DailyProgress{
		Goal:              *goal,
		Date:              day.Format(time.DateOnly),
		CaloriesConsumed:  caloriesConsumed,
		CaloriesRemaining: remaining,
		CaloriesPercent:   caloriesPercent(caloriesConsumed, goal.CalorieTarget),
		UpdatedAt:         now,
	}, nil
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
