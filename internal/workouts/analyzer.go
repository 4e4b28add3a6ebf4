package workouts

import (
	"context"
	"time"

	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Analyzer struct {
	repo workoutsRepo
	// Now is swapped out in tests to pin the streak calculation to a fixed day
	Now func() time.Time
}

func NewAnalyzer(repo workoutsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
		Now:  time.Now,
	}
}

// Stats aggregates a user's whole workout history into streaks,
// badges and the total workout count.
func (a *Analyzer) Stats(ctx context.Context, userID int) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	allWorkouts, err := a.repo.ListAll(ctx, WorkoutParams{UserID: userID})
	if err != nil {
		return nil, err
	}

	streak := CalculateStreak(allWorkouts, a.Now())
	badges := Badges(allWorkouts, streak)

	return &Stats{
		CurrentStreak: streak.Current,
		LongestStreak: streak.Longest,
		Badges:        badges,
		TotalWorkouts: len(allWorkouts),
	}, nil
}
