package goals

import (
	"context"
	"fmt"
	"time"

	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddGoal(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritiongoals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", goal.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO nutrition_goal
				(id, user_id, goal_type, calorie_target, start_date, end_date, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		goal.ID, goal.UserID, goal.GoalType, goal.CalorieTarget,
		goal.StartDate, goal.EndDate, goal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

// ActiveGoal returns the goal covering the given date. With overlapping
// goals the most recently created one is the active one.
func (r *Repo) ActiveGoal(ctx context.Context, userID int, date time.Time) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritiongoals.activegoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, goal_type, calorie_target, start_date, end_date, created_at
			FROM nutrition_goal
				WHERE user_id = $1
				AND start_date <= $2
				AND (end_date IS NULL OR end_date >= $2)
			ORDER BY created_at DESC
			LIMIT 1;`,
		userID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	goalsFound, err := r.rows2goals(rows)
	if err != nil {
		return nil, err
	}

	if len(goalsFound) == 0 {
		return nil, ErrGoalNotFound
	}

	return &goalsFound[0], nil
}

// GetProgress returns the latest progress snapshot of a user for a day.
func (r *Repo) GetProgress(ctx context.Context, userID int, date time.Time) (_ *Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritiongoals.getprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, goal_id, user_id, date, calories_consumed, calories_remaining, updated_at
			FROM nutrition_goal_progress
				WHERE user_id = $1
				AND date = $2
			ORDER BY updated_at DESC
			LIMIT 1;`,
		userID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	progressFound, err := r.rows2progress(rows)
	if err != nil {
		return nil, err
	}

	if len(progressFound) == 0 {
		return nil, ErrProgressNotFound
	}

	return &progressFound[0], nil
}

func (r *Repo) InsertProgress(ctx context.Context, progress Progress) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritiongoals.insertprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progress.id", progress.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO nutrition_goal_progress
				(id, goal_id, user_id, date, calories_consumed, calories_remaining, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		progress.ID, progress.GoalID, progress.UserID, progress.Date,
		progress.CaloriesConsumed, progress.CaloriesRemaining, progress.UpdatedAt,
	)
	return err
}

func (r *Repo) UpdateProgress(ctx context.Context, progressID string, consumed, remaining int, updatedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritiongoals.updateprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progress.id", progressID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE nutrition_goal_progress
			SET calories_consumed = $1, calories_remaining = $2, updated_at = $3
			WHERE id = $4;`,
		consumed, remaining, updatedAt, progressID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProgressNotFound
	}

	return nil
}

// ListProgress returns all progress snapshots of a user in [from, to], oldest first.
func (r *Repo) ListProgress(ctx context.Context, userID int, from, to time.Time) (_ []Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritiongoals.listprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("from", from.Format(time.DateOnly)))
	span.SetAttributes(attribute.String("to", to.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, goal_id, user_id, date, calories_consumed, calories_remaining, updated_at
			FROM nutrition_goal_progress
				WHERE user_id = $1
				AND date BETWEEN $2 AND $3
			ORDER BY date ASC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	progressFound, err := r.rows2progress(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2progress: %w", err)
	}
	return progressFound, nil
}

func (r *Repo) rows2goals(rows pgx.Rows) ([]Goal, error) {
	var goalsFound []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.GoalType, &g.CalorieTarget,
			&g.StartDate, &g.EndDate, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		goalsFound = append(goalsFound, g)
	}

	if goalsFound == nil {
		goalsFound = make([]Goal, 0)
	}

	return goalsFound, nil
}

func (r *Repo) rows2progress(rows pgx.Rows) ([]Progress, error) {
	var progressFound []Progress
	for rows.Next() {
		var p Progress
		if err := rows.Scan(
			&p.ID, &p.GoalID, &p.UserID, &p.Date,
			&p.CaloriesConsumed, &p.CaloriesRemaining, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		progressFound = append(progressFound, p)
	}

	if progressFound == nil {
		progressFound = make([]Progress, 0)
	}

	return progressFound, nil
}
