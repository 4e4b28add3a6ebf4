package meals

import (
	"context"
	"errors"
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

func (r *Repo) Add(ctx context.Context, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO meal
				(user_id, name, meal_time, total_calories)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		meal.UserID, meal.Name, meal.MealTime, meal.TotalCalories,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("meal.id", id))

	meal.ID = id
	return &meal, nil
}

// ListForDay returns the meals a user logged on a calendar day, oldest first.
func (r *Repo) ListForDay(ctx context.Context, userID int, date time.Time) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.listforday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, name, meal_time, total_calories
			FROM meal
				WHERE user_id = $1
				AND meal_time::date = $2::date
			ORDER BY meal_time ASC;`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2meals(rows)
}

// ConsumedCalories sums the calories of all meals a user logged on a
// calendar day. A day without meals sums to zero.
func (r *Repo) ConsumedCalories(ctx context.Context, userID int, date time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.consumedcalories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	rows, err := r.db.Query(ctx, `
		SELECT COALESCE(SUM(total_calories), 0) FROM meal
			WHERE user_id = $1
			AND meal_time::date = $2::date;
	`,
		userID, date,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var total int
		if err := rows.Scan(&total); err == nil {
			return total, nil
		}
	}

	return -1, errors.New("unexpected error, failed to sum consumed calories")
}

func (r *Repo) rows2meals(rows pgx.Rows) ([]Meal, error) {
	var mealsFound []Meal
	for rows.Next() {
		var m Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.MealTime, &m.TotalCalories); err != nil {
			return nil, err
		}
		mealsFound = append(mealsFound, m)
	}

	if mealsFound == nil {
		mealsFound = make([]Meal, 0)
	}

	return mealsFound, nil
}
