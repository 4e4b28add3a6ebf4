package water

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"

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

func (r *Repo) Add(ctx context.Context, intake Intake) (_ *Intake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO water_intake
				(user_id, amount_ml, intake_time)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		intake.UserID, intake.AmountMl, intake.IntakeTime,
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

	span.SetAttributes(attribute.Int("intake.id", id))

	intake.ID = id
	return &intake, nil
}

// DailyTotal sums the water a user drank on a calendar day.
func (r *Repo) DailyTotal(ctx context.Context, userID int, date time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.dailytotal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	rows, err := r.db.Query(ctx, `
		SELECT COALESCE(SUM(amount_ml), 0) FROM water_intake
			WHERE user_id = $1
			AND intake_time::date = $2::date;
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

	return -1, errors.New("unexpected error, failed to sum water intake")
}

// DailyTotals returns per-day sums in [from, to] for days that have
// intake records, keyed by date in YYYY-MM-DD format.
func (r *Repo) DailyTotals(ctx context.Context, userID int, from, to time.Time) (_ map[string]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.dailytotals")
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
				intake_time::date AS day, SUM(amount_ml) AS total_ml
			FROM water_intake
				WHERE user_id = $1
				AND intake_time::date BETWEEN $2::date AND $3::date
			GROUP BY intake_time::date
			ORDER BY day ASC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	totals := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var totalMl int
		if err := rows.Scan(&day, &totalMl); err != nil {
			return nil, err
		}
		totals[day.Format(time.DateOnly)] = totalMl
	}

	return totals, nil
}
