package water

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fitpulse/fitpulse/internal/telemetry/metrics"
	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"
	"github.com/fitpulse/fitpulse/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=water_mocks_test.go -package=water_test

type waterRepo interface {
	Add(ctx context.Context, intake Intake) (*Intake, error)
	DailyTotal(ctx context.Context, userID int, date time.Time) (int, error)
	DailyTotals(ctx context.Context, userID int, from, to time.Time) (map[string]int, error)
}

type Handler struct {
	repo    waterRepo
	metrics *metrics.Manager
	// Now is swapped out in tests to pin the summary windows
	Now func() time.Time
}

func NewHandler(repo waterRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
		Now:     time.Now,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var intake Intake
	if err := json.NewDecoder(r.Body).Decode(&intake); err != nil {
		log.Tracef("new water intake, unmarshal json params: %s", err)
		http.Error(w, "add water intake failed", http.StatusBadRequest)
		return
	}

	if intake.UserID <= 0 {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if intake.AmountMl <= 0 {
		http.Error(w, "error, amount must be positive", http.StatusBadRequest)
		return
	}

	if intake.IntakeTime.IsZero() {
		intake.IntakeTime = handler.Now()
	}

	addedIntake, err := handler.repo.Add(ctx, intake)
	if err != nil {
		log.Errorf("failed to add water intake for user %d: %s", intake.UserID, err)
		http.Error(w, "error, failed to add water intake", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWaterIntakes.Inc()

	addedIntakeJson, err := json.Marshal(addedIntake)
	if err != nil {
		log.Errorf("failed to marshal new water intake: %s", err)
		http.Error(w, "error, failed to add water intake", http.StatusInternalServerError)
		return
	}

	log.Debugf("new water intake added: %s", addedIntakeJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedIntakeJson, http.StatusCreated)
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.today")
	defer span.End()

	userID, err := userIDFromQuery(r)
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	today := handler.Now()
	totalMl, err := handler.repo.DailyTotal(ctx, userID, today)
	if err != nil {
		log.Errorf("failed to get water total for user %d: %s", userID, err)
		http.Error(w, "failed to get water summary", http.StatusInternalServerError)
		return
	}

	summary := DailySummary{
		Date:    today.UTC().Format(time.DateOnly),
		TotalMl: totalMl,
		Percent: percentOfRecommended(totalMl),
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal water summary: %s", err)
		http.Error(w, "failed to marshal water summary", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.weekly")
	defer span.End()

	userID, err := userIDFromQuery(r)
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	days := 7
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil || days < 1 {
			http.Error(w, "error, invalid days", http.StatusBadRequest)
			return
		}
	}

	now := handler.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -(days - 1))

	totals, err := handler.repo.DailyTotals(ctx, userID, start, today)
	if err != nil {
		log.Errorf("failed to get water totals for user %d: %s", userID, err)
		http.Error(w, "failed to get water summary", http.StatusInternalServerError)
		return
	}

	// days without intake records show up as zero
	summary := WeeklySummary{
		Days: make([]DayTotal, 0, days),
	}
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(time.DateOnly)
		summary.Days = append(summary.Days, DayTotal{
			Date:    dateStr,
			TotalMl: totals[dateStr],
		})
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal weekly water summary: %s", err)
		http.Error(w, "failed to marshal weekly water summary", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func userIDFromQuery(r *http.Request) (int, error) {
	userIDStr := r.URL.Query().Get("user_id")
	if userIDStr == "" {
		return 0, errors.New("user id empty")
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return 0, err
	}
	if userID <= 0 {
		return 0, errors.New("user id must be positive")
	}
	return userID, nil
}
