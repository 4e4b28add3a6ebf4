package goals

import (
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

type AddGoalRequest struct {
	UserID        int     `json:"userId"`
	GoalType      string  `json:"goalType"`
	CalorieTarget int     `json:"calorieTarget"`
	StartDate     string  `json:"startDate"`
	EndDate       *string `json:"endDate,omitempty"`
}

type UpdateProgressRequest struct {
	UserID           int    `json:"userId"`
	Date             string `json:"date,omitempty"`
	CaloriesConsumed *int   `json:"caloriesConsumed,omitempty"`
}

type Handler struct {
	repo    goalsRepo
	tracker *Tracker
	metrics *metrics.Manager
}

func NewHandler(repo goalsRepo, tracker *Tracker, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		tracker: tracker,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritiongoals.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var addReq AddGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Tracef("new nutrition goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if addReq.UserID <= 0 {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if addReq.CalorieTarget <= 0 {
		http.Error(w, "error, calorie target must be positive", http.StatusBadRequest)
		return
	}

	startDate, err := time.Parse(time.DateOnly, addReq.StartDate)
	if err != nil {
		http.Error(w, "error, invalid start date", http.StatusBadRequest)
		return
	}

	var endDate *time.Time
	if addReq.EndDate != nil {
		parsed, err := time.Parse(time.DateOnly, *addReq.EndDate)
		if err != nil {
			http.Error(w, "error, invalid end date", http.StatusBadRequest)
			return
		}
		if parsed.Before(startDate) {
			http.Error(w, "error, goal ends before it starts", http.StatusBadRequest)
			return
		}
		endDate = &parsed
	}

	goalType := addReq.GoalType
	if goalType == "" {
		goalType = "calorie"
	}

	addedGoal, err := handler.repo.AddGoal(ctx, Goal{
		ID:            handler.tracker.NewID(),
		UserID:        addReq.UserID,
		GoalType:      goalType,
		CalorieTarget: addReq.CalorieTarget,
		StartDate:     startDate,
		EndDate:       endDate,
		CreatedAt:     handler.tracker.Now(),
	})
	if err != nil {
		log.Errorf("failed to add nutrition goal for user %d: %s", addReq.UserID, err)
		http.Error(w, "error, failed to add goal", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(addedGoal)
	if err != nil {
		log.Errorf("failed to marshal new goal: %s", err)
		http.Error(w, "error, failed to add goal", http.StatusInternalServerError)
		return
	}

	log.Debugf("new nutrition goal added: %s", goalJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusCreated)
}

func (handler *Handler) HandleActiveGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritiongoals.active")
	defer span.End()

	userID, err := userIDFromQuery(r)
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	date, err := dateFromQuery(r, handler.tracker.Now())
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	goal, err := handler.repo.ActiveGoal(ctx, userID, dayOf(date))
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get active goal for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("failed to marshal goal: %s", err)
		http.Error(w, "failed to marshal goal", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusOK)
}

func (handler *Handler) HandleDailyProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritiongoals.daily")
	defer span.End()

	userID, err := userIDFromQuery(r)
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	date, err := dateFromQuery(r, handler.tracker.Now())
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	dailyProgress, err := handler.tracker.DailyProgress(ctx, userID, date)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get daily progress for user %d: %s", userID, err)
		http.Error(w, "failed to get daily progress", http.StatusInternalServerError)
		return
	}

	progressJson, err := json.Marshal(dailyProgress)
	if err != nil {
		log.Errorf("failed to marshal daily progress: %s", err)
		http.Error(w, "failed to marshal daily progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, progressJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritiongoals.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var updateReq UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		log.Tracef("update progress, unmarshal json params: %s", err)
		http.Error(w, "update progress failed", http.StatusBadRequest)
		return
	}

	if updateReq.UserID <= 0 {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if updateReq.CaloriesConsumed != nil && *updateReq.CaloriesConsumed < 0 {
		http.Error(w, "error, calories consumed must not be negative", http.StatusBadRequest)
		return
	}

	date := handler.tracker.Now()
	if updateReq.Date != "" {
		parsed, err := time.Parse(time.DateOnly, updateReq.Date)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	dailyProgress, err := handler.tracker.UpdateProgress(ctx, updateReq.UserID, date, updateReq.CaloriesConsumed)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update progress for user %d: %s", updateReq.UserID, err)
		http.Error(w, "failed to update progress", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterGoalProgressUpserts.Inc()

	progressJson, err := json.Marshal(dailyProgress)
	if err != nil {
		log.Errorf("failed to marshal updated progress: %s", err)
		http.Error(w, "failed to marshal updated progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, progressJson, http.StatusOK)
}

func (handler *Handler) HandleWeeklyProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritiongoals.weekly")
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

	weeklyProgress, err := handler.tracker.WeeklyProgress(ctx, userID, days)
	if err != nil {
		if errors.Is(err, ErrNoProgressData) {
			http.Error(w, "no progress data", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get weekly progress for user %d: %s", userID, err)
		http.Error(w, "failed to get weekly progress", http.StatusInternalServerError)
		return
	}

	weeklyJson, err := json.Marshal(weeklyProgress)
	if err != nil {
		log.Errorf("failed to marshal weekly progress: %s", err)
		http.Error(w, "failed to marshal weekly progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weeklyJson, http.StatusOK)
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

func dateFromQuery(r *http.Request, fallback time.Time) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return fallback, nil
	}
	return time.Parse(time.DateOnly, dateStr)
}
