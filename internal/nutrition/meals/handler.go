package meals

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

//go:generate mockgen -source=$GOFILE -destination=meals_mocks_test.go -package=meals_test

type mealsRepo interface {
	Add(ctx context.Context, meal Meal) (*Meal, error)
	ListForDay(ctx context.Context, userID int, date time.Time) ([]Meal, error)
	ConsumedCalories(ctx context.Context, userID int, date time.Time) (int, error)
}

type ListMealsResponse struct {
	Meals         []Meal `json:"meals"`
	TotalCalories int    `json:"totalCalories"`
}

type Handler struct {
	repo    mealsRepo
	metrics *metrics.Manager
}

func NewHandler(repo mealsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var meal Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		log.Tracef("new meal, unmarshal json params: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}

	if meal.UserID <= 0 {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if meal.TotalCalories < 0 {
		http.Error(w, "error, total calories must not be negative", http.StatusBadRequest)
		return
	}

	if meal.MealTime.IsZero() {
		meal.MealTime = time.Now()
	}

	addedMeal, err := handler.repo.Add(ctx, meal)
	if err != nil {
		log.Errorf("failed to add new meal for user %d: %s", meal.UserID, err)
		http.Error(w, "error, failed to add new meal", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMealsLogged.Inc()

	addedMealJson, err := json.Marshal(addedMeal)
	if err != nil {
		log.Errorf("failed to marshal new meal: %s", err)
		http.Error(w, "error, failed to add new meal", http.StatusInternalServerError)
		return
	}

	log.Debugf("new meal added: %s", addedMealJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedMealJson, http.StatusCreated)
}

func (handler *Handler) HandleListForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.listforday")
	defer span.End()

	userID, err := userIDFromQuery(r)
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(time.DateOnly, dateStr)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
	}

	mealsForDay, err := handler.repo.ListForDay(ctx, userID, date)
	if err != nil {
		log.Errorf("failed to list meals for user %d: %s", userID, err)
		http.Error(w, "failed to get meals", http.StatusInternalServerError)
		return
	}

	totalCalories := 0
	for _, meal := range mealsForDay {
		totalCalories += meal.TotalCalories
	}

	listResponse := ListMealsResponse{
		Meals:         mealsForDay,
		TotalCalories: totalCalories,
	}

	listResponseJson, err := json.Marshal(listResponse)
	if err != nil {
		log.Errorf("marshal meals error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
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
