package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitpulse/fitpulse/internal/cache"
	"github.com/fitpulse/fitpulse/internal/telemetry/metrics"
	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"
	"github.com/fitpulse/fitpulse/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

const statsCacheExpireSeconds = 60

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	List(ctx context.Context, params ListParams) (_ []Workout, total int, err error)
	ListAll(ctx context.Context, params WorkoutParams) (_ []Workout, err error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, params WorkoutParams) (int, error)
}

type DeleteWorkoutResponse struct {
	DeletedID int `json:"deletedId"`
}

type AddWorkoutResponse struct {
	Workout
	CountToday int `json:"countToday"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo     workoutsRepo
	analyzer *Analyzer
	cache    cache.Cache
	metrics  *metrics.Manager
}

func NewHandler(repo workoutsRepo, c cache.Cache, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: NewAnalyzer(repo),
		cache:    c,
		metrics:  metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.UserID <= 0 {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	if workout.StartTime.IsZero() {
		workout.StartTime = time.Now()
	}
	if workout.EndTime.IsZero() {
		workout.EndTime = workout.StartTime
	}
	if workout.EndTime.Before(workout.StartTime) {
		http.Error(w, "error, workout ends before it starts", http.StatusBadRequest)
		return
	}

	addedWorkout, err := handler.repo.Add(ctx, workout)
	if err != nil {
		log.Errorf("failed to add new workout for user %d: %s", workout.UserID, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsAdded.Inc()
	// a fresh workout changes streaks and badges, drop the cached stats
	handler.cache.Del(cache.Key("workouts", "stats", strconv.Itoa(addedWorkout.UserID)))

	todayMidnight := time.Now().Truncate(24 * time.Hour)
	tomorrowMidnight := todayMidnight.Add(24 * time.Hour)
	workoutsToday, err := handler.repo.ListAll(ctx, WorkoutParams{
		UserID: addedWorkout.UserID,
		From:   &todayMidnight,
		To:     &tomorrowMidnight,
	})
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to get workouts today for user %d: %s", addedWorkout.UserID, err)
	}

	addWorkoutResponse := AddWorkoutResponse{
		Workout:    *addedWorkout,
		CountToday: len(workoutsToday),
	}

	addedWorkoutJson, err := json.Marshal(addWorkoutResponse)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %s", addedWorkoutJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedWorkoutJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrWorkoutNotFound) {
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrWorkoutNotFound) {
		log.Debugf("workout %d not found", id)
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	log.Debugf("deleting workout %+v", workout)

	if err := handler.repo.Delete(ctx, id); err != nil {
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	handler.cache.Del(cache.Key("workouts", "stats", strconv.Itoa(workout.UserID)))

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	vars := mux.Vars(r)
	pageStr := vars["page"]
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		log.Tracef("handle get workouts page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	sizeStr := vars["size"]
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		log.Tracef("handle get workouts page, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	userID, err := userIDFromQuery(r)
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	listParams := ListParams{
		WorkoutParams: WorkoutParams{
			UserID: userID,
		},
		Page: page,
		Size: size,
	}

	workoutsPage, total, err := handler.repo.List(ctx, listParams)
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	listResponse := ListResponse{
		Workouts: workoutsPage,
		Total:    total,
	}

	listResponseJson, err := json.Marshal(listResponse)
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	userID, err := userIDFromQuery(r)
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	cacheKey := cache.Key("workouts", "stats", strconv.Itoa(userID))
	if cached, found := handler.cache.Get(cacheKey); found {
		log.Tracef("workout stats for user %d served from cache", userID)
		pkg.WriteJSONBytesResponseOK(w, cached)
		return
	}

	stats, err := handler.analyzer.Stats(ctx, userID)
	if err != nil {
		log.Errorf("failed to get workout stats for user %d: %s", userID, err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal workout stats: %s", err)
		http.Error(w, "failed to marshal workout stats", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, statsJson, statsCacheExpireSeconds); err != nil {
		log.Errorf("failed to cache workout stats for user %d: %s", userID, err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
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
