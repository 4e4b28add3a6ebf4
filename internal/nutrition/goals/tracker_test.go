package goals_test

import (
	"context"
	"testing"
	"time"

	"github.com/fitpulse/fitpulse/internal/nutrition/goals"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

var (
	testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
)

func newTestTracker(t *testing.T) (*goals.Tracker, *MockgoalsRepo, *MockcaloriesSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repoMock := NewMockgoalsRepo(ctrl)
	caloriesMock := NewMockcaloriesSource(ctrl)
	tracker := goals.NewTracker(repoMock, caloriesMock)
	tracker.Now = func() time.Time { return testNow }
	tracker.NewID = func() string { return "test-progress-id" }
	return tracker, repoMock, caloriesMock
}

func testGoal(target int) *goals.Goal {
	return &goals.Goal{
		ID:            "test-goal-id",
		UserID:        1,
		GoalType:      "calorie",
		CalorieTarget: target,
		StartDate:     testDay.AddDate(0, 0, -30),
		CreatedAt:     testNow.AddDate(0, 0, -30),
	}
}

func TestTracker_DailyProgress_FreshSnapshot(t *testing.T) {
	tracker, repoMock, caloriesMock := newTestTracker(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(testGoal(2000), nil)
	repoMock.EXPECT().
		GetProgress(gomock.Any(), 1, testDay).
		Return(nil, goals.ErrProgressNotFound)
	caloriesMock.EXPECT().
		ConsumedCalories(gomock.Any(), 1, testDay).
		Return(1500, nil)
	repoMock.EXPECT().
		InsertProgress(gomock.Any(), goals.Progress{
			ID:                "test-progress-id",
			GoalID:            "test-goal-id",
			UserID:            1,
			Date:              testDay,
			CaloriesConsumed:  1500,
			CaloriesRemaining: 500,
			UpdatedAt:         testNow,
		}).
		Return(nil)

	dp, err := tracker.DailyProgress(ctx, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1500, dp.CaloriesConsumed)
	assert.Equal(t, 500, dp.CaloriesRemaining)
	assert.InDelta(t, 75.0, dp.CaloriesPercent, 0.001)
	assert.Equal(t, "2025-03-10", dp.Date)
}

func TestTracker_DailyProgress_ExistingSnapshotServedAsStored(t *testing.T) {
	// a stored snapshot wins over the meals data, no recompute happens
	tracker, repoMock, _ := newTestTracker(t)
	ctx := context.Background()

	storedAt := testNow.Add(-3 * time.Hour)
	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(testGoal(2000), nil)
	repoMock.EXPECT().
		GetProgress(gomock.Any(), 1, testDay).
		Return(&goals.Progress{
			ID:                "stored-id",
			GoalID:            "test-goal-id",
			UserID:            1,
			Date:              testDay,
			CaloriesConsumed:  900,
			CaloriesRemaining: 1100,
			UpdatedAt:         storedAt,
		}, nil)

	dp, err := tracker.DailyProgress(ctx, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, 900, dp.CaloriesConsumed)
	assert.Equal(t, 1100, dp.CaloriesRemaining)
	assert.InDelta(t, 45.0, dp.CaloriesPercent, 0.001)
	assert.Equal(t, storedAt, dp.UpdatedAt)
}

func TestTracker_DailyProgress_OverconsumptionClamped(t *testing.T) {
	tracker, repoMock, caloriesMock := newTestTracker(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(testGoal(2000), nil)
	repoMock.EXPECT().
		GetProgress(gomock.Any(), 1, testDay).
		Return(nil, goals.ErrProgressNotFound)
	caloriesMock.EXPECT().
		ConsumedCalories(gomock.Any(), 1, testDay).
		Return(2600, nil)
	repoMock.EXPECT().
		InsertProgress(gomock.Any(), gomock.Any()).
		Return(nil)

	dp, err := tracker.DailyProgress(ctx, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, 2600, dp.CaloriesConsumed)
	// remaining never goes negative, percent never above 100
	assert.Equal(t, 0, dp.CaloriesRemaining)
	assert.InDelta(t, 100.0, dp.CaloriesPercent, 0.001)
}

func TestTracker_DailyProgress_SnapshotStoreFailureDegrades(t *testing.T) {
	tracker, repoMock, caloriesMock := newTestTracker(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(testGoal(2000), nil)
	repoMock.EXPECT().
		GetProgress(gomock.Any(), 1, testDay).
		Return(nil, goals.ErrProgressNotFound)
	caloriesMock.EXPECT().
		ConsumedCalories(gomock.Any(), 1, testDay).
		Return(700, nil)
	repoMock.EXPECT().
		InsertProgress(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// computed values are still served when the snapshot insert fails
	dp, err := tracker.DailyProgress(ctx, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, 700, dp.CaloriesConsumed)
	assert.Equal(t, 1300, dp.CaloriesRemaining)
}

func TestTracker_DailyProgress_NoGoal(t *testing.T) {
	tracker, repoMock, _ := newTestTracker(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(nil, goals.ErrGoalNotFound)

	dp, err := tracker.DailyProgress(ctx, 1, testNow)
	require.ErrorIs(t, err, goals.ErrGoalNotFound)
	assert.Nil(t, dp)
}

func TestTracker_UpdateProgress_InsertsWhenMissing(t *testing.T) {
	tracker, repoMock, _ := newTestTracker(t)
	ctx := context.Background()

	consumed := 1500
	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(testGoal(2000), nil)
	repoMock.EXPECT().
		GetProgress(gomock.Any(), 1, testDay).
		Return(nil, goals.ErrProgressNotFound)
	repoMock.EXPECT().
		InsertProgress(gomock.Any(), goals.Progress{
			ID:                "test-progress-id",
			GoalID:            "test-goal-id",
			UserID:            1,
			Date:              testDay,
			CaloriesConsumed:  1500,
			CaloriesRemaining: 500,
			UpdatedAt:         testNow,
		}).
		Return(nil)

	dp, err := tracker.UpdateProgress(ctx, 1, testNow, &consumed)
	require.NoError(t, err)
	assert.Equal(t, 1500, dp.CaloriesConsumed)
	assert.Equal(t, 500, dp.CaloriesRemaining)
	assert.InDelta(t, 75.0, dp.CaloriesPercent, 0.001)
}

func TestTracker_UpdateProgress_UpdatesExisting(t *testing.T) {
	tracker, repoMock, _ := newTestTracker(t)
	ctx := context.Background()

	consumed := 1800
	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(testGoal(2000), nil)
	repoMock.EXPECT().
		GetProgress(gomock.Any(), 1, testDay).
		Return(&goals.Progress{
			ID:     "stored-id",
			GoalID: "test-goal-id",
			UserID: 1,
			Date:   testDay,
		}, nil)
	repoMock.EXPECT().
		UpdateProgress(gomock.Any(), "stored-id", 1800, 200, testNow).
		Return(nil)

	dp, err := tracker.UpdateProgress(ctx, 1, testNow, &consumed)
	require.NoError(t, err)
	assert.Equal(t, 1800, dp.CaloriesConsumed)
	assert.Equal(t, 200, dp.CaloriesRemaining)
}

func TestTracker_UpdateProgress_Idempotent(t *testing.T) {
	// same input twice leaves the snapshot with the same values
	tracker, repoMock, _ := newTestTracker(t)
	ctx := context.Background()

	consumed := 1500
	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(testGoal(2000), nil).
		Times(2)
	gomock.InOrder(
		repoMock.EXPECT().
			GetProgress(gomock.Any(), 1, testDay).
			Return(nil, goals.ErrProgressNotFound),
		repoMock.EXPECT().
			GetProgress(gomock.Any(), 1, testDay).
			Return(&goals.Progress{
				ID:                "test-progress-id",
				GoalID:            "test-goal-id",
				UserID:            1,
				Date:              testDay,
				CaloriesConsumed:  1500,
				CaloriesRemaining: 500,
			}, nil),
	)
	repoMock.EXPECT().
		InsertProgress(gomock.Any(), gomock.Any()).
		Return(nil)
	repoMock.EXPECT().
		UpdateProgress(gomock.Any(), "test-progress-id", 1500, 500, testNow).
		Return(nil)

	first, err := tracker.UpdateProgress(ctx, 1, testNow, &consumed)
	require.NoError(t, err)
	second, err := tracker.UpdateProgress(ctx, 1, testNow, &consumed)
	require.NoError(t, err)
	assert.Equal(t, first.CaloriesConsumed, second.CaloriesConsumed)
	assert.Equal(t, first.CaloriesRemaining, second.CaloriesRemaining)
}

func TestTracker_UpdateProgress_InsertRaceFallsBackToUpdate(t *testing.T) {
	// another writer slips the row in between the lookup and the insert,
	// the unique violation turns the insert into an in-place update
	tracker, repoMock, _ := newTestTracker(t)
	ctx := context.Background()

	consumed := 1500
	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(testGoal(2000), nil)
	gomock.InOrder(
		repoMock.EXPECT().
			GetProgress(gomock.Any(), 1, testDay).
			Return(nil, goals.ErrProgressNotFound),
		repoMock.EXPECT().
			InsertProgress(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505"}),
		repoMock.EXPECT().
			GetProgress(gomock.Any(), 1, testDay).
			Return(&goals.Progress{
				ID:     "raced-id",
				GoalID: "test-goal-id",
				UserID: 1,
				Date:   testDay,
			}, nil),
		repoMock.EXPECT().
			UpdateProgress(gomock.Any(), "raced-id", 1500, 500, testNow).
			Return(nil),
	)

	dp, err := tracker.UpdateProgress(ctx, 1, testNow, &consumed)
	require.NoError(t, err)
	assert.Equal(t, 1500, dp.CaloriesConsumed)
	assert.Equal(t, 500, dp.CaloriesRemaining)
}

func TestTracker_UpdateProgress_ConsumedFromMeals(t *testing.T) {
	tracker, repoMock, caloriesMock := newTestTracker(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ActiveGoal(gomock.Any(), 1, testDay).
		Return(testGoal(2000), nil)
	caloriesMock.EXPECT().
		ConsumedCalories(gomock.Any(), 1, testDay).
		Return(1200, nil)
	repoMock.EXPECT().
		GetProgress(gomock.Any(), 1, testDay).
		Return(nil, goals.ErrProgressNotFound)
	repoMock.EXPECT().
		InsertProgress(gomock.Any(), gomock.Any()).
		Return(nil)

	dp, err := tracker.UpdateProgress(ctx, 1, testNow, nil)
	require.NoError(t, err)
	assert.Equal(t, 1200, dp.CaloriesConsumed)
	assert.Equal(t, 800, dp.CaloriesRemaining)
}
