package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterbs/brad-os-sub006/internal/model"
)

func createWorkout(t *testing.T, repo *WorkoutRepository, date string, mesocycle, week int) *model.Workout {
	t.Helper()
	w, err := repo.Create(context.Background(), model.CreateWorkoutRequest{
		Date:      date,
		Mesocycle: mesocycle,
		Week:      week,
	})
	require.NoError(t, err)
	return w
}

func TestWorkoutCreateStartsPlanned(t *testing.T) {
	deps, _ := testDeps()
	repo := NewWorkoutRepository(deps)

	w := createWorkout(t, repo, "2025-06-02", 1, 1)
	assert.Equal(t, model.WorkoutPlanned, w.Status)
	assert.Nil(t, w.CompletedAt)
}

func TestWorkoutFindByStatus(t *testing.T) {
	deps, _ := testDeps()
	repo := NewWorkoutRepository(deps)
	ctx := context.Background()

	a := createWorkout(t, repo, "2025-06-02", 1, 1)
	createWorkout(t, repo, "2025-06-04", 1, 1)

	_, err := repo.Update(ctx, a.ID, model.UpdateWorkoutRequest{
		Status:      model.Set(model.WorkoutCompleted),
		CompletedAt: model.Set("2025-06-02T18:30:00.000Z"),
	})
	require.NoError(t, err)

	completed, err := repo.FindByStatus(ctx, model.WorkoutCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, a.ID, completed[0].ID)
	require.NotNil(t, completed[0].CompletedAt)
	assert.Equal(t, "2025-06-02T18:30:00.000Z", *completed[0].CompletedAt)

	planned, err := repo.FindByStatus(ctx, model.WorkoutPlanned)
	require.NoError(t, err)
	assert.Len(t, planned, 1)
}

func TestWorkoutFindByDateRange(t *testing.T) {
	deps, _ := testDeps()
	repo := NewWorkoutRepository(deps)
	ctx := context.Background()

	createWorkout(t, repo, "2025-06-02", 1, 1)
	createWorkout(t, repo, "2025-06-09", 1, 2)
	createWorkout(t, repo, "2025-06-16", 1, 3)

	got, err := repo.FindByDateRange(ctx, "2025-06-02", "2025-06-09")
	require.NoError(t, err)
	require.Len(t, got, 2, "range is inclusive on both ends")
	assert.Equal(t, "2025-06-02", got[0].Date)
	assert.Equal(t, "2025-06-09", got[1].Date)
}

func TestWorkoutFindByMesocycle(t *testing.T) {
	deps, _ := testDeps()
	repo := NewWorkoutRepository(deps)
	ctx := context.Background()

	createWorkout(t, repo, "2025-06-09", 1, 2)
	createWorkout(t, repo, "2025-06-02", 1, 1)
	createWorkout(t, repo, "2025-07-14", 2, 1)

	got, err := repo.FindByMesocycle(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-06-02", got[0].Date, "schedule order, earliest first")
	assert.Equal(t, "2025-06-09", got[1].Date)
}
