package repository

import (
	"context"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
	"github.com/carterbs/brad-os-sub006/internal/docval"
	"github.com/carterbs/brad-os-sub006/internal/model"
)

// CollectionWorkouts names the backing collection.
const CollectionWorkouts = "workouts"

// WorkoutRepository persists scheduled training days.
type WorkoutRepository struct {
	*base[model.Workout, model.CreateWorkoutRequest, model.UpdateWorkoutRequest]
}

// NewWorkoutRepository builds the repository on the injected store.
func NewWorkoutRepository(d Deps) *WorkoutRepository {
	return &WorkoutRepository{
		base: newBase(d, CollectionWorkouts, decodeWorkout, encodeWorkoutCreate, encodeWorkoutUpdate),
	}
}

// FindAll lists every workout, most recent date first.
func (r *WorkoutRepository) FindAll(ctx context.Context) ([]*model.Workout, error) {
	return r.findWhere(ctx, docstore.NewQuery().OrderBy("date", true))
}

// FindByStatus lists workouts in one lifecycle state, most recent first.
func (r *WorkoutRepository) FindByStatus(ctx context.Context, status string) ([]*model.Workout, error) {
	q := docstore.NewQuery().
		Where("status", docstore.OpEq, status).
		OrderBy("date", true)
	return r.findWhere(ctx, q)
}

// FindByDateRange lists workouts scheduled in [start, end], ascending.
func (r *WorkoutRepository) FindByDateRange(ctx context.Context, start, end string) ([]*model.Workout, error) {
	q := docstore.NewQuery().
		Where("date", docstore.OpGte, start).
		Where("date", docstore.OpLte, end).
		OrderBy("date", false)
	return r.findWhere(ctx, q)
}

// FindByMesocycle lists one mesocycle's workouts in schedule order.
func (r *WorkoutRepository) FindByMesocycle(ctx context.Context, mesocycle int) ([]*model.Workout, error) {
	q := docstore.NewQuery().
		Where("mesocycle", docstore.OpEq, mesocycle).
		OrderBy("date", false)
	return r.findWhere(ctx, q)
}

func decodeWorkout(id string, data map[string]any) (*model.Workout, bool) {
	if data == nil {
		return nil, false
	}

	date := docval.String(data, "date")
	mesocycle := docval.Number(data, "mesocycle")
	week := docval.Number(data, "week")
	status := docval.Enum(data, "status", model.WorkoutStatuses...)
	if !date.Ok() || !mesocycle.Ok() || !week.Ok() || !status.Ok() {
		return nil, false
	}

	completedAt, ok := optString(docval.String(data, "completedAt"))
	if !ok {
		return nil, false
	}

	created, updated, ok := requireTimestamps(data)
	if !ok {
		return nil, false
	}

	return &model.Workout{
		ID:          id,
		Date:        date.Value,
		Mesocycle:   int(mesocycle.Value),
		Week:        int(week.Value),
		Status:      status.Value,
		CompletedAt: completedAt,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}, true
}

func encodeWorkoutCreate(req model.CreateWorkoutRequest) map[string]any {
	return map[string]any{
		"date":        req.Date,
		"mesocycle":   req.Mesocycle,
		"week":        req.Week,
		"status":      model.WorkoutPlanned,
		"completedAt": nil,
	}
}

func encodeWorkoutUpdate(req model.UpdateWorkoutRequest) map[string]any {
	m := map[string]any{}
	putOpt(m, "date", req.Date)
	putOpt(m, "mesocycle", req.Mesocycle)
	putOpt(m, "week", req.Week)
	putOpt(m, "status", req.Status)
	putOpt(m, "completedAt", req.CompletedAt)
	return m
}
