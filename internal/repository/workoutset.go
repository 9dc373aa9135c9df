package repository

import (
	"context"
	"sort"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
	"github.com/carterbs/brad-os-sub006/internal/docval"
	"github.com/carterbs/brad-os-sub006/internal/model"
)

// CollectionWorkoutSets names the backing collection.
const CollectionWorkoutSets = "workout_sets"

// WorkoutSetRepository persists the individual sets prescribed inside
// workouts. It also holds a read-only view of the workouts collection for
// the completed-set history join.
type WorkoutSetRepository struct {
	*base[model.WorkoutSet, model.CreateWorkoutSetRequest, model.UpdateWorkoutSetRequest]

	workouts *reader[model.Workout]
}

// NewWorkoutSetRepository builds the repository on the injected store.
func NewWorkoutSetRepository(d Deps) *WorkoutSetRepository {
	return &WorkoutSetRepository{
		base:     newBase(d, CollectionWorkoutSets, decodeWorkoutSet, encodeWorkoutSetCreate, encodeWorkoutSetUpdate),
		workouts: newReader(d, CollectionWorkouts, decodeWorkout),
	}
}

// FindByWorkoutID lists one workout's sets in prescription order.
func (r *WorkoutSetRepository) FindByWorkoutID(ctx context.Context, workoutID string) ([]*model.WorkoutSet, error) {
	q := docstore.NewQuery().
		Where("workoutId", docstore.OpEq, workoutID).
		OrderBy("setNumber", false)
	return r.findWhere(ctx, q)
}

// FindCompletedByExerciseID returns the performance history of one exercise:
// every completed set that recorded actual reps and weight, joined with its
// parent workout's date, mesocycle, and completion timestamp. Only sets
// whose parent workout is itself completed qualify; a set marked done inside
// an in-progress workout is not yet history. Rows order by parent
// completion time, then workout date, then set number.
func (r *WorkoutSetRepository) FindCompletedByExerciseID(ctx context.Context, exerciseID string) ([]model.CompletedSetRow, error) {
	q := docstore.NewQuery().
		Where("exerciseId", docstore.OpEq, exerciseID).
		Where("status", docstore.OpEq, model.SetCompleted)
	sets, err := r.findWhere(ctx, q)
	if err != nil {
		return nil, err
	}

	performed := sets[:0]
	for _, s := range sets {
		if s.ActualReps != nil && s.ActualWeight != nil {
			performed = append(performed, s)
		}
	}

	// Fetch each distinct parent once; drop sets whose parent is missing,
	// malformed, or not completed.
	parents := map[string]*model.Workout{}
	for _, s := range performed {
		if _, seen := parents[s.WorkoutID]; seen {
			continue
		}
		w, err := r.workouts.FindByID(ctx, s.WorkoutID)
		if err != nil {
			return nil, err
		}
		parents[s.WorkoutID] = w
	}

	rows := make([]model.CompletedSetRow, 0, len(performed))
	for _, s := range performed {
		w := parents[s.WorkoutID]
		if w == nil || w.Status != model.WorkoutCompleted {
			continue
		}
		rows = append(rows, model.CompletedSetRow{
			Set:         *s,
			WorkoutDate: w.Date,
			Mesocycle:   w.Mesocycle,
			CompletedAt: w.CompletedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ci, cj := completedKey(rows[i]), completedKey(rows[j])
		if ci != cj {
			return ci < cj
		}
		if rows[i].WorkoutDate != rows[j].WorkoutDate {
			return rows[i].WorkoutDate < rows[j].WorkoutDate
		}
		return rows[i].Set.SetNumber < rows[j].Set.SetNumber
	})
	return rows, nil
}

func completedKey(row model.CompletedSetRow) string {
	if row.CompletedAt == nil {
		return ""
	}
	return *row.CompletedAt
}

func decodeWorkoutSet(id string, data map[string]any) (*model.WorkoutSet, bool) {
	if data == nil {
		return nil, false
	}

	workoutID := docval.String(data, "workoutId")
	exerciseID := docval.String(data, "exerciseId")
	setNumber := docval.Number(data, "setNumber")
	targetReps := docval.Number(data, "targetReps")
	targetWeight := docval.Number(data, "targetWeight")
	status := docval.Enum(data, "status", model.SetStatuses...)
	if !workoutID.Ok() || !exerciseID.Ok() || !setNumber.Ok() ||
		!targetReps.Ok() || !targetWeight.Ok() || !status.Ok() {
		return nil, false
	}

	actualReps, ok := optInt(docval.Number(data, "actualReps"))
	if !ok {
		return nil, false
	}
	actualWeight, ok := optNumber(docval.Number(data, "actualWeight"))
	if !ok {
		return nil, false
	}

	created, updated, ok := requireTimestamps(data)
	if !ok {
		return nil, false
	}

	return &model.WorkoutSet{
		ID:           id,
		WorkoutID:    workoutID.Value,
		ExerciseID:   exerciseID.Value,
		SetNumber:    int(setNumber.Value),
		TargetReps:   int(targetReps.Value),
		TargetWeight: targetWeight.Value,
		ActualReps:   actualReps,
		ActualWeight: actualWeight,
		Status:       status.Value,
		CreatedAt:    created,
		UpdatedAt:    updated,
	}, true
}

func encodeWorkoutSetCreate(req model.CreateWorkoutSetRequest) map[string]any {
	return map[string]any{
		"workoutId":    req.WorkoutID,
		"exerciseId":   req.ExerciseID,
		"setNumber":    req.SetNumber,
		"targetReps":   req.TargetReps,
		"targetWeight": req.TargetWeight,
		"actualReps":   nil,
		"actualWeight": nil,
		"status":       model.SetPending,
	}
}

func encodeWorkoutSetUpdate(req model.UpdateWorkoutSetRequest) map[string]any {
	m := map[string]any{}
	putOpt(m, "setNumber", req.SetNumber)
	putOpt(m, "targetReps", req.TargetReps)
	putOpt(m, "targetWeight", req.TargetWeight)
	putOpt(m, "actualReps", req.ActualReps)
	putOpt(m, "actualWeight", req.ActualWeight)
	putOpt(m, "status", req.Status)
	return m
}
