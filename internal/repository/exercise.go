package repository

import (
	"context"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
	"github.com/carterbs/brad-os-sub006/internal/docval"
	"github.com/carterbs/brad-os-sub006/internal/model"
)

// CollectionExercises names the backing collection.
const CollectionExercises = "exercises"

// ExerciseRepository persists the lifting exercise library.
type ExerciseRepository struct {
	*base[model.Exercise, model.CreateExerciseRequest, model.UpdateExerciseRequest]
}

// NewExerciseRepository builds the repository on the injected store.
func NewExerciseRepository(d Deps) *ExerciseRepository {
	return &ExerciseRepository{
		base: newBase(d, CollectionExercises, decodeExercise, encodeExerciseCreate, encodeExerciseUpdate),
	}
}

// FindAll lists every exercise ordered by name.
func (r *ExerciseRepository) FindAll(ctx context.Context) ([]*model.Exercise, error) {
	return r.findWhere(ctx, docstore.NewQuery().OrderBy("name", false))
}

// FindByMuscleGroup lists exercises for one muscle group, ordered by name.
func (r *ExerciseRepository) FindByMuscleGroup(ctx context.Context, group string) ([]*model.Exercise, error) {
	q := docstore.NewQuery().
		Where("muscleGroup", docstore.OpEq, group).
		OrderBy("name", false)
	return r.findWhere(ctx, q)
}

func decodeExercise(id string, data map[string]any) (*model.Exercise, bool) {
	if data == nil {
		return nil, false
	}

	name := docval.String(data, "name")
	group := docval.Enum(data, "muscleGroup", model.MuscleGroups...)
	repRange := docval.NumberArray(data, "repRange")
	increment := docval.Number(data, "weightIncrement")
	if !name.Ok() || !group.Ok() || !repRange.Ok() || !increment.Ok() {
		return nil, false
	}

	equipment, ok := optString(docval.String(data, "equipment"))
	if !ok {
		return nil, false
	}
	notes, ok := optString(docval.String(data, "notes"))
	if !ok {
		return nil, false
	}

	created, updated, ok := requireTimestamps(data)
	if !ok {
		return nil, false
	}

	return &model.Exercise{
		ID:              id,
		Name:            name.Value,
		MuscleGroup:     group.Value,
		Equipment:       equipment,
		RepRange:        repRange.Value,
		WeightIncrement: increment.Value,
		Notes:           notes,
		CreatedAt:       created,
		UpdatedAt:       updated,
	}, true
}

func encodeExerciseCreate(req model.CreateExerciseRequest) map[string]any {
	increment := model.DefaultWeightIncrement
	if req.WeightIncrement != nil {
		increment = *req.WeightIncrement
	}
	return map[string]any{
		"name":            req.Name,
		"muscleGroup":     req.MuscleGroup,
		"equipment":       ptrOrNil(req.Equipment),
		"repRange":        req.RepRange,
		"weightIncrement": increment,
		"notes":           ptrOrNil(req.Notes),
	}
}

func encodeExerciseUpdate(req model.UpdateExerciseRequest) map[string]any {
	m := map[string]any{}
	putOpt(m, "name", req.Name)
	putOpt(m, "muscleGroup", req.MuscleGroup)
	putOpt(m, "equipment", req.Equipment)
	putOpt(m, "repRange", req.RepRange)
	putOpt(m, "weightIncrement", req.WeightIncrement)
	putOpt(m, "notes", req.Notes)
	return m
}
