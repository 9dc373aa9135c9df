package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterbs/brad-os-sub006/internal/model"
)

func TestExerciseCreateDefaultsWeightIncrement(t *testing.T) {
	deps, _ := testDeps()
	repo := NewExerciseRepository(deps)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateExerciseRequest{
		Name:        "Lateral Raise",
		MuscleGroup: "shoulders",
		RepRange:    []float64{12, 20},
	})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultWeightIncrement, created.WeightIncrement)

	increment := 1.25
	custom, err := repo.Create(ctx, model.CreateExerciseRequest{
		Name:            "Overhead Press",
		MuscleGroup:     "shoulders",
		RepRange:        []float64{5, 8},
		WeightIncrement: &increment,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.25, custom.WeightIncrement)
}

func TestExerciseEquipmentNullVersusAbsent(t *testing.T) {
	deps, store := testDeps()
	repo := NewExerciseRepository(deps)
	ctx := context.Background()

	explicitNull := validExerciseDoc()
	explicitNull["equipment"] = nil
	seedDoc(t, store, CollectionExercises, "null-equipment", explicitNull)

	absent := validExerciseDoc()
	delete(absent, "equipment")
	seedDoc(t, store, CollectionExercises, "no-equipment", absent)

	wrongType := validExerciseDoc()
	wrongType["equipment"] = 42
	seedDoc(t, store, CollectionExercises, "bad-equipment", wrongType)

	got, err := repo.FindByID(ctx, "null-equipment")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Equipment)

	got, err = repo.FindByID(ctx, "no-equipment")
	require.NoError(t, err)
	require.NotNil(t, got, "missing optional field is still a valid document")
	assert.Nil(t, got.Equipment)

	got, err = repo.FindByID(ctx, "bad-equipment")
	require.NoError(t, err)
	assert.Nil(t, got, "wrong-typed optional field rejects the whole document")
}

func TestExerciseMissingWeightIncrementRejected(t *testing.T) {
	deps, store := testDeps()
	repo := NewExerciseRepository(deps)

	doc := validExerciseDoc()
	delete(doc, "weightIncrement")
	seedDoc(t, store, CollectionExercises, "no-increment", doc)

	got, err := repo.FindByID(context.Background(), "no-increment")
	require.NoError(t, err)
	assert.Nil(t, got, "create-time default never papers over a missing stored field")
}

func TestExerciseFindByMuscleGroup(t *testing.T) {
	deps, _ := testDeps()
	repo := NewExerciseRepository(deps)
	ctx := context.Background()

	for _, req := range []model.CreateExerciseRequest{
		{Name: "Squat", MuscleGroup: "legs", RepRange: []float64{3, 5}},
		{Name: "Leg Press", MuscleGroup: "legs", RepRange: []float64{8, 12}},
		{Name: "Bench Press", MuscleGroup: "chest", RepRange: []float64{5, 8}},
	} {
		_, err := repo.Create(ctx, req)
		require.NoError(t, err)
	}

	legs, err := repo.FindByMuscleGroup(ctx, "legs")
	require.NoError(t, err)
	require.Len(t, legs, 2)
	assert.Equal(t, "Leg Press", legs[0].Name)
	assert.Equal(t, "Squat", legs[1].Name)
}
