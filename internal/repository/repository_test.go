package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
	"github.com/carterbs/brad-os-sub006/internal/docstore/memory"
	"github.com/carterbs/brad-os-sub006/internal/docstore/mocks"
	"github.com/carterbs/brad-os-sub006/internal/model"
)

// testDeps wires a repository onto a fresh in-memory store with a
// deterministic clock (t0, t1, ...) and sequential ids (id-1, id-2, ...).
func testDeps() (Deps, *memory.Store) {
	store := memory.New()
	tick, seq := 0, 0
	return Deps{
		Store: store,
		Now: func() string {
			s := fmt.Sprintf("2025-06-01T10:00:%02d.000Z", tick)
			tick++
			return s
		},
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	}, store
}

func seedDoc(t *testing.T, store *memory.Store, collection, id string, data map[string]any) {
	t.Helper()
	require.NoError(t, store.Collection(collection).Set(context.Background(), id, data))
}

func validExerciseDoc() map[string]any {
	return map[string]any{
		"name":            "Bench Press",
		"muscleGroup":     "chest",
		"equipment":       "barbell",
		"repRange":        []float64{5, 8},
		"weightIncrement": 2.5,
		"notes":           nil,
		"createdAt":       "2025-05-01T09:00:00.000Z",
		"updatedAt":       "2025-05-01T09:00:00.000Z",
	}
}

func TestCreateRoundTrip(t *testing.T) {
	deps, _ := testDeps()
	repo := NewExerciseRepository(deps)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateExerciseRequest{
		Name:        "Squat",
		MuscleGroup: "legs",
		RepRange:    []float64{3, 5},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "Squat", created.Name)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created, found)
}

func TestFindByIDAbsent(t *testing.T) {
	deps, _ := testDeps()
	repo := NewExerciseRepository(deps)

	found, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindByIDMalformedDocument(t *testing.T) {
	deps, store := testDeps()
	repo := NewExerciseRepository(deps)
	ctx := context.Background()

	doc := validExerciseDoc()
	doc["muscleGroup"] = "cardio" // outside the closed set
	seedDoc(t, store, CollectionExercises, "bad", doc)

	found, err := repo.FindByID(ctx, "bad")
	require.NoError(t, err)
	assert.Nil(t, found, "malformed document must read as absent")
}

func TestListingDropsMalformedDocuments(t *testing.T) {
	deps, store := testDeps()
	repo := NewExerciseRepository(deps)
	ctx := context.Background()

	good := validExerciseDoc()
	seedDoc(t, store, CollectionExercises, "good", good)

	bad := validExerciseDoc()
	bad["repRange"] = []any{5.0, "eight"}
	seedDoc(t, store, CollectionExercises, "bad", bad)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "good", all[0].ID)
}

func TestUpdateNoOpPayload(t *testing.T) {
	deps, _ := testDeps()
	repo := NewExerciseRepository(deps)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateExerciseRequest{
		Name:        "Deadlift",
		MuscleGroup: "back",
		RepRange:    []float64{3, 5},
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.UpdateExerciseRequest{})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.UpdatedAt, updated.UpdatedAt, "empty payload must not bump updatedAt")
	assert.Equal(t, created, updated)
}

func TestUpdateMergesAndClears(t *testing.T) {
	deps, _ := testDeps()
	repo := NewExerciseRepository(deps)
	ctx := context.Background()

	equipment := "barbell"
	created, err := repo.Create(ctx, model.CreateExerciseRequest{
		Name:        "Row",
		MuscleGroup: "back",
		Equipment:   &equipment,
		RepRange:    []float64{8, 12},
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.UpdateExerciseRequest{
		Name:      model.Set("Pendlay Row"),
		Equipment: model.SetNull[string](),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Pendlay Row", updated.Name)
	assert.Nil(t, updated.Equipment, "SetNull must clear the stored value")
	assert.Equal(t, created.MuscleGroup, updated.MuscleGroup, "untouched fields survive the merge")
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateMissingDocument(t *testing.T) {
	deps, _ := testDeps()
	repo := NewExerciseRepository(deps)

	updated, err := repo.Update(context.Background(), "missing", model.UpdateExerciseRequest{
		Name: model.Set("Ghost"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteIdempotent(t *testing.T) {
	deps, _ := testDeps()
	repo := NewExerciseRepository(deps)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateExerciseRequest{
		Name:        "Curl",
		MuscleGroup: "arms",
		RepRange:    []float64{10, 15},
	})
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed, "second delete of the same id reports already gone")
}

func TestFindByIDPropagatesStoreError(t *testing.T) {
	col := new(mocks.MockCollection)
	store := new(mocks.MockStore)
	store.On("Collection", CollectionExercises).Return(col)

	boom := errors.New("connection reset")
	col.On("Get", mock.Anything, "ex-1").Return(nil, boom)

	repo := NewExerciseRepository(Deps{Store: store})
	_, err := repo.FindByID(context.Background(), "ex-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	col.AssertExpectations(t)
}

func TestFindAllPropagatesStoreError(t *testing.T) {
	col := new(mocks.MockCollection)
	store := new(mocks.MockStore)
	store.On("Collection", CollectionExercises).Return(col)

	boom := errors.New("connection reset")
	col.On("Query", mock.Anything, mock.AnythingOfType("docstore.Query")).Return(nil, boom)

	repo := NewExerciseRepository(Deps{Store: store})
	_, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	col.AssertExpectations(t)
}

func TestUpdateDeletedBetweenReadAndWrite(t *testing.T) {
	col := new(mocks.MockCollection)
	store := new(mocks.MockStore)
	store.On("Collection", CollectionExercises).Return(col)

	col.On("Get", mock.Anything, "ex-1").Return(validExerciseDoc(), nil).Once()
	col.On("Update", mock.Anything, "ex-1", mock.Anything).Return(docstore.ErrNotFound)

	repo := NewExerciseRepository(Deps{Store: store})
	updated, err := repo.Update(context.Background(), "ex-1", model.UpdateExerciseRequest{
		Name: model.Set("Renamed"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
	col.AssertExpectations(t)
}
