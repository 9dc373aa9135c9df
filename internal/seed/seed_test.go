package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterbs/brad-os-sub006/internal/docstore/memory"
	"github.com/carterbs/brad-os-sub006/internal/repository"
)

func testSeeder(store *memory.Store, maxBatch int) *Seeder {
	seq := 0
	return New(store, maxBatch, WithClock(
		func() string { return "2025-06-01T10:00:00.000Z" },
		func() string {
			seq++
			return fmt.Sprintf("seed-%d", seq)
		},
	))
}

func doc(collection, name string) Doc {
	return Doc{Collection: collection, Data: map[string]any{"name": name}}
}

func TestSeederFlushesFullBatches(t *testing.T) {
	store := memory.New()
	s := testSeeder(store, 2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Add(ctx, doc("things", fmt.Sprintf("thing-%d", i))))
	}

	// Two full batches committed on the way; the fifth document is still
	// staged.
	assert.Equal(t, 4, s.Seeded())
	assert.Equal(t, 4, store.Len("things"))

	require.NoError(t, s.Flush(ctx))
	assert.Equal(t, 5, s.Seeded())
	assert.Equal(t, 5, store.Len("things"))
}

func TestSeederFlushWithNothingStaged(t *testing.T) {
	store := memory.New()
	s := testSeeder(store, 10)

	require.NoError(t, s.Flush(context.Background()))
	assert.Zero(t, s.Seeded())
}

func TestSeederStampsTimestamps(t *testing.T) {
	store := memory.New()
	s := testSeeder(store, 10)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, doc("things", "thing")))
	require.NoError(t, s.Flush(ctx))

	data, err := store.Collection("things").Get(ctx, "seed-1")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T10:00:00.000Z", data["createdAt"])
	assert.Equal(t, data["createdAt"], data["updatedAt"])
}

func TestStarterDocsDecodeCleanly(t *testing.T) {
	store := memory.New()
	s := testSeeder(store, 500)
	ctx := context.Background()

	require.NoError(t, s.AddAll(ctx, StarterDocs()))
	require.NoError(t, s.Flush(ctx))

	deps := repository.Deps{Store: store}

	exercises, err := repository.NewExerciseRepository(deps).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, exercises, 13, "every starter exercise must survive decode")

	routines, err := repository.NewStretchRoutineRepository(deps).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, routines, 3, "every starter routine must survive decode")
}
