package repository

import (
	"context"
	"fmt"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
	"github.com/carterbs/brad-os-sub006/internal/docval"
	"github.com/carterbs/brad-os-sub006/internal/model"
)

// CollectionCyclingActivities names the backing collection.
const CollectionCyclingActivities = "cycling_activities"

// CyclingActivityRepository reads rides recorded by the external ride-sync
// service. The collection is owned elsewhere, so every mutating operation
// returns ErrReadOnly; the guardrail protects sync-owned data from being
// overwritten by this layer.
type CyclingActivityRepository struct {
	*reader[model.CyclingActivity]
}

// NewCyclingActivityRepository builds the repository on the injected store.
func NewCyclingActivityRepository(d Deps) *CyclingActivityRepository {
	return &CyclingActivityRepository{
		reader: newReader(d, CollectionCyclingActivities, decodeCyclingActivity),
	}
}

// FindAll lists every ride, most recent first.
func (r *CyclingActivityRepository) FindAll(ctx context.Context) ([]*model.CyclingActivity, error) {
	return r.findWhere(ctx, docstore.NewQuery().OrderBy("startedAt", true))
}

// FindByDateRange lists rides started in [start, end], oldest first.
func (r *CyclingActivityRepository) FindByDateRange(ctx context.Context, start, end string) ([]*model.CyclingActivity, error) {
	q := docstore.NewQuery().
		Where("startedAt", docstore.OpGte, start).
		Where("startedAt", docstore.OpLte, end).
		OrderBy("startedAt", false)
	return r.findWhere(ctx, q)
}

// FindWithEF lists rides that have an efficiency factor, most recent first.
// Rides without heart-rate data store ef as an explicit null and are
// excluded here without being treated as malformed.
func (r *CyclingActivityRepository) FindWithEF(ctx context.Context) ([]*model.CyclingActivity, error) {
	rides, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := rides[:0]
	for _, a := range rides {
		if a.EF != nil {
			out = append(out, a)
		}
	}
	return out, nil
}

// Create always fails: activities are written only by the ride-sync
// service.
func (r *CyclingActivityRepository) Create(ctx context.Context) (*model.CyclingActivity, error) {
	return nil, fmt.Errorf("create %s: %w", r.name, ErrReadOnly)
}

// Update always fails: activities are written only by the ride-sync
// service.
func (r *CyclingActivityRepository) Update(ctx context.Context, id string) (*model.CyclingActivity, error) {
	return nil, fmt.Errorf("update %s/%s: %w", r.name, id, ErrReadOnly)
}

// Delete always fails: activities are written only by the ride-sync
// service.
func (r *CyclingActivityRepository) Delete(ctx context.Context, id string) (bool, error) {
	return false, fmt.Errorf("delete %s/%s: %w", r.name, id, ErrReadOnly)
}

func decodeCyclingActivity(id string, data map[string]any) (*model.CyclingActivity, bool) {
	if data == nil {
		return nil, false
	}

	startedAt := docval.String(data, "startedAt")
	duration := docval.Number(data, "durationSeconds")
	distance := docval.Number(data, "distanceKm")
	source := docval.String(data, "source")
	if !startedAt.Ok() || !duration.Ok() || !distance.Ok() || !source.Ok() {
		return nil, false
	}

	avgPower, ok := optNumber(docval.Number(data, "avgPower"))
	if !ok {
		return nil, false
	}
	ef, ok := optNumber(docval.Number(data, "ef"))
	if !ok {
		return nil, false
	}
	tss, ok := optNumber(docval.Number(data, "tss"))
	if !ok {
		return nil, false
	}

	created, updated, ok := requireTimestamps(data)
	if !ok {
		return nil, false
	}

	return &model.CyclingActivity{
		ID:              id,
		StartedAt:       startedAt.Value,
		DurationSeconds: int(duration.Value),
		DistanceKm:      distance.Value,
		AvgPower:        avgPower,
		EF:              ef,
		TSS:             tss,
		Source:          source.Value,
		CreatedAt:       created,
		UpdatedAt:       updated,
	}, true
}
