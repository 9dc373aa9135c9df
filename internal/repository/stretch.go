package repository

import (
	"context"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
	"github.com/carterbs/brad-os-sub006/internal/docval"
	"github.com/carterbs/brad-os-sub006/internal/model"
)

// CollectionStretchRoutines names the backing collection.
const CollectionStretchRoutines = "stretch_routines"

// StretchRoutineRepository persists stretch routines.
type StretchRoutineRepository struct {
	*base[model.StretchRoutine, model.CreateStretchRoutineRequest, model.UpdateStretchRoutineRequest]
}

// NewStretchRoutineRepository builds the repository on the injected store.
func NewStretchRoutineRepository(d Deps) *StretchRoutineRepository {
	return &StretchRoutineRepository{
		base: newBase(d, CollectionStretchRoutines, decodeStretchRoutine, encodeStretchRoutineCreate, encodeStretchRoutineUpdate),
	}
}

// FindAll lists every routine by name.
func (r *StretchRoutineRepository) FindAll(ctx context.Context) ([]*model.StretchRoutine, error) {
	return r.findWhere(ctx, docstore.NewQuery().OrderBy("name", false))
}

// FindBySlot lists the routines for one time of day, sorted by name.
func (r *StretchRoutineRepository) FindBySlot(ctx context.Context, slot string) ([]*model.StretchRoutine, error) {
	q := docstore.NewQuery().
		Where("slot", docstore.OpEq, slot).
		OrderBy("name", false)
	return r.findWhere(ctx, q)
}

func decodeStretchRoutine(id string, data map[string]any) (*model.StretchRoutine, bool) {
	if data == nil {
		return nil, false
	}

	name := docval.String(data, "name")
	slot := docval.Enum(data, "slot", model.RoutineSlots...)
	stretchesRaw := docval.RecordArray(data, "stretches")
	if !name.Ok() || !slot.Ok() || !stretchesRaw.Ok() {
		return nil, false
	}

	stretches := make([]model.Stretch, 0, len(stretchesRaw.Value))
	for _, s := range stretchesRaw.Value {
		sname := docval.String(s, "name")
		hold := docval.Number(s, "holdSeconds")
		side := docval.Enum(s, "side", model.StretchSides...)
		if !sname.Ok() || !hold.Ok() || !side.Ok() {
			return nil, false
		}
		stretches = append(stretches, model.Stretch{
			Name:        sname.Value,
			HoldSeconds: int(hold.Value),
			Side:        side.Value,
		})
	}

	created, updated, ok := requireTimestamps(data)
	if !ok {
		return nil, false
	}

	return &model.StretchRoutine{
		ID:        id,
		Name:      name.Value,
		Slot:      slot.Value,
		Stretches: stretches,
		CreatedAt: created,
		UpdatedAt: updated,
	}, true
}

func encodeStretches(stretches []model.Stretch) []map[string]any {
	out := make([]map[string]any, 0, len(stretches))
	for _, s := range stretches {
		out = append(out, map[string]any{
			"name":        s.Name,
			"holdSeconds": s.HoldSeconds,
			"side":        s.Side,
		})
	}
	return out
}

func encodeStretchRoutineCreate(req model.CreateStretchRoutineRequest) map[string]any {
	return map[string]any{
		"name":      req.Name,
		"slot":      req.Slot,
		"stretches": encodeStretches(req.Stretches),
	}
}

func encodeStretchRoutineUpdate(req model.UpdateStretchRoutineRequest) map[string]any {
	m := map[string]any{}
	putOpt(m, "name", req.Name)
	putOpt(m, "slot", req.Slot)
	if req.Stretches.Provided() {
		if stretches, ok := req.Stretches.Get(); ok {
			m["stretches"] = encodeStretches(stretches)
		} else {
			m["stretches"] = nil
		}
	}
	return m
}
