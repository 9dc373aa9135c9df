package repository

import (
	"context"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
	"github.com/carterbs/brad-os-sub006/internal/docval"
	"github.com/carterbs/brad-os-sub006/internal/model"
)

// CollectionMeditationScripts names the backing collection.
const CollectionMeditationScripts = "meditation_scripts"

// MeditationScriptRepository persists guided-meditation scripts.
type MeditationScriptRepository struct {
	*base[model.MeditationScript, model.CreateMeditationScriptRequest, model.UpdateMeditationScriptRequest]
}

// NewMeditationScriptRepository builds the repository on the injected store.
func NewMeditationScriptRepository(d Deps) *MeditationScriptRepository {
	return &MeditationScriptRepository{
		base: newBase(d, CollectionMeditationScripts, decodeMeditationScript, encodeMeditationScriptCreate, encodeMeditationScriptUpdate),
	}
}

// FindAll lists every script, shortest first.
func (r *MeditationScriptRepository) FindAll(ctx context.Context) ([]*model.MeditationScript, error) {
	return r.findWhere(ctx, docstore.NewQuery().OrderBy("durationMinutes", false))
}

// FindByMaxDuration lists scripts that fit inside the given number of
// minutes, shortest first.
func (r *MeditationScriptRepository) FindByMaxDuration(ctx context.Context, maxMinutes int) ([]*model.MeditationScript, error) {
	q := docstore.NewQuery().
		Where("durationMinutes", docstore.OpLte, maxMinutes).
		OrderBy("durationMinutes", false)
	return r.findWhere(ctx, q)
}

func decodeMeditationScript(id string, data map[string]any) (*model.MeditationScript, bool) {
	if data == nil {
		return nil, false
	}

	title := docval.String(data, "title")
	duration := docval.Number(data, "durationMinutes")
	segmentsRaw := docval.RecordArray(data, "segments")
	if !title.Ok() || !duration.Ok() || !segmentsRaw.Ok() {
		return nil, false
	}

	segments := make([]model.ScriptSegment, 0, len(segmentsRaw.Value))
	for _, seg := range segmentsRaw.Value {
		text := docval.String(seg, "text")
		pause := docval.Number(seg, "pauseSeconds")
		if !text.Ok() || !pause.Ok() {
			return nil, false
		}
		segments = append(segments, model.ScriptSegment{
			Text:         text.Value,
			PauseSeconds: int(pause.Value),
		})
	}

	created, updated, ok := requireTimestamps(data)
	if !ok {
		return nil, false
	}

	return &model.MeditationScript{
		ID:              id,
		Title:           title.Value,
		DurationMinutes: int(duration.Value),
		Segments:        segments,
		CreatedAt:       created,
		UpdatedAt:       updated,
	}, true
}

func encodeSegments(segments []model.ScriptSegment) []map[string]any {
	out := make([]map[string]any, 0, len(segments))
	for _, seg := range segments {
		out = append(out, map[string]any{
			"text":         seg.Text,
			"pauseSeconds": seg.PauseSeconds,
		})
	}
	return out
}

func encodeMeditationScriptCreate(req model.CreateMeditationScriptRequest) map[string]any {
	return map[string]any{
		"title":           req.Title,
		"durationMinutes": req.DurationMinutes,
		"segments":        encodeSegments(req.Segments),
	}
}

func encodeMeditationScriptUpdate(req model.UpdateMeditationScriptRequest) map[string]any {
	m := map[string]any{}
	putOpt(m, "title", req.Title)
	putOpt(m, "durationMinutes", req.DurationMinutes)
	if req.Segments.Provided() {
		if segments, ok := req.Segments.Get(); ok {
			m["segments"] = encodeSegments(segments)
		} else {
			m["segments"] = nil
		}
	}
	return m
}
