// Package repository exposes typed create/read/update/delete/list access to
// the document store, one repository per entity, all built on a shared
// generic base.
//
// The base owns the read-repair policy: a document that fails decode is
// indistinguishable from an absent one on single lookups (nil, nil) and is
// silently dropped from listings, so one corrupted record can never fail a
// whole listing. Writes go the other way: encoders only emit from validated
// construction requests, so an invalid shape is never persisted.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/carterbs/brad-os-sub006/internal/clock"
	"github.com/carterbs/brad-os-sub006/internal/docstore"
)

// ErrReadOnly is returned by every mutating operation of a read-only
// repository. It is deliberately distinct from any store error so a caller
// can never mistake the guardrail for a transient failure.
var ErrReadOnly = errors.New("operation not implemented: entity is read-only in this layer")

// Deps carries the injected collaborators every repository needs. Store is
// required; the rest default to production implementations when zero.
type Deps struct {
	Store docstore.Store

	// Now returns the current instant as an ISO-8601 string. Defaults to
	// clock.NowISO.
	Now func() string

	// NewID returns a fresh document id. Defaults to clock.NewID.
	NewID func() string

	// Logger receives debug lines for documents dropped on decode failure.
	// Defaults to a no-op logger.
	Logger *zerolog.Logger

	// Metrics, when set, counts store traffic and dropped documents.
	Metrics *docstore.Metrics
}

// reader is the query half of a repository: fetch plus decode plus the
// read-repair policy. Read-only repositories embed it directly.
type reader[E any] struct {
	col     docstore.Collection
	name    string
	decode  func(id string, data map[string]any) (*E, bool)
	log     zerolog.Logger
	metrics *docstore.Metrics
}

func newReader[E any](d Deps, name string, decode func(string, map[string]any) (*E, bool)) *reader[E] {
	col := d.Store.Collection(name)
	if d.Metrics != nil {
		col = docstore.Instrument(col, name, d.Metrics)
	}
	log := zerolog.Nop()
	if d.Logger != nil {
		log = *d.Logger
	}
	return &reader[E]{
		col:     col,
		name:    name,
		decode:  decode,
		log:     log.With().Str("collection", name).Logger(),
		metrics: d.Metrics,
	}
}

// FindByID returns the entity stored under id, or nil when no document
// exists or the stored document fails decode. The two cases are
// observationally identical: a caller cannot act differently on "absent"
// versus "malformed", so neither is an error.
func (r *reader[E]) FindByID(ctx context.Context, id string) (*E, error) {
	data, err := r.col.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", r.name, id, err)
	}

	e, ok := r.decode(id, data)
	if !ok {
		r.dropped(id)
		return nil, nil
	}
	return e, nil
}

// findWhere runs q and decodes each result independently, dropping any
// document that fails decode. Result ordering is q's ordering with dropped
// rows removed; decode never reorders.
func (r *reader[E]) findWhere(ctx context.Context, q docstore.Query) ([]*E, error) {
	docs, err := r.col.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.name, err)
	}

	out := make([]*E, 0, len(docs))
	for _, doc := range docs {
		e, ok := r.decode(doc.ID, doc.Data)
		if !ok {
			r.dropped(doc.ID)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *reader[E]) dropped(id string) {
	r.log.Debug().Str("id", id).Msg("dropping document that failed decode")
	if r.metrics != nil {
		r.metrics.DocumentDropped(r.name)
	}
}

// base adds the write half: create with encode-time defaults, merge-style
// partial updates, and pre-checked deletes.
type base[E, C, U any] struct {
	*reader[E]

	// encodeCreate emits the full document for a new entity, including
	// create-time defaults. Lifecycle timestamps are stamped by Create.
	encodeCreate func(req C) map[string]any

	// encodeUpdate emits only the fields explicitly provided in req; an
	// explicitly cleared field appears with a nil value.
	encodeUpdate func(req U) map[string]any

	now   func() string
	newID func() string
}

func newBase[E, C, U any](
	d Deps,
	name string,
	decode func(string, map[string]any) (*E, bool),
	encodeCreate func(C) map[string]any,
	encodeUpdate func(U) map[string]any,
) *base[E, C, U] {
	now := d.Now
	if now == nil {
		now = clock.NowISO
	}
	newID := d.NewID
	if newID == nil {
		newID = clock.NewID
	}
	return &base[E, C, U]{
		reader:       newReader(d, name, decode),
		encodeCreate: encodeCreate,
		encodeUpdate: encodeUpdate,
		now:          now,
		newID:        newID,
	}
}

// Create encodes req, stamps createdAt/updatedAt with the same instant,
// persists under a fresh id, and returns the entity assembled from the very
// fields that were written. No re-read happens: the returned value reflects
// the write even before store-side propagation completes.
func (b *base[E, C, U]) Create(ctx context.Context, req C) (*E, error) {
	now := b.now()
	data := b.encodeCreate(req)
	data["createdAt"] = now
	data["updatedAt"] = now

	id := b.newID()
	if err := b.col.Set(ctx, id, data); err != nil {
		return nil, fmt.Errorf("create %s: %w", b.name, err)
	}

	e, ok := b.decode(id, data)
	if !ok {
		// Encoders emit only valid shapes; reaching this is a bug, not data
		// corruption.
		return nil, fmt.Errorf("create %s: encoded document failed decode", b.name)
	}
	return e, nil
}

// Update merges the explicitly-provided fields of req into the stored
// document. A missing or malformed target is a no-op returning nil: an
// update never materializes a deleted or corrupted record. An empty payload
// returns the entity unchanged without touching the store, so a no-op call
// never bumps updatedAt. Otherwise the payload is stamped, persisted, and
// the canonical entity is re-read so the result reflects store-side state
// rather than a client-side guess.
//
// FindByID-then-Update is not atomic; a concurrent writer can interleave
// between the two calls. That race is accepted at this layer.
func (b *base[E, C, U]) Update(ctx context.Context, id string, req U) (*E, error) {
	existing, err := b.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	fields := b.encodeUpdate(req)
	if len(fields) == 0 {
		return existing, nil
	}
	fields["updatedAt"] = b.now()

	if err := b.col.Update(ctx, id, fields); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			// Deleted between the read and the write.
			return nil, nil
		}
		return nil, fmt.Errorf("update %s/%s: %w", b.name, id, err)
	}

	return b.FindByID(ctx, id)
}

// Delete removes the document after confirming it exists and decodes.
// It returns false with no side effects when the target is absent or
// malformed, which makes delete idempotent and lets callers distinguish
// "just removed" from "already gone" by the boolean alone.
func (b *base[E, C, U]) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := b.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := b.col.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("delete %s/%s: %w", b.name, id, err)
	}
	return true, nil
}
