// Package memory provides an in-memory docstore backend. It is the canonical
// test double for the repository layer and doubles as the dry-run target for
// the seed command.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
)

// Store keeps all collections in process memory guarded by one mutex.
// Documents are deep-copied on the way in and out so callers can never alias
// stored state.
type Store struct {
	mu   sync.RWMutex
	data map[string]map[string]map[string]any // collection -> id -> document
}

var _ docstore.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{data: make(map[string]map[string]map[string]any)}
}

// Collection returns the named collection, creating it lazily on first write.
func (s *Store) Collection(name string) docstore.Collection {
	return &collection{store: s, name: name}
}

// Batch returns a write batch that commits all staged writes under a single
// lock acquisition.
func (s *Store) Batch() docstore.WriteBatch {
	return &writeBatch{store: s}
}

// Len reports the number of documents in the named collection.
func (s *Store) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[collection])
}

func (s *Store) bucket(name string) map[string]map[string]any {
	b, ok := s.data[name]
	if !ok {
		b = make(map[string]map[string]any)
		s.data[name] = b
	}
	return b
}

type collection struct {
	store *Store
	name  string
}

var _ docstore.Collection = (*collection)(nil)

func (c *collection) Get(_ context.Context, id string) (map[string]any, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	doc, ok := c.store.data[c.name][id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return cloneDocument(doc), nil
}

func (c *collection) Set(_ context.Context, id string, data map[string]any) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	c.store.bucket(c.name)[id] = cloneDocument(data)
	return nil
}

func (c *collection) Add(ctx context.Context, data map[string]any) (string, error) {
	id := uuid.New().String()
	if err := c.Set(ctx, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (c *collection) Update(_ context.Context, id string, fields map[string]any) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	doc, ok := c.store.data[c.name][id]
	if !ok {
		return docstore.ErrNotFound
	}
	for k, v := range cloneDocument(fields) {
		doc[k] = v
	}
	return nil
}

func (c *collection) Delete(_ context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	delete(c.store.data[c.name], id)
	return nil
}

func (c *collection) Query(_ context.Context, q docstore.Query) ([]docstore.Document, error) {
	c.store.mu.RLock()
	var out []docstore.Document
	for id, doc := range c.store.data[c.name] {
		if docstore.MatchDocument(doc, q.Wheres) {
			out = append(out, docstore.Document{ID: id, Data: cloneDocument(doc)})
		}
	}
	c.store.mu.RUnlock()

	// Sort by id first so map iteration order never leaks into results;
	// SortDocuments is stable, so id remains the tiebreaker.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	docstore.SortDocuments(out, q.Orders)

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

type stagedWrite struct {
	collection string
	id         string
	data       map[string]any
}

type writeBatch struct {
	store  *Store
	writes []stagedWrite
}

var _ docstore.WriteBatch = (*writeBatch)(nil)

func (b *writeBatch) Set(collection, id string, data map[string]any) {
	b.writes = append(b.writes, stagedWrite{collection: collection, id: id, data: cloneDocument(data)})
}

func (b *writeBatch) Len() int { return len(b.writes) }

func (b *writeBatch) Commit(_ context.Context) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	for _, w := range b.writes {
		b.store.bucket(w.collection)[w.id] = w.data
	}
	b.writes = nil
	return nil
}

// cloneDocument deep-copies the nested maps and slices a document can hold.
func cloneDocument(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneDocument(t)
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = cloneValue(el)
		}
		return out
	case []float64:
		out := make([]float64, len(t))
		copy(out, t)
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, el := range t {
			out[i] = cloneDocument(el)
		}
		return out
	default:
		return t
	}
}
