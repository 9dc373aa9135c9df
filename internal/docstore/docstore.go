// Package docstore defines the collection capability the persistence core is
// built against: untyped key-addressed documents with get/set/update/delete
// and a small query value. Backends live in subpackages (memory, postgres,
// minio); callers depend only on these interfaces so a test double can stand
// in without any process-wide singleton.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get and Update when no document exists under
// the given id. Callers should match it with errors.Is.
var ErrNotFound = errors.New("document not found")

// Document is one raw record: the storage key plus the untyped field
// mapping. The id is never part of Data.
type Document struct {
	ID   string
	Data map[string]any
}

// Collection is one logical bucket of documents.
//
// Implementations make no shape guarantees about the returned maps: decoding
// them into typed entities is the caller's concern. Store and transport
// failures are returned unchanged; no retry policy is applied at this layer.
type Collection interface {
	// Get returns the raw document stored under id, or ErrNotFound.
	Get(ctx context.Context, id string) (map[string]any, error)

	// Set writes the full document under id, replacing any existing one.
	Set(ctx context.Context, id string, data map[string]any) error

	// Add writes the document under a backend-assigned id and returns it.
	Add(ctx context.Context, data map[string]any) (string, error)

	// Update shallow-merges fields into the existing document. A field whose
	// value is nil is written as an explicit null (clearing intent), not
	// removed. Returns ErrNotFound when the document does not exist.
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete removes the document. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error

	// Query returns the documents matching q, ordered and limited per q.
	Query(ctx context.Context, q Query) ([]Document, error)
}

// Store hands out named collections and batch writers.
type Store interface {
	Collection(name string) Collection

	// Batch returns an empty write batch. Staged writes become visible only
	// after Commit; atomicity is per backend (the memory and postgres
	// backends commit atomically, the minio backend documents best-effort).
	Batch() WriteBatch
}

// WriteBatch stages full-document writes across collections for a single
// commit. Batches are single-use: once Commit returns, obtain a new batch.
type WriteBatch interface {
	// Set stages a full write of data under collection/id.
	Set(collection, id string, data map[string]any)

	// Len reports the number of staged writes.
	Len() int

	// Commit applies all staged writes.
	Commit(ctx context.Context) error
}
