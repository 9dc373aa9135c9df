// Package postgres backs the docstore with one JSONB table. Documents keep
// their schemaless shape end to end; the database never sees per-entity
// columns, so legacy-shaped or hand-edited rows load like any other and the
// decode layer stays the single arbiter of validity.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
)

// Schema creates the single documents table. The seed command runs this at
// startup; production migrations are owned by the excluded migration scripts.
const Schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	data       JSONB NOT NULL,
	PRIMARY KEY (collection, id)
)`

// EnsureSchema creates the documents table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Store implements docstore.Store on top of a pgx-backed *sql.DB.
type Store struct {
	db *sql.DB
}

var _ docstore.Store = (*Store)(nil)

// New returns a store bound to db.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Collection returns the named collection.
func (s *Store) Collection(name string) docstore.Collection {
	return &collection{db: s.db, name: name}
}

// Batch returns a write batch committed inside a single transaction.
func (s *Store) Batch() docstore.WriteBatch {
	return &writeBatch{db: s.db}
}

type collection struct {
	db   *sql.DB
	name string
}

var _ docstore.Collection = (*collection)(nil)

func (c *collection) Get(ctx context.Context, id string) (map[string]any, error) {
	const q = `SELECT data FROM documents WHERE collection = $1 AND id = $2`

	var raw []byte
	err := c.db.QueryRowContext(ctx, q, c.name, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return data, nil
}

func (c *collection) Set(ctx context.Context, id string, data map[string]any) error {
	const q = `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data
	`
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if _, err := c.db.ExecContext(ctx, q, c.name, id, string(raw)); err != nil {
		return fmt.Errorf("set document: %w", err)
	}
	return nil
}

func (c *collection) Add(ctx context.Context, data map[string]any) (string, error) {
	id := uuid.New().String()
	if err := c.Set(ctx, id, data); err != nil {
		return "", err
	}
	return id, nil
}

// Update shallow-merges fields via the jsonb || operator, which overwrites
// matching top-level keys and keeps explicit nulls as nulls.
func (c *collection) Update(ctx context.Context, id string, fields map[string]any) error {
	const q = `
		UPDATE documents SET data = data || $3::jsonb
		WHERE collection = $1 AND id = $2
	`
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}
	res, err := c.db.ExecContext(ctx, q, c.name, id, string(raw))
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (c *collection) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE collection = $1 AND id = $2`
	if _, err := c.db.ExecContext(ctx, q, c.name, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// Query compiles q to SQL over jsonb. Filter values are passed as
// jsonb parameters so string, number, and boolean comparisons all use
// postgres' native jsonb ordering, matching the client-side evaluation of
// the other backends.
func (c *collection) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, data FROM documents WHERE collection = $1`)
	args := []any{c.name}

	for _, w := range q.Wheres {
		op, ok := sqlOp(w.Op)
		if !ok {
			return nil, fmt.Errorf("unsupported operator %q", w.Op)
		}
		val, err := json.Marshal(w.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal filter value: %w", err)
		}
		args = append(args, w.Path)
		keyIdx := len(args)
		args = append(args, string(val))
		valIdx := len(args)
		fmt.Fprintf(&sb, " AND (data -> $%d) %s $%d::jsonb", keyIdx, op, valIdx)
	}

	if len(q.Orders) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, o := range q.Orders {
			if i > 0 {
				sb.WriteString(", ")
			}
			args = append(args, o.Path)
			fmt.Fprintf(&sb, "data -> $%d", len(args))
			if o.Desc {
				sb.WriteString(" DESC")
			}
		}
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := c.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []docstore.Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		var data map[string]any
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("unmarshal document %s: %w", id, err)
		}
		out = append(out, docstore.Document{ID: id, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func sqlOp(op docstore.Op) (string, bool) {
	switch op {
	case docstore.OpEq:
		return "=", true
	case docstore.OpLt:
		return "<", true
	case docstore.OpLte:
		return "<=", true
	case docstore.OpGt:
		return ">", true
	case docstore.OpGte:
		return ">=", true
	default:
		return "", false
	}
}

type stagedWrite struct {
	collection string
	id         string
	data       map[string]any
}

type writeBatch struct {
	db     *sql.DB
	writes []stagedWrite
}

var _ docstore.WriteBatch = (*writeBatch)(nil)

func (b *writeBatch) Set(collection, id string, data map[string]any) {
	b.writes = append(b.writes, stagedWrite{collection: collection, id: id, data: data})
}

func (b *writeBatch) Len() int { return len(b.writes) }

// Commit applies all staged writes in one transaction.
func (b *writeBatch) Commit(ctx context.Context) error {
	if len(b.writes) == 0 {
		return nil
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}

	const q = `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data
	`
	for _, w := range b.writes {
		raw, err := json.Marshal(w.data)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("marshal document %s/%s: %w", w.collection, w.id, err)
		}
		if _, err := tx.ExecContext(ctx, q, w.collection, w.id, string(raw)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("batch write %s/%s: %w", w.collection, w.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	b.writes = nil
	return nil
}
