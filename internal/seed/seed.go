// Package seed loads starter data into a document store in bounded
// batches. Each flush is one WriteBatch commit, so a crash mid-seed leaves
// whole batches either fully applied or untouched.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/carterbs/brad-os-sub006/internal/clock"
	"github.com/carterbs/brad-os-sub006/internal/docstore"
)

// Doc is one staged document: where it goes and what it holds. Timestamps
// are stamped at stage time, so callers pass only domain fields.
type Doc struct {
	Collection string
	Data       map[string]any
}

// Seeder stages documents and commits them in batches of at most
// MaxBatchSize writes.
type Seeder struct {
	store docstore.Store
	max   int
	now   func() string
	newID func() string
	log   zerolog.Logger

	batch   docstore.WriteBatch
	flushed int
}

// Option adjusts a Seeder at construction.
type Option func(*Seeder)

// WithClock overrides the timestamp and id sources.
func WithClock(now, newID func() string) Option {
	return func(s *Seeder) {
		s.now = now
		s.newID = newID
	}
}

// WithLogger attaches a logger; flushes log at info level.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Seeder) { s.log = log }
}

// New builds a Seeder committing at most maxBatchSize writes per batch.
// A non-positive maxBatchSize means a single final commit.
func New(store docstore.Store, maxBatchSize int, opts ...Option) *Seeder {
	s := &Seeder{
		store: store,
		max:   maxBatchSize,
		now:   clock.NowISO,
		newID: clock.NewID,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stages one document under a fresh id, flushing first when the current
// batch is full.
func (s *Seeder) Add(ctx context.Context, doc Doc) error {
	if s.batch == nil {
		s.batch = s.store.Batch()
	}
	if s.max > 0 && s.batch.Len() >= s.max {
		if err := s.flush(ctx); err != nil {
			return err
		}
		s.batch = s.store.Batch()
	}

	now := s.now()
	data := make(map[string]any, len(doc.Data)+2)
	for k, v := range doc.Data {
		data[k] = v
	}
	data["createdAt"] = now
	data["updatedAt"] = now

	s.batch.Set(doc.Collection, s.newID(), data)
	return nil
}

// AddAll stages docs in order.
func (s *Seeder) AddAll(ctx context.Context, docs []Doc) error {
	for _, doc := range docs {
		if err := s.Add(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

// Flush commits whatever is staged, including a final partial batch. Safe
// to call with nothing staged.
func (s *Seeder) Flush(ctx context.Context) error {
	if s.batch == nil || s.batch.Len() == 0 {
		return nil
	}
	return s.flush(ctx)
}

// Seeded reports how many documents have been committed so far.
func (s *Seeder) Seeded() int { return s.flushed }

func (s *Seeder) flush(ctx context.Context) error {
	n := s.batch.Len()
	if err := s.batch.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed batch of %d: %w", n, err)
	}
	s.flushed += n
	s.batch = nil
	s.log.Info().Int("documents", n).Int("total", s.flushed).Msg("seed batch committed")
	return nil
}
