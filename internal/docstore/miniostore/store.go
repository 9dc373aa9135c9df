// Package miniostore backs the docstore with an S3-compatible bucket (MinIO,
// AWS S3, etc.). Each document is one JSON object under
// <collection>/<id>.json. Queries list the collection prefix and evaluate
// filters client-side, which is adequate for the small personal-scale
// collections this backend is used to archive.
package miniostore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/carterbs/brad-os-sub006/internal/config"
	"github.com/carterbs/brad-os-sub006/internal/docstore"
)

// Store implements docstore.Store over an S3-compatible bucket.
// It is safe for concurrent use by multiple goroutines.
type Store struct {
	client *minio.Client
	bucket string
}

var _ docstore.Store = (*Store)(nil)

// New creates a bucket-backed store. It validates connectivity and ensures
// the bucket exists (creates it if missing).
func New(cfg config.MinIOConfig) (*Store, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	s := &Store{client: cli, bucket: cfg.Bucket}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return s, nil
}

// Collection returns the named collection.
func (s *Store) Collection(name string) docstore.Collection {
	return &collection{store: s, name: name}
}

// Batch returns a write batch. S3 has no multi-object transaction, so Commit
// applies the staged writes sequentially and stops at the first failure.
func (s *Store) Batch() docstore.WriteBatch {
	return &writeBatch{store: s}
}

func objectKey(collection, id string) string {
	return collection + "/" + id + ".json"
}

type collection struct {
	store *Store
	name  string
}

var _ docstore.Collection = (*collection)(nil)

func (c *collection) Get(ctx context.Context, id string) (map[string]any, error) {
	obj, err := c.store.client.GetObject(ctx, c.store.bucket, objectKey(c.name, id), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, docstore.ErrNotFound
		}
		return nil, fmt.Errorf("read object: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return data, nil
}

func (c *collection) Set(ctx context.Context, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	_, err = c.store.client.PutObject(ctx, c.store.bucket, objectKey(c.name, id),
		bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
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

// Update reads, merges, and rewrites the object. Two concurrent updates to
// the same id can lose one side's fields; this backend is an archive target,
// not a contended primary store.
func (c *collection) Update(ctx context.Context, id string, fields map[string]any) error {
	data, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	for k, v := range fields {
		data[k] = v
	}
	return c.Set(ctx, id, data)
}

func (c *collection) Delete(ctx context.Context, id string) error {
	err := c.store.client.RemoveObject(ctx, c.store.bucket, objectKey(c.name, id), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}

func (c *collection) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	prefix := c.name + "/"
	var out []docstore.Document

	for info := range c.store.client.ListObjects(ctx, c.store.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list objects: %w", info.Err)
		}
		id := idFromKey(info.Key, prefix)
		if id == "" {
			continue
		}
		data, err := c.Get(ctx, id)
		if err != nil {
			if errors.Is(err, docstore.ErrNotFound) {
				continue // deleted between list and get
			}
			return nil, err
		}
		if docstore.MatchDocument(data, q.Wheres) {
			out = append(out, docstore.Document{ID: id, Data: data})
		}
	}

	docstore.SortDocuments(out, q.Orders)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func idFromKey(key, prefix string) string {
	const suffix = ".json"
	if len(key) <= len(prefix)+len(suffix) {
		return ""
	}
	if key[:len(prefix)] != prefix || key[len(key)-len(suffix):] != suffix {
		return ""
	}
	return key[len(prefix) : len(key)-len(suffix)]
}

func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey"
	}
	return false
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
	b.writes = append(b.writes, stagedWrite{collection: collection, id: id, data: data})
}

func (b *writeBatch) Len() int { return len(b.writes) }

func (b *writeBatch) Commit(ctx context.Context) error {
	for _, w := range b.writes {
		col := &collection{store: b.store, name: w.collection}
		if err := col.Set(ctx, w.id, w.data); err != nil {
			return fmt.Errorf("batch write %s/%s: %w", w.collection, w.id, err)
		}
	}
	b.writes = nil
	return nil
}
