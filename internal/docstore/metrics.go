package docstore

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus counters for document-store traffic.
type Metrics struct {
	ops     *prometheus.CounterVec
	errors  *prometheus.CounterVec
	dropped *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docstore_operations_total",
				Help: "Total number of document store operations issued.",
			},
			[]string{"collection", "op"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docstore_operation_errors_total",
				Help: "Total number of document store operations that returned an error.",
			},
			[]string{"collection", "op"},
		),
		dropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docstore_documents_dropped_total",
				Help: "Total number of documents dropped from results because they failed decode.",
			},
			[]string{"collection"},
		),
	}

	for _, c := range []*prometheus.CounterVec{m.ops, m.errors, m.dropped} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// DocumentDropped records one document omitted from a listing after failing
// decode. ErrNotFound on single lookups is not counted; it is an expected
// outcome, not data loss.
func (m *Metrics) DocumentDropped(collection string) {
	m.dropped.WithLabelValues(collection).Inc()
}

func (m *Metrics) observe(collection, op string, err error) {
	m.ops.WithLabelValues(collection, op).Inc()
	if err != nil && !errors.Is(err, ErrNotFound) {
		m.errors.WithLabelValues(collection, op).Inc()
	}
}

// InstrumentedCollection wraps a Collection and counts every operation.
type InstrumentedCollection struct {
	inner   Collection
	name    string
	metrics *Metrics
}

// Instrument wraps col so that all traffic is counted under the given
// collection name.
func Instrument(col Collection, name string, m *Metrics) *InstrumentedCollection {
	return &InstrumentedCollection{inner: col, name: name, metrics: m}
}

var _ Collection = (*InstrumentedCollection)(nil)

func (c *InstrumentedCollection) Get(ctx context.Context, id string) (map[string]any, error) {
	data, err := c.inner.Get(ctx, id)
	c.metrics.observe(c.name, "get", err)
	return data, err
}

func (c *InstrumentedCollection) Set(ctx context.Context, id string, data map[string]any) error {
	err := c.inner.Set(ctx, id, data)
	c.metrics.observe(c.name, "set", err)
	return err
}

func (c *InstrumentedCollection) Add(ctx context.Context, data map[string]any) (string, error) {
	id, err := c.inner.Add(ctx, data)
	c.metrics.observe(c.name, "add", err)
	return id, err
}

func (c *InstrumentedCollection) Update(ctx context.Context, id string, fields map[string]any) error {
	err := c.inner.Update(ctx, id, fields)
	c.metrics.observe(c.name, "update", err)
	return err
}

func (c *InstrumentedCollection) Delete(ctx context.Context, id string) error {
	err := c.inner.Delete(ctx, id)
	c.metrics.observe(c.name, "delete", err)
	return err
}

func (c *InstrumentedCollection) Query(ctx context.Context, q Query) ([]Document, error) {
	docs, err := c.inner.Query(ctx, q)
	c.metrics.observe(c.name, "query", err)
	return docs, err
}
