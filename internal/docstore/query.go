package docstore

import (
	"sort"
	"strings"

	"github.com/carterbs/brad-os-sub006/internal/docval"
)

// Op is a comparison operator usable in a Where clause.
type Op string

const (
	OpEq  Op = "=="
	OpLt  Op = "<"
	OpLte Op = "<="
	OpGt  Op = ">"
	OpGte Op = ">="
)

// Where filters documents on one top-level field.
type Where struct {
	Path  string
	Op    Op
	Value any
}

// Order sorts results on one top-level field.
type Order struct {
	Path string
	Desc bool
}

// Query is a value describing equality/range filters, ordering, and an
// optional limit. Backends either compile it to their native query language
// (postgres) or evaluate it client-side (memory, minio).
type Query struct {
	Wheres []Where
	Orders []Order
	Limit  int
}

// NewQuery returns an empty query value.
func NewQuery() Query { return Query{} }

// Where appends a filter clause, returning the extended query.
func (q Query) Where(path string, op Op, value any) Query {
	q.Wheres = append(q.Wheres, Where{Path: path, Op: op, Value: value})
	return q
}

// OrderBy appends an ordering clause, returning the extended query.
func (q Query) OrderBy(path string, desc bool) Query {
	q.Orders = append(q.Orders, Order{Path: path, Desc: desc})
	return q
}

// WithLimit caps the result size. Zero means unlimited.
func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}

// MatchDocument evaluates every Where clause against data. A document whose
// field is missing, null, or of a different type than the filter value never
// matches a range or equality clause.
func MatchDocument(data map[string]any, wheres []Where) bool {
	for _, w := range wheres {
		raw, exists := data[w.Path]
		if !exists {
			return false
		}
		cmp, ok := compareValues(raw, w.Value)
		if !ok {
			return false
		}
		switch w.Op {
		case OpEq:
			if cmp != 0 {
				return false
			}
		case OpLt:
			if cmp >= 0 {
				return false
			}
		case OpLte:
			if cmp > 0 {
				return false
			}
		case OpGt:
			if cmp <= 0 {
				return false
			}
		case OpGte:
			if cmp < 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// SortDocuments orders docs in place per the given clauses. Comparable
// values order naturally; documents whose field is missing or uncomparable
// sort before comparable ones so results stay deterministic.
func SortDocuments(docs []Document, orders []Order) {
	if len(orders) == 0 {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, o := range orders {
			a, aok := docs[i].Data[o.Path]
			b, bok := docs[j].Data[o.Path]
			if !aok || !bok {
				if aok == bok {
					continue
				}
				less := !aok
				if o.Desc {
					less = !less
				}
				return less
			}
			cmp, ok := compareValues(a, b)
			if !ok || cmp == 0 {
				continue
			}
			if o.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compareValues compares two raw field values of the same kind. It reports
// ok=false for nulls, cross-type pairs, and non-scalar values.
func compareValues(a, b any) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(as, bs), true
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case ab == bb:
			return 0, true
		case !ab:
			return -1, true
		default:
			return 1, true
		}
	}
	af, aok := docval.AsNumber(a)
	bf, bok := docval.AsNumber(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}
