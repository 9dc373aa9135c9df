// Package docval provides runtime type guards over untyped documents.
//
// A document fetched from the store is a plain map[string]any with no schema
// guarantees: any field can be missing, explicitly null, or hold a value of
// the wrong type after a manual edit or a write from an older client. Every
// reader in this package is total — it never panics and never returns an
// error — and reports one of four states per field so entity decoders can
// aggregate checks with plain comparisons instead of exception handling.
package docval

import "encoding/json"

// State classifies the outcome of reading one field from a raw document.
type State uint8

const (
	// Absent means the key does not exist in the document.
	Absent State = iota
	// ExplicitNull means the key exists and its value is null. For optional
	// fields this is a legitimate "deliberately empty" marker, distinct from
	// the key being missing.
	ExplicitNull
	// Invalid means the key exists but the value is not coercible to the
	// expected type. Callers treat this as a rejection signal.
	Invalid
	// Present means the key exists and holds a valid value of the expected
	// type.
	Present
)

// Field is the result of reading a typed field out of a raw document.
// Value is meaningful only when State is Present.
type Field[T any] struct {
	State State
	Value T
}

// Ok reports whether the field was present with a valid value.
func (f Field[T]) Ok() bool { return f.State == Present }

// Rejected reports whether the field carried a value of the wrong type.
// Absent and ExplicitNull are not rejections; optional-field callers decide
// what those mean.
func (f Field[T]) Rejected() bool { return f.State == Invalid }

func absent[T any]() Field[T]     { return Field[T]{State: Absent} }
func null[T any]() Field[T]       { return Field[T]{State: ExplicitNull} }
func invalid[T any]() Field[T]    { return Field[T]{State: Invalid} }
func present[T any](v T) Field[T] { return Field[T]{State: Present, Value: v} }

// IsRecord reports whether v is a structured key-value mapping. Arrays,
// nulls, and scalars are not records. Entity decoders gate on this before
// any field access.
func IsRecord(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// AsRecord returns v as a map when IsRecord holds.
func AsRecord(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// AsNumber normalizes the numeric representations seen across store
// backends to float64. JSON round-trips produce float64 or json.Number;
// documents built in-process may hold native ints.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// String reads a string field. Null and missing keys are reported as
// ExplicitNull and Absent respectively so callers can distinguish a cleared
// optional field from one that was never written.
func String(doc map[string]any, key string) Field[string] {
	raw, exists := doc[key]
	if !exists {
		return absent[string]()
	}
	if raw == nil {
		return null[string]()
	}
	s, ok := raw.(string)
	if !ok {
		return invalid[string]()
	}
	return present(s)
}

// Number reads a numeric field, accepting any representation AsNumber
// understands. No string-to-number coercion is performed.
func Number(doc map[string]any, key string) Field[float64] {
	raw, exists := doc[key]
	if !exists {
		return absent[float64]()
	}
	if raw == nil {
		return null[float64]()
	}
	f, ok := AsNumber(raw)
	if !ok {
		return invalid[float64]()
	}
	return present(f)
}

// Boolean reads a boolean field. The Present/Invalid split keeps a valid
// false distinguishable from a type failure.
func Boolean(doc map[string]any, key string) Field[bool] {
	raw, exists := doc[key]
	if !exists {
		return absent[bool]()
	}
	if raw == nil {
		return null[bool]()
	}
	b, ok := raw.(bool)
	if !ok {
		return invalid[bool]()
	}
	return present(b)
}

// Enum reads a string field that must be a member of the supplied closed
// set. A string outside the set is Invalid, not Present.
func Enum(doc map[string]any, key string, allowed ...string) Field[string] {
	f := String(doc, key)
	if f.State != Present {
		return f
	}
	for _, a := range allowed {
		if f.Value == a {
			return f
		}
	}
	return invalid[string]()
}

// NumberArray reads an array of numbers. Any non-numeric element makes the
// whole field Invalid; elements are never coerced or silently dropped.
func NumberArray(doc map[string]any, key string) Field[[]float64] {
	raw, exists := doc[key]
	if !exists {
		return absent[[]float64]()
	}
	if raw == nil {
		return null[[]float64]()
	}
	switch arr := raw.(type) {
	case []float64:
		out := make([]float64, len(arr))
		copy(out, arr)
		return present(out)
	case []any:
		out := make([]float64, 0, len(arr))
		for _, el := range arr {
			f, ok := AsNumber(el)
			if !ok {
				return invalid[[]float64]()
			}
			out = append(out, f)
		}
		return present(out)
	default:
		return invalid[[]float64]()
	}
}

// RecordArray reads an array of nested records. Any element that is not a
// record makes the whole field Invalid; per-element field validation is the
// caller's decoder's job.
func RecordArray(doc map[string]any, key string) Field[[]map[string]any] {
	raw, exists := doc[key]
	if !exists {
		return absent[[]map[string]any]()
	}
	if raw == nil {
		return null[[]map[string]any]()
	}
	switch arr := raw.(type) {
	case []map[string]any:
		out := make([]map[string]any, len(arr))
		copy(out, arr)
		return present(out)
	case []any:
		out := make([]map[string]any, 0, len(arr))
		for _, el := range arr {
			m, ok := AsRecord(el)
			if !ok {
				return invalid[[]map[string]any]()
			}
			out = append(out, m)
		}
		return present(out)
	default:
		return invalid[[]map[string]any]()
	}
}
