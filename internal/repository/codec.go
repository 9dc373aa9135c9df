package repository

import (
	"github.com/carterbs/brad-os-sub006/internal/docval"
	"github.com/carterbs/brad-os-sub006/internal/model"
)

// Helpers shared by the per-entity codecs. Decoders are all-or-nothing: a
// single failed field rejects the whole entity, and nested arrays reject
// element-wise failures upward rather than truncating.

// optString maps a tri-state field to a nullable domain value. Absent and
// explicit null both become nil; only a wrong-typed value is a rejection.
func optString(f docval.Field[string]) (*string, bool) {
	switch f.State {
	case docval.Present:
		v := f.Value
		return &v, true
	case docval.Absent, docval.ExplicitNull:
		return nil, true
	default:
		return nil, false
	}
}

func optNumber(f docval.Field[float64]) (*float64, bool) {
	switch f.State {
	case docval.Present:
		v := f.Value
		return &v, true
	case docval.Absent, docval.ExplicitNull:
		return nil, true
	default:
		return nil, false
	}
}

func optInt(f docval.Field[float64]) (*int, bool) {
	p, ok := optNumber(f)
	if !ok || p == nil {
		return nil, ok
	}
	v := int(*p)
	return &v, true
}

// requireTimestamps reads the lifecycle pair every stored document must
// carry.
func requireTimestamps(data map[string]any) (created, updated string, ok bool) {
	c := docval.String(data, "createdAt")
	u := docval.String(data, "updatedAt")
	if !c.Ok() || !u.Ok() {
		return "", "", false
	}
	return c.Value, u.Value, true
}

// putOpt writes an explicitly-provided scalar field into an update payload.
// Unprovided fields are skipped entirely (no-touch); cleared fields are
// written as explicit nulls.
func putOpt[T any](m map[string]any, key string, o model.Opt[T]) {
	if !o.Provided() {
		return
	}
	if v, ok := o.Get(); ok {
		m[key] = v
		return
	}
	m[key] = nil
}

// ptrOrNil encodes a nullable create-request field: pointer value when set,
// explicit null otherwise.
func ptrOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
