package model

// Opt is an explicitly-provided optional used by partial-update requests.
// Its zero value means "field not provided, do not touch". Set marks a new
// value; SetNull marks a deliberate clear. Update encoders walk these
// markers mechanically, so a merge payload can never pick up a field the
// caller did not name.
type Opt[T any] struct {
	value    T
	provided bool
	null     bool
}

// Set returns an Opt carrying v.
func Set[T any](v T) Opt[T] {
	return Opt[T]{value: v, provided: true}
}

// SetNull returns an Opt that clears the field to an explicit null.
func SetNull[T any]() Opt[T] {
	return Opt[T]{provided: true, null: true}
}

// Provided reports whether the caller named this field at all.
func (o Opt[T]) Provided() bool { return o.provided }

// IsNull reports whether the caller asked to clear the field.
func (o Opt[T]) IsNull() bool { return o.provided && o.null }

// Get returns the value and whether a non-null value was provided.
func (o Opt[T]) Get() (T, bool) {
	if !o.provided || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}
