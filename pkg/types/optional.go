package types

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field that was omitted from one explicitly set to
// null and one carrying a value. The zero value is "omitted".
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what marks the field as Set.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// HasValue reports a present, non-null value.
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

// ApplyTo overwrites a nullable destination: omitted leaves it alone,
// null clears it, a value replaces it.
func (o Optional[T]) ApplyTo(dst **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}

// Ptr returns nil unless a value is present.
func (o Optional[T]) Ptr() *T {
	if !o.HasValue() {
		return nil
	}
	v := o.Value
	return &v
}
