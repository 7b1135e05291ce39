// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package optional provides a tri-state value for partial updates.

A [Value] is in exactly one of three states:

  - unset: the field was not supplied, leave the target untouched.
  - null: the field was supplied as JSON null, clear the target.
  - value: the field was supplied with a value, overwrite the target.

Decoding a struct of [Value] fields with encoding/json yields unset for
absent keys, null for explicit nulls and value otherwise.
*/
package optional

import (
	"bytes"
	"encoding/json"
)

// Value is a tri-state optional.
type Value[T any] struct {
	value T
	set   bool
	null  bool
}

// Of returns a [Value] holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// Null returns a [Value] that was explicitly supplied as null.
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet reports whether the field was supplied at all (value or null).
func (o Value[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was supplied as null.
func (o Value[T]) IsNull() bool { return o.set && o.null }

// HasValue reports whether the field was supplied with a non-null value.
func (o Value[T]) HasValue() bool { return o.set && !o.null }

// Get returns the held value and whether one is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.HasValue()
}

// OrElse returns the held value, or fallback when there is none.
func (o Value[T]) OrElse(fallback T) T {
	if o.HasValue() {
		return o.value
	}
	return fallback
}

// Apply writes the value into a non-nullable target.
//
// Null writes the zero value; callers validate the result afterwards.
func (o Value[T]) Apply(target *T) {
	switch {
	case o.HasValue():
		*target = o.value
	case o.IsNull():
		var zero T
		*target = zero
	}
}

// ApplyPtr writes the value into a nullable target. Null clears it.
func (o Value[T]) ApplyPtr(target **T) {
	switch {
	case o.HasValue():
		v := o.value
		*target = &v
	case o.IsNull():
		*target = nil
	}
}

// UnmarshalJSON implements [json.Unmarshaler].
//
// encoding/json only calls it for keys present in the document, so an
// absent key leaves the value unset.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}

	o.null = false
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON implements [json.Marshaler]. Unset and null both encode as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
