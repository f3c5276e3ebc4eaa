// Package jsoncol holds the value types used for columns that keep nested data
// as JSON text. Hydration accepts either an already structured value or a
// string containing JSON, so rows coming from the remote row store and rows
// scanned from a local driver decode the same way.
package jsoncol

import (
	"bytes"
	"database/sql/driver"
	"strconv"

	"github.com/goccy/go-json"
)

// Array is a JSON array column.
type Array[T any] []T

func (a *Array[T]) UnmarshalJSON(data []byte) error {
	raw, ok := unwrap(data)
	if !ok {
		*a = nil
		return nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		*a = nil
		return nil
	}
	*a = out
	return nil
}

func (a Array[T]) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]T(a))
}

// Value stringifies the array for binding as a statement parameter.
func (a Array[T]) Value() (driver.Value, error) {
	b, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Object is a JSON object column.
type Object[T any] struct {
	V     T
	Valid bool
}

func NewObject[T any](v T) Object[T] {
	return Object[T]{V: v, Valid: true}
}

func (o *Object[T]) UnmarshalJSON(data []byte) error {
	raw, ok := unwrap(data)
	if !ok {
		*o = Object[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		*o = Object[T]{}
		return nil
	}
	*o = Object[T]{V: v, Valid: true}
	return nil
}

func (o Object[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.V)
}

func (o Object[T]) Value() (driver.Value, error) {
	if !o.Valid {
		return nil, nil
	}
	b, err := json.Marshal(o.V)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Flag is a boolean stored as 0/1.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}

	switch s {
	case "true", "1":
		*f = true
	default:
		if n, err := strconv.ParseFloat(s, 64); err == nil && n != 0 {
			*f = true
			return nil
		}
		*f = false
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

func (f Flag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}

// unwrap returns the JSON document held by data. A JSON string is decoded and
// its contents returned, so '"[\"a.jpg\"]"' and '["a.jpg"]' both yield the
// array. null and empty strings report false.
func unwrap(data []byte) ([]byte, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, false
	}

	if data[0] != '"' {
		return data, true
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, false
	}
	inner := bytes.TrimSpace([]byte(s))
	if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
		return nil, false
	}
	return inner, true
}
