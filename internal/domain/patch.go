package domain

import "encoding/json"

// Field is a partial-update value that distinguishes a key missing from the
// payload from one sent as an explicit null. Services leave absent fields
// untouched and reject null on required fields.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

func NewField[T any](value T) Field[T] {
	return Field[T]{Present: true, Value: value}
}

func NullField[T any]() Field[T] {
	return Field[T]{Present: true, Null: true}
}
