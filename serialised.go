package numberer

import (
	"errors"
	"fmt"
	"slices"
)

// Serialised is the external form of a Numberer.
//
// Only the ordered values and the starting number are held, since the
// value to number index can always be rebuilt from them.
type Serialised[T comparable] struct {
	Values  []T `json:"values" yaml:"values" cbor:"values"`
	StartAt int `json:"start_at" yaml:"start_at" cbor:"start_at"`
}

// ErrNegativeStartAt raised if serialised data has a start_at below zero
var ErrNegativeStartAt = errors.New("start_at must not be negative")

// ErrDuplicateValue raised by Validate when the same value appears more than once
var ErrDuplicateValue = errors.New("values must not contain duplicates")

// Validate checks that s could have been produced by a Numberer.
// FromSerialised does not require this.
func (s Serialised[T]) Validate() error {
	if s.StartAt < 0 {
		return ErrNegativeStartAt
	}

	seen := make(map[T]int, len(s.Values))
	for i, v := range s.Values {
		if j, ok := seen[v]; ok {
			return fmt.Errorf("%w: value at position %d repeats position %d", ErrDuplicateValue, i, j)
		}
		seen[v] = i
	}
	return nil
}

// Serialised returns the external form of n
func (n *Numberer[T]) Serialised() Serialised[T] {
	values := slices.Clone(n.values)
	if values == nil {
		values = []T{}
	}
	return Serialised[T]{
		Values:  values,
		StartAt: n.startAt,
	}
}

// FromSerialised rebuilds a Numberer, numbering s.Values[k] as k + s.StartAt.
//
// Duplicate values are accepted; the number of the last occurrence is the one
// returned by Number and Add.  Use Validate first to reject such data.
func FromSerialised[T comparable](s Serialised[T]) (*Numberer[T], error) {
	if s.StartAt < 0 {
		return nil, ErrNegativeStartAt
	}

	numbers := make(map[T]int, len(s.Values))
	for i, v := range s.Values {
		numbers[v] = i + s.StartAt
	}

	return &Numberer[T]{
		values:  slices.Clone(s.Values),
		numbers: numbers,
		startAt: s.StartAt,
	}, nil
}
