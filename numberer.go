package numberer

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Numberer assigns dense integer identifiers to categorical values, such as
// feature names or class labels, in the order they are first added.
//
// The k-th distinct value added is numbered k + StartAt().  Identifiers below
// StartAt() are treated as reserved by the caller.
//
// The zero value is an empty Numberer starting at zero.  A Numberer is not
// safe for concurrent use; callers sharing one must synchronise Add against
// the lookups themselves.
type Numberer[T comparable] struct {
	values  []T
	numbers map[T]int
	startAt int
}

// New returns an empty Numberer whose first value will be numbered startAt.
// startAt must not be negative.
func New[T comparable](startAt int) *Numberer[T] {
	if startAt < 0 {
		panic("numberer: startAt must not be negative")
	}
	return &Numberer[T]{
		numbers: map[T]int{},
		startAt: startAt,
	}
}

// IsEmpty is true if no value has been added
func (n *Numberer[T]) IsEmpty() bool {
	return len(n.values) == 0
}

// Len returns the number that the next new value would receive, i.e. the
// count of values added plus StartAt().
func (n *Numberer[T]) Len() int {
	return len(n.values) + n.startAt
}

// StartAt returns the number given to the first value
func (n *Numberer[T]) StartAt() int {
	return n.startAt
}

// Add returns the number of v, assigning the next number if v has not been seen before.
func (n *Numberer[T]) Add(v T) int {
	if number, ok := n.numbers[v]; ok {
		return number
	}
	if n.numbers == nil {
		n.numbers = map[T]int{}
	}

	number := len(n.values) + n.startAt
	n.values = append(n.values, v)
	n.numbers[v] = number
	return number
}

// Number returns the number for a value
func (n *Numberer[T]) Number(v T) (int, bool) {
	number, ok := n.numbers[v]
	return number, ok
}

// NumberBytes looks up the number of the string-like value held in b.
func NumberBytes[T ~string](n *Numberer[T], b []byte) (int, bool) {
	number, ok := n.numbers[T(b)]
	return number, ok
}

// Value returns the value for a number.  Numbers outside [StartAt(), Len())
// are reported as not found.
func (n *Numberer[T]) Value(number int) (T, bool) {
	idx := number - n.startAt
	if idx < 0 || idx >= len(n.values) {
		var zero T
		return zero, false
	}
	return n.values[idx], true
}

// Values returns a copy of the values, in number order
func (n *Numberer[T]) Values() []T {
	return slices.Clone(n.values)
}

// All iterates over (number, value) pairs in number order
func (n *Numberer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range n.values {
			if !yield(i+n.startAt, v) {
				return
			}
		}
	}
}

// Clone returns an independent copy
func (n *Numberer[T]) Clone() *Numberer[T] {
	c := &Numberer[T]{
		values:  slices.Clone(n.values),
		numbers: maps.Clone(n.numbers),
		startAt: n.startAt,
	}
	if c.numbers == nil {
		c.numbers = map[T]int{}
	}
	return c
}

// Equal reports whether both Numberers hold the same values, in the same
// order, with the same numbers.
func (n *Numberer[T]) Equal(other *Numberer[T]) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.startAt == other.startAt &&
		slices.Equal(n.values, other.values) &&
		maps.Equal(n.numbers, other.numbers)
}

func (n *Numberer[T]) String() string {
	if n == nil {
		return "Numberer(nil)"
	}
	return fmt.Sprintf("Numberer{start_at: %d, values: %v}", n.startAt, n.values)
}
