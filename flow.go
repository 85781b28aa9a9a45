package dataflow

import (
	"iter"

	"dataflow/internal/iterx"
)

// Flow represents a lazily-evaluated sequence of values of type T.
//
// A Flow wraps an iter.Seq together with an optional size hint. Starting a
// traversal re-runs the whole adapter chain from its source: every view
// rebuilds its cursor state inside the sequence closure, so traversals are
// independent of each other.
//
// Whether a second traversal is legal is a property of the root source,
// not of the adapters. A Flow built with FromSlice can be walked any
// number of times; a Flow built with FromChan (or over another single-pass
// source) yields nothing the second time. The type does not enforce this;
// it is the caller's responsibility.
type Flow[T any] struct {
	seq  iter.Seq[T]
	size int
}

// From wraps an existing iter.Seq into a Flow.
//
// The resulting Flow is exactly as re-iterable as the sequence it wraps.
func From[T any](seq iter.Seq[T]) Flow[T] {
	return Flow[T]{seq: seq, size: -1}
}

// FromSlice returns a re-iterable Flow over the elements of s, in order.
func FromSlice[T any](s []T) Flow[T] {
	return Flow[T]{seq: iterx.FromSlice(s), size: len(s)}
}

// FromChan returns a single-pass Flow that receives values from ch until
// the channel is closed.
func FromChan[T any](ch chan T) Flow[T] {
	return Flow[T]{seq: iterx.FromChan(ch), size: -1}
}

// Values exposes the Flow as an iter.Seq for consumption with range.
func (f Flow[T]) Values() iter.Seq[T] {
	return f.seq
}

// Size returns the number of elements the Flow will produce, or -1 when
// that is unknown without traversing it.
func (f Flow[T]) Size() int {
	return f.size
}

// Collect drains f into a slice, preserving element order exactly.
// Capacity is pre-reserved when the Flow carries a size hint. The returned
// slice is never nil.
func Collect[T any](f Flow[T]) []T {
	n := f.size
	if n < 0 {
		n = 0
	}
	out := make([]T, 0, n)
	for v := range f.seq {
		out = append(out, v)
	}
	return out
}
