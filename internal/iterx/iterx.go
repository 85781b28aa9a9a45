package iterx

import (
	"iter"
)

// FromSlice adapts a slice into an iter.Seq. The sequence can be ranged
// over any number of times.
func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// FromChan adapts a channel into an iter.Seq that receives until the
// channel is closed. The sequence is single-pass: once drained, a second
// range yields nothing.
func FromChan[T any](in chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range in {
			if !yield(i) {
				break
			}
		}
	}
}
