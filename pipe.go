package dataflow

// Stage is a reusable pipeline segment: a function from one Flow to
// another. Stages let a chain of adapters be named, stored, and applied to
// several sources, where direct application would tie the chain to one.
type Stage[In, Out any] func(Flow[In]) Flow[Out]

// Pipe feeds f through the stage. Pipe(f, s) is exactly s(f); chaining
// Pipe calls left to right is the same construction as nesting the
// adapter calls right to left.
//
// Composition is pure construction: building a pipeline of lazy views
// consumes nothing until the final Flow is traversed. Stages wrapping
// eager adapters run their loop at the point of the Pipe call.
func Pipe[In, Out any](f Flow[In], stage Stage[In, Out]) Flow[Out] {
	return stage(f)
}

// Compose fuses two stages into one that applies first and then second.
func Compose[A, B, C any](first Stage[A, B], second Stage[B, C]) Stage[A, C] {
	return func(f Flow[A]) Flow[C] {
		return second(first(f))
	}
}

// Filtering returns Filter with the given predicate as a reusable stage.
func Filtering[T any](predicate Predicate[T]) Stage[T, T] {
	return func(f Flow[T]) Flow[T] {
		return Filter(f, predicate)
	}
}

// Transforming returns Transform with the given function as a reusable
// stage.
func Transforming[In, Out any](fn TransformFunc[In, Out]) Stage[In, Out] {
	return func(f Flow[In]) Flow[Out] {
		return Transform(f, fn)
	}
}

// Splitting returns Split with the given delimiter set as a reusable
// stage.
func Splitting(delimiters string) Stage[string, string] {
	return func(f Flow[string]) Flow[string] {
		return Split(f, delimiters)
	}
}

// DroppingNone returns DropNone as a reusable stage.
func DroppingNone[T any]() Stage[Option[T], T] {
	return func(f Flow[Option[T]]) Flow[T] {
		return DropNone(f)
	}
}
