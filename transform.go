package dataflow

type (

	// Predicate represents a filtering function that returns true when the
	// provided value should be included in the output flow.
	Predicate[T any] func(v T) bool

	// TransformFunc is a pure mapping function used by Transform that maps
	// a value of type In to a value of type Out.
	TransformFunc[In, Out any] func(in In) Out
)

// Filter returns a lazy view over f that yields only the values for which
// predicate returns true.
//
// Relative order of the kept elements is preserved: collecting the result
// equals the sub-sequence of the input satisfying the predicate. The
// predicate runs at traversal time, once per upstream element per
// traversal.
func Filter[T any](f Flow[T], predicate Predicate[T]) Flow[T] {
	return Flow[T]{
		size: -1,
		seq: func(yield func(T) bool) {
			for v := range f.seq {
				if predicate(v) {
					if !yield(v) {
						return
					}
				}
			}
		},
	}
}

// Transform returns a lazy view over f that yields fn applied to each
// upstream element.
//
// fn runs at read time and its result is not cached; advancing moves only
// the upstream position. The element count is unchanged, so the size hint
// carries through.
func Transform[In, Out any](f Flow[In], fn TransformFunc[In, Out]) Flow[Out] {
	return Flow[Out]{
		size: f.size,
		seq: func(yield func(Out) bool) {
			for in := range f.seq {
				if !yield(fn(in)) {
					return
				}
			}
		},
	}
}

// DropNone removes the empty Options from a flow and unwraps the rest.
//
// It is defined as Filter on presence followed by Transform to the held
// value. The upstream element type must be Option[T]; the signature
// enforces that at compile time.
func DropNone[T any](f Flow[Option[T]]) Flow[T] {
	present := Filter(f, Option[T].IsSome)
	return Transform(present, Option[T].MustGet)
}
