package dataflow

// Result is a fallible outcome: it holds exactly one of a success value of
// type V or an error value of type E, never both and never neither.
//
// The error side is an arbitrary type rather than the error interface, so
// pipelines can carry plain strings, status codes, or richer structs as
// their failure shape. Results flow through pipelines as ordinary data and
// are branched on with Partition.
type Result[V, E any] struct {
	value V
	err   E
	ok    bool
}

// Ok returns a successful Result holding v.
func Ok[V, E any](v V) Result[V, E] {
	return Result[V, E]{value: v, ok: true}
}

// Err returns a failed Result holding e.
func Err[V, E any](e E) Result[V, E] {
	return Result[V, E]{err: e}
}

// IsOk reports whether the Result holds a success value.
func (r Result[V, E]) IsOk() bool {
	return r.ok
}

// Value returns the success value. It is meaningful only when IsOk
// reports true.
func (r Result[V, E]) Value() V {
	return r.value
}

// Error returns the error value. It is meaningful only when IsOk reports
// false.
func (r Result[V, E]) Error() E {
	return r.err
}
