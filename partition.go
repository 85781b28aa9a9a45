package dataflow

// Partition eagerly splits a flow of fallible results into its error and
// value sub-sequences, errors first.
//
// The upstream is drained exactly once, regardless of which output the
// caller later reads. Each element lands in exactly one output, so
// len(errs) + len(vals) equals the input length, and relative order is
// preserved within each output independently. Both returned Flows are
// fully materialized and re-iterable.
func Partition[V, E any](f Flow[Result[V, E]]) (errs Flow[E], vals Flow[V]) {
	var (
		es []E
		vs []V
	)
	for r := range f.seq {
		if r.ok {
			vs = append(vs, r.value)
		} else {
			es = append(es, r.err)
		}
	}
	return FromSlice(es), FromSlice(vs)
}

// PartitionWith applies fn to every element of f and partitions the
// outcomes, with the same guarantees as Partition.
func PartitionWith[T, V, E any](f Flow[T], fn func(T) Result[V, E]) (errs Flow[E], vals Flow[V]) {
	return Partition(Transform(f, fn))
}
