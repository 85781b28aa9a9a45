package dataflow

// AggregateFunc folds one element into a group's accumulator, updating the
// accumulator in place.
type AggregateFunc[A, T any] func(acc *A, v T)

// Identity returns its argument unchanged. It is the key selector for
// flows whose elements are their own grouping key, e.g. plain strings.
func Identity[T comparable](v T) T {
	return v
}

// AggregateByKey eagerly groups a flow into (key, accumulated value) pairs.
//
// Every distinct key starts from a copy of initial; every element is
// folded into its key's accumulator with aggregate. Pairs are emitted in
// first-occurrence order of the keys, each distinct key exactly once.
// Counting words, for example:
//
//	counts := dataflow.AggregateByKey(words, 0,
//		func(acc *int, _ string) { *acc++ },
//		dataflow.Identity[string],
//	)
//
// The input is drained exactly once up front; the grouping then runs in
// three passes over the drained elements: seed the accumulators, fold the
// elements, and emit pairs in the order keys were first seen. Keeping the
// emission pass over the element sequence rather than over the map is what
// makes the output order deterministic.
func AggregateByKey[T any, K comparable, A any](
	f Flow[T],
	initial A,
	aggregate AggregateFunc[A, T],
	key KeySelector[T, K],
) Flow[KV[K, A]] {
	elems := Collect(f)

	accs := make(map[K]A, len(elems))
	for _, v := range elems {
		k := key(v)
		if _, ok := accs[k]; !ok {
			accs[k] = initial
		}
	}

	for _, v := range elems {
		k := key(v)
		acc := accs[k]
		aggregate(&acc, v)
		accs[k] = acc
	}

	result := make([]KV[K, A], 0, len(accs))
	emitted := make(map[K]struct{}, len(accs))
	for _, v := range elems {
		k := key(v)
		if _, ok := emitted[k]; ok {
			continue
		}
		emitted[k] = struct{}{}
		result = append(result, KV[K, A]{Key: k, Value: accs[k]})
	}
	return FromSlice(result)
}
