package dataflow

type (

	// KV pairs a designated key with a value. It is the uniform input
	// shape for JoinKV and the output shape of AggregateByKey.
	KV[K comparable, V any] struct {
		Key   K
		Value V
	}

	// JoinResult is one row of a join result. Base is always present, one
	// row per left element and match; Joined is empty exactly when no
	// right-side element matched the base's key.
	JoinResult[B, J any] struct {
		Base   B
		Joined Option[J]
	}

	// KeySelector extracts the join or grouping key from an element.
	KeySelector[T any, K comparable] func(v T) K
)

// Join eagerly equi-joins two flows on the keys extracted by the two
// selectors, with left-outer semantics.
//
// The right flow is fully drained into a hash multimap first, then the
// left flow is scanned once. A left element with no right match produces a
// single row with an empty Joined; a left element with n matches produces
// n rows, one per match, in the right flow's original relative order. The
// result therefore has Σ max(n_i, 1) rows in left order.
//
// Key types must be comparable (hashable); no ordering is used. Join never
// fails at run time: mismatched inputs simply produce empty or all-absent
// results.
func Join[L, R any, K comparable](
	left Flow[L],
	right Flow[R],
	leftKey KeySelector[L, K],
	rightKey KeySelector[R, K],
) Flow[JoinResult[L, R]] {
	matches := make(map[K][]R)
	for r := range right.seq {
		k := rightKey(r)
		matches[k] = append(matches[k], r)
	}

	n := left.size
	if n < 0 {
		n = 0
	}
	result := make([]JoinResult[L, R], 0, n)
	for l := range left.seq {
		found := matches[leftKey(l)]
		if len(found) == 0 {
			result = append(result, JoinResult[L, R]{Base: l, Joined: None[R]()})
			continue
		}
		for _, r := range found {
			result = append(result, JoinResult[L, R]{Base: l, Joined: Some(r)})
		}
	}
	return FromSlice(result)
}

// JoinKV eagerly equi-joins two flows of key/value pairs on their keys,
// with the same multiplicity and ordering guarantees as Join.
//
// Both sides must carry the same key type; the single K type parameter
// enforces that at compile time. Result rows hold the left and right
// VALUES, not the pairs.
func JoinKV[K comparable, LV, RV any](
	left Flow[KV[K, LV]],
	right Flow[KV[K, RV]],
) Flow[JoinResult[LV, RV]] {
	matches := make(map[K][]RV)
	for r := range right.seq {
		matches[r.Key] = append(matches[r.Key], r.Value)
	}

	n := left.size
	if n < 0 {
		n = 0
	}
	result := make([]JoinResult[LV, RV], 0, n)
	for l := range left.seq {
		found := matches[l.Key]
		if len(found) == 0 {
			result = append(result, JoinResult[LV, RV]{Base: l.Value, Joined: None[RV]()})
			continue
		}
		for _, rv := range found {
			result = append(result, JoinResult[LV, RV]{Base: l.Value, Joined: Some(rv)})
		}
	}
	return FromSlice(result)
}
