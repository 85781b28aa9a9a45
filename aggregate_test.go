package dataflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dataflow"
)

func TestAggregateByKey_CountsInFirstSeenOrder(t *testing.T) {
	words := dataflow.FromSlice([]string{"b", "a", "b", "c", "a", "b"})

	counts := dataflow.AggregateByKey(words, 0,
		func(acc *int, _ string) { *acc++ },
		dataflow.Identity[string],
	)

	require.Equal(t, []dataflow.KV[string, int]{
		{Key: "b", Value: 3},
		{Key: "a", Value: 2},
		{Key: "c", Value: 1},
	}, dataflow.Collect(counts))
}

func TestAggregateByKey_SumWithSelector(t *testing.T) {
	type record struct {
		key   string
		value int
	}

	input := dataflow.FromSlice([]record{
		{"A", 1},
		{"A", 2},
		{"B", 10},
		{"B", 5},
		{"A", 3},
	})

	sums := dataflow.AggregateByKey(input, 0,
		func(acc *int, r record) { *acc += r.value },
		func(r record) string { return r.key },
	)

	// Unlike a consecutive grouping, all occurrences of a key fold into
	// one accumulator, and the key is emitted once, at its first position.
	require.Equal(t, []dataflow.KV[string, int]{
		{Key: "A", Value: 6},
		{Key: "B", Value: 15},
	}, dataflow.Collect(sums))
}

func TestAggregateByKey_EachKeyExactlyOnce(t *testing.T) {
	input := dataflow.FromSlice([]int{4, 2, 4, 4, 2, 9})

	result := dataflow.Collect(dataflow.AggregateByKey(input, 0,
		func(acc *int, _ int) { *acc++ },
		dataflow.Identity[int],
	))

	seen := make(map[int]bool)
	for _, kv := range result {
		require.False(t, seen[kv.Key], "key %d emitted twice", kv.Key)
		seen[kv.Key] = true
	}
	require.Len(t, seen, 3)
}

func TestAggregateByKey_EmptyInput(t *testing.T) {
	input := dataflow.FromSlice([]string{})

	counts := dataflow.AggregateByKey(input, 0,
		func(acc *int, _ string) { *acc++ },
		dataflow.Identity[string],
	)

	require.Empty(t, dataflow.Collect(counts))
}

func TestAggregateByKey_InitialValueSeedsEveryKey(t *testing.T) {
	input := dataflow.FromSlice([]string{"x", "y"})

	counts := dataflow.AggregateByKey(input, 100,
		func(acc *int, _ string) { *acc++ },
		dataflow.Identity[string],
	)

	require.Equal(t, []dataflow.KV[string, int]{
		{Key: "x", Value: 101},
		{Key: "y", Value: 101},
	}, dataflow.Collect(counts))
}

func TestAggregateByKey_ResultIsReiterable(t *testing.T) {
	input := dataflow.FromSlice([]string{"a", "a"})

	counts := dataflow.AggregateByKey(input, 0,
		func(acc *int, _ string) { *acc++ },
		dataflow.Identity[string],
	)

	require.Equal(t, dataflow.Collect(counts), dataflow.Collect(counts))
}
