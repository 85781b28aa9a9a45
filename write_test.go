package dataflow_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"dataflow"
)

func TestWrite_SeparatorAfterEveryElement(t *testing.T) {
	var buf bytes.Buffer

	dataflow.Write(dataflow.FromSlice([]int{1, 2, 3, 4, 5}), &buf, '|')

	require.Equal(t, "1|2|3|4|5|", buf.String())
}

func TestWrite_EmptyFlowWritesNothing(t *testing.T) {
	var buf bytes.Buffer

	dataflow.Write(dataflow.FromSlice([]int{}), &buf, '|')

	require.Empty(t, buf.String())
}

func TestWrite_CustomSeparator(t *testing.T) {
	var buf bytes.Buffer

	dataflow.Write(dataflow.FromSlice([]string{"a", "b", "c"}), &buf, '\n')

	require.Equal(t, "a\nb\nc\n", buf.String())
}

func TestWrite_PassesElementsThrough(t *testing.T) {
	var buf bytes.Buffer
	src := dataflow.FromSlice([]int{1, 2, 3})

	out := dataflow.Write(src, &buf, ',')

	require.Equal(t, []int{1, 2, 3}, dataflow.Collect(out))
}

func TestWrite_ChainContinuesAfterSink(t *testing.T) {
	var buf bytes.Buffer

	logged := dataflow.Write(dataflow.FromSlice([]int{1, 2, 3, 4}), &buf, ' ')
	evens := dataflow.Filter(logged, func(v int) bool { return v%2 == 0 })

	require.Equal(t, "1 2 3 4 ", buf.String())
	require.Equal(t, []int{2, 4}, dataflow.Collect(evens))
}

func TestOut_NewlinePerElement(t *testing.T) {
	var buf bytes.Buffer

	dataflow.Out(dataflow.FromSlice([]int{1, 2, 3}), &buf)

	require.Equal(t, "1\n2\n3\n", buf.String())
}

func TestOut_EmptyFlow(t *testing.T) {
	var buf bytes.Buffer

	dataflow.Out(dataflow.FromSlice([]string{}), &buf)

	require.Empty(t, buf.String())
}

func TestOut_PassesElementsThrough(t *testing.T) {
	var buf bytes.Buffer

	out := dataflow.Out(dataflow.FromSlice([]string{"x", "y"}), &buf)

	require.Equal(t, []string{"x", "y"}, dataflow.Collect(out))
}
