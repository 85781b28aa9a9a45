/*
Package dataflow provides functional-style and composable transformations
for sequences of values, enabling streaming pipelines without intermediate
buffering.

This package is built around the concept of Flows: a Flow[T] represents a
lazily-evaluated sequence of values of type T. A Flow is constructed from a
slice, a channel, a directory walk, or any iter.Seq, and is traversed with
a plain range loop over Values().

Lazy views (Filter, Transform, Split, DropNone) wrap an upstream Flow and
compute elements on demand; no element is produced until the resulting Flow
is traversed, making pipelines demand-driven. Each traversal rebuilds the
view's internal state from scratch, so a Flow over a re-iterable source can
be walked any number of times.

Eager adapters (Join, JoinKV, AggregateByKey, Partition, PartitionWith,
Collect) run their whole loop at the point of the call and return
materialized Flows (or slices) over the computed results.

Per-element fallibility is data, not control flow: a Result[V, E] holds
either a success value or an error value, and Partition splits a flow of
results into its error and value sub-sequences for the caller to branch on.
Nothing in the package panics on bad input data or retries anything.

Example of a simple pipeline:

	// One chunk of raw text, tokenized on any of the delimiter characters.
	chunks := dataflow.FromSlice([]string{"good-department|bad department||another-good-department"})
	tokens := dataflow.Split(chunks, "|")

	// Parse each token; parsing outcomes are values, not panics.
	errs, depts := dataflow.PartitionWith(tokens, parseDepartment)

	// The error branch goes to a sink, the value branch is materialized.
	dataflow.Write(errs, os.Stderr, '\n')
	result := dataflow.Collect(depts)

Pipelines are composed by direct application: C(B(A(source))). When a chain
of stages should be named and reused before any source is attached, build a
Stage with the curried constructors (Filtering, Transforming, Splitting)
and Compose, then attach sources with Pipe.

For details on each adapter, including its ordering and multiplicity
guarantees, refer to the function-level documentation.
*/
package dataflow
