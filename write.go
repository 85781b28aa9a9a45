package dataflow

import (
	"fmt"
	"io"
)

// Write eagerly drains f, writing every element's textual form to w
// followed by the separator — after the last element too: [1 2 3] with
// '|' writes "1|2|3|". An empty flow writes nothing.
//
// The elements pass through unchanged: the returned Flow is materialized
// over them, so the chain continues even when the source was single-pass.
// Errors from w are not reported; wrap w in a *bufio.Writer and check
// Flush when delivery matters.
func Write[T any](f Flow[T], w io.Writer, separator byte) Flow[T] {
	elems := Collect(f)
	for _, v := range elems {
		fmt.Fprintf(w, "%v%c", v, separator)
	}
	return FromSlice(elems)
}

// Out eagerly drains f, writing every element's textual form to w, one
// per line. Like Write, the elements pass through unchanged as a
// materialized Flow.
func Out[T any](f Flow[T], w io.Writer) Flow[T] {
	elems := Collect(f)
	for _, v := range elems {
		fmt.Fprintln(w, v)
	}
	return FromSlice(elems)
}
