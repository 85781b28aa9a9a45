package dataflow

import (
	"strings"
)

// Split re-segments an upstream flow of text chunks into the flat sequence
// of tokens they contain, splitting on ANY character of delimiters in a
// single pass.
//
// Chunk boundaries act as additional split points: a token never spans two
// upstream chunks. Empty tokens are produced and kept — between two
// consecutive delimiters, after a trailing delimiter, and one for an empty
// chunk. Split never filters; remove unwanted empties downstream:
//
//	words := dataflow.Filter(
//		dataflow.Split(chunks, " \t\n"),
//		func(tok string) bool { return tok != "" },
//	)
//
// The scan state (current chunk, offset into it) lives inside the
// traversal, so every traversal tokenizes independently from the start.
func Split(f Flow[string], delimiters string) Flow[string] {
	return Flow[string]{
		size: -1,
		seq: func(yield func(string) bool) {
			for chunk := range f.seq {
				offset := 0
				for {
					cut := strings.IndexAny(chunk[offset:], delimiters)
					if cut < 0 {
						// Remainder of the chunk, possibly empty.
						if !yield(chunk[offset:]) {
							return
						}
						break
					}
					if !yield(chunk[offset : offset+cut]) {
						return
					}
					offset += cut + 1
				}
			}
		},
	}
}
