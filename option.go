package dataflow

// Option holds either a single value of type T or nothing.
//
// The zero value is the empty Option.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the empty Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the held value. It panics when the Option is empty.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("dataflow: MustGet on empty Option")
	}
	return o.value
}
