package stack

import "cmp"

// Element is implemented by values that know how to duplicate and dispose of themselves.
type Element[T any] interface {
	Clone() T
	Release()
}

// Comparable is implemented by values that can order themselves against another value.
type Comparable[T any] interface {
	Compare(T) int
}

// NewOf returns a stack whose strategies are the methods of T.
// Contains is available when T also implements Comparable[T].
func NewOf[T Element[T]]() *Stack[T] {
	var compare CompareFunc[T]

	var zero T
	if _, ok := any(zero).(Comparable[T]); ok {
		compare = func(a, b T) int {
			return any(a).(Comparable[T]).Compare(b)
		}
	}

	return New[T](
		func(v T) T { return v.Clone() },
		func(v T) { v.Release() },
		compare,
	)
}

// NewOrdered returns a stack of plain values: copying is assignment and releasing is a no-op.
func NewOrdered[T cmp.Ordered]() *Stack[T] {
	return New[T](Identity[T], Discard[T], cmp.Compare[T])
}

// Identity is a CopyFunc for values without shared state.
func Identity[T any](v T) T {
	return v
}

// Discard is a ReleaseFunc for values that own nothing.
func Discard[T any](T) {}
