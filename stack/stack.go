// Package stack implements a generic, dynamically resized Last-In-First-Out container
// whose element management is delegated to caller-supplied strategies.
//
// The stack never stores a value handed to Push: it stores the result of the copy
// strategy instead and owns it until the value is popped (ownership moves to the caller)
// or released through Clear or Free.
package stack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// DefaultCapacity is the number of slots allocated by New.
const DefaultCapacity = 8

var (
	// ErrMissingStrategy is the panic value of a constructor called without a copy or release strategy.
	ErrMissingStrategy = errors.New("stack: copy and release strategies are required")

	// ErrNoCompare is the panic value of Contains on a stack built without a compare strategy.
	ErrNoCompare = errors.New("stack: contains requires a compare strategy")
)

type (
	// CopyFunc returns an independently owned duplicate of its argument.
	// It must never return the argument itself when the value holds shared state.
	CopyFunc[T any] func(T) T

	// ReleaseFunc relinquishes a value, reclaiming whatever it owns.
	// The stack calls it exactly once per value it owns.
	ReleaseFunc[T any] func(T)

	// CompareFunc reports a < b, a == b and a > b as negative, zero and positive.
	// Only Contains uses it and only the zero result is significant there.
	CompareFunc[T any] func(a, b T) int
)

// Stack is a LIFO container backed by a slice that doubles when full.
//
// A Stack is not safe for concurrent use. All methods accept a nil receiver:
// queries report an empty stack and mutators do nothing.
type Stack[T any] struct {
	// data has length equal to the allocated capacity; only data[:size] is occupied.
	data    []T
	size    int
	initial int

	copy    CopyFunc[T]
	release ReleaseFunc[T]
	compare CompareFunc[T]
}

// New returns an empty stack with DefaultCapacity slots.
// copy and release must not be nil; compare may be nil, in which case Contains panics.
func New[T any](copy CopyFunc[T], release ReleaseFunc[T], compare CompareFunc[T]) *Stack[T] {
	return NewSized[T](DefaultCapacity, copy, release, compare)
}

// NewSized is like New but allocates capacity slots up front.
// A non-positive capacity selects DefaultCapacity.
func NewSized[T any](capacity int, copy CopyFunc[T], release ReleaseFunc[T], compare CompareFunc[T]) *Stack[T] {
	if copy == nil || release == nil {
		panic(ErrMissingStrategy)
	}

	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Stack[T]{
		data:    make([]T, capacity),
		initial: capacity,
		copy:    copy,
		release: release,
		compare: compare,
	}
}

// grow doubles the backing storage, or allocates the initial capacity if none is left.
// The Go runtime aborts the process if the allocation cannot be satisfied.
func (s *Stack[T]) grow() {
	capacity := max(len(s.data)*2, s.initial)
	data := make([]T, capacity)
	copy(data, s.data[:s.size])
	s.data = data
}

// Free releases every element and drops the backing storage.
// The stack must not be used afterwards.
func (s *Stack[T]) Free() {
	if s == nil {
		return
	}

	s.Clear()
	s.data = nil
}

// Push stores a copy of e on top of the stack. e itself remains owned by the caller.
func (s *Stack[T]) Push(e T) {
	if s == nil {
		return
	}

	if s.size == len(s.data) {
		s.grow()
	}

	s.data[s.size] = s.copy(e)
	s.size++
}

// Pop removes the top element and transfers its ownership to the caller,
// who must eventually release it. It returns None if the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}

	var zero T
	s.size--
	e := s.data[s.size]
	s.data[s.size] = zero
	return mo.Some(e)
}

// Peek returns the top element without removing it, or None if the stack is empty.
// The value is a loan: the caller must neither modify nor release it, and it is
// invalidated by the next mutation of the stack.
func (s *Stack[T]) Peek() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}

	return mo.Some(s.data[s.size-1])
}

// Clear releases every element, top to bottom. The capacity is retained.
func (s *Stack[T]) Clear() {
	if s == nil {
		return
	}

	var zero T
	for s.size > 0 {
		s.size--
		s.release(s.data[s.size])
		s.data[s.size] = zero
	}
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}

	return s.size
}

// Cap returns the number of allocated slots.
func (s *Stack[T]) Cap() int {
	if s == nil {
		return 0
	}

	return len(s.data)
}

// Contains reports whether any element compares equal to e, scanning bottom to top.
//
// Calling Contains on a stack without a compare strategy is a programming error and panics
// with ErrNoCompare.
func (s *Stack[T]) Contains(e T) bool {
	if s == nil {
		return false
	}

	if s.compare == nil {
		panic(ErrNoCompare)
	}

	for i := 0; i < s.size; i++ {
		if s.compare(s.data[i], e) == 0 {
			return true
		}
	}

	return false
}

// Clone returns a deep copy sharing the same strategies.
// Each element is pushed bottom to top and therefore passes through the copy strategy.
func (s *Stack[T]) Clone() *Stack[T] {
	if s == nil {
		return nil
	}

	clone := NewSized[T](s.initial, s.copy, s.release, s.compare)
	for i := 0; i < s.size; i++ {
		clone.Push(s.data[i])
	}

	return clone
}

// Reverse reverses the order of the elements in place without copying or releasing any.
func (s *Stack[T]) Reverse() {
	if s.IsEmpty() {
		return
	}

	for left, right := 0, s.size-1; left < right; left, right = left+1, right-1 {
		s.data[left], s.data[right] = s.data[right], s.data[left]
	}
}

// ToSlice returns copies of all elements ordered bottom to top, or nil if the stack is empty.
// The caller owns the slice and every element in it.
func (s *Stack[T]) ToSlice() []T {
	if s.IsEmpty() {
		return nil
	}

	out := make([]T, s.size)
	for i := range out {
		out[i] = s.copy(s.data[i])
	}

	return out
}

// String renders the elements bottom to top, e.g. "[1 2 3]".
func (s *Stack[T]) String() string {
	if s.IsEmpty() {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < s.size; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		_, _ = fmt.Fprint(&b, s.data[i])
	}
	b.WriteByte(']')

	return b.String()
}
