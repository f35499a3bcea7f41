// Package element provides owned text values for stacks, with an ownership ledger.
package element

import (
	"bytes"
	"cmp"
	"strconv"

	"github.com/lifo-cli/lifo/stack"
)

// Item is a mutable text value. Copies never share their buffer.
type Item struct {
	buf      []byte
	released bool
	ledger   *Ledger
}

// New allocates an item holding text. The caller owns it and must Release it.
func New(ledger *Ledger, text string) *Item {
	ledger.allocated()
	return &Item{buf: []byte(text), ledger: ledger}
}

// Text returns the item's content.
func (i *Item) Text() string {
	return string(i.buf)
}

// Set overwrites the item's content in place.
func (i *Item) Set(text string) {
	i.buf = append(i.buf[:0], text...)
}

// Released reports whether Release has been called.
func (i *Item) Released() bool {
	return i.released
}

// String implements fmt.Stringer.
func (i *Item) String() string {
	return i.Text()
}

// Copy returns an independent duplicate registered on the same ledger.
func (i *Item) Copy() *Item {
	i.ledger.allocated()
	return &Item{buf: bytes.Clone(i.buf), ledger: i.ledger}
}

// Release wipes the buffer. Releasing twice is recorded on the ledger as a violation.
func (i *Item) Release() {
	if i.released {
		i.ledger.violation(i)
		return
	}

	clear(i.buf)
	i.buf = nil
	i.released = true
	i.ledger.releasedOne()
}

// Number parses the item as a float.
func (i *Item) Number() (float64, bool) {
	n, err := strconv.ParseFloat(string(i.buf), 64)
	return n, err == nil
}

// Compare orders two items lexically.
func Compare(a, b *Item) int {
	return bytes.Compare(a.buf, b.buf)
}

// CompareNumeric orders two items as numbers when both parse, and lexically otherwise.
func CompareNumeric(a, b *Item) int {
	x, okA := a.Number()
	y, okB := b.Number()
	if okA && okB {
		return cmp.Compare(x, y)
	}

	return Compare(a, b)
}

// Strategies returns the copy, release and compare strategies for a stack of items.
func Strategies(numeric bool) (stack.CopyFunc[*Item], stack.ReleaseFunc[*Item], stack.CompareFunc[*Item]) {
	compare := Compare
	if numeric {
		compare = CompareNumeric
	}

	return (*Item).Copy, (*Item).Release, compare
}

// NewStack returns an empty stack of items with the given initial capacity.
func NewStack(capacity int, numeric bool) *stack.Stack[*Item] {
	copyFn, releaseFn, compareFn := Strategies(numeric)
	return stack.NewSized[*Item](capacity, copyFn, releaseFn, compareFn)
}
